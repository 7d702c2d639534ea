package job

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Status represents where a job sits in its lifecycle.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

type BudgetType string

const (
	BudgetFixed  BudgetType = "fixed"
	BudgetHourly BudgetType = "hourly"
)

const (
	CurrencyHBAR = "HBAR"
	CurrencyUSD  = "USD"
)

// Budget is stored inline on the jobs table with a budget_ prefix.
type Budget struct {
	Amount   float64    `gorm:"not null;default:0;check:budget_amount >= 0" json:"amount"`
	Min      float64    `gorm:"not null;default:0" json:"min"`
	Max      float64    `gorm:"not null;default:0" json:"max"`
	Currency string     `gorm:"size:10;not null;default:'HBAR'" json:"currency"`
	Type     BudgetType `gorm:"size:10;not null;default:'fixed'" json:"type"`
}

// Milestone is a named, amount-bearing slice of a job or contract.
type Milestone struct {
	Name        string     `json:"name"`
	Amount      float64    `json:"amount"`
	Duration    string     `json:"duration,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Job is a client posting that freelancers bid on.
type Job struct {
	ID           uint                           `gorm:"primaryKey;column:id" json:"id"`
	Title        string                         `gorm:"size:200;not null" json:"title"`
	Description  string                         `gorm:"type:text;not null" json:"description"`
	Budget       Budget                         `gorm:"embedded;embeddedPrefix:budget_" json:"budget"`
	Skills       pq.StringArray                 `gorm:"type:text[]" json:"skills"`
	Category     Category                       `gorm:"size:50;not null;index" json:"category"`
	Duration     string                         `gorm:"size:50" json:"duration"`
	Urgency      Urgency                        `gorm:"size:10;not null;default:'medium'" json:"urgency"`
	Status       Status                         `gorm:"size:20;not null;default:'draft';index" json:"status"`
	ClientID     uint                           `gorm:"not null;index" json:"client"`
	FreelancerID *uint                          `gorm:"index" json:"freelancer,omitempty"`
	Milestones   datatypes.JSONSlice[Milestone] `gorm:"type:jsonb" json:"milestones"`
	Progress     int                            `gorm:"not null;default:0;check:progress BETWEEN 0 AND 100" json:"progress"`
	Featured     bool                           `gorm:"not null;default:false;index" json:"featured"`
	AdminNote    string                         `gorm:"type:text" json:"adminNote,omitempty"`
	PaymentID    *uint                          `json:"paymentId,omitempty"`
	ModeratedBy  *uint                          `json:"moderatedBy,omitempty"`
	ModeratedAt  *time.Time                     `json:"moderatedAt,omitempty"`
	CreatedAt    time.Time                      `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt    time.Time                      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Job) TableName() string {
	return "jobs"
}

// IsOwnedBy reports whether clientID posted the job.
func (j *Job) IsOwnedBy(clientID uint) bool {
	return j.ClientID == clientID
}

// HasCompletedMilestone reports whether any milestone is already marked done.
func (j *Job) HasCompletedMilestone() bool {
	for _, m := range j.Milestones {
		if m.Completed {
			return true
		}
	}
	return false
}
