package proposal

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

// Proposal is a freelancer's bid on an open job.
type Proposal struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	JobID             uint      `gorm:"not null;index" json:"jobId"`
	FreelancerID      uint      `gorm:"not null;index" json:"freelancerId"`
	CoverLetter       string    `gorm:"type:text;not null" json:"coverLetter"`
	BidAmount         float64   `gorm:"not null;check:bid_amount > 0" json:"bidAmount"`
	EstimatedDuration string    `gorm:"size:50" json:"estimatedDuration,omitempty"`
	Status            Status    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Proposal) TableName() string {
	return "proposals"
}

func (p *Proposal) IsPending() bool {
	return p.Status == StatusPending
}
