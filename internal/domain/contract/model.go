package contract

import (
	"time"

	"github.com/linskybing/freelance-market/internal/domain/job"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusDraft             Status = "draft"
	StatusPendingSignatures Status = "pending_signatures"
	StatusSigned            Status = "signed"
	StatusActive            Status = "active"
	StatusCompleted         Status = "completed"
	StatusCancelled         Status = "cancelled"
	StatusDisputed          Status = "disputed"
)

func (s Status) IsFinal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Signature struct {
	Signed        bool       `json:"signed"`
	SignedAt      *time.Time `json:"signedAt,omitempty"`
	WalletAddress string     `json:"walletAddress,omitempty"`
	Signature     string     `json:"signature,omitempty"`
}

type Signatures struct {
	Client     Signature `json:"client"`
	Freelancer Signature `json:"freelancer"`
}

type Escrow struct {
	Funded   bool       `json:"funded"`
	Amount   float64    `json:"amount"`
	Released float64    `json:"released"`
	TxHash   string     `json:"txHash,omitempty"`
	FundedAt *time.Time `json:"fundedAt,omitempty"`
}

// Contract binds a client and a freelancer to an accepted proposal. Once it
// exists it is authoritative for the job's status, assignee and progress.
type Contract struct {
	ID           uint                               `gorm:"primaryKey" json:"id"`
	JobID        uint                               `gorm:"not null;index;uniqueIndex:idx_contracts_live_job,where:status <> 'cancelled'" json:"jobId"`
	ProposalID   uint                               `gorm:"not null;uniqueIndex" json:"proposalId"`
	ClientID     uint                               `gorm:"not null;index" json:"clientId"`
	FreelancerID uint                               `gorm:"not null;index" json:"freelancerId"`
	Title        string                             `gorm:"size:200;not null" json:"title"`
	Amount       float64                            `gorm:"not null" json:"amount"`
	Currency     string                             `gorm:"size:10;not null;default:'HBAR'" json:"currency"`
	Milestones   datatypes.JSONSlice[job.Milestone] `gorm:"type:jsonb" json:"milestones"`
	Signatures   datatypes.JSONType[Signatures]     `gorm:"type:jsonb" json:"signatures"`
	Escrow       datatypes.JSONType[Escrow]         `gorm:"type:jsonb" json:"escrow"`
	Status       Status                             `gorm:"size:30;not null;default:'draft';index" json:"status"`
	CreatedAt    time.Time                          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time                          `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Contract) TableName() string {
	return "contracts"
}

// Party identifies which side of a contract a user is on.
type Party string

const (
	PartyClient     Party = "client"
	PartyFreelancer Party = "freelancer"
)

// PartyOf returns the side userID signs for, given the role in their token.
func (c *Contract) PartyOf(userID uint, role string) (Party, bool) {
	switch {
	case role == string(PartyClient) && c.ClientID == userID:
		return PartyClient, true
	case role == string(PartyFreelancer) && c.FreelancerID == userID:
		return PartyFreelancer, true
	}
	return "", false
}
