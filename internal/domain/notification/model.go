package notification

import "time"

type Type string

const (
	TypeJobApproved      Type = "job_approved"
	TypeJobRejected      Type = "job_rejected"
	TypeProposalReceived Type = "proposal_received"
	TypeProposalAccepted Type = "proposal_accepted"
	TypeContractSigned   Type = "contract_signed"
	TypeContractFunded   Type = "contract_funded"
	TypeMilestoneDone    Type = "milestone_completed"
	TypeContractEnded    Type = "contract_cancelled"
)

// Notification is an in-app message for one account.
type Notification struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RecipientID   uint      `gorm:"not null;index:idx_recipient" json:"recipientId"`
	RecipientRole string    `gorm:"size:20;not null;index:idx_recipient" json:"recipientRole"`
	Type          Type      `gorm:"size:40;not null" json:"type"`
	Title         string    `gorm:"size:200;not null" json:"title"`
	Message       string    `gorm:"type:text" json:"message"`
	JobID         *uint     `json:"jobId,omitempty"`
	Read          bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
