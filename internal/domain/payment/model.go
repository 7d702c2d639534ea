package payment

import "time"

type Purpose string

const (
	PurposeFeaturedListing Purpose = "featured_listing"
	PurposeEscrow          Purpose = "escrow"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Payment records a wallet transfer made by a client. The chain transaction
// itself is not verified here; TxHash is kept for reference.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  uint      `gorm:"not null;index" json:"clientId"`
	JobID     *uint     `gorm:"index" json:"jobId,omitempty"`
	Purpose   Purpose   `gorm:"size:30;not null" json:"purpose"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Currency  string    `gorm:"size:10;not null;default:'HBAR'" json:"currency"`
	TxHash    string    `gorm:"size:200;uniqueIndex" json:"txHash"`
	Status    Status    `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Payment) TableName() string {
	return "payments"
}

// USDValue converts the amount to USD. HBAR amounts use hbarRate (USD per HBAR).
func (p *Payment) USDValue(hbarRate float64) float64 {
	if p.Currency == "USD" {
		return p.Amount
	}
	return p.Amount * hbarRate
}

// CanFeature reports whether p pays for featuring jobID on behalf of clientID.
func (p *Payment) CanFeature(clientID, jobID uint, minUSD, hbarRate float64) bool {
	if p.ClientID != clientID || p.Status != StatusCompleted {
		return false
	}
	if p.Purpose != PurposeFeaturedListing {
		return false
	}
	if p.JobID != nil && (jobID == 0 || *p.JobID != jobID) {
		return false
	}
	return p.USDValue(hbarRate) >= minUSD
}
