package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUSDValue(t *testing.T) {
	hbar := &Payment{Amount: 200, Currency: "HBAR"}
	assert.InDelta(t, 14.0, hbar.USDValue(0.07), 1e-9)

	usd := &Payment{Amount: 12, Currency: "USD"}
	assert.Equal(t, 12.0, usd.USDValue(0.07))
}

func TestCanFeature(t *testing.T) {
	other := uint(9)
	own := uint(3)
	base := Payment{ClientID: 1, Purpose: PurposeFeaturedListing, Amount: 200, Currency: "HBAR", Status: StatusCompleted}

	cases := []struct {
		name  string
		edit  func(p *Payment)
		jobID uint
		want  bool
	}{
		{"meets threshold", func(p *Payment) {}, 0, true},
		{"below threshold", func(p *Payment) { p.Amount = 100 }, 0, false},
		{"other client", func(p *Payment) { p.ClientID = 2 }, 0, false},
		{"pending", func(p *Payment) { p.Status = StatusPending }, 0, false},
		{"escrow purpose", func(p *Payment) { p.Purpose = PurposeEscrow }, 0, false},
		{"linked to another job", func(p *Payment) { p.JobID = &other }, 3, false},
		{"linked to this job", func(p *Payment) { p.JobID = &own }, 3, true},
		{"linked but job unknown", func(p *Payment) { p.JobID = &own }, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.edit(&p)
			assert.Equal(t, tc.want, p.CanFeature(1, tc.jobID, 10, 0.07))
		})
	}
}
