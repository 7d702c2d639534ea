package job

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsFlagged(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := DefaultFlagPolicy()

	cases := []struct {
		name string
		job  Job
		want bool
	}{
		{"open at threshold", Job{Status: StatusOpen, Budget: Budget{Amount: 10000}}, true},
		{"open below threshold", Job{Status: StatusOpen, Budget: Budget{Amount: 9999.99}}, false},
		{"draft high budget", Job{Status: StatusDraft, Budget: Budget{Amount: 50000}}, false},
		{"in progress stale", Job{Status: StatusInProgress, UpdatedAt: now.Add(-15 * 24 * time.Hour)}, true},
		{"in progress exactly 14 days", Job{Status: StatusInProgress, UpdatedAt: now.Add(-14 * 24 * time.Hour)}, false},
		{"in progress fresh", Job{Status: StatusInProgress, UpdatedAt: now.Add(-time.Hour)}, false},
		{"completed old", Job{Status: StatusCompleted, UpdatedAt: now.Add(-90 * 24 * time.Hour)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.IsFlagged(&tc.job, now))
		})
	}
}

func TestStaleBefore(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	p := FlagPolicy{StaleAfter: 7 * 24 * time.Hour}
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), p.StaleBefore(now))
}
