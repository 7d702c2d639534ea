package job

import "time"

// FlagPolicy holds the thresholds behind the derived "flagged" marker.
type FlagPolicy struct {
	StaleAfter time.Duration
	HighBudget float64
}

func DefaultFlagPolicy() FlagPolicy {
	return FlagPolicy{StaleAfter: 14 * 24 * time.Hour, HighBudget: 10000}
}

// IsFlagged reports whether a job needs admin attention: in progress with no
// update for longer than StaleAfter, or still open with a budget at or above HighBudget.
func (p FlagPolicy) IsFlagged(j *Job, now time.Time) bool {
	if j.Status == StatusInProgress && now.Sub(j.UpdatedAt) > p.StaleAfter {
		return true
	}
	return j.Status == StatusOpen && j.Budget.Amount >= p.HighBudget
}

// StaleBefore is the updated_at cutoff matching IsFlagged for storage queries.
func (p FlagPolicy) StaleBefore(now time.Time) time.Time {
	return now.Add(-p.StaleAfter)
}
