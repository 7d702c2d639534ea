package job

import "math"

// defaultSplit is the share of the budget assigned to each generated milestone.
var defaultSplit = []struct {
	name  string
	share float64
}{
	{"Project kickoff & planning", 0.30},
	{"Core development", 0.50},
	{"Final delivery & revisions", 0.20},
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// DefaultMilestones splits amount 30/50/20. Amounts are rounded to cents and
// the last milestone absorbs the rounding remainder so the sum is exact.
func DefaultMilestones(amount float64) []Milestone {
	milestones := make([]Milestone, 0, len(defaultSplit))
	remaining := roundCents(amount)
	for i, part := range defaultSplit {
		var value float64
		if i == len(defaultSplit)-1 {
			value = remaining
		} else {
			value = roundCents(amount * part.share)
			remaining = roundCents(remaining - value)
		}
		milestones = append(milestones, Milestone{Name: part.name, Amount: value})
	}
	return milestones
}

// ScaleMilestones keeps names and proportions of ms but rebases them onto amount.
func ScaleMilestones(ms []Milestone, amount float64) []Milestone {
	var total float64
	for _, m := range ms {
		total += m.Amount
	}
	if len(ms) == 0 || total <= 0 {
		return DefaultMilestones(amount)
	}

	out := make([]Milestone, len(ms))
	remaining := roundCents(amount)
	for i, m := range ms {
		out[i] = Milestone{Name: m.Name, Duration: m.Duration}
		if i == len(ms)-1 {
			out[i].Amount = remaining
			continue
		}
		out[i].Amount = roundCents(amount * m.Amount / total)
		remaining = roundCents(remaining - out[i].Amount)
	}
	return out
}

// Progress returns the completed share of ms weighted by amount, 0-100.
func Progress(ms []Milestone) int {
	if len(ms) == 0 {
		return 0
	}
	var total, done float64
	var doneCount int
	for _, m := range ms {
		total += m.Amount
		if m.Completed {
			done += m.Amount
			doneCount++
		}
	}
	if total <= 0 {
		return doneCount * 100 / len(ms)
	}
	return int(math.Round(done / total * 100))
}
