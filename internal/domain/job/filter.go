package job

import "time"

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

// Filter describes a job listing query.
type Filter struct {
	Status     *Status
	Category   Category
	Search     string
	BudgetType BudgetType
	Urgency    Urgency
	Featured   *bool
	Flagged    *bool
	ClientID   *uint

	// Flag and Now are required when Flagged is set.
	Flag FlagPolicy
	Now  time.Time

	Page  int
	Limit int
}

// Normalize applies the paging defaults and bounds.
func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}
