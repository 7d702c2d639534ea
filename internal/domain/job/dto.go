package job

type CreateJobInput struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	BudgetMin   *float64 `json:"budgetMin" binding:"required,gte=0"`
	BudgetMax   *float64 `json:"budgetMax" binding:"required,gte=0"`
	BudgetType  string   `json:"budgetType" binding:"omitempty,oneof=fixed hourly"`
	Currency    string   `json:"currency" binding:"omitempty,oneof=HBAR USD"`
	Skills      []string `json:"skills"`
	Duration    string   `json:"duration"`
	Urgency     string   `json:"urgency" binding:"omitempty,oneof=low medium high"`
	Featured    bool     `json:"featured"`
	PaymentID   *uint    `json:"paymentId"`
}

type UpdateJobInput struct {
	ID          uint     `json:"jobId"`
	Title       *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	BudgetMin   *float64 `json:"budgetMin,omitempty" binding:"omitempty,gte=0"`
	BudgetMax   *float64 `json:"budgetMax,omitempty" binding:"omitempty,gte=0"`
	BudgetType  *string  `json:"budgetType,omitempty" binding:"omitempty,oneof=fixed hourly"`
	Currency    *string  `json:"currency,omitempty" binding:"omitempty,oneof=HBAR USD"`
	Skills      []string `json:"skills,omitempty"`
	Duration    *string  `json:"duration,omitempty"`
	Urgency     *string  `json:"urgency,omitempty" binding:"omitempty,oneof=low medium high"`
	Featured    *bool    `json:"featured,omitempty"`
	PaymentID   *uint    `json:"paymentId,omitempty"`
}

// ListQuery is the query string accepted by the listing endpoints.
type ListQuery struct {
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
	Category   string `form:"category"`
	Search     string `form:"search"`
	BudgetType string `form:"budgetType" binding:"omitempty,oneof=fixed hourly"`
	Urgency    string `form:"urgency" binding:"omitempty,oneof=low medium high"`
	Featured   *bool  `form:"featured"`
	Status     string `form:"status" binding:"omitempty,oneof=draft open in_progress completed cancelled all"`
	Flagged    *bool  `form:"flagged"`
}

// Filter converts the query into a storage filter. Status and Flagged are
// left to the caller because only admins may use them.
func (q ListQuery) Filter(extraAliases map[string]string) Filter {
	f := Filter{
		Search:     q.Search,
		BudgetType: BudgetType(q.BudgetType),
		Urgency:    Urgency(q.Urgency),
		Featured:   q.Featured,
		Page:       q.Page,
		Limit:      q.Limit,
	}
	if q.Category != "" && q.Category != "all" {
		f.Category = NormalizeCategory(q.Category, extraAliases)
	}
	f.Normalize()
	return f
}

type ModerateJobInput struct {
	JobID  uint   `json:"jobId" binding:"required"`
	Action string `json:"action" binding:"required"`
	Note   string `json:"note"`
}

// AdminView decorates a job with the derived moderation marker.
type AdminView struct {
	Job
	Flagged bool `json:"flagged"`
}

// CreateResult reports the stored job and whether a requested feature was dropped.
type CreateResult struct {
	Job               *Job `json:"job"`
	FeatureDowngraded bool `json:"featureDowngraded"`
}
