package account

type RegisterInput struct {
	Name     string `json:"name" binding:"required,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=freelancer client"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=freelancer client admin"`
}

type LoginResult struct {
	Token string  `json:"token"`
	Role  Role    `json:"role"`
	User  Account `json:"user"`
}

// ListFilter selects accounts for the admin user listing.
type ListFilter struct {
	Role   Role
	Status Status
	Search string
	Page   int
	Limit  int
}

type ListQuery struct {
	Role   string `form:"role" binding:"omitempty,oneof=freelancer client admin"`
	Status string `form:"status" binding:"omitempty,oneof=active suspended"`
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (q ListQuery) Filter() ListFilter {
	f := ListFilter{
		Role:   Role(q.Role),
		Status: Status(q.Status),
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	return f
}

type UserAction string

const (
	ActionSuspend  UserAction = "suspend"
	ActionActivate UserAction = "activate"
	ActionVerify   UserAction = "verify"
	ActionUnverify UserAction = "unverify"
)

type ModerateUserInput struct {
	UserID uint   `json:"userId" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=freelancer client admin"`
	Action string `json:"action" binding:"required,oneof=suspend activate verify unverify"`
}

// UserView is one row of the admin user listing.
type UserView struct {
	User              Account `json:"user"`
	Role              Role    `json:"role"`
	ProfileCompletion int     `json:"profileCompletion"`
}

func NewUserView(a Account) UserView {
	return UserView{User: a, Role: a.Role(), ProfileCompletion: a.ProfileCompletion()}
}

type UpdateSettingsInput struct {
	Profile  map[string]any `json:"profile"`
	Settings map[string]any `json:"settings"`
}

type SettingsView struct {
	Role              Role     `json:"role"`
	Profile           Account  `json:"profile"`
	Settings          Settings `json:"settings"`
	ProfileCompletion int      `json:"profileCompletion"`
}

func NewSettingsView(a Account) SettingsView {
	return SettingsView{
		Role:              a.Role(),
		Profile:           a,
		Settings:          a.Base().Settings.Data(),
		ProfileCompletion: a.ProfileCompletion(),
	}
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Apply changes the account's status or verification flag.
func (a UserAction) Apply(p *Profile) {
	switch a {
	case ActionSuspend:
		p.Status = StatusSuspended
	case ActionActivate:
		p.Status = StatusActive
	case ActionVerify:
		p.Verified = true
	case ActionUnverify:
		p.Verified = false
	}
}
