package account

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Role string

const (
	RoleFreelancer Role = "freelancer"
	RoleClient     Role = "client"
	RoleAdmin      Role = "admin"
)

// Roles lists every account table in lookup order.
var Roles = []Role{RoleFreelancer, RoleClient, RoleAdmin}

func (r Role) Valid() bool {
	return r == RoleFreelancer || r == RoleClient || r == RoleAdmin
}

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// Profile holds the columns shared by every account table.
type Profile struct {
	ID            uint                         `gorm:"primaryKey" json:"id"`
	Name          string                       `gorm:"size:120;not null" json:"name"`
	Email         string                       `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password      string                       `gorm:"size:255;not null" json:"-"`
	WalletAddress string                       `gorm:"size:100" json:"walletAddress,omitempty"`
	Avatar        string                       `gorm:"type:text" json:"avatar,omitempty"`
	Bio           string                       `gorm:"type:text" json:"bio,omitempty"`
	Location      string                       `gorm:"size:120" json:"location,omitempty"`
	Status        Status                       `gorm:"size:20;not null;default:'active'" json:"status"`
	Verified      bool                         `gorm:"not null;default:false" json:"verified"`
	Settings      datatypes.JSONType[Settings] `gorm:"type:jsonb" json:"settings"`
	LastLoginAt   *time.Time                   `json:"lastLoginAt,omitempty"`
	CreatedAt     time.Time                    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time                    `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Freelancer struct {
	Profile
	Title         string         `gorm:"size:120" json:"title,omitempty"`
	Skills        pq.StringArray `gorm:"type:text[]" json:"skills"`
	HourlyRate    float64        `gorm:"not null;default:0" json:"hourlyRate"`
	Portfolio     pq.StringArray `gorm:"type:text[]" json:"portfolio"`
	TotalEarnings float64        `gorm:"not null;default:0" json:"totalEarnings"`
}

func (Freelancer) TableName() string { return "freelancers" }

type Client struct {
	Profile
	Company    string  `gorm:"size:120" json:"company,omitempty"`
	Website    string  `gorm:"size:255" json:"website,omitempty"`
	Industry   string  `gorm:"size:120" json:"industry,omitempty"`
	TotalSpent float64 `gorm:"not null;default:0" json:"totalSpent"`
}

func (Client) TableName() string { return "clients" }

type Admin struct {
	Profile
	Permissions pq.StringArray `gorm:"type:text[]" json:"permissions"`
}

func (Admin) TableName() string { return "admins" }

// Account is implemented by the three role tables.
type Account interface {
	Base() *Profile
	Role() Role
	// ProfileCompletion returns the share of required profile fields that are filled, 0-100.
	ProfileCompletion() int
	// ApplyProfile sets whitelisted profile fields from a decoded JSON object.
	ApplyProfile(updates map[string]any) error
}

func (f *Freelancer) Base() *Profile { return &f.Profile }
func (c *Client) Base() *Profile     { return &c.Profile }
func (a *Admin) Base() *Profile      { return &a.Profile }

func (f *Freelancer) Role() Role { return RoleFreelancer }
func (c *Client) Role() Role     { return RoleClient }
func (a *Admin) Role() Role      { return RoleAdmin }

// New returns an empty model for role, suitable as a gorm destination.
func New(role Role) (Account, error) {
	switch role {
	case RoleFreelancer:
		return &Freelancer{}, nil
	case RoleClient:
		return &Client{}, nil
	case RoleAdmin:
		return &Admin{}, nil
	}
	return nil, ErrUnknownRole
}
