package audit

import (
	"time"

	"gorm.io/datatypes"
)

type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"index" json:"userId"`
	UserRole     string         `gorm:"size:20" json:"userRole"`
	Action       string         `gorm:"size:50;not null;index" json:"action"`
	ResourceType string         `gorm:"size:50;not null;index" json:"resourceType"`
	ResourceID   string         `gorm:"size:100" json:"resourceId"`
	OldData      datatypes.JSON `gorm:"type:jsonb" json:"oldData,omitempty"`
	NewData      datatypes.JSON `gorm:"type:jsonb" json:"newData,omitempty"`
	IPAddress    string         `gorm:"size:64" json:"ipAddress"`
	UserAgent    string         `gorm:"type:text" json:"userAgent"`
	Description  string         `gorm:"type:text" json:"description"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Actor identifies who performed an audited change.
type Actor struct {
	UserID    uint
	Role      string
	IP        string
	UserAgent string
}
