package db

import (
	"fmt"

	"github.com/linskybing/freelance-market/internal/domain/account"
	"github.com/linskybing/freelance-market/internal/domain/audit"
	"github.com/linskybing/freelance-market/internal/domain/contract"
	"github.com/linskybing/freelance-market/internal/domain/job"
	"github.com/linskybing/freelance-market/internal/domain/notification"
	"github.com/linskybing/freelance-market/internal/domain/payment"
	"github.com/linskybing/freelance-market/internal/domain/proposal"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&account.Freelancer{},
		&account.Client{},
		&account.Admin{},
		&payment.Payment{},
		&job.Job{},
		&proposal.Proposal{},
		&contract.Contract{},
		&notification.Notification{},
		&audit.AuditLog{},
	}
}

func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
