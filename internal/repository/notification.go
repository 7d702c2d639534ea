package repository

import (
	"context"

	"github.com/linskybing/freelance-market/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	notification.Repository
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{
		db: db,
	}
}

func (r *DBNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *DBNotificationRepo) ListForRecipient(ctx context.Context, recipientID uint, role string, unreadOnly bool, limit int) ([]notification.Notification, error) {
	query := r.db.WithContext(ctx).
		Where("recipient_id = ? AND recipient_role = ?", recipientID, role)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}
	var out []notification.Notification
	err := query.Order("created_at DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *DBNotificationRepo) MarkRead(ctx context.Context, id, recipientID uint, role string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&notification.Notification{}).
		Where("id = ? AND recipient_id = ? AND recipient_role = ?", id, recipientID, role).
		Update("read", true)
	return res.RowsAffected > 0, res.Error
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{
		db: tx,
	}
}
