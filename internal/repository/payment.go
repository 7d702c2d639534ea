package repository

import (
	"context"

	"github.com/linskybing/freelance-market/internal/domain/payment"
	"gorm.io/gorm"
)

type PaymentRepo interface {
	payment.Repository
	WithTx(tx *gorm.DB) PaymentRepo
}

type DBPaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *DBPaymentRepo {
	return &DBPaymentRepo{
		db: db,
	}
}

func (r *DBPaymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *DBPaymentRepo) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	var p payment.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *DBPaymentRepo) LinkJob(ctx context.Context, id, jobID uint) error {
	return r.db.WithContext(ctx).Model(&payment.Payment{}).
		Where("id = ?", id).
		Update("job_id", jobID).Error
}

func (r *DBPaymentRepo) WithTx(tx *gorm.DB) PaymentRepo {
	if tx == nil {
		return r
	}
	return &DBPaymentRepo{
		db: tx,
	}
}
