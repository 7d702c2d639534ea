package repository

import (
	"context"

	"github.com/linskybing/freelance-market/internal/domain/contract"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContractRepo interface {
	contract.Repository
	WithTx(tx *gorm.DB) ContractRepo
}

type DBContractRepo struct {
	db *gorm.DB
}

func NewContractRepo(db *gorm.DB) *DBContractRepo {
	return &DBContractRepo{
		db: db,
	}
}

func (r *DBContractRepo) Create(ctx context.Context, c *contract.Contract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *DBContractRepo) GetByID(ctx context.Context, id uint) (*contract.Contract, error) {
	var c contract.Contract
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *DBContractRepo) GetByIDForUpdate(ctx context.Context, id uint) (*contract.Contract, error) {
	var c contract.Contract
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *DBContractRepo) Update(ctx context.Context, c *contract.Contract) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *DBContractRepo) HasLiveForJob(ctx context.Context, jobID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&contract.Contract{}).
		Where("job_id = ? AND status <> ?", jobID, contract.StatusCancelled).
		Count(&n).Error
	return n > 0, err
}

func (r *DBContractRepo) ListByParty(ctx context.Context, userID uint, party contract.Party) ([]contract.Contract, error) {
	column := "client_id"
	if party == contract.PartyFreelancer {
		column = "freelancer_id"
	}
	var contracts []contract.Contract
	err := r.db.WithContext(ctx).
		Where(column+" = ?", userID).
		Order("created_at DESC").
		Find(&contracts).Error
	return contracts, err
}

func (r *DBContractRepo) ListAfter(ctx context.Context, afterID uint, limit int) ([]contract.Contract, error) {
	var contracts []contract.Contract
	err := r.db.WithContext(ctx).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&contracts).Error
	return contracts, err
}

func (r *DBContractRepo) WithTx(tx *gorm.DB) ContractRepo {
	if tx == nil {
		return r
	}
	return &DBContractRepo{
		db: tx,
	}
}
