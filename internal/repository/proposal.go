package repository

import (
	"context"

	"github.com/linskybing/freelance-market/internal/domain/proposal"
	"gorm.io/gorm"
)

type ProposalRepo interface {
	proposal.Repository
	WithTx(tx *gorm.DB) ProposalRepo
}

type DBProposalRepo struct {
	db *gorm.DB
}

func NewProposalRepo(db *gorm.DB) *DBProposalRepo {
	return &DBProposalRepo{
		db: db,
	}
}

func (r *DBProposalRepo) Create(ctx context.Context, p *proposal.Proposal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *DBProposalRepo) GetByID(ctx context.Context, id uint) (*proposal.Proposal, error) {
	var p proposal.Proposal
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *DBProposalRepo) ListByJob(ctx context.Context, jobID uint) ([]proposal.Proposal, error) {
	var proposals []proposal.Proposal
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&proposals).Error
	return proposals, err
}

func (r *DBProposalRepo) ListByFreelancer(ctx context.Context, freelancerID uint) ([]proposal.Proposal, error) {
	var proposals []proposal.Proposal
	err := r.db.WithContext(ctx).
		Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Find(&proposals).Error
	return proposals, err
}

func (r *DBProposalRepo) HasPending(ctx context.Context, jobID, freelancerID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&proposal.Proposal{}).
		Where("job_id = ? AND freelancer_id = ? AND status = ?", jobID, freelancerID, proposal.StatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *DBProposalRepo) UpdateStatus(ctx context.Context, id uint, status proposal.Status) error {
	return r.db.WithContext(ctx).Model(&proposal.Proposal{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *DBProposalRepo) RejectPendingExcept(ctx context.Context, jobID, keepID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&proposal.Proposal{}).
		Where("job_id = ? AND id <> ? AND status = ?", jobID, keepID, proposal.StatusPending).
		Update("status", proposal.StatusRejected)
	return res.RowsAffected, res.Error
}

func (r *DBProposalRepo) WithTx(tx *gorm.DB) ProposalRepo {
	if tx == nil {
		return r
	}
	return &DBProposalRepo{
		db: tx,
	}
}
