package repository

import (
	"context"
	"strings"

	"github.com/linskybing/freelance-market/internal/domain/job"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobRepo matches the domain job repository contract.
type JobRepo interface {
	job.Repository
	WithTx(tx *gorm.DB) JobRepo
}

type DBJobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *DBJobRepo {
	return &DBJobRepo{
		db: db,
	}
}

func (r *DBJobRepo) Create(ctx context.Context, j *job.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *DBJobRepo) GetByID(ctx context.Context, id uint) (*job.Job, error) {
	var j job.Job
	err := r.db.WithContext(ctx).First(&j, id).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *DBJobRepo) GetByIDForUpdate(ctx context.Context, id uint) (*job.Job, error) {
	var j job.Job
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&j, id).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *DBJobRepo) Update(ctx context.Context, j *job.Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *DBJobRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&job.Job{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *DBJobRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&job.Job{}, id).Error
}

func (r *DBJobRepo) List(ctx context.Context, f job.Filter) ([]job.Job, int64, error) {
	f.Normalize()
	base := r.db.WithContext(ctx)

	var total int64
	if err := applyJobFilter(base.Model(&job.Job{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []job.Job
	err := applyJobFilter(base.Model(&job.Job{}), f).
		Order("featured DESC").
		Order("created_at DESC").
		Order("id DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Find(&jobs).Error
	return jobs, total, err
}

func applyJobFilter(query *gorm.DB, f job.Filter) *gorm.DB {
	if f.Status != nil {
		query = query.Where("status = ?", *f.Status)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.BudgetType != "" {
		query = query.Where("budget_type = ?", f.BudgetType)
	}
	if f.Urgency != "" {
		query = query.Where("urgency = ?", f.Urgency)
	}
	if f.Featured != nil {
		query = query.Where("featured = ?", *f.Featured)
	}
	if f.ClientID != nil {
		query = query.Where("client_id = ?", *f.ClientID)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(s) + "%"
		query = query.Where(
			"(title ILIKE ? OR description ILIKE ? OR array_to_string(skills, ' ') ILIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if f.Flagged != nil {
		// Same predicate as job.FlagPolicy.IsFlagged.
		flagged := "((status = ? AND updated_at < ?) OR (status = ? AND budget_amount >= ?))"
		args := []any{
			job.StatusInProgress, f.Flag.StaleBefore(f.Now),
			job.StatusOpen, f.Flag.HighBudget,
		}
		if *f.Flagged {
			query = query.Where(flagged, args...)
		} else {
			query = query.Where("NOT "+flagged, args...)
		}
	}
	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *DBJobRepo) WithTx(tx *gorm.DB) JobRepo {
	if tx == nil {
		return r
	}
	return &DBJobRepo{
		db: tx,
	}
}
