package repository

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/linskybing/freelance-market/internal/domain/account"
	"gorm.io/gorm"
)

type AccountRepo interface {
	account.Repository
	WithTx(tx *gorm.DB) AccountRepo
}

type DBAccountRepo struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) *DBAccountRepo {
	return &DBAccountRepo{
		db: db,
	}
}

func (r *DBAccountRepo) Create(ctx context.Context, a account.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *DBAccountRepo) GetByID(ctx context.Context, role account.Role, id uint) (account.Account, error) {
	a, err := account.New(role)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(a, id).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *DBAccountRepo) GetByEmail(ctx context.Context, role account.Role, email string) (account.Account, error) {
	a, err := account.New(role)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(a).Error
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *DBAccountRepo) Save(ctx context.Context, a account.Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *DBAccountRepo) Delete(ctx context.Context, role account.Role, id uint) error {
	a, err := account.New(role)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Delete(a, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBAccountRepo) TouchLogin(ctx context.Context, role account.Role, id uint, at time.Time) error {
	a, err := account.New(role)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(a).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

func (r *DBAccountRepo) List(ctx context.Context, f account.ListFilter) ([]account.Account, int64, error) {
	if f.Role != "" {
		return r.listRole(ctx, f.Role, f, f.Offset(), f.Limit)
	}

	// The newest offset+limit rows overall are among the newest offset+limit
	// rows of each table, so each table is read only that far.
	window := f.Offset() + f.Limit
	var merged []account.Account
	var total int64
	for _, role := range account.Roles {
		rows, n, err := r.listRole(ctx, role, f, 0, window)
		if err != nil {
			return nil, 0, err
		}
		merged = append(merged, rows...)
		total += n
	}

	slices.SortStableFunc(merged, func(a, b account.Account) int {
		return b.Base().CreatedAt.Compare(a.Base().CreatedAt)
	})
	if f.Offset() >= len(merged) {
		return []account.Account{}, total, nil
	}
	end := min(f.Offset()+f.Limit, len(merged))
	return merged[f.Offset():end], total, nil
}

func (r *DBAccountRepo) listRole(ctx context.Context, role account.Role, f account.ListFilter, offset, limit int) ([]account.Account, int64, error) {
	switch role {
	case account.RoleFreelancer:
		return listAccounts[account.Freelancer](ctx, r.db, f, offset, limit)
	case account.RoleClient:
		return listAccounts[account.Client](ctx, r.db, f, offset, limit)
	case account.RoleAdmin:
		return listAccounts[account.Admin](ctx, r.db, f, offset, limit)
	}
	return nil, 0, account.ErrUnknownRole
}

func listAccounts[T any, PT interface {
	*T
	account.Account
}](ctx context.Context, db *gorm.DB, f account.ListFilter, offset, limit int) ([]account.Account, int64, error) {
	base := db.WithContext(ctx)

	var total int64
	if err := applyAccountFilter(base.Model(new(T)), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []T
	err := applyAccountFilter(base.Model(new(T)), f).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]account.Account, 0, len(rows))
	for i := range rows {
		out = append(out, PT(&rows[i]))
	}
	return out, total, nil
}

func applyAccountFilter(query *gorm.DB, f account.ListFilter) *gorm.DB {
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(s) + "%"
		query = query.Where("(name ILIKE ? OR email ILIKE ?)", pattern, pattern)
	}
	return query
}

func (r *DBAccountRepo) WithTx(tx *gorm.DB) AccountRepo {
	if tx == nil {
		return r
	}
	return &DBAccountRepo{
		db: tx,
	}
}
