package account

import (
	"context"
	"time"
)

// Repository stores the three account tables. Role selects the table.
type Repository interface {
	Create(ctx context.Context, a Account) error
	GetByID(ctx context.Context, role Role, id uint) (Account, error)
	GetByEmail(ctx context.Context, role Role, email string) (Account, error)
	Save(ctx context.Context, a Account) error
	Delete(ctx context.Context, role Role, id uint) error
	TouchLogin(ctx context.Context, role Role, id uint, at time.Time) error
	// List pages through one table, or all three when f.Role is empty.
	List(ctx context.Context, f ListFilter) ([]Account, int64, error)
}
