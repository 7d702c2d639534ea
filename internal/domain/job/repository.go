package job

import "context"

// Repository defines data access for jobs.
type Repository interface {
	Create(ctx context.Context, j *Job) error
	GetByID(ctx context.Context, id uint) (*Job, error)
	// GetByIDForUpdate locks the row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Job, error)
	Update(ctx context.Context, j *Job) error
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, f Filter) ([]Job, int64, error)
}
