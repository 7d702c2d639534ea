package contract

import "context"

type Repository interface {
	Create(ctx context.Context, c *Contract) error
	GetByID(ctx context.Context, id uint) (*Contract, error)
	// GetByIDForUpdate locks the row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Contract, error)
	Update(ctx context.Context, c *Contract) error
	// HasLiveForJob reports whether the job has a contract that is not cancelled.
	HasLiveForJob(ctx context.Context, jobID uint) (bool, error)
	ListByParty(ctx context.Context, userID uint, party Party) ([]Contract, error)
	// ListAfter returns up to limit contracts with ID > afterID, ordered by ID.
	ListAfter(ctx context.Context, afterID uint, limit int) ([]Contract, error)
}
