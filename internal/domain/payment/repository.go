package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	// LinkJob attaches the payment to jobID.
	LinkJob(ctx context.Context, id, jobID uint) error
}
