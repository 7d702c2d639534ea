package proposal

import "context"

type Repository interface {
	Create(ctx context.Context, p *Proposal) error
	GetByID(ctx context.Context, id uint) (*Proposal, error)
	ListByJob(ctx context.Context, jobID uint) ([]Proposal, error)
	ListByFreelancer(ctx context.Context, freelancerID uint) ([]Proposal, error)
	// HasPending reports whether freelancerID already has a pending bid on jobID.
	HasPending(ctx context.Context, jobID, freelancerID uint) (bool, error)
	UpdateStatus(ctx context.Context, id uint, status Status) error
	// RejectPendingExcept rejects every other pending proposal on jobID.
	RejectPendingExcept(ctx context.Context, jobID, keepID uint) (int64, error)
}
