package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/linskybing/freelance-market/internal/cache"
	"github.com/linskybing/freelance-market/internal/domain/contract"
	"github.com/linskybing/freelance-market/internal/repository"
)

const reconcileBatchSize = 100

// ReconcileService repairs jobs whose state drifted from their contract.
type ReconcileService struct {
	Repos *repository.Repos
	cache ListingCache
}

func NewReconcileService(repos *repository.Repos, listings ListingCache) *ReconcileService {
	if listings == nil {
		listings = cache.Noop{}
	}
	return &ReconcileService{Repos: repos, cache: listings}
}

// Run walks every contract in ID order and rewrites the job when it
// disagrees. Jobs that closed while their contract stayed live are left
// alone and reported as conflicts. With dryRun nothing is written but the
// report is the same.
func (s *ReconcileService) Run(ctx context.Context, dryRun bool) (report contract.ReconcileReport, err error) {
	defer func() {
		if dryRun || report.Changed == 0 {
			return
		}
		if cerr := s.cache.Invalidate(ctx); cerr != nil {
			slog.Warn("listing cache invalidation failed", "error", cerr)
		}
	}()

	var after uint
	for {
		batch, err := s.Repos.Contract.ListAfter(ctx, after, reconcileBatchSize)
		if err != nil {
			return report, err
		}
		for i := range batch {
			c := &batch[i]
			after = c.ID
			report.Scanned++

			j, err := s.Repos.Job.GetByID(ctx, c.JobID)
			if err != nil {
				if repository.IsNotFound(err) {
					slog.Warn("contract points at a missing job", "contractId", c.ID, "jobId", c.JobID)
					continue
				}
				return report, err
			}
			changed, err := contract.ApplyToJob(c, j)
			if errors.Is(err, contract.ErrJobDiverged) {
				slog.Warn("job diverged from its contract", "contractId", c.ID, "jobId", j.ID,
					"jobStatus", j.Status, "contractStatus", c.Status)
				report.Conflicts = append(report.Conflicts, c.ID)
				continue
			}
			if err != nil {
				return report, err
			}
			if !changed {
				continue
			}
			report.Changed++
			report.JobIDs = append(report.JobIDs, j.ID)
			if dryRun {
				continue
			}
			if err := s.Repos.Job.Update(ctx, j); err != nil {
				return report, err
			}
		}
		if len(batch) < reconcileBatchSize {
			return report, nil
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}
	}
}
