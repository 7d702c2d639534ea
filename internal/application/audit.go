package application

import (
	"context"
	"time"

	"github.com/linskybing/freelance-market/internal/domain/audit"
	"github.com/linskybing/freelance-market/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
	now   func() time.Time
}

func NewAuditService(repos *repository.Repos, now func() time.Time) *AuditService {
	return &AuditService{
		Repos: repos,
		now:   now,
	}
}

func (s *AuditService) QueryAuditLogs(ctx context.Context, params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(ctx, params)
}

// CleanupOldLogs deletes entries older than days and returns how many went.
func (s *AuditService) CleanupOldLogs(ctx context.Context, days int) (int64, error) {
	cutoff := s.now().AddDate(0, 0, -days)
	return s.Repos.Audit.DeleteOlderThan(ctx, cutoff)
}
