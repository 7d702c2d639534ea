package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/linskybing/freelance-market/internal/domain/contract"
)

type AuditCleaner interface {
	CleanupOldLogs(ctx context.Context, days int) (int64, error)
}

type Reconciler interface {
	Run(ctx context.Context, dryRun bool) (contract.ReconcileReport, error)
}

// StartCleanupTask prunes audit entries older than retentionDays on start and
// then once a day until ctx is cancelled.
func StartCleanupTask(ctx context.Context, cleaner AuditCleaner, retentionDays int) {
	if retentionDays <= 0 {
		slog.Info("audit cleanup disabled")
		return
	}
	slog.Info("starting audit cleanup task", "retentionDays", retentionDays)
	go every(ctx, 24*time.Hour, func() {
		removed, err := cleaner.CleanupOldLogs(ctx, retentionDays)
		if err != nil {
			slog.Error("audit cleanup failed", "error", err)
			return
		}
		slog.Info("audit cleanup completed", "removed", removed)
	})
}

// StartReconcileTask aligns job status with contract state on every tick.
func StartReconcileTask(ctx context.Context, r Reconciler, interval time.Duration) {
	if interval <= 0 {
		slog.Info("contract reconciliation disabled")
		return
	}
	slog.Info("starting contract reconciliation task", "interval", interval.String())
	go every(ctx, interval, func() {
		report, err := r.Run(ctx, false)
		if err != nil {
			slog.Error("contract reconciliation failed", "error", err, "scanned", report.Scanned)
			return
		}
		if report.Changed > 0 {
			slog.Info("contract reconciliation updated jobs", "scanned", report.Scanned, "changed", report.Changed, "jobIds", report.JobIDs)
		}
	})
}

// every runs fn immediately and then on each tick.
func every(ctx context.Context, interval time.Duration, fn func()) {
	fn()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn()
		}
	}
}
