package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/config"
	"github.com/linskybing/freelance-market/internal/config/db"
	"github.com/linskybing/freelance-market/internal/repository"
	"github.com/linskybing/freelance-market/pkg/logger"
	"github.com/urfave/cli/v3"
)

// connect loads the environment and opens the database. Tests replace it.
var connect = func() (*application.Services, error) {
	config.LoadConfig()
	logger.New(logger.Config{
		Level:  logger.ParseLevel(config.LogLevel),
		Format: "text",
	})
	if err := db.Init(); err != nil {
		return nil, err
	}
	repos := repository.NewRepositories(db.DB)
	return application.New(repos, application.Deps{
		ReservedAdminEmail: config.ReservedAdminEmail,
	}), nil
}

var migrate = func() error {
	config.LoadConfig()
	if err := db.Init(); err != nil {
		return err
	}
	return db.Migrate(db.DB)
}

func MigrateAction(ctx context.Context, cmd *cli.Command) error {
	if err := migrate(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, "migration complete")
	return nil
}

func ReconcileAction(ctx context.Context, cmd *cli.Command) error {
	svc, err := connect()
	if err != nil {
		return err
	}
	dryRun := cmd.Bool("dry-run")

	report, err := svc.Reconcile.Run(ctx, dryRun)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	out := cmd.Root().Writer
	verb := "updated"
	if dryRun {
		verb = "would update"
	}
	fmt.Fprintf(out, "scanned %d contracts, %s %d jobs\n", report.Scanned, verb, report.Changed)
	for _, id := range report.JobIDs {
		fmt.Fprintf(out, "  job %d\n", id)
	}
	for _, id := range report.Conflicts {
		fmt.Fprintf(out, "  contract %d conflicts with its closed job\n", id)
	}
	return nil
}

func SeedAdminAction(ctx context.Context, cmd *cli.Command) error {
	svc, err := connect()
	if err != nil {
		return err
	}
	acct, created, err := svc.Account.EnsureAdmin(ctx, cmd.String("email"), cmd.String("password"), cmd.String("name"))
	if err != nil {
		return err
	}
	p := acct.Base()
	if created {
		fmt.Fprintf(cmd.Root().Writer, "created admin %s (id %d)\n", p.Email, p.ID)
	} else {
		fmt.Fprintf(cmd.Root().Writer, "reset admin %s (id %d)\n", p.Email, p.ID)
	}
	slog.Info("admin seeded", "email", p.Email, "created", created)
	return nil
}

func PruneAuditAction(ctx context.Context, cmd *cli.Command) error {
	svc, err := connect()
	if err != nil {
		return err
	}
	days := int(cmd.Int("days"))
	if days <= 0 {
		days = config.AuditRetentionDays
	}
	removed, err := svc.Audit.CleanupOldLogs(ctx, days)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.Root().Writer, "removed %d audit entries older than %d days\n", removed, days)
	return nil
}
