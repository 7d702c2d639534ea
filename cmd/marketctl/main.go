package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/linskybing/freelance-market/cmd/marketctl/commands"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:  "marketctl",
		Usage: "maintenance commands for the freelance market database",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "create or update every table",
				Action: commands.MigrateAction,
			},
			{
				Name:  "reconcile",
				Usage: "align job status with contract state",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "report the jobs that would change without writing",
					},
				},
				Action: commands.ReconcileAction,
			},
			{
				Name:  "seed-admin",
				Usage: "create the admin account, or reset its password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Usage:    "admin email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "admin password, at least 8 characters",
						Sources:  cli.EnvVars("ADMIN_PASSWORD"),
						Required: true,
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "display name",
					},
				},
				Action: commands.SeedAdminAction,
			},
			{
				Name:  "prune-audit",
				Usage: "delete audit entries past the retention window",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "days",
						Usage: "retention in days, defaults to AUDIT_RETENTION_DAYS",
					},
				},
				Action: commands.PruneAuditAction,
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
