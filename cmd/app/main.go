// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/clubhouse/cmd/app/commands"
	"github.com/allisson/clubhouse/internal/app"
	"github.com/allisson/clubhouse/internal/config"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "clubhouse",
		Usage:   "Token-gated follow authorization service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "demo",
				Usage: "Run the reference follow flow against an in-memory system",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					defer func() { _ = container.Shutdown(ctx) }()

					return commands.RunDemo(ctx, container, commands.DefaultIO().Writer)
				},
			},
			{
				Name:  "batch-demo",
				Usage: "Run a batch follow scenario with a mid-batch token revocation",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "users",
						Aliases: []string{"u"},
						Value:   10,
						Usage:   "Number of member identities to create",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					defer func() { _ = container.Shutdown(ctx) }()

					return commands.RunBatchDemo(ctx, container, commands.DefaultIO().Writer, int(cmd.Int("users")))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
