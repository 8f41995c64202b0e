package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/api"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/config"
	"github.com/BachelorAccenture/datadrevet-staffing-web/internal/graph"
)

var cfg *config.Config

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:   "staffing",
		Short: "Consultant search and staffing management",
		Long:  "Staffing is a terminal client for the consultant staffing backend: search consultants by skill, role, company, and availability; manage consultant records and project assignments; and explore the staffing graph.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		searchCmd(),
		listCmd(),
		getCmd(),
		addCmd(),
		editCmd(),
		deleteCmd(),
		graphCmd(),
		healthCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil && cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg != nil && cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func newClient(logger *slog.Logger) *api.Client {
	return api.New(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		logger,
	)
}

func newExplorer(logger *slog.Logger) (*graph.Explorer, error) {
	return graph.NewExplorer(
		cfg.Neo4j.URI,
		cfg.Neo4j.Username,
		cfg.Neo4j.Password,
		logger,
	)
}
