package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/PatternCut/internal/model"
	"github.com/piwi3910/PatternCut/internal/project"
	"github.com/piwi3910/PatternCut/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Serves plan generation, document exports, saved patterns and image uploads over HTTP until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
				if err := project.ValidateAppConfig(cfg); err != nil {
					return fmt.Errorf("invalid port: %w", err)
				}
			}

			logger := newLogger(cfg)
			defer func() { _ = logger.Sync() }()

			store, err := loadStore(cfg)
			if err != nil {
				return err
			}
			logger.Info("starting PatternCut server",
				zap.Int("port", cfg.Port),
				zap.String("upload_dir", cfg.UploadDir),
				zap.String("data_file", cfg.DataFile),
				zap.Int("patterns", store.Len()))

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, store, logger).Run(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", model.DefaultAppConfig().Port, "Port to listen on (overrides config and PORT)")
	return cmd
}

// loadStore reads the saved patterns, or returns an empty store when no data
// file is configured.
func loadStore(cfg model.AppConfig) (*model.PatternStore, error) {
	if cfg.DataFile == "" {
		return model.NewPatternStore(), nil
	}
	store, err := project.LoadPatterns(cfg.DataFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load patterns: %w", err)
	}
	return store, nil
}

// commandContext returns the command's context or a background one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
