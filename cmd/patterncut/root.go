package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/PatternCut/internal/logging"
	"github.com/piwi3910/PatternCut/internal/model"
	"github.com/piwi3910/PatternCut/internal/project"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "patterncut",
		Short:         "Garment cutting-plan generator",
		Long:          "PatternCut turns a garment category and body measurements into a cutting plan: piece sizes and outlines, cutting instructions, fabric length, sewing order and care advice.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (JSON or YAML, default ~/.patterncut/config.json)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: console or json (overrides config)")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newRenderCmd(opts),
		newCategoriesCmd(),
		newServeCmd(opts),
		newBackupCmd(opts),
	)
	return cmd
}

// resolvedConfigPath returns the config file in use.
func (o *rootOptions) resolvedConfigPath() string {
	if o.configPath != "" {
		return o.configPath
	}
	return project.DefaultConfigPath()
}

// loadConfig reads the config file and environment, then applies the
// logging flags.
func (o *rootOptions) loadConfig() (model.AppConfig, error) {
	cfg, err := project.LoadAppConfig(o.resolvedConfigPath())
	if err != nil {
		return model.AppConfig{}, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}
	if err := project.ValidateAppConfig(cfg); err != nil {
		return model.AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg model.AppConfig) *zap.Logger {
	return logging.New(cfg.LogLevel, cfg.LogFormat)
}
