package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/PatternCut/internal/model"
	"github.com/piwi3910/PatternCut/internal/project"
)

func newBackupCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore the configuration and saved patterns",
	}

	exportCmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the configuration and all saved patterns to a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			defer func() { _ = logger.Sync() }()

			store, err := loadStore(cfg)
			if err != nil {
				return err
			}
			if err := project.ExportAllData(args[0], cfg, store); err != nil {
				return err
			}
			logger.Info("backup written", zap.String("path", args[0]), zap.Int("patterns", store.Len()))
			return nil
		},
	}

	restoreCmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore the configuration and saved patterns from a backup file",
		Long:  "Writes the backed-up configuration to the config file and the backed-up patterns to the configured data file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.ValidateAppConfig(backup.Config); err != nil {
				return fmt.Errorf("backup holds an invalid configuration: %w", err)
			}
			logger := newLogger(backup.Config)
			defer func() { _ = logger.Sync() }()

			configPath := root.resolvedConfigPath()
			if err := project.SaveAppConfig(configPath, backup.Config); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			dataFile := backup.Config.DataFile
			if dataFile == "" {
				dataFile = project.DefaultPatternPath()
			}
			if err := project.SavePatterns(dataFile, model.NewPatternStore(backup.Patterns...)); err != nil {
				return err
			}
			logger.Info("backup restored",
				zap.String("config", configPath),
				zap.String("data_file", dataFile),
				zap.Int("patterns", len(backup.Patterns)))
			return nil
		},
	}

	cmd.AddCommand(exportCmd, restoreCmd)
	return cmd
}
