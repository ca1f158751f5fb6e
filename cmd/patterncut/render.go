package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PatternCut/internal/engine"
	"github.com/piwi3910/PatternCut/internal/project"
)

// renderOptions are the flags of the render command.
type renderOptions struct {
	Category string
	Fabric   string

	documentOptions
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render <plan-file>",
		Short: "Render a saved plan to PDF, DXF, XLSX or labels",
		Long:  "Reads a plan written by generate (JSON or YAML) and renders the requested documents without recomputing it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			defer func() { _ = logger.Sync() }()

			applyEstimateDefaults(cmd, cfg, &opts.documentOptions)
			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}
			if opts.PDF == "" && opts.DXF == "" && opts.XLSX == "" && opts.Labels == "" && opts.GCode == "" {
				return fmt.Errorf("nothing to render: pass at least one of --pdf, --dxf, --xlsx, --labels, --gcode")
			}

			plan, err := project.LoadPlan(args[0])
			if err != nil {
				return fmt.Errorf("failed to load plan: %w", err)
			}
			category := ""
			if opts.Category != "" {
				category = engine.ResolveCategory(opts.Category).Category
			}
			return renderDocuments(plan, category, opts.Fabric, opts.documentOptions, logger)
		},
	}
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Category shown in document titles")
	cmd.Flags().StringVarP(&opts.Fabric, "fabric", "f", "", "Fabric shown in document titles")
	addDocumentFlags(cmd, &opts.documentOptions)
	return cmd
}
