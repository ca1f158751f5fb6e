package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/piwi3910/PatternCut/internal/engine"
	"github.com/piwi3910/PatternCut/internal/export"
	"github.com/piwi3910/PatternCut/internal/gcode"
	"github.com/piwi3910/PatternCut/internal/importer"
	"github.com/piwi3910/PatternCut/internal/model"
	"github.com/piwi3910/PatternCut/internal/project"
)

// generateOptions are the flags of the generate command.
type generateOptions struct {
	Category         string
	Subcategory      string
	Measures         []string
	MeasurementsFile string
	Fabric           string
	Format           string `validate:"oneof=json yaml yml"`
	Out              string

	documentOptions
}

// documentOptions select the rendered files and the estimate parameters.
type documentOptions struct {
	PDF    string
	DXF    string
	XLSX   string
	Labels string
	GCode  string
	Cutter string
	Width  float64 `validate:"gte=0"`
	Waste  float64 `validate:"gte=0,lte=100"`
	Price  float64 `validate:"gte=0"`
}

var validate = validator.New()

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a cutting plan from measurements",
		Long:  "Builds the cutting plan for a garment category. Measurements come from --measure name=value flags and/or a CSV, XLSX, JSON or YAML file; flags win over the file. The plan is printed as JSON or YAML and can also be rendered to PDF, DXF, XLSX and labels.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Garment category (robe, haut, pantalon, jupe)")
	cmd.Flags().StringVar(&opts.Subcategory, "subcategory", "", "Garment subcategory (informational)")
	cmd.Flags().StringArrayVarP(&opts.Measures, "measure", "m", nil, "Measurement as name=value in cm (repeatable)")
	cmd.Flags().StringVar(&opts.MeasurementsFile, "measurements", "", "Measurements file (.csv, .xlsx, .json, .yaml)")
	cmd.Flags().StringVarP(&opts.Fabric, "fabric", "f", "", "Fabric type (default from config)")
	cmd.Flags().StringVar(&opts.Format, "format", project.FormatJSON, "Plan output format: json or yaml")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write the plan to this file instead of stdout")
	addDocumentFlags(cmd, &opts.documentOptions)
	return cmd
}

func addDocumentFlags(cmd *cobra.Command, opts *documentOptions) {
	cmd.Flags().StringVar(&opts.PDF, "pdf", "", "Write a printable PDF cutting sheet")
	cmd.Flags().StringVar(&opts.DXF, "dxf", "", "Write piece outlines on the marker as DXF")
	cmd.Flags().StringVar(&opts.XLSX, "xlsx", "", "Write the cut list as an Excel workbook")
	cmd.Flags().StringVar(&opts.Labels, "labels", "", "Write QR-coded piece labels as PDF")
	cmd.Flags().StringVar(&opts.GCode, "gcode", "", "Write a cutting-table G-code program for the marker")
	cmd.Flags().StringVar(&opts.Cutter, "cutter", "", "Cutting table profile: "+strings.Join(gcode.ProfileNames(), ", ")+" (default from config)")
	cmd.Flags().Float64Var(&opts.Width, "width", model.FabricWidth, "Fabric roll width in cm for the marker layout")
	cmd.Flags().Float64Var(&opts.Waste, "waste", 0, "Waste percentage for the purchase estimate (default from config)")
	cmd.Flags().Float64Var(&opts.Price, "price", 0, "Price per metre for the purchase estimate (default from config)")
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	if !cmd.Flags().Changed("fabric") {
		opts.Fabric = cfg.DefaultFabric
	}
	applyEstimateDefaults(cmd, cfg, &opts.documentOptions)
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	measurements, err := collectMeasurements(opts.MeasurementsFile, opts.Measures, logger)
	if err != nil {
		return err
	}
	if missing := engine.MissingMeasurements(opts.Category, measurements); len(missing) > 0 {
		logger.Warn("measurements missing, defaults will be used",
			zap.Strings("missing", missing))
	}

	plan := engine.GenerateCuttingPlan(opts.Category, opts.Subcategory, measurements, opts.Fabric)

	data, err := project.MarshalPlan(plan, opts.Format)
	if err != nil {
		return err
	}
	if opts.Out != "" {
		if err := writeFile(opts.Out, data); err != nil {
			return fmt.Errorf("failed to write plan: %w", err)
		}
	} else if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	category := engine.ResolveCategory(opts.Category).Category
	return renderDocuments(plan, category, opts.Fabric, opts.documentOptions, logger)
}

// applyEstimateDefaults fills the waste and price flags from the config when
// they were not given.
func applyEstimateDefaults(cmd *cobra.Command, cfg model.AppConfig, opts *documentOptions) {
	if !cmd.Flags().Changed("waste") {
		opts.Waste = cfg.WastePercent
	}
	if !cmd.Flags().Changed("price") {
		opts.Price = cfg.PricePerMeter
	}
	if !cmd.Flags().Changed("cutter") {
		opts.Cutter = cfg.CutterProfile
	}
}

// collectMeasurements merges the measurement file with the --measure flags.
// Flags override file values.
func collectMeasurements(file string, flags []string, logger *zap.Logger) (model.Measurements, error) {
	measurements := model.Measurements{}

	if file != "" {
		result := importer.ImportFile(file)
		for _, w := range result.Warnings {
			logger.Warn("measurement import", zap.String("file", file), zap.String("warning", w))
		}
		if !result.OK() {
			return nil, fmt.Errorf("failed to import %s: %s", file, strings.Join(result.Errors, "; "))
		}
		for k, v := range result.Measurements {
			measurements[k] = v
		}
	}

	parsed, err := parseMeasureFlags(flags)
	if err != nil {
		return nil, err
	}
	for k, v := range parsed {
		measurements[k] = v
	}
	return measurements, nil
}

// parseMeasureFlags parses name=value pairs. Names are resolved through the
// importer aliases; unknown names are kept as given.
func parseMeasureFlags(flags []string) (model.Measurements, error) {
	m := model.Measurements{}
	for _, f := range flags {
		name, raw, ok := strings.Cut(f, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid measurement %q: expected name=value", f)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(strings.Replace(raw, ",", ".", 1)), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for measurement %q: %w", name, err)
		}
		if canonical, known := importer.ResolveMeasurementName(name); known {
			name = canonical
		}
		m[name] = value
	}
	return m, nil
}

// renderDocuments writes every requested document and logs a summary of the
// plan.
func renderDocuments(plan model.CuttingPlan, category, fabric string, opts documentOptions, logger *zap.Logger) error {
	layout := engine.LayoutMarker(plan.Pieces, opts.Width)
	estimate := model.CalculatePurchaseEstimate(plan.Pieces, plan.FabricRequirements.Width, opts.Waste, opts.Price)
	report := export.Report{
		Category: category,
		Fabric:   fabric,
		Plan:     plan,
		Layout:   layout,
		Estimate: estimate,
	}

	outputs := []struct {
		name  string
		path  string
		write func(string, export.Report) error
	}{
		{"pdf", opts.PDF, export.ExportPDF},
		{"dxf", opts.DXF, export.ExportDXF},
		{"xlsx", opts.XLSX, export.ExportXLSX},
		{"labels", opts.Labels, export.ExportLabels},
		{"gcode", opts.GCode, func(path string, r export.Report) error {
			return exportGCode(path, r, opts.Cutter, logger)
		}},
	}
	// Documents render in parallel; exporters must not modify the report.
	var g errgroup.Group
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		out := out
		g.Go(func() error {
			if err := out.write(out.path, report); err != nil {
				return fmt.Errorf("failed to export %s: %w", out.name, err)
			}
			logger.Info("document written", zap.String("format", out.name), zap.String("path", out.path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if layout.HasOversize() {
		logger.Warn("some pieces do not fit the fabric width", zap.Float64("width", layout.FabricWidth))
	}
	logger.Info("cutting plan generated",
		zap.String("category", category),
		zap.String("fabric", fabric),
		zap.Int("pieces", plan.PieceCount()),
		zap.Float64("fabric_length_cm", plan.FabricRequirements.Length),
		zap.Float64("marker_length_cm", layout.UsedLength),
		zap.Float64("marker_efficiency", layout.Efficiency()),
		zap.Float64("meters_to_buy", estimate.MetersWithWaste),
		zap.Float64("estimated_cost", estimate.EstimatedCost))
	return nil
}

// exportGCode writes the cutter program and logs its cut and travel lengths.
func exportGCode(path string, r export.Report, profile string, logger *zap.Logger) error {
	settings := gcode.DefaultSettings()
	if profile != "" {
		settings.Profile = profile
	}
	if err := export.ExportGCode(path, r, settings); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	stats := gcode.Summarize(gcode.ParseGCode(string(data)))
	logger.Info("cutter program",
		zap.String("profile", gcode.GetProfile(settings.Profile).Name),
		zap.Int("cuts", stats.Cuts),
		zap.Float64("cut_length_mm", stats.CutLength),
		zap.Float64("travel_mm", stats.RapidLength))
	if r.Layout.FabricWidth > 0 && !stats.WithinRoll(r.Layout.FabricWidth*10) {
		logger.Warn("cutter program leaves the roll", zap.Float64("max_x_mm", stats.MaxX))
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
