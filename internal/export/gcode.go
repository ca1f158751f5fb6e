package export

import (
	"fmt"
	"io"
	"os"

	"github.com/piwi3910/PatternCut/internal/gcode"
)

// ExportGCode writes a cutting-table program for the report's marker layout.
// Without a layout the pieces are lined up along the roll as in ExportDXF.
func ExportGCode(path string, r Report, settings gcode.Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create G-code file: %w", err)
	}
	if err := WriteGCode(f, r, settings); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteGCode renders the same program as ExportGCode to w.
func WriteGCode(w io.Writer, r Report, settings gcode.Settings) error {
	if len(r.Plan.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}
	layout := r.Layout
	if len(layout.Placements) == 0 {
		layout = inlineLayout(r.Plan.Pieces)
	}
	code, err := gcode.New(settings).Generate(r.Plan, layout)
	if err != nil {
		return fmt.Errorf("failed to generate G-code: %w", err)
	}
	_, err = io.WriteString(w, code)
	return err
}
