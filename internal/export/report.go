// Package export renders cutting plans to printable and CAD-friendly files:
// PDF sheets, QR-coded piece labels, DXF outlines and XLSX cut lists.
package export

import (
	"fmt"
	"strings"

	"github.com/piwi3910/PatternCut/internal/model"
)

// Report bundles a cutting plan with the context printed alongside it.
type Report struct {
	Title    string
	Category string
	Fabric   string
	Plan     model.CuttingPlan
	Layout   model.MarkerLayout
	Estimate model.PurchaseEstimate
}

// DisplayTitle returns the report title, deriving one from the category and
// fabric when none is set.
func (r Report) DisplayTitle() string {
	if strings.TrimSpace(r.Title) != "" {
		return r.Title
	}
	parts := []string{"Plan de coupe"}
	if r.Category != "" {
		parts = append(parts, r.Category)
	}
	if r.Fabric != "" {
		parts = append(parts, r.Fabric)
	}
	return strings.Join(parts, " - ")
}

// pieceColor is an RGB fill used for a piece in drawings.
type pieceColor struct {
	R, G, B int
}

var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// colorFor returns a stable color for a piece ID within a plan.
func colorFor(plan model.CuttingPlan, pieceID string) pieceColor {
	for i, p := range plan.Pieces {
		if p.ID == pieceID {
			return pieceColors[i%len(pieceColors)]
		}
	}
	return pieceColors[0]
}

// outlineSegments is the curve resolution used when flattening outlines.
const outlineSegments = 16

func formatCm(v float64) string {
	return fmt.Sprintf("%.1f cm", v)
}
