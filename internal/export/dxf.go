package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/piwi3910/PatternCut/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names.
const (
	LayerRoll    = "ROLL"
	pieceSpacing = 5.0 // cm between pieces when no marker layout is given
)

// ExportDXF writes every piece copy as closed line outlines, one layer per
// piece, positioned as in the report's marker layout. Without a layout the
// pieces are lined up along the roll. Coordinates are in cm with the roll
// running along -Y so the drawing reads the same way as the PDF.
func ExportDXF(path string, r Report) error {
	if len(r.Plan.Pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	d := dxf.NewDrawing()
	if err := drawPlan(d, r); err != nil {
		return err
	}
	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// WriteDXF renders the same drawing as ExportDXF to w.
func WriteDXF(w io.Writer, r Report) error {
	tmp, err := os.CreateTemp("", "patterncut-*.dxf")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	name := tmp.Name()
	tmp.Close()
	defer os.Remove(name)

	if err := ExportDXF(name, r); err != nil {
		return err
	}
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("failed to reopen DXF: %w", err)
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}

// PieceLayerName returns the DXF layer holding a piece's outlines.
func PieceLayerName(p model.CuttingPiece) string {
	return strings.ToUpper(strings.ReplaceAll(p.ID, "-", "_")) + "_" + strings.ToUpper(p.Name)
}

func drawPlan(d *drawing.Drawing, r Report) error {
	layout := r.Layout
	if len(layout.Placements) == 0 {
		layout = inlineLayout(r.Plan.Pieces)
	}

	// Roll boundary
	if _, err := d.AddLayer(LayerRoll, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", LayerRoll, err)
	}
	roll := model.Outline{
		{X: 0, Y: 0},
		{X: layout.FabricWidth, Y: 0},
		{X: layout.FabricWidth, Y: layout.UsedLength},
		{X: 0, Y: layout.UsedLength},
	}
	if err := drawPolygon(d, roll); err != nil {
		return err
	}

	byID := make(map[string]model.CuttingPiece, len(r.Plan.Pieces))
	for _, p := range r.Plan.Pieces {
		byID[p.ID] = p
		if _, err := d.AddLayer(PieceLayerName(p), dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer for %s: %w", p.ID, err)
		}
	}

	for _, pl := range layout.Placements {
		piece, ok := byID[pl.PieceID]
		if !ok {
			continue
		}
		if err := d.ChangeLayer(PieceLayerName(piece)); err != nil {
			return fmt.Errorf("failed to select layer for %s: %w", piece.ID, err)
		}
		poly := pl.PlaceOutline(piece.Outline.Flatten(outlineSegments), piece.Height)
		if err := drawPolygon(d, poly); err != nil {
			return err
		}
	}
	return nil
}

// drawPolygon emits one LINE per edge, closing the shape. Y is negated.
func drawPolygon(d *drawing.Drawing, poly model.Outline) error {
	n := len(poly)
	if n < 2 {
		return nil
	}
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		if _, err := d.Line(a.X, -a.Y, 0, b.X, -b.Y, 0); err != nil {
			return fmt.Errorf("failed to add line: %w", err)
		}
	}
	return nil
}

// inlineLayout stacks every copy along the roll without packing.
func inlineLayout(pieces []model.CuttingPiece) model.MarkerLayout {
	layout := model.MarkerLayout{}
	y := 0.0
	for _, p := range pieces {
		for c := 1; c <= p.Quantity; c++ {
			layout.Placements = append(layout.Placements, model.MarkerPlacement{
				PieceID: p.ID, Name: p.Name, Copy: c,
				X: 0, Y: y, Width: p.Width, Height: p.Height,
			})
			if p.Width > layout.FabricWidth {
				layout.FabricWidth = p.Width
			}
			y += p.Height + pieceSpacing
		}
	}
	if y > 0 {
		layout.UsedLength = y - pieceSpacing
	}
	return layout
}
