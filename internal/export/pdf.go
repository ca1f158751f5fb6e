package export

import (
	"fmt"
	"io"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/PatternCut/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF writes the report to a PDF file: a summary page, one page per
// piece with its outline and instructions, then the marker layout.
func ExportPDF(path string, r Report) error {
	pdf, err := buildPDF(r)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// WritePDF renders the same document as ExportPDF to w.
func WritePDF(w io.Writer, r Report) error {
	pdf, err := buildPDF(r)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func buildPDF(r Report) (*fpdf.Fpdf, error) {
	if len(r.Plan.Pieces) == 0 {
		return nil, fmt.Errorf("no pieces to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	renderSummaryPage(pdf, tr, r)

	for i, piece := range r.Plan.Pieces {
		pdf.AddPage()
		renderPiecePage(pdf, tr, piece, pieceColors[i%len(pieceColors)])
	}

	if len(r.Layout.Placements) > 0 {
		pdf.AddPage()
		renderMarkerPage(pdf, tr, r.Plan, r.Layout)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return pdf, nil
}

// summaryItem is one label/value line of the summary page.
type summaryItem struct {
	label string
	value string
}

// renderSummaryPage draws the plan overview: piece table, fabric, sewing
// order and care advice.
func renderSummaryPage(pdf *fpdf.Fpdf, tr func(string) string, r Report) {
	plan := r.Plan

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, tr(r.DisplayTitle()), "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Piece table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, tr("Pièces"), "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{25, 45, 55, 25, 45}
	headers := []string{"ID", "Pièce", "Dimensions", "Qté", "Surface"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, tr(header), "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, p := range plan.Pieces {
		xPos = marginLeft
		row := []string{
			p.ID,
			p.Name,
			fmt.Sprintf("%.1f x %.1f cm", p.Width, p.Height),
			fmt.Sprintf("%d", p.Quantity),
			fmt.Sprintf("%.0f cm²", p.TotalArea()),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, tr(cell), "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Fabric
	y += 6
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Tissu", "", 0, "L", false, 0, "")
	y += 8

	fr := plan.FabricRequirements
	items := []summaryItem{
		{"Laize", fmt.Sprintf("%.0f %s", fr.Width, fr.Unit)},
		{"Longueur", fmt.Sprintf("%.0f %s", fr.Length, fr.Unit)},
		{"Pièces à couper", fmt.Sprintf("%d", plan.PieceCount())},
	}
	if r.Estimate.FabricWidth > 0 {
		items = append(items, summaryItem{"Achat conseillé", fmt.Sprintf("%.1f m (+%.0f%%)", r.Estimate.MetersWithWaste, r.Estimate.WastePercent)})
		if r.Estimate.PricePerMeter > 0 {
			items = append(items, summaryItem{"Coût estimé", fmt.Sprintf("%.2f", r.Estimate.EstimatedCost)})
		}
	}
	if r.Layout.UsedLength > 0 {
		items = append(items, summaryItem{"Placement", fmt.Sprintf("%.0f cm (%.1f%%)", r.Layout.UsedLength, r.Layout.Efficiency())})
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 6, tr(item.label+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 6, tr(item.value), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 6
	}

	// Sewing order, in the right-hand column
	colX := marginLeft + 205
	sy := marginTop + 18
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(colX, sy)
	pdf.CellFormat(60, 7, tr("Ordre de montage"), "", 0, "L", false, 0, "")
	sy += 9
	pdf.SetFont("Helvetica", "", 9)
	for i, step := range plan.SewingOrder {
		pdf.SetXY(colX, sy)
		pdf.MultiCell(pageWidth-marginRight-colX, 5, tr(fmt.Sprintf("%d. %s", i+1, step)), "", "L", false)
		sy = pdf.GetY() + 1
	}

	sy += 6
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(colX, sy)
	pdf.CellFormat(60, 7, "Entretien", "", 0, "L", false, 0, "")
	sy += 8
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(colX, sy)
	pdf.MultiCell(pageWidth-marginRight-colX, 5, tr(plan.Tips), "", "L", false)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by PatternCut", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderPiecePage draws one piece outline scaled to the page with its
// instructions beside it.
func renderPiecePage(pdf *fpdf.Fpdf, tr func(string) string, piece model.CuttingPiece, col pieceColor) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%s) - %.1f x %.1f cm", piece.Name, piece.ID, piece.Width, piece.Height)
	if piece.Quantity > 1 {
		title += fmt.Sprintf(" x%d", piece.Quantity)
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, tr(title), "", 0, "L", false, 0, "")

	// Outline occupies the left two thirds
	drawWidth := (pageWidth-marginLeft-marginRight)*2/3 - 10
	drawHeight := pageHeight - drawAreaTop - marginBottom - 10
	if piece.Width <= 0 || piece.Height <= 0 {
		return
	}
	scale := math.Min(drawWidth/piece.Width, drawHeight/piece.Height)
	offsetX := marginLeft + (drawWidth-piece.Width*scale)/2
	offsetY := drawAreaTop

	// Bounding box
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.2)
	pdf.SetDashPattern([]float64{1.5, 1.5}, 0)
	pdf.Rect(offsetX, offsetY, piece.Width*scale, piece.Height*scale, "D")
	pdf.SetDashPattern([]float64{}, 0)

	poly := piece.Outline.Flatten(outlineSegments)
	if len(poly) >= 3 {
		points := make([]fpdf.PointType, len(poly))
		for i, p := range poly {
			points[i] = fpdf.PointType{X: offsetX + p.X*scale, Y: offsetY + p.Y*scale}
		}
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.4)
		pdf.Polygon(points, "FD")
	}

	// Dimension annotations
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	widthLabel := formatCm(piece.Width)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(piece.Width*scale-wLabelW)/2, offsetY+piece.Height*scale+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := formatCm(piece.Height)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+piece.Height*scale/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+piece.Height*scale/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()
	pdf.SetTextColor(0, 0, 0)

	// Instructions
	colX := marginLeft + drawWidth + 15
	y := drawAreaTop
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(colX, y)
	pdf.CellFormat(60, 6, "Instructions", "", 0, "L", false, 0, "")
	y += 8
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range piece.Instructions {
		pdf.SetXY(colX, y)
		pdf.MultiCell(pageWidth-marginRight-colX, 5, tr("- "+line), "", "L", false)
		y = pdf.GetY() + 1
	}
}

// renderMarkerPage draws the marker with the roll length running across
// the page.
func renderMarkerPage(pdf *fpdf.Fpdf, tr func(string) string, plan model.CuttingPlan, layout model.MarkerLayout) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Placement sur laize %.0f cm - %.0f cm utilisés (%.1f%%)",
		layout.FabricWidth, layout.UsedLength, layout.Efficiency())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, tr(title), "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - 10
	if layout.UsedLength <= 0 || layout.FabricWidth <= 0 {
		return
	}
	scale := math.Min(drawWidth/layout.UsedLength, drawHeight/layout.FabricWidth)
	offsetX := marginLeft
	offsetY := drawAreaTop

	pdf.SetFillColor(240, 235, 225)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, layout.UsedLength*scale, layout.FabricWidth*scale, "FD")

	for _, p := range layout.Placements {
		col := colorFor(plan, p.PieceID)
		px := offsetX + p.Y*scale
		py := offsetY + p.X*scale
		pw := p.Height * scale
		ph := p.Width * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		if p.Oversize {
			pdf.SetDrawColor(200, 0, 0)
			pdf.SetLineWidth(0.8)
		}
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 12 && ph > 6 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			label := fmt.Sprintf("%s %d", p.Name, p.Copy)
			if p.Rotated {
				label += " R"
			}
			lw := pdf.GetStringWidth(label)
			if lw < pw-2 {
				pdf.SetXY(px+(pw-lw)/2, py+ph/2-2)
				pdf.CellFormat(lw, 4, tr(label), "", 0, "C", false, 0, "")
			}
		}
	}
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
