package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each piece label's QR code.
type LabelInfo struct {
	PieceID  string  `json:"id"`
	Name     string  `json:"name"`
	Copy     int     `json:"copy"`
	Copies   int     `json:"copies"`
	Width    float64 `json:"width_cm"`
	Height   float64 `json:"height_cm"`
	Fabric   string  `json:"fabric,omitempty"`
	Category string  `json:"category,omitempty"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelPageWidth  = 215.9 // US Letter width in mm
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per piece copy, to
// pin onto the cut fabric. Labels are laid out on a standard label sheet
// (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, r Report) error {
	pdf, err := buildLabels(r)
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// WriteLabels renders the same document as ExportLabels to w.
func WriteLabels(w io.Writer, r Report) error {
	pdf, err := buildLabels(r)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func buildLabels(r Report) (*fpdf.Fpdf, error) {
	labels := CollectLabelInfos(r)
	if len(labels) == 0 {
		return nil, fmt.Errorf("no pieces to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, tr, x, y, label); err != nil {
			return nil, fmt.Errorf("failed to render label for %q: %w", label.Name, err)
		}
	}
	return pdf, nil
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d", info.PieceID, info.Copy)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Piece name (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	name := info.Name
	if info.Copies > 1 {
		name = fmt.Sprintf("%s %d/%d", info.Name, info.Copy, info.Copies)
	}
	name = fitText(name, textW, func(s string) float64 { return pdf.GetStringWidth(tr(s)) })
	pdf.CellFormat(textW, 4.5, tr(name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.1f x %.1f cm", info.Width, info.Height)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, tr(info.PieceID+" "+info.Fabric), "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos expands the plan into one label per piece copy, in plan
// order.
func CollectLabelInfos(r Report) []LabelInfo {
	var labels []LabelInfo
	for _, p := range r.Plan.Pieces {
		for c := 1; c <= p.Quantity; c++ {
			labels = append(labels, LabelInfo{
				PieceID:  p.ID,
				Name:     p.Name,
				Copy:     c,
				Copies:   p.Quantity,
				Width:    p.Width,
				Height:   p.Height,
				Fabric:   r.Fabric,
				Category: r.Category,
			})
		}
	}
	return labels
}

// fitText shortens s rune by rune until it plus an ellipsis fits in maxW.
func fitText(s string, maxW float64, width func(string) float64) string {
	if width(s) <= maxW {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && width(string(runes)+"...") > maxW {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
