package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX workbook.
const (
	SheetPieces   = "Pièces"
	SheetSewing   = "Montage"
	SheetSummary  = "Résumé"
	defaultSheet1 = "Sheet1"
)

// ExportXLSX writes the cut list to an Excel workbook with a pieces sheet,
// a sewing order sheet and a summary sheet.
func ExportXLSX(path string, r Report) error {
	f, err := buildWorkbook(r)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// WriteXLSX renders the same workbook as ExportXLSX to w.
func WriteXLSX(w io.Writer, r Report) error {
	f, err := buildWorkbook(r)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func buildWorkbook(r Report) (*excelize.File, error) {
	if len(r.Plan.Pieces) == 0 {
		return nil, fmt.Errorf("no pieces to export")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet1, SheetPieces); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, name := range []string{SheetSewing, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	// Pieces
	rows := [][]interface{}{{"ID", "Pièce", "Largeur (cm)", "Hauteur (cm)", "Quantité", "Surface (cm²)", "Instructions", "SVG"}}
	for _, p := range r.Plan.Pieces {
		rows = append(rows, []interface{}{
			p.ID, p.Name, p.Width, p.Height, p.Quantity, p.TotalArea(),
			strings.Join(p.Instructions, "\n"), p.SVG,
		})
	}
	if err := writeRows(f, SheetPieces, rows, bold); err != nil {
		f.Close()
		return nil, err
	}
	_ = f.SetColWidth(SheetPieces, "B", "B", 14)
	_ = f.SetColWidth(SheetPieces, "G", "G", 48)

	// Sewing order
	rows = [][]interface{}{{"Étape", "Description"}}
	for i, step := range r.Plan.SewingOrder {
		rows = append(rows, []interface{}{i + 1, step})
	}
	if err := writeRows(f, SheetSewing, rows, bold); err != nil {
		f.Close()
		return nil, err
	}
	_ = f.SetColWidth(SheetSewing, "B", "B", 40)

	// Summary
	fr := r.Plan.FabricRequirements
	rows = [][]interface{}{
		{"Champ", "Valeur"},
		{"Titre", r.DisplayTitle()},
		{"Catégorie", r.Category},
		{"Tissu", r.Fabric},
		{"Laize (" + fr.Unit + ")", fr.Width},
		{"Longueur (" + fr.Unit + ")", fr.Length},
		{"Pièces à couper", r.Plan.PieceCount()},
		{"Entretien", r.Plan.Tips},
	}
	if r.Estimate.FabricWidth > 0 {
		rows = append(rows,
			[]interface{}{"Mètres exacts", r.Estimate.MetersExact},
			[]interface{}{"Mètres conseillés", r.Estimate.MetersWithWaste},
			[]interface{}{"Coût estimé", r.Estimate.EstimatedCost},
		)
	}
	if r.Layout.UsedLength > 0 {
		rows = append(rows,
			[]interface{}{"Longueur placement (cm)", r.Layout.UsedLength},
			[]interface{}{"Efficacité placement (%)", r.Layout.Efficiency()},
		)
	}
	if err := writeRows(f, SheetSummary, rows, bold); err != nil {
		f.Close()
		return nil, err
	}
	_ = f.SetColWidth(SheetSummary, "A", "B", 28)

	return f, nil
}

// writeRows fills a sheet from A1, making the first row bold.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("failed to style %s header: %w", sheet, err)
		}
	}
	return nil
}
