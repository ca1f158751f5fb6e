// Package importer reads body measurements from CSV, Excel, JSON and YAML
// files. It supports automatic delimiter detection, key/value and wide
// layouts, and case-insensitive measurement name aliases in French and
// English.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/piwi3910/PatternCut/internal/model"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Measurements model.Measurements
	Errors       []string
	Warnings     []string
}

// OK reports whether the import produced no errors.
func (r ImportResult) OK() bool {
	return len(r.Errors) == 0
}

// measurementAliases maps canonical measurement names to their accepted
// aliases (all lowercase).
var measurementAliases = map[string][]string{
	model.MeasureBust:         {"poitrine", "tour de poitrine", "tour_poitrine", "bust", "chest"},
	model.MeasureWaist:        {"taille", "waist"},
	model.MeasureHips:         {"hanches", "hips", "hip"},
	model.MeasureLength:       {"longueur", "length", "garment length", "longueur totale"},
	model.MeasureTopLength:    {"longueur_haut", "longueur haut", "top length"},
	model.MeasureWaistCirc:    {"tour_taille", "tour de taille", "waist circumference", "waist_circumference"},
	model.MeasureHipCirc:      {"tour_hanches", "tour de hanches", "hip circumference", "hip_circumference"},
	model.MeasureLegLength:    {"longueur_jambe", "longueur de jambe", "leg length", "inseam"},
	model.MeasureSkirtLength:  {"longueur_jupe", "longueur de jupe", "skirt length"},
	model.MeasureSleeveLength: {"longueur_manche", "longueur de manche", "sleeve length", "sleeve"},
	model.MeasureWristCirc:    {"tour_poignet", "tour de poignet", "wrist", "wrist circumference"},
}

// keyValueHeaders are first-row cells that mark a two-column header.
var keyValueHeaders = map[string]bool{
	"name": true, "measurement": true, "mesure": true, "nom": true, "key": true,
}

// aliasIndex is the reverse lookup built from measurementAliases.
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]string {
	idx := make(map[string]string)
	for canonical, aliases := range measurementAliases {
		for _, a := range aliases {
			idx[a] = canonical
		}
	}
	return idx
}

// ResolveMeasurementName maps a user-supplied name to its canonical
// measurement name. Matching ignores case, surrounding spaces and a trailing
// unit suffix such as "(cm)".
func ResolveMeasurementName(name string) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSpace(strings.TrimSuffix(n, "(cm)"))
	canonical, ok := aliasIndex[n]
	return canonical, ok
}

// KnownMeasurements returns every canonical measurement name, sorted.
func KnownMeasurements() []string {
	names := make([]string, 0, len(measurementAliases))
	for name := range measurementAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// parseValue parses a measurement value. A decimal comma is accepted when the
// field delimiter is not a comma.
func parseValue(s string, delimiter rune) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, "cm"))
	if delimiter != ',' {
		s = strings.Replace(s, ",", ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportFile imports measurements from a file, choosing the reader by
// extension: .csv/.txt/.tsv, .xlsx/.xlsm, .json, .yaml/.yml.
func ImportFile(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ImportExcel(path)
	case ".json", ".yaml", ".yml":
		return ImportStructured(path)
	case ".csv", ".txt", ".tsv":
		return ImportCSV(path)
	default:
		return ImportResult{Errors: []string{fmt.Sprintf("Unsupported file type %q", filepath.Ext(path))}}
	}
}

// ImportCSV imports measurements from a CSV file.
// It automatically detects the delimiter and the layout.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	res := ImportCSVFromReader(bytes.NewReader(data), delimiter)
	res.Warnings = append(warnings, res.Warnings...)
	return res
}

// ImportCSVFromReader imports measurements from a CSV reader with a specific
// delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", delimiter)
}

// ImportExcel imports measurements from the first sheet of an Excel file.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", ';')
}

// ImportStructured imports a flat name: value mapping from a JSON or YAML
// file. YAML is a superset of JSON, so one decoder serves both.
func ImportStructured(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}
	return ImportStructuredBytes(data)
}

// ImportStructuredBytes decodes a JSON or YAML mapping of measurements.
func ImportStructuredBytes(data []byte) ImportResult {
	result := ImportResult{}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot parse measurements: %v", err))
		return result
	}

	// Sorted for stable error and warning order
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result.Measurements = model.Measurements{}
	for _, k := range keys {
		var value float64
		switch v := raw[k].(type) {
		case int:
			value = float64(v)
		case float64:
			value = v
		case string:
			parsed, err := parseValue(v, ';')
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid value '%s'", k, v))
				continue
			}
			value = parsed
		default:
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Value must be a number", k))
			continue
		}
		addMeasurement(&result, k, value, k)
	}
	return result
}

// addMeasurement stores a value under its canonical name, recording
// warnings for unknown names, non-positive values and duplicates.
func addMeasurement(result *ImportResult, name string, value float64, rowLabel string) {
	canonical, ok := ResolveMeasurementName(name)
	if !ok {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: Unknown measurement '%s', skipped", rowLabel, name))
		return
	}
	if value <= 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: Value for '%s' must be positive, skipped", rowLabel, canonical))
		return
	}
	if _, dup := result.Measurements[canonical]; dup {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s: Duplicate measurement '%s', last value wins", rowLabel, canonical))
	}
	result.Measurements[canonical] = value
}

// isWideHeader reports whether a row lists measurement names as columns.
func isWideHeader(row []string) bool {
	known := 0
	for _, cell := range row {
		if _, ok := ResolveMeasurementName(cell); ok {
			known++
		}
	}
	return known >= 2
}

// importFromRows is the shared import logic for CSV and Excel data. Two
// layouts are accepted: one "name,value" pair per row, or a header row of
// measurement names followed by a single row of values.
func importFromRows(rows [][]string, rowPrefix string, delimiter rune) ImportResult {
	result := ImportResult{Measurements: model.Measurements{}}

	// Drop leading blank rows
	for len(rows) > 0 && isEmptyRow(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	if isWideHeader(rows[0]) {
		importWide(&result, rows, rowPrefix, delimiter)
	} else {
		importKeyValue(&result, rows, rowPrefix, delimiter)
	}

	if len(result.Measurements) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No measurements found")
	}
	return result
}

func importWide(result *ImportResult, rows [][]string, rowPrefix string, delimiter rune) {
	header := rows[0]
	var values []string
	valueLine := 0
	for i := 1; i < len(rows); i++ {
		if isEmptyRow(rows[i]) {
			continue
		}
		if values == nil {
			values = rows[i]
			valueLine = i + 1
			continue
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s %d: Extra data row ignored", rowPrefix, i+1))
	}
	if values == nil {
		result.Errors = append(result.Errors, "Header row found but no values")
		return
	}

	for col, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		raw := getCell(values, col)
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, valueLine)
		if raw == "" {
			continue
		}
		v, err := parseValue(raw, delimiter)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid value '%s' for '%s'", rowLabel, raw, name))
			continue
		}
		addMeasurement(result, name, v, rowLabel)
	}
}

func importKeyValue(result *ImportResult, rows [][]string, rowPrefix string, delimiter rune) {
	startRow := 0
	if keyValueHeaders[strings.ToLower(getCell(rows[0], 0))] {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)

		name := getCell(row, 0)
		raw := getCell(row, 1)
		if name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Missing measurement name", rowLabel))
			continue
		}
		if raw == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Missing value for '%s'", rowLabel, name))
			continue
		}
		v, err := parseValue(raw, delimiter)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid value '%s'", rowLabel, raw))
			continue
		}
		addMeasurement(result, name, v, rowLabel)
	}
}
