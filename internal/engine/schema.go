// Package engine turns a garment category and a set of body measurements
// into a cutting plan: piece sizes, outlines, instructions, fabric length,
// sewing order and care advice. Every function here is pure; the only shared
// data are the lookup tables below, which are never written after init.
package engine

import (
	"sort"
	"strings"

	"github.com/piwi3910/PatternCut/internal/model"
)

// Garment categories.
const (
	CategoryDress    = "robe"
	CategoryTop      = "haut"
	CategoryTrousers = "pantalon"
	CategorySkirt    = "jupe"
)

// DefaultCategory is used for any category without its own schema.
const DefaultCategory = CategoryDress

var schemas = map[string]model.Schema{
	CategoryDress: {
		Category:     CategoryDress,
		Pieces:       []string{model.PieceFront, model.PieceBack, model.PieceSleeve, model.PieceLining},
		Measurements: []string{model.MeasureBust, model.MeasureWaist, model.MeasureHips, model.MeasureLength},
	},
	CategoryTop: {
		Category:     CategoryTop,
		Pieces:       []string{model.PieceFront, model.PieceBack, model.PieceSleeve, model.PieceCollar},
		Measurements: []string{model.MeasureBust, model.MeasureWaist, model.MeasureLength},
	},
	CategoryTrousers: {
		Category:     CategoryTrousers,
		Pieces:       []string{model.PieceFront, model.PieceBack, model.PieceWaistband},
		Measurements: []string{model.MeasureWaistCirc, model.MeasureHipCirc, model.MeasureLegLength},
	},
	CategorySkirt: {
		Category:     CategorySkirt,
		Pieces:       []string{model.PieceFront, model.PieceBack, model.PieceWaistband},
		Measurements: []string{model.MeasureWaistCirc, model.MeasureHipCirc, model.MeasureSkirtLength},
	},
}

// normalizeKey folds user input for table lookups.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ResolveCategory returns the schema for a category, or the dress schema
// when the category is unknown. The returned schema is a copy.
func ResolveCategory(category string) model.Schema {
	s, ok := schemas[normalizeKey(category)]
	if !ok {
		s = schemas[DefaultCategory]
	}
	return model.Schema{
		Category:     s.Category,
		Pieces:       append([]string(nil), s.Pieces...),
		Measurements: append([]string(nil), s.Measurements...),
	}
}

// IsKnownCategory reports whether the category has its own schema.
func IsKnownCategory(category string) bool {
	_, ok := schemas[normalizeKey(category)]
	return ok
}

// Categories returns all known category names, sorted.
func Categories() []string {
	names := make([]string, 0, len(schemas))
	for name := range schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
