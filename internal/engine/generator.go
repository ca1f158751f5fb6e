package engine

import (
	"fmt"

	"github.com/piwi3910/PatternCut/internal/model"
)

// GenerateCuttingPlan builds the cutting plan for a garment. The result
// depends only on the arguments. subcategory is accepted for future
// variants and does not change the output yet.
func GenerateCuttingPlan(category, subcategory string, m model.Measurements, fabric string) model.CuttingPlan {
	schema := ResolveCategory(category)

	pieces := make([]model.CuttingPiece, 0, len(schema.Pieces))
	for i, name := range schema.Pieces {
		dims := PieceDimensions(name, m, Ease)
		outline := PieceOutline(name, dims.Width, dims.Height)
		pieces = append(pieces, model.CuttingPiece{
			ID:           fmt.Sprintf("piece-%d", i),
			Name:         name,
			Width:        dims.Width,
			Height:       dims.Height,
			Quantity:     CutQuantity(name),
			Instructions: PieceInstructions(name, fabric),
			Outline:      outline,
			SVG:          outline.SVG(),
		})
	}

	return model.CuttingPlan{
		Pieces:             pieces,
		FabricRequirements: model.EstimateFabric(pieces),
		SewingOrder:        SewingOrder(category),
		Tips:               CareTips(fabric),
	}
}

// MissingMeasurements lists the schema measurements absent from m, in
// schema order. Absent values are not an error; callers may warn about them.
func MissingMeasurements(category string, m model.Measurements) []string {
	var missing []string
	for _, name := range ResolveCategory(category).Measurements {
		if _, ok := m.Get(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
