package model

import "math"

// FabricWidth is the standard bolt width in cm used for yardage estimates.
const FabricWidth = 140.0

// minFabricLength is the smallest length ever recommended (1 m).
const minFabricLength = 100.0

// UnitCentimeters is the unit of every FabricRequirement.
const UnitCentimeters = "cm"

// EstimateFabric sums the area of all pieces (quantities included) and
// converts it into a length of fabric at FabricWidth, rounded up to the next
// whole metre and never below one metre.
func EstimateFabric(pieces []CuttingPiece) FabricRequirement {
	var totalArea float64
	for _, p := range pieces {
		totalArea += p.TotalArea()
	}
	length := math.Ceil(totalArea/FabricWidth/100) * 100
	return FabricRequirement{
		Width:  FabricWidth,
		Length: math.Max(length, minFabricLength),
		Unit:   UnitCentimeters,
	}
}

// PurchaseEstimate holds the results of a fabric purchasing calculation.
type PurchaseEstimate struct {
	TotalPieceArea  float64 `json:"total_piece_area"`  // Total area of all pieces (cm²)
	FabricWidth     float64 `json:"fabric_width"`      // Bolt width (cm)
	MetersExact     float64 `json:"meters_exact"`      // Exact linear metres at FabricWidth
	MetersWithWaste float64 `json:"meters_with_waste"` // Recommended metres incl. waste, rounded up to 10 cm
	WastePercent    float64 `json:"waste_percent"`     // Waste factor applied (e.g., 15 for 15%)
	PricePerMeter   float64 `json:"price_per_meter"`   // Price used for estimation
	EstimatedCost   float64 `json:"estimated_cost"`    // Total cost if pricing available
}

// CalculatePurchaseEstimate computes how much fabric to buy for a set of
// pieces, adding a waste percentage for pattern matching and shrinkage.
// Shops cut by the 10 cm, so the recommendation is rounded up accordingly.
func CalculatePurchaseEstimate(pieces []CuttingPiece, fabricWidth, wastePercent, pricePerMeter float64) PurchaseEstimate {
	var totalArea float64
	for _, p := range pieces {
		totalArea += p.TotalArea()
	}

	if fabricWidth <= 0 {
		return PurchaseEstimate{
			TotalPieceArea: totalArea,
			WastePercent:   wastePercent,
			PricePerMeter:  pricePerMeter,
		}
	}

	exactMeters := totalArea / fabricWidth / 100

	wasteFactor := 1.0 + (wastePercent / 100.0)
	withWaste := math.Ceil(exactMeters*wasteFactor*10) / 10
	if withWaste < exactMeters {
		withWaste = exactMeters
	}

	return PurchaseEstimate{
		TotalPieceArea:  totalArea,
		FabricWidth:     fabricWidth,
		MetersExact:     exactMeters,
		MetersWithWaste: withWaste,
		WastePercent:    wastePercent,
		PricePerMeter:   pricePerMeter,
		EstimatedCost:   withWaste * pricePerMeter,
	}
}
