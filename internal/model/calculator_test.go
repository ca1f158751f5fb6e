package model

import (
	"math"
	"testing"
)

func TestEstimateFabricFloor(t *testing.T) {
	tests := []struct {
		name   string
		pieces []CuttingPiece
	}{
		{"no pieces", nil},
		{"zero area", []CuttingPiece{{Name: "col", Width: 0, Height: 40, Quantity: 1}}},
		{"small", []CuttingPiece{{Name: "col", Width: 30, Height: 40, Quantity: 1}}},
		{"exactly one metre", []CuttingPiece{{Name: "x", Width: 140, Height: 100, Quantity: 1}}},
	}
	for _, tt := range tests {
		req := EstimateFabric(tt.pieces)
		if req.Length != 100 {
			t.Errorf("%s: expected length 100, got %v", tt.name, req.Length)
		}
		if req.Width != 140 {
			t.Errorf("%s: expected width 140, got %v", tt.name, req.Width)
		}
		if req.Unit != "cm" {
			t.Errorf("%s: expected unit cm, got %q", tt.name, req.Unit)
		}
	}
}

func TestEstimateFabricRoundsUp(t *testing.T) {
	pieces := []CuttingPiece{{Name: "x", Width: 14001, Height: 1, Quantity: 1}}
	if got := EstimateFabric(pieces).Length; got != 200 {
		t.Errorf("expected 200 for 14001 cm², got %v", got)
	}
}

func TestEstimateFabricCountsQuantity(t *testing.T) {
	// 100 x 100 x 3 = 30000 cm² -> 214.3 cm -> 300
	pieces := []CuttingPiece{{Name: "manche", Width: 100, Height: 100, Quantity: 3}}
	if got := EstimateFabric(pieces).Length; got != 300 {
		t.Errorf("expected 300, got %v", got)
	}
}

func TestCalculatePurchaseEstimateBasic(t *testing.T) {
	// 140 x 100 x 2 = 28000 cm² = 2 m at 140 cm
	pieces := []CuttingPiece{{Name: "panel", Width: 140, Height: 100, Quantity: 2}}
	est := CalculatePurchaseEstimate(pieces, 140, 0, 12.5)

	if math.Abs(est.TotalPieceArea-28000) > 0.001 {
		t.Errorf("expected area 28000, got %.1f", est.TotalPieceArea)
	}
	if math.Abs(est.MetersExact-2) > 1e-9 {
		t.Errorf("expected 2 m exact, got %v", est.MetersExact)
	}
	if math.Abs(est.MetersWithWaste-2) > 1e-9 {
		t.Errorf("expected 2 m with no waste, got %v", est.MetersWithWaste)
	}
	if math.Abs(est.EstimatedCost-25) > 1e-9 {
		t.Errorf("expected cost 25, got %v", est.EstimatedCost)
	}
}

func TestCalculatePurchaseEstimateWithWaste(t *testing.T) {
	pieces := []CuttingPiece{{Name: "panel", Width: 140, Height: 100, Quantity: 1}}
	est := CalculatePurchaseEstimate(pieces, 140, 15, 0)

	// 1 m * 1.15 = 1.15 m -> rounded up to 1.2 m
	if math.Abs(est.MetersWithWaste-1.2) > 1e-9 {
		t.Errorf("expected 1.2 m, got %v", est.MetersWithWaste)
	}
	if est.MetersWithWaste < est.MetersExact {
		t.Error("metres with waste should be >= exact metres")
	}
}

func TestCalculatePurchaseEstimateZeroWidth(t *testing.T) {
	pieces := []CuttingPiece{{Name: "panel", Width: 10, Height: 10, Quantity: 1}}
	est := CalculatePurchaseEstimate(pieces, 0, 10, 5)
	if est.MetersExact != 0 || est.MetersWithWaste != 0 {
		t.Errorf("expected no metres for zero width, got %+v", est)
	}
	if est.TotalPieceArea != 100 {
		t.Errorf("expected area to be reported, got %v", est.TotalPieceArea)
	}
}
