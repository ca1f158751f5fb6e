package model

import "testing"

func TestMarkerLayoutEfficiency(t *testing.T) {
	l := MarkerLayout{
		FabricWidth: 100,
		UsedLength:  50,
		Placements: []MarkerPlacement{
			{Width: 50, Height: 50},
			{Width: 25, Height: 40},
		},
	}
	if got := l.PlacedArea(); got != 3500 {
		t.Errorf("PlacedArea = %v, want 3500", got)
	}
	if got := l.Efficiency(); got != 70 {
		t.Errorf("Efficiency = %v, want 70", got)
	}
	if l.HasOversize() {
		t.Error("expected no oversize placement")
	}

	if got := (MarkerLayout{}).Efficiency(); got != 0 {
		t.Errorf("empty layout efficiency = %v, want 0", got)
	}
}

func TestMarkerLayoutHasOversize(t *testing.T) {
	l := MarkerLayout{Placements: []MarkerPlacement{{}, {Oversize: true}}}
	if !l.HasOversize() {
		t.Error("expected oversize placement to be reported")
	}
}

func TestRotateQuarter(t *testing.T) {
	rect := Outline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 4}, {X: 0, Y: 4}}
	min, max := RotateQuarter(rect, 4).BoundingBox()
	if min != (Point2D{X: 0, Y: 0}) || max != (Point2D{X: 4, Y: 10}) {
		t.Errorf("rotated bounds = %v..%v, want (0,0)..(4,10)", min, max)
	}
}

func TestPlaceOutline(t *testing.T) {
	rect := Outline{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 4}, {X: 0, Y: 4}}

	placed := MarkerPlacement{X: 5, Y: 20}.PlaceOutline(rect, 4)
	min, max := placed.BoundingBox()
	if min != (Point2D{X: 5, Y: 20}) || max != (Point2D{X: 15, Y: 24}) {
		t.Errorf("placed bounds = %v..%v", min, max)
	}

	rotated := MarkerPlacement{X: 5, Y: 20, Rotated: true}.PlaceOutline(rect, 4)
	min, max = rotated.BoundingBox()
	if min != (Point2D{X: 5, Y: 20}) || max != (Point2D{X: 9, Y: 30}) {
		t.Errorf("rotated placed bounds = %v..%v", min, max)
	}
}
