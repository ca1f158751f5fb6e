package model

import (
	"math"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		want PieceKind
	}{
		{"devant", KindFront},
		{"dos", KindBack},
		{"manche", KindSleeve},
		{"ceinture", KindWaistband},
		{"doublure", KindGeneric},
		{"col", KindGeneric},
		{"", KindGeneric},
		{"Manche", KindGeneric},
	}
	for _, tt := range tests {
		if got := KindOf(tt.name); got != tt.want {
			t.Errorf("KindOf(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPieceKindString(t *testing.T) {
	if KindSleeve.String() != "Sleeve" {
		t.Errorf("expected Sleeve, got %s", KindSleeve.String())
	}
	if PieceKind(99).String() != "Generic" {
		t.Errorf("unknown kind should print Generic, got %s", PieceKind(99).String())
	}
}

func TestMeasurementsGet(t *testing.T) {
	m := Measurements{
		"poitrine": 92,
		"zero":     0,
		"negative": -4,
		"nan":      math.NaN(),
		"inf":      math.Inf(1),
	}

	if v, ok := m.Get("poitrine"); !ok || v != 92 {
		t.Errorf("expected 92/true, got %v/%v", v, ok)
	}
	for _, key := range []string{"zero", "negative", "nan", "inf", "missing"} {
		if _, ok := m.Get(key); ok {
			t.Errorf("expected %q to be treated as absent", key)
		}
	}
}

func TestMeasurementsGetNilMap(t *testing.T) {
	var m Measurements
	if _, ok := m.Get("poitrine"); ok {
		t.Error("nil measurement set should have no values")
	}
	if got := m.First(60, "longueur"); got != 60 {
		t.Errorf("expected fallback 60, got %v", got)
	}
}

func TestMeasurementsFirst(t *testing.T) {
	m := Measurements{"tour_taille": 70, "poitrine": -1}

	if got := m.First(100, "poitrine", "tour_taille"); got != 70 {
		t.Errorf("expected tour_taille 70, got %v", got)
	}
	if got := m.First(100, "longueur"); got != 100 {
		t.Errorf("expected fallback 100, got %v", got)
	}
}

func TestMeasurementsClone(t *testing.T) {
	m := Measurements{"poitrine": 92}
	cp := m.Clone()
	cp["poitrine"] = 100
	if m["poitrine"] != 92 {
		t.Error("clone should not share storage with the original")
	}
	if Measurements(nil).Clone() == nil {
		t.Error("clone of nil should be an empty map")
	}
}

func TestCuttingPieceTotalArea(t *testing.T) {
	p := CuttingPiece{Name: "manche", Width: 24, Height: 60, Quantity: 2}
	if got := p.TotalArea(); got != 2880 {
		t.Errorf("expected 2880, got %v", got)
	}
	if p.Kind() != KindSleeve {
		t.Errorf("expected sleeve kind, got %v", p.Kind())
	}
}

func TestCuttingPlanPieceCountAndFind(t *testing.T) {
	plan := CuttingPlan{Pieces: []CuttingPiece{
		{Name: "devant", Quantity: 1},
		{Name: "manche", Quantity: 2},
	}}
	if got := plan.PieceCount(); got != 3 {
		t.Errorf("expected 3 shapes, got %d", got)
	}
	if p := plan.FindPiece("manche"); p == nil || p.Quantity != 2 {
		t.Errorf("FindPiece(manche) = %+v", p)
	}
	if plan.FindPiece("col") != nil {
		t.Error("FindPiece should return nil for a missing piece")
	}
}
