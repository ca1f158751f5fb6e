package engine

import (
	"math"
	"testing"

	"github.com/piwi3910/PatternCut/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPieceDimensions_Defaults(t *testing.T) {
	empty := model.Measurements{}
	tests := []struct {
		piece  string
		width  float64
		height float64
	}{
		{model.PieceFront, 27, 60},
		{model.PieceBack, 27, 60},
		{model.PieceSleeve, 24, 60},
		{model.PieceWaistband, 74, 8},
		{model.PieceLining, 30, 40},
		{model.PieceCollar, 30, 40},
		{"poche", 30, 40},
	}
	for _, tt := range tests {
		t.Run(tt.piece, func(t *testing.T) {
			d := PieceDimensions(tt.piece, empty, Ease)
			assert.Equal(t, tt.width, d.Width)
			assert.Equal(t, tt.height, d.Height)
		})
	}
}

func TestPieceDimensions_EveryScheduledPieceHasDefaults(t *testing.T) {
	for _, cat := range Categories() {
		for _, piece := range ResolveCategory(cat).Pieces {
			d := PieceDimensions(piece, nil, Ease)
			if d.Width <= 0 || d.Height <= 0 {
				t.Errorf("%s/%s: expected positive defaults, got %vx%v", cat, piece, d.Width, d.Height)
			}
		}
	}
}

func TestPieceDimensions_Bodice(t *testing.T) {
	d := PieceDimensions(model.PieceFront, model.Measurements{"poitrine": 92, "longueur": 100}, Ease)
	assert.Equal(t, 25.0, d.Width)
	assert.Equal(t, 100.0, d.Height)

	// Waist circumference and top length are secondary sources
	d = PieceDimensions(model.PieceBack, model.Measurements{"tour_taille": 80, "longueur_haut": 55}, Ease)
	assert.Equal(t, 22.0, d.Width)
	assert.Equal(t, 55.0, d.Height)

	// Bust wins over waist circumference
	d = PieceDimensions(model.PieceBack, model.Measurements{"poitrine": 100, "tour_taille": 80}, Ease)
	assert.Equal(t, 27.0, d.Width)
}

func TestPieceDimensions_NoRounding(t *testing.T) {
	d := PieceDimensions(model.PieceFront, model.Measurements{"poitrine": 93}, Ease)
	assert.InDelta(t, 25.25, d.Width, 1e-12)
}

func TestPieceDimensions_SleeveAndWaistband(t *testing.T) {
	m := model.Measurements{"tour_poignet": 16, "longueur_manche": 58, "tour_taille": 68}
	s := PieceDimensions(model.PieceSleeve, m, Ease)
	assert.Equal(t, model.Dimensions{Width: 20, Height: 58}, s)

	w := PieceDimensions(model.PieceWaistband, m, Ease)
	assert.Equal(t, model.Dimensions{Width: 72, Height: 8}, w)
}

func TestPieceDimensions_InvalidValuesUseFallback(t *testing.T) {
	m := model.Measurements{
		"poitrine": math.NaN(),
		"longueur": math.Inf(1),
	}
	d := PieceDimensions(model.PieceFront, m, Ease)
	assert.Equal(t, 27.0, d.Width)
	assert.Equal(t, 60.0, d.Height)

	d = PieceDimensions(model.PieceFront, model.Measurements{"poitrine": -4, "longueur": 0}, Ease)
	assert.Equal(t, 27.0, d.Width)
	assert.Equal(t, 60.0, d.Height)
}

func TestPieceDimensions_CustomEase(t *testing.T) {
	d := PieceDimensions(model.PieceFront, model.Measurements{"poitrine": 80}, 0)
	assert.Equal(t, 20.0, d.Width)
}
