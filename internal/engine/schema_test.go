package engine

import (
	"testing"

	"github.com/piwi3910/PatternCut/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestResolveCategory_KnownCategories(t *testing.T) {
	tests := []struct {
		category string
		pieces   []string
	}{
		{CategoryDress, []string{"devant", "dos", "manche", "doublure"}},
		{CategoryTop, []string{"devant", "dos", "manche", "col"}},
		{CategoryTrousers, []string{"devant", "dos", "ceinture"}},
		{CategorySkirt, []string{"devant", "dos", "ceinture"}},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			s := ResolveCategory(tt.category)
			assert.Equal(t, tt.category, s.Category)
			assert.Equal(t, tt.pieces, s.Pieces)
			assert.NotEmpty(t, s.Measurements)
		})
	}
}

func TestResolveCategory_UnknownFallsBackToDress(t *testing.T) {
	assert.Equal(t, ResolveCategory("robe"), ResolveCategory("unknown"))
	assert.Equal(t, ResolveCategory("robe"), ResolveCategory(""))
}

func TestResolveCategory_Normalized(t *testing.T) {
	assert.Equal(t, ResolveCategory(CategorySkirt), ResolveCategory("  JUPE "))
	assert.True(t, IsKnownCategory("Pantalon"))
	assert.False(t, IsKnownCategory("manteau"))
}

func TestResolveCategory_ReturnsCopy(t *testing.T) {
	s := ResolveCategory(CategoryDress)
	s.Pieces[0] = "changed"
	s.Measurements[0] = "changed"

	again := ResolveCategory(CategoryDress)
	assert.Equal(t, model.PieceFront, again.Pieces[0])
	assert.Equal(t, model.MeasureBust, again.Measurements[0])
}

func TestCategories_Sorted(t *testing.T) {
	assert.Equal(t, []string{"haut", "jupe", "pantalon", "robe"}, Categories())
}
