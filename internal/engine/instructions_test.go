package engine

import (
	"testing"

	"github.com/piwi3910/PatternCut/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPieceInstructions_KnownFabric(t *testing.T) {
	got := PieceInstructions(model.PieceSleeve, "soie")
	assert.Equal(t, []string{
		"Couper 2 fois dans le tissu",
		"Ajouter 1cm de couture sur les côtés",
		"Ourlet bas : 2cm",
		"Utiliser une aiguille fine (70/10)",
	}, got)
}

func TestPieceInstructions_UnknownFabricHasThreeEntries(t *testing.T) {
	got := PieceInstructions(model.PieceFront, "unknown-fabric")
	assert.Len(t, got, 3)
	assert.Equal(t, "Couper 1 fois dans le tissu", got[0])
	for _, s := range got {
		assert.NotEmpty(t, s)
	}
}

func TestPieceInstructions_EveryFabricHasTip(t *testing.T) {
	for _, f := range Fabrics() {
		got := PieceInstructions(model.PieceBack, f)
		if len(got) != 4 {
			t.Errorf("fabric %q: expected 4 instructions, got %d", f, len(got))
		}
	}
}

func TestPieceInstructions_FabricNormalized(t *testing.T) {
	assert.Equal(t, PieceInstructions(model.PieceBack, "jean"), PieceInstructions(model.PieceBack, " Jean"))
}

func TestCutQuantity(t *testing.T) {
	assert.Equal(t, 2, CutQuantity(model.PieceSleeve))
	for _, name := range []string{model.PieceFront, model.PieceBack, model.PieceLining, model.PieceCollar, model.PieceWaistband, "x"} {
		assert.Equal(t, 1, CutQuantity(name), name)
	}
}
