package engine

import "github.com/piwi3910/PatternCut/internal/model"

// Fabric names with dedicated advice.
const (
	FabricCotton = "coton"
	FabricSilk   = "soie"
	FabricJersey = "jersey"
	FabricDenim  = "jean"
	FabricWool   = "laine"
	FabricLinen  = "lin"
	FabricVelvet = "velours"
)

// handlingTips is the per-fabric note appended to every piece's instructions.
var handlingTips = map[string]string{
	FabricCotton: "Prévoir un peu de retrait au lavage",
	FabricSilk:   "Utiliser une aiguille fine (70/10)",
	FabricJersey: "Utiliser un point zigzag ou surjeteuse",
	FabricDenim:  "Aiguille jeans (100/16) requise",
	FabricWool:   "Surfiler les bords",
	FabricLinen:  "Repasser à chaud avant couture",
	FabricVelvet: "Couper dans le sens du poil",
}

const (
	cutTwice        = "Couper 2 fois dans le tissu"
	cutOnce         = "Couper 1 fois dans le tissu"
	seamAllowance   = "Ajouter 1cm de couture sur les côtés"
	hemAllowance    = "Ourlet bas : 2cm"
	sleeveCutCount  = 2
	defaultCutCount = 1
)

// CutQuantity returns how many copies of a piece are cut.
func CutQuantity(pieceName string) int {
	if model.KindOf(pieceName) == model.KindSleeve {
		return sleeveCutCount
	}
	return defaultCutCount
}

// PieceInstructions returns the ordered cutting notes for a piece. The
// fabric note is omitted when the fabric is not in the table.
func PieceInstructions(pieceName, fabric string) []string {
	cut := cutOnce
	if CutQuantity(pieceName) == sleeveCutCount {
		cut = cutTwice
	}
	steps := []string{cut, seamAllowance, hemAllowance}
	if tip, ok := handlingTips[normalizeKey(fabric)]; ok && tip != "" {
		steps = append(steps, tip)
	}
	return steps
}
