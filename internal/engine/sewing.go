package engine

// Assembly steps, in sewing order.
const (
	StepDarts     = "Assembler les pinces et darts"
	StepSeams     = "Coudre les épaules/côtés"
	StepSleeves   = "Poser les manches"
	StepWaistband = "Poser la ceinture/ourlets"
	StepFinishing = "Finitions"
)

// GenericCareTip is returned for fabrics without a dedicated entry.
const GenericCareTip = "Suivre les instructions du fabricant"

var careTips = map[string]string{
	FabricCotton: "Lavable à 40°C, repassage moyen",
	FabricSilk:   "Nettoyage à sec recommandé",
	FabricJersey: "Ne pas étirer pendant la couture",
	FabricDenim:  "Délaver avant coupe pour éviter le retrait",
	FabricWool:   "Lavage main ou nettoyage à sec",
	FabricLinen:  "Se froisse facilement, repasser humide",
	FabricVelvet: "Brosser dans le sens du poil",
}

// isBottomGarment reports whether the category has no sleeves.
func isBottomGarment(category string) bool {
	switch normalizeKey(category) {
	case CategorySkirt, CategoryTrousers:
		return true
	default:
		return false
	}
}

// SewingOrder returns the assembly steps for a category. Skirts and trousers
// skip the sleeve step; the other steps keep their relative order.
func SewingOrder(category string) []string {
	steps := []string{StepDarts, StepSeams}
	if !isBottomGarment(category) {
		steps = append(steps, StepSleeves)
	}
	return append(steps, StepWaistband, StepFinishing)
}

// CareTips returns the care advice for a fabric.
func CareTips(fabric string) string {
	if tip, ok := careTips[normalizeKey(fabric)]; ok {
		return tip
	}
	return GenericCareTip
}

// Fabrics returns the fabric names with dedicated advice.
func Fabrics() []string {
	return []string{FabricCotton, FabricSilk, FabricJersey, FabricDenim, FabricWool, FabricLinen, FabricVelvet}
}
