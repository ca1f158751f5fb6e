package model

import "math"

// PieceKind classifies a piece name into the shape family used for its
// dimensions, outline and cut count.
type PieceKind int

const (
	KindGeneric   PieceKind = iota // Any piece without a dedicated rule (lining, collar, ...)
	KindFront                      // Front bodice or front leg
	KindBack                       // Back bodice or back leg
	KindSleeve                     // Sleeve, always cut twice
	KindWaistband                  // Waistband strip
)

func (k PieceKind) String() string {
	switch k {
	case KindFront:
		return "Front"
	case KindBack:
		return "Back"
	case KindSleeve:
		return "Sleeve"
	case KindWaistband:
		return "Waistband"
	default:
		return "Generic"
	}
}

// Piece names used by the garment schemas.
const (
	PieceFront     = "devant"
	PieceBack      = "dos"
	PieceSleeve    = "manche"
	PieceLining    = "doublure"
	PieceCollar    = "col"
	PieceWaistband = "ceinture"
)

// KindOf returns the shape family of a piece name. Unknown names are generic.
func KindOf(pieceName string) PieceKind {
	switch pieceName {
	case PieceFront:
		return KindFront
	case PieceBack:
		return KindBack
	case PieceSleeve:
		return KindSleeve
	case PieceWaistband:
		return KindWaistband
	default:
		return KindGeneric
	}
}

// Measurement names (all values in cm).
const (
	MeasureBust         = "poitrine"
	MeasureWaist        = "taille"
	MeasureHips         = "hanches"
	MeasureLength       = "longueur"
	MeasureTopLength    = "longueur_haut"
	MeasureWaistCirc    = "tour_taille"
	MeasureHipCirc      = "tour_hanches"
	MeasureLegLength    = "longueur_jambe"
	MeasureSkirtLength  = "longueur_jupe"
	MeasureSleeveLength = "longueur_manche"
	MeasureWristCirc    = "tour_poignet"
)

// Measurements maps a measurement name to its value in cm. Any key may be
// absent. A value that is not a finite positive number counts as absent.
type Measurements map[string]float64

// Get returns the value for key and whether it is usable.
func (m Measurements) Get(key string) (float64, bool) {
	v, ok := m[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// First returns the first usable value among keys, or fallback.
func (m Measurements) First(fallback float64, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := m.Get(k); ok {
			return v
		}
	}
	return fallback
}

// Clone returns a copy of the measurement set.
func (m Measurements) Clone() Measurements {
	if m == nil {
		return Measurements{}
	}
	cp := make(Measurements, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// Schema describes the pieces and measurements of one garment category.
type Schema struct {
	Category     string   `json:"category" yaml:"category"`
	Pieces       []string `json:"pieces" yaml:"pieces"`
	Measurements []string `json:"measurements" yaml:"measurements"`
}

// Dimensions is the bounding size of a piece in cm.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns width x height in cm².
func (d Dimensions) Area() float64 {
	return d.Width * d.Height
}

// CuttingPiece is one fabric shape of a cutting plan.
type CuttingPiece struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Width        float64  `json:"width" yaml:"width"`   // cm
	Height       float64  `json:"height" yaml:"height"` // cm
	Quantity     int      `json:"quantity" yaml:"quantity"`
	Instructions []string `json:"instructions" yaml:"instructions"`
	Outline      Path     `json:"outline" yaml:"outline"`
	SVG          string   `json:"svg" yaml:"svg"` // Outline rendered as SVG path data
}

// Kind returns the shape family of the piece.
func (p CuttingPiece) Kind() PieceKind {
	return KindOf(p.Name)
}

// TotalArea returns the fabric area of all copies of the piece in cm².
func (p CuttingPiece) TotalArea() float64 {
	return p.Width * p.Height * float64(p.Quantity)
}

// FabricRequirement is the length of fabric to buy at a given bolt width.
type FabricRequirement struct {
	Width  float64 `json:"width" yaml:"width"`   // cm
	Length float64 `json:"length" yaml:"length"` // cm
	Unit   string  `json:"unit" yaml:"unit"`
}

// CuttingPlan is the complete output of the generator.
type CuttingPlan struct {
	Pieces             []CuttingPiece    `json:"pieces" yaml:"pieces"`
	FabricRequirements FabricRequirement `json:"fabricRequirements" yaml:"fabricRequirements"`
	SewingOrder        []string          `json:"sewingOrder" yaml:"sewingOrder"`
	Tips               string            `json:"tips" yaml:"tips"`
}

// PieceCount returns the number of fabric shapes to cut, quantities included.
func (cp CuttingPlan) PieceCount() int {
	total := 0
	for _, p := range cp.Pieces {
		total += p.Quantity
	}
	return total
}

// FindPiece returns a pointer to the first piece with the given name, or nil.
func (cp *CuttingPlan) FindPiece(name string) *CuttingPiece {
	for i := range cp.Pieces {
		if cp.Pieces[i].Name == name {
			return &cp.Pieces[i]
		}
	}
	return nil
}
