package model

// MarkerPlacement is one copy of a piece positioned on the fabric roll.
// X runs across the roll width, Y along its length.
type MarkerPlacement struct {
	PieceID  string  `json:"pieceId" yaml:"pieceId"`
	Name     string  `json:"name" yaml:"name"`
	Copy     int     `json:"copy" yaml:"copy"` // 1-based index among the piece's copies
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Width    float64 `json:"width" yaml:"width"`   // placed width (after rotation)
	Height   float64 `json:"height" yaml:"height"` // placed height (after rotation)
	Rotated  bool    `json:"rotated" yaml:"rotated"`
	Oversize bool    `json:"oversize,omitempty" yaml:"oversize,omitempty"` // wider than the roll even when rotated
}

// MarkerLayout is an arrangement of all piece copies on a roll of fabric.
type MarkerLayout struct {
	FabricWidth float64           `json:"fabricWidth" yaml:"fabricWidth"`
	UsedLength  float64           `json:"usedLength" yaml:"usedLength"`
	Placements  []MarkerPlacement `json:"placements" yaml:"placements"`
}

// PlacedArea returns the total area covered by placements in cm².
func (l MarkerLayout) PlacedArea() float64 {
	var total float64
	for _, p := range l.Placements {
		total += p.Width * p.Height
	}
	return total
}

// Efficiency returns the percentage of the used fabric covered by pieces.
func (l MarkerLayout) Efficiency() float64 {
	used := l.FabricWidth * l.UsedLength
	if used <= 0 {
		return 0
	}
	return l.PlacedArea() / used * 100
}

// HasOversize reports whether any piece could not fit the roll width.
func (l MarkerLayout) HasOversize() bool {
	for _, p := range l.Placements {
		if p.Oversize {
			return true
		}
	}
	return false
}

// PlaceOutline moves a piece outline, drawn in its own frame, onto the roll
// at this placement. Rotated placements turn the outline a quarter turn so
// that its original height runs across the roll.
func (pl MarkerPlacement) PlaceOutline(o Outline, pieceHeight float64) Outline {
	if pl.Rotated {
		o = RotateQuarter(o, pieceHeight)
	}
	return o.Translate(pl.X, pl.Y)
}

// RotateQuarter turns an outline by 90 degrees so that its original height
// runs along X.
func RotateQuarter(o Outline, height float64) Outline {
	out := make(Outline, len(o))
	for i, p := range o {
		out[i] = Point2D{X: height - p.Y, Y: p.X}
	}
	return out
}
