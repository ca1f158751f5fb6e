package engine

import "github.com/piwi3910/PatternCut/internal/model"

// Fixed vertical offsets (cm) of the shoulder line.
const (
	frontShoulderDrop = 20.0
	backShoulderDrop  = 10.0
)

// PieceOutline returns the closed shape of a piece, anchored at (0,0) and
// derived only from its width and height.
func PieceOutline(pieceName string, width, height float64) model.Path {
	switch model.KindOf(pieceName) {
	case model.KindFront:
		return frontOutline(width, height)
	case model.KindBack:
		return backOutline(width, height)
	case model.KindSleeve:
		return sleeveOutline(width, height)
	default:
		return rectOutline(width, height)
	}
}

// frontOutline: two curves form the neckline and shoulders, then straight
// sides and hem.
func frontOutline(w, h float64) model.Path {
	return model.Path{}.
		MoveTo(0, frontShoulderDrop).
		QuadTo(w/4, 0, w/2, 0).
		QuadTo(3*w/4, 0, w, frontShoulderDrop).
		LineTo(w, h).
		LineTo(0, h).
		Close()
}

func backOutline(w, h float64) model.Path {
	return model.Path{}.
		MoveTo(0, backShoulderDrop).
		LineTo(w, backShoulderDrop).
		LineTo(w, h).
		LineTo(0, h).
		Close()
}

// sleeveOutline: a cap symmetric about x = w/2 over straight underarm seams.
func sleeveOutline(w, h float64) model.Path {
	return model.Path{}.
		MoveTo(w/2, 0).
		QuadTo(0, h/4, 0, h/2).
		LineTo(0, h).
		LineTo(w, h).
		LineTo(w, h/2).
		QuadTo(w, h/4, w/2, 0).
		Close()
}

func rectOutline(w, h float64) model.Path {
	return model.Path{}.
		MoveTo(0, 0).
		LineTo(w, 0).
		LineTo(w, h).
		LineTo(0, h).
		Close()
}
