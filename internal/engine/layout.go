package engine

import (
	"sort"

	"github.com/piwi3910/PatternCut/internal/model"
)

// markerItem is one copy of a piece waiting to be placed.
type markerItem struct {
	piece model.CuttingPiece
	copy  int
	w, h  float64
	rot   bool
	over  bool
}

// shelf is a horizontal band of the roll holding pieces side by side.
type shelf struct {
	y      float64
	height float64
	usedX  float64
}

// LayoutMarker arranges every piece copy on a roll of the given width using
// shelf packing: copies are sorted by height (tallest first) and placed left
// to right, opening a new shelf when the current one is full. A piece wider
// than the roll is rotated when that makes it fit; otherwise it gets its own
// shelf and is flagged oversize. The layout is informational and does not
// change the fabric requirement of a plan.
func LayoutMarker(pieces []model.CuttingPiece, fabricWidth float64) model.MarkerLayout {
	if fabricWidth <= 0 {
		fabricWidth = model.FabricWidth
	}
	layout := model.MarkerLayout{FabricWidth: fabricWidth}

	items := expandCopies(pieces, fabricWidth)
	// Stable sort keeps plan order among equal heights so output is deterministic
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].h > items[j].h
	})

	var shelves []shelf
	for _, it := range items {
		placed := false
		if !it.over {
			for si := range shelves {
				s := &shelves[si]
				if it.h <= s.height && s.usedX+it.w <= fabricWidth {
					layout.Placements = append(layout.Placements, placement(it, s.usedX, s.y))
					s.usedX += it.w
					placed = true
					break
				}
			}
		}
		if placed {
			continue
		}

		// Open a new shelf below the last one
		y := 0.0
		if n := len(shelves); n > 0 {
			y = shelves[n-1].y + shelves[n-1].height
		}
		shelves = append(shelves, shelf{y: y, height: it.h, usedX: it.w})
		layout.Placements = append(layout.Placements, placement(it, 0, y))
	}

	if n := len(shelves); n > 0 {
		layout.UsedLength = shelves[n-1].y + shelves[n-1].height
	}
	return layout
}

// expandCopies turns pieces into one item per copy, choosing the orientation
// that fits the roll.
func expandCopies(pieces []model.CuttingPiece, fabricWidth float64) []markerItem {
	var items []markerItem
	for _, p := range pieces {
		w, h, rot, over := orient(p.Width, p.Height, fabricWidth)
		for c := 1; c <= p.Quantity; c++ {
			items = append(items, markerItem{piece: p, copy: c, w: w, h: h, rot: rot, over: over})
		}
	}
	return items
}

// orient keeps the grain orientation unless the piece is wider than the roll.
func orient(w, h, fabricWidth float64) (float64, float64, bool, bool) {
	if w <= fabricWidth {
		return w, h, false, false
	}
	if h <= fabricWidth {
		return h, w, true, false
	}
	return w, h, false, true
}

func placement(it markerItem, x, y float64) model.MarkerPlacement {
	return model.MarkerPlacement{
		PieceID:  it.piece.ID,
		Name:     it.piece.Name,
		Copy:     it.copy,
		X:        x,
		Y:        y,
		Width:    it.w,
		Height:   it.h,
		Rotated:  it.rot,
		Oversize: it.over,
	}
}
