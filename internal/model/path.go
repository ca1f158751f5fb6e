package model

import (
	"math"
	"strconv"
	"strings"
)

// Point2D represents a 2D coordinate in cm.
type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Outline represents a closed polygon as a sequence of 2D points.
// The outline is implicitly closed: the last point connects back to the first.
type Outline []Point2D

// BoundingBox returns the min and max corners of the outline.
func (o Outline) BoundingBox() (min, max Point2D) {
	if len(o) == 0 {
		return Point2D{}, Point2D{}
	}
	min = Point2D{X: o[0].X, Y: o[0].Y}
	max = Point2D{X: o[0].X, Y: o[0].Y}
	for _, p := range o[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Translate shifts all points by dx, dy.
func (o Outline) Translate(dx, dy float64) Outline {
	result := make(Outline, len(o))
	for i, p := range o {
		result[i] = Point2D{X: p.X + dx, Y: p.Y + dy}
	}
	return result
}

// Area computes the absolute polygon area using the shoelace formula.
func (o Outline) Area() float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].X * o[j].Y
		area -= o[j].X * o[i].Y
	}
	return math.Abs(area) / 2
}

// PathOp is a drawing primitive of a Path.
type PathOp string

const (
	OpMove  PathOp = "M" // Start a new contour at the point
	OpLine  PathOp = "L" // Straight segment to the point
	OpQuad  PathOp = "Q" // Quadratic curve: control point, end point
	OpClose PathOp = "Z" // Close the contour back to its start
)

// PathCommand is one primitive with its absolute coordinates.
type PathCommand struct {
	Op     PathOp    `json:"op" yaml:"op"`
	Points []Point2D `json:"points,omitempty" yaml:"points,omitempty"`
}

// Path is a closed shape description built from straight and curved segments.
type Path []PathCommand

// MoveTo appends a move command.
func (p Path) MoveTo(x, y float64) Path {
	return append(p, PathCommand{Op: OpMove, Points: []Point2D{{X: x, Y: y}}})
}

// LineTo appends a straight segment.
func (p Path) LineTo(x, y float64) Path {
	return append(p, PathCommand{Op: OpLine, Points: []Point2D{{X: x, Y: y}}})
}

// QuadTo appends a quadratic curve through control point (cx, cy) to (x, y).
func (p Path) QuadTo(cx, cy, x, y float64) Path {
	return append(p, PathCommand{Op: OpQuad, Points: []Point2D{{X: cx, Y: cy}, {X: x, Y: y}}})
}

// Close appends the closing command.
func (p Path) Close() Path {
	return append(p, PathCommand{Op: OpClose})
}

// SVG renders the path as SVG path data, e.g. "M 0,0 L 30,0 L 30,40 L 0,40 Z".
func (p Path) SVG() string {
	parts := make([]string, 0, len(p))
	for _, c := range p {
		var b strings.Builder
		b.WriteString(string(c.Op))
		for _, pt := range c.Points {
			b.WriteString(" ")
			b.WriteString(formatCoord(pt.X))
			b.WriteString(",")
			b.WriteString(formatCoord(pt.Y))
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}

// formatCoord prints the shortest representation that round-trips.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Flatten approximates the path as a polygon. Each quadratic curve is
// replaced by segments straight lines. Only the first contour is kept.
func (p Path) Flatten(segments int) Outline {
	if segments < 1 {
		segments = 1
	}
	var outline Outline
	var cur Point2D
	started := false

	for _, c := range p {
		switch c.Op {
		case OpMove:
			if started {
				return trimClosingPoint(outline)
			}
			started = true
			cur = c.Points[0]
			outline = append(outline, cur)
		case OpLine:
			cur = c.Points[0]
			outline = append(outline, cur)
		case OpQuad:
			ctrl, end := c.Points[0], c.Points[1]
			for i := 1; i <= segments; i++ {
				t := float64(i) / float64(segments)
				outline = append(outline, quadPoint(cur, ctrl, end, t))
			}
			cur = end
		case OpClose:
			return trimClosingPoint(outline)
		}
	}
	return trimClosingPoint(outline)
}

// quadPoint evaluates a quadratic Bezier curve at t.
func quadPoint(p0, p1, p2 Point2D, t float64) Point2D {
	u := 1 - t
	return Point2D{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

// trimClosingPoint drops a final point that repeats the first one.
func trimClosingPoint(o Outline) Outline {
	if len(o) >= 2 {
		first, last := o[0], o[len(o)-1]
		if math.Abs(first.X-last.X) < 1e-9 && math.Abs(first.Y-last.Y) < 1e-9 {
			return o[:len(o)-1]
		}
	}
	return o
}
