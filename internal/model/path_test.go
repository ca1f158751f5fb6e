package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectPath(w, h float64) Path {
	return Path{}.MoveTo(0, 0).LineTo(w, 0).LineTo(w, h).LineTo(0, h).Close()
}

func TestPathSVG(t *testing.T) {
	p := Path{}.MoveTo(0, 20).QuadTo(6.25, 0, 12.5, 0).LineTo(25, 100).Close()
	assert.Equal(t, "M 0,20 Q 6.25,0 12.5,0 L 25,100 Z", p.SVG())
}

func TestPathSVGRect(t *testing.T) {
	assert.Equal(t, "M 0,0 L 30,0 L 30,40 L 0,40 Z", rectPath(30, 40).SVG())
}

func TestPathSVGEmpty(t *testing.T) {
	assert.Equal(t, "", Path{}.SVG())
}

func TestPathFlattenRect(t *testing.T) {
	outline := rectPath(30, 40).Flatten(8)
	require.Len(t, outline, 4)
	assert.Equal(t, Point2D{X: 30, Y: 40}, outline[2])
	assert.InDelta(t, 1200.0, outline.Area(), 1e-9)
}

func TestPathFlattenCurve(t *testing.T) {
	p := Path{}.MoveTo(0, 10).QuadTo(5, 0, 10, 10).Close()
	outline := p.Flatten(4)

	// Start point plus 4 curve samples, the last of which is the end point.
	require.Len(t, outline, 5)
	assert.Equal(t, Point2D{X: 10, Y: 10}, outline[4])

	// Midpoint of the curve: t=0.5 -> (5, 5)
	assert.InDelta(t, 5.0, outline[2].X, 1e-9)
	assert.InDelta(t, 5.0, outline[2].Y, 1e-9)
}

func TestPathFlattenDropsRepeatedStart(t *testing.T) {
	p := Path{}.MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).LineTo(0, 0).Close()
	outline := p.Flatten(1)
	assert.Len(t, outline, 3)
}

func TestPathFlattenKeepsFirstContour(t *testing.T) {
	p := rectPath(10, 10)
	p = p.MoveTo(50, 50).LineTo(60, 50).LineTo(60, 60).Close()
	assert.Len(t, p.Flatten(4), 4)
}

func TestPathJSON(t *testing.T) {
	data, err := json.Marshal(Path{}.MoveTo(1, 2).Close())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"op":"M","points":[{"x":1,"y":2}]},{"op":"Z"}]`, string(data))
}

func TestOutlineBoundingBox(t *testing.T) {
	o := Outline{{X: 5, Y: -2}, {X: -1, Y: 7}, {X: 3, Y: 3}}
	min, max := o.BoundingBox()
	assert.Equal(t, Point2D{X: -1, Y: -2}, min)
	assert.Equal(t, Point2D{X: 5, Y: 7}, max)

	min, max = Outline{}.BoundingBox()
	assert.Equal(t, Point2D{}, min)
	assert.Equal(t, Point2D{}, max)
}

func TestOutlineTranslate(t *testing.T) {
	o := Outline{{X: 0, Y: 0}, {X: 10, Y: 0}}
	moved := o.Translate(5, -5)
	assert.Equal(t, Point2D{X: 15, Y: -5}, moved[1])
	assert.Equal(t, Point2D{X: 10, Y: 0}, o[1], "original must not change")
}

func TestOutlineAreaDegenerate(t *testing.T) {
	if a := (Outline{{X: 0, Y: 0}, {X: 1, Y: 1}}).Area(); a != 0 {
		t.Errorf("expected 0 area for two points, got %v", a)
	}
	tri := Outline{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}
	if math.Abs(tri.Area()-6) > 1e-9 {
		t.Errorf("expected triangle area 6, got %v", tri.Area())
	}
}
