package geometry

import (
	"math"

	"github.com/slickdexic/layers-kernel/internal/layer"
)

const (
	defaultStarPoints = 5
	minStarPoints     = 3
	maxStarPoints     = 360 // guards against absurd counts in persisted data
)

// StarVertices synthesizes the outline of a star layer defined by radii: 2n
// vertices alternating between the outer and inner radius, starting at the
// top and stepping clockwise. Returns nil when the center or outer radius is
// missing; the inner radius defaults to half the outer, and the point count
// to five.
//
// Both the bounds and hit-test stages consume this, so a star's selection
// box and its click region always derive from the same outline.
func StarVertices(l *layer.Layer) []Point {
	cx, okX := layer.Num(l.X)
	cy, okY := layer.Num(l.Y)
	outer, okOuter := layer.Num(l.OuterRadius)
	if !okX || !okY || !okOuter {
		return nil
	}
	outer = math.Abs(outer)
	inner, okInner := layer.Num(l.InnerRadius)
	if !okInner {
		inner = outer / 2
	}
	inner = math.Abs(inner)

	n := defaultStarPoints
	if count, ok := layer.Num(l.PointCount); ok {
		n = int(count)
	}
	if n < minStarPoints {
		n = defaultStarPoints
	}
	if n > maxStarPoints {
		n = maxStarPoints
	}

	verts := make([]Point, 0, 2*n)
	step := math.Pi / float64(n) // half of the 2π/n outer-point spacing
	for i := 0; i < 2*n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*step
		verts = append(verts, Point{
			X: cx + r*math.Cos(a),
			Y: cy + r*math.Sin(a),
		})
	}
	return verts
}
