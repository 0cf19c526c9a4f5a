package arrow

import (
	"math"

	"github.com/slickdexic/layers-kernel/internal/geometry"
)

// QuadPoint evaluates a quadratic Bézier with endpoints (x0,y0), (x1,y1) and
// control point (cx,cy) at parameter t in [0,1].
func QuadPoint(t, x0, y0, cx, cy, x1, y1 float64) geometry.Point {
	mt := 1 - t
	return geometry.Point{
		X: mt*mt*x0 + 2*mt*t*cx + t*t*x1,
		Y: mt*mt*y0 + 2*mt*t*cy + t*t*y1,
	}
}

// QuadTangent returns the tangent angle, in radians, of the same curve at
// parameter t: the atan2 of the derivative 2(1-t)(c-p0) + 2t(p1-c).
//
// At t=0 this is the direction from the start point toward the control
// point, and at t=1 the direction from the control point toward the end
// point — which is exactly what arrowheads on curved arrows need at either
// tip.
func QuadTangent(t, x0, y0, cx, cy, x1, y1 float64) float64 {
	dx := 2*(1-t)*(cx-x0) + 2*t*(x1-cx)
	dy := 2*(1-t)*(cy-y0) + 2*t*(y1-cy)
	return math.Atan2(dy, dx)
}

// FlattenQuad samples the curve into n straight segments, returning the n+1
// sample points in parameter order. n values below 1 are treated as 1.
func FlattenQuad(n int, x0, y0, cx, cy, x1, y1 float64) []geometry.Point {
	if n < 1 {
		n = 1
	}
	out := make([]geometry.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, QuadPoint(float64(i)/float64(n), x0, y0, cx, cy, x1, y1))
	}
	return out
}

// SegmentAngle returns the direction of the segment from (x1,y1) to (x2,y2)
// in radians.
func SegmentAngle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}
