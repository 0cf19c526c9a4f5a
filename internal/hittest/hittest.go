package hittest

import (
	"math"

	"github.com/slickdexic/layers-kernel/internal/arrow"
	"github.com/slickdexic/layers-kernel/internal/geometry"
	"github.com/slickdexic/layers-kernel/internal/layer"
)

// Tolerance is the hit slop for line, arrow, and path strokes, in canvas
// units. A pointer within this distance of the stroke counts as a hit.
const Tolerance = 6.0

// curveSegments is how finely a curved arrow is flattened before the
// polyline distance test.
const curveSegments = 16

// Context exposes the candidate collection and a bounds fallback for shapes
// without a tighter containment test. The collection is read-only for the
// duration of a call.
type Context interface {
	// Layers returns the ordered candidate collection, in the order the
	// store supplies it.
	Layers() []*layer.Layer

	// LayerBounds returns the bounding box used as the fallback
	// containment test. Normally this delegates to geometry.LayerBounds.
	LayerBounds(l *layer.Layer) *geometry.Bounds
}

// Snapshot is the standard Context: a read-only view over a layer slice
// with bounds delegated to the geometry package.
type Snapshot struct {
	layers []*layer.Layer
}

// NewSnapshot wraps an ordered layer collection. The slice is not copied;
// the caller must not mutate it while the snapshot is in use.
func NewSnapshot(layers []*layer.Layer) *Snapshot {
	return &Snapshot{layers: layers}
}

// Layers returns the wrapped collection.
func (s *Snapshot) Layers() []*layer.Layer { return s.layers }

// LayerBounds delegates to the bounds calculator.
func (s *Snapshot) LayerBounds(l *layer.Layer) *geometry.Bounds {
	return geometry.LayerBounds(l)
}

// LayerAtPoint returns the first layer in the context's collection that is
// visible, unlocked, and contains the point, or nil if none does. A layer
// with an unrecognized type never matches.
func LayerAtPoint(p geometry.Point, ctx Context) *layer.Layer {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return nil
	}
	for _, l := range ctx.Layers() {
		if l == nil || !l.IsVisible() || l.IsLocked() {
			continue
		}
		if Contains(l, p, ctx) {
			return l
		}
	}
	return nil
}

// Contains applies the shape-specific containment test for a single layer.
// Visibility and locking are not consulted here; that gating belongs to
// LayerAtPoint.
func Contains(l *layer.Layer, p geometry.Point, ctx Context) bool {
	switch l.Type {
	case layer.TypeRectangle:
		return rectContains(l, p)
	case layer.TypeCircle:
		return circleContains(l, p)
	case layer.TypeEllipse:
		return ellipseContains(l, p)
	case layer.TypeLine, layer.TypeArrow:
		return strokeContains(l, p)
	case layer.TypePath:
		return polylineContains(l.Points, p)
	case layer.TypePolygon:
		return pointInPolygon(completeVertices(l.Points), p)
	case layer.TypeStar:
		verts := geometry.StarVertices(l)
		if verts == nil {
			verts = completeVertices(l.Points)
		}
		return pointInPolygon(verts, p)
	case layer.TypeText, layer.TypeBlur:
		return geometry.PointInBounds(p, ctx.LayerBounds(l))
	default:
		// Groups and unknown types fail closed.
		return false
	}
}

// rectContains is the inclusive-edge box test on the layer's own normalized
// extents. A zero-size rectangle matches only the point equal to its origin.
func rectContains(l *layer.Layer, p geometry.Point) bool {
	x, okX := layer.Num(l.X)
	y, okY := layer.Num(l.Y)
	w, okW := layer.Num(l.Width)
	h, okH := layer.Num(l.Height)
	if !okX || !okY || !okW || !okH {
		return false
	}
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return p.X >= x && p.X <= x+w && p.Y >= y && p.Y <= y+h
}

func circleContains(l *layer.Layer, p geometry.Point) bool {
	cx, okX := layer.Num(l.X)
	cy, okY := layer.Num(l.Y)
	r, okR := layer.Num(l.Radius)
	if !okX || !okY || !okR {
		return false
	}
	r = math.Abs(r)
	return math.Hypot(p.X-cx, p.Y-cy) <= r
}

// ellipseContains uses the normalized quadratic form, with the same per-axis
// radius resolution as the bounds calculator. Degenerate axes collapse to a
// segment or point test instead of dividing by zero.
func ellipseContains(l *layer.Layer, p geometry.Point) bool {
	cx, okX := layer.Num(l.X)
	cy, okY := layer.Num(l.Y)
	if !okX || !okY {
		return false
	}
	r, hasR := layer.Num(l.Radius)
	rx, hasRX := layer.Num(l.RadiusX)
	ry, hasRY := layer.Num(l.RadiusY)
	if !hasR && !hasRX && !hasRY {
		return false
	}
	halfX, halfY := 0.0, 0.0
	if hasRX {
		halfX = math.Abs(rx)
	} else if hasR {
		halfX = math.Abs(r)
	}
	if hasRY {
		halfY = math.Abs(ry)
	} else if hasR {
		halfY = math.Abs(r)
	}
	dx, dy := p.X-cx, p.Y-cy
	switch {
	case halfX == 0 && halfY == 0:
		return dx == 0 && dy == 0
	case halfX == 0:
		return dx == 0 && math.Abs(dy) <= halfY
	case halfY == 0:
		return dy == 0 && math.Abs(dx) <= halfX
	}
	nx, ny := dx/halfX, dy/halfY
	return nx*nx+ny*ny <= 1
}

// strokeContains tests line and arrow layers: distance to the finite segment
// within Tolerance. An arrow carrying a quadratic control point is flattened
// and tested as a polyline so the hit region follows the drawn curve.
func strokeContains(l *layer.Layer, p geometry.Point) bool {
	x1, ok1 := layer.Num(l.X1)
	y1, ok2 := layer.Num(l.Y1)
	x2, ok3 := layer.Num(l.X2)
	y2, ok4 := layer.Num(l.Y2)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	if l.Type == layer.TypeArrow {
		cx, okCX := layer.Num(l.ControlX)
		cy, okCY := layer.Num(l.ControlY)
		if okCX && okCY {
			prev := geometry.Point{X: x1, Y: y1}
			for i := 1; i <= curveSegments; i++ {
				t := float64(i) / curveSegments
				cur := arrow.QuadPoint(t, x1, y1, cx, cy, x2, y2)
				if segmentDistance(p, prev, cur) <= Tolerance {
					return true
				}
				prev = cur
			}
			return false
		}
	}
	return segmentDistance(p, geometry.Point{X: x1, Y: y1}, geometry.Point{X: x2, Y: y2}) <= Tolerance
}

// polylineContains tests a freehand path: minimum distance over consecutive
// complete vertex pairs. A path collapsed to a single complete vertex is
// still hittable within the tolerance.
func polylineContains(points []layer.Vertex, p geometry.Point) bool {
	verts := completeVertices(points)
	if len(verts) == 0 {
		return false
	}
	if len(verts) == 1 {
		return math.Hypot(p.X-verts[0].X, p.Y-verts[0].Y) <= Tolerance
	}
	for i := 1; i < len(verts); i++ {
		if segmentDistance(p, verts[i-1], verts[i]) <= Tolerance {
			return true
		}
	}
	return false
}

// completeVertices filters a vertex list down to the entries carrying both
// coordinates, preserving order.
func completeVertices(points []layer.Vertex) []geometry.Point {
	if len(points) == 0 {
		return nil
	}
	out := make([]geometry.Point, 0, len(points))
	for _, v := range points {
		x, okX := layer.Num(v.X)
		y, okY := layer.Num(v.Y)
		if !okX || !okY {
			continue
		}
		out = append(out, geometry.Point{X: x, Y: y})
	}
	return out
}

// segmentDistance returns the distance from p to the nearest point on the
// finite segment ab (not the infinite line through it).
func segmentDistance(p, a, b geometry.Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	nx := a.X + t*abx
	ny := a.Y + t*aby
	return math.Hypot(p.X-nx, p.Y-ny)
}

// pointInPolygon is the even-odd ray-casting test over an ordered vertex
// list. Fewer than three vertices can enclose nothing.
func pointInPolygon(verts []geometry.Point, p geometry.Point) bool {
	if len(verts) < 3 {
		return false
	}
	inside := false
	for i, j := 0, len(verts)-1; i < len(verts); j, i = i, i+1 {
		vi, vj := verts[i], verts[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}
