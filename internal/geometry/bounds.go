package geometry

import (
	"math"
	"unicode/utf8"

	"github.com/slickdexic/layers-kernel/internal/layer"
)

// Point is a concrete 2D coordinate. Unlike layer.Vertex, both fields are
// always present and finite in kernel output.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is an axis-aligned bounding rectangle. (X, Y) is the top-left
// corner; Width and Height are never negative in a kernel-produced value.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Default text metrics for layers without explicit extents. The kernel does
// no text shaping; this is the single-line approximation the editor uses
// until a real measurement arrives from the rendering backend.
const (
	defaultFontSize  = 16.0
	textLineHeight   = 1.2
	textAdvanceRatio = 0.6 // per-rune width estimate as a fraction of font size
)

// LayerBounds returns the axis-aligned bounding box of a single layer, or
// nil if the layer carries no computable geometry. Dispatch is on the type
// tag; legacy untagged records are expected to have been normalized by the
// decoder already.
func LayerBounds(l *layer.Layer) *Bounds {
	return layerBounds(l, nil, 0)
}

// layerBounds is LayerBounds with group-traversal state threaded through.
// visited is allocated lazily on the first group encountered.
func layerBounds(l *layer.Layer, visited map[*layer.Layer]bool, depth int) *Bounds {
	if l == nil {
		return nil
	}
	switch l.Type {
	case layer.TypeRectangle, layer.TypeBlur:
		return rectBounds(l)
	case layer.TypeLine, layer.TypeArrow:
		return segmentBounds(l)
	case layer.TypeCircle, layer.TypeEllipse:
		return ellipseBounds(l)
	case layer.TypePolygon, layer.TypePath:
		return vertexBounds(l.Points)
	case layer.TypeStar:
		return starBounds(l)
	case layer.TypeText:
		return textBounds(l)
	case layer.TypeGroup:
		return groupBounds(l, visited, depth)
	default:
		return nil
	}
}

// MultiLayerBounds returns the union of the bounds of every layer in the
// collection, or nil if none of them has computable geometry.
func MultiLayerBounds(layers []*layer.Layer) *Bounds {
	list := make([]*Bounds, 0, len(layers))
	for _, l := range layers {
		list = append(list, LayerBounds(l))
	}
	return MergeBounds(list)
}

// MergeBounds returns the union of all non-nil entries. It returns nil for
// an empty or all-nil input, and for a single non-nil entry it returns that
// entry itself (same pointer), not a copy.
func MergeBounds(list []*Bounds) *Bounds {
	var first *Bounds
	var merged *Bounds
	for _, b := range list {
		if b == nil {
			continue
		}
		switch {
		case first == nil:
			first = b
		case merged == nil:
			merged = union(*first, *b)
		default:
			merged = union(*merged, *b)
		}
	}
	if merged != nil {
		return merged
	}
	return first
}

// union returns a freshly allocated bounds covering both arguments.
func union(a, b Bounds) *Bounds {
	x1 := math.Min(a.X, b.X)
	y1 := math.Min(a.Y, b.Y)
	x2 := math.Max(a.X+a.Width, b.X+b.Width)
	y2 := math.Max(a.Y+a.Height, b.Y+b.Height)
	return &Bounds{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// PointInBounds reports whether the point lies inside the bounds, inclusive
// on all four edges. A nil bounds contains nothing.
func PointInBounds(p Point, b *Bounds) bool {
	if b == nil {
		return false
	}
	return p.X >= b.X && p.X <= b.X+b.Width &&
		p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// Intersect reports whether two bounds overlap, counting shared edges as
// overlap (closed-interval test). False if either argument is nil.
func Intersect(a, b *Bounds) bool {
	if a == nil || b == nil {
		return false
	}
	return a.X <= b.X+b.Width && b.X <= a.X+a.Width &&
		a.Y <= b.Y+b.Height && b.Y <= a.Y+a.Height
}

// Expand grows the bounds by amount on every side; a negative amount
// shrinks, collapsing toward the center rather than going negative. If
// amount is not finite the original pointer is returned unchanged, so
// callers can detect the no-op by identity.
func Expand(b *Bounds, amount float64) *Bounds {
	if b == nil {
		return nil
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return b
	}
	out := Bounds{
		X:      b.X - amount,
		Y:      b.Y - amount,
		Width:  b.Width + 2*amount,
		Height: b.Height + 2*amount,
	}
	if out.Width < 0 {
		out.X = b.X + b.Width/2
		out.Width = 0
	}
	if out.Height < 0 {
		out.Y = b.Y + b.Height/2
		out.Height = 0
	}
	return &out
}

// Center returns the midpoint of the bounds, or nil for nil input.
func Center(b *Bounds) *Point {
	if b == nil {
		return nil
	}
	return &Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// rectBounds measures rectangle-family layers. Negative extents are folded
// into the origin: width -100 at x=110 becomes x=10, width 100.
func rectBounds(l *layer.Layer) *Bounds {
	x, okX := layer.Num(l.X)
	y, okY := layer.Num(l.Y)
	w, okW := layer.Num(l.Width)
	h, okH := layer.Num(l.Height)
	if !okX || !okY || !okW || !okH {
		return nil
	}
	return normalized(x, y, w, h)
}

// normalized builds a Bounds from a possibly-negative extent rectangle.
func normalized(x, y, w, h float64) *Bounds {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return &Bounds{X: x, Y: y, Width: w, Height: h}
}

// segmentBounds measures line and arrow layers: the rectangle spanning both
// endpoints regardless of direction. An arrow with a quadratic control point
// is widened to cover the curve's axis extremes, so selection handles always
// enclose the drawn stroke.
func segmentBounds(l *layer.Layer) *Bounds {
	x1, ok1 := layer.Num(l.X1)
	y1, ok2 := layer.Num(l.Y1)
	x2, ok3 := layer.Num(l.X2)
	y2, ok4 := layer.Num(l.Y2)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil
	}
	minX, maxX := math.Min(x1, x2), math.Max(x1, x2)
	minY, maxY := math.Min(y1, y2), math.Max(y1, y2)

	if l.Type == layer.TypeArrow {
		cx, okCX := layer.Num(l.ControlX)
		cy, okCY := layer.Num(l.ControlY)
		if okCX && okCY {
			if t, ok := quadExtreme(x1, cx, x2); ok {
				ex := quadAt(x1, cx, x2, t)
				minX, maxX = math.Min(minX, ex), math.Max(maxX, ex)
			}
			if t, ok := quadExtreme(y1, cy, y2); ok {
				ey := quadAt(y1, cy, y2, t)
				minY, maxY = math.Min(minY, ey), math.Max(maxY, ey)
			}
		}
	}
	return &Bounds{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// quadExtreme returns the parameter in (0,1) where the quadratic Bézier
// component p0,c,p1 has zero derivative, if any.
func quadExtreme(p0, c, p1 float64) (float64, bool) {
	denom := p0 - 2*c + p1
	if denom == 0 {
		return 0, false
	}
	t := (p0 - c) / denom
	if t <= 0 || t >= 1 {
		return 0, false
	}
	return t, true
}

// quadAt evaluates one component of a quadratic Bézier at parameter t.
func quadAt(p0, c, p1, t float64) float64 {
	mt := 1 - t
	return mt*mt*p0 + 2*mt*t*c + t*t*p1
}

// ellipseBounds measures circle and ellipse layers. RadiusX/RadiusY take
// precedence over Radius independently per axis; an axis with no radius
// source at all has zero half-extent. Negative radii are read as their
// absolute value. Nil only when the center is missing or no radius field is
// present.
func ellipseBounds(l *layer.Layer) *Bounds {
	cx, okX := layer.Num(l.X)
	cy, okY := layer.Num(l.Y)
	if !okX || !okY {
		return nil
	}
	r, hasR := layer.Num(l.Radius)
	rx, hasRX := layer.Num(l.RadiusX)
	ry, hasRY := layer.Num(l.RadiusY)
	if !hasR && !hasRX && !hasRY {
		return nil
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
	return &Bounds{X: cx - halfX, Y: cy - halfY, Width: 2 * halfX, Height: 2 * halfY}
}

// vertexBounds returns the min/max envelope of a vertex list. The array must
// have at least two elements; vertices missing a coordinate are skipped, not
// zero-filled. Nil when no complete vertex remains.
func vertexBounds(points []layer.Vertex) *Bounds {
	if len(points) < 2 {
		return nil
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false
	for _, v := range points {
		x, okX := layer.Num(v.X)
		y, okY := layer.Num(v.Y)
		if !okX || !okY {
			continue
		}
		found = true
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	if !found {
		return nil
	}
	return &Bounds{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// starBounds measures a star layer: the envelope of its synthesized outline,
// or of an explicit vertex array when the record carries one instead of
// radii.
func starBounds(l *layer.Layer) *Bounds {
	if verts := StarVertices(l); verts != nil {
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, p := range verts {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
		return &Bounds{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	}
	return vertexBounds(l.Points)
}

// textBounds measures a text layer. Explicit width/height win; otherwise a
// single-line approximation is used: the baseline sits at y, so the box
// starts at y-fontSize and is fontSize*1.2 tall, and width is estimated from
// the rune count. Real text shaping is the rendering backend's job.
func textBounds(l *layer.Layer) *Bounds {
	if l.Type != layer.TypeText {
		return nil
	}
	x, okX := layer.Num(l.X)
	y, okY := layer.Num(l.Y)
	if !okX || !okY {
		return nil
	}
	fs, okFS := layer.Num(l.FontSize)
	if !okFS || fs <= 0 {
		fs = defaultFontSize
	}
	w, hasW := layer.Num(l.Width)
	if !hasW {
		w = textAdvanceRatio * fs * float64(utf8.RuneCountInString(l.Text))
	}
	h, hasH := layer.Num(l.Height)
	top := y
	if !hasH {
		top = y - fs
		h = fs * textLineHeight
	}
	return normalized(x, top, w, h)
}
