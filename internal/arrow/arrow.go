package arrow

import (
	"math"

	"github.com/slickdexic/layers-kernel/internal/geometry"
)

// Style selects how many arrowheads a layer carries.
type Style string

// Arrow styles. Anything unrecognized is treated as StyleNone: a plain
// shaft with no head geometry.
const (
	StyleNone   Style = "none"
	StyleSingle Style = "single"
	StyleDouble Style = "double"
)

// HeadType selects the arrowhead silhouette. The vertex count of a built
// outline depends only on Style and HeadType; scale parameters change
// extent, never count.
type HeadType string

// Head types, in increasing vertex count per head: pointed is a plain
// triangular tip (3 vertices), chevron a notched tip with a concave back
// (4), standard a wide-based triangle with swept-back barbs (5).
const (
	HeadPointed  HeadType = "pointed"
	HeadChevron  HeadType = "chevron"
	HeadStandard HeadType = "standard"
)

// Head silhouette ratios, as fractions of the scaled head length.
const (
	pointedWidthRatio  = 0.5
	chevronWidthRatio  = 0.5
	chevronNotchRatio  = 0.55 // notch depth from the tip
	standardWidthRatio = 0.75
	standardBaseRatio  = 0.45 // half-width where the base meets the shaft
	standardBarbRatio  = 0.25 // barb sweep behind the base
)

// Options carries the style parameters of BuildVertices. Angle and PerpAngle
// are passed in rather than derived so that curved arrows can supply the
// curve's endpoint tangent instead of the chord direction; PerpAngle is
// Angle ± π/2. Non-finite numeric fields are sanitized: HeadScale falls back
// to 1, everything else to 0.
type Options struct {
	Angle          float64
	PerpAngle      float64
	HalfShaftWidth float64
	HeadSize       float64 // head base length before scaling
	Style          Style
	Head           HeadType
	HeadScale      float64 // multiplies head extent only, never the shaft
	TailWidth      float64 // extra shaft width at the (x1,y1) end only
}

// BuildVertices returns the closed outline of an arrow's shaft and head(s)
// as an ordered vertex list. The first and last vertices are distinct; the
// polygon closes implicitly back to the first.
//
// Guarantees, for any finite inputs:
//   - StyleNone yields exactly 4 vertices (a rectangle of half-width
//     HalfShaftWidth, widened by TailWidth/2 at the tail end).
//   - StyleSingle yields one head whose tip vertex is exactly (x2,y2).
//   - StyleDouble yields independent heads with tips exactly at both
//     endpoints; TailWidth is ignored since both shaft ends abut head bases.
func BuildVertices(x1, y1, x2, y2 float64, opts Options) []geometry.Point {
	dirX, dirY := math.Cos(opts.Angle), math.Sin(opts.Angle)
	perpX, perpY := math.Cos(opts.PerpAngle), math.Sin(opts.PerpAngle)

	hw := math.Abs(finite(opts.HalfShaftWidth, 0))
	size := math.Abs(finite(opts.HeadSize, 0))
	scale := finite(opts.HeadScale, 1)
	if scale <= 0 {
		scale = 1
	}
	tailHalf := 0.0
	if tw := finite(opts.TailWidth, 0); tw > 0 {
		tailHalf = tw / 2
	}

	start := geometry.Point{X: x1, Y: y1}
	end := geometry.Point{X: x2, Y: y2}

	switch opts.Style {
	case StyleSingle:
		head, join := headVertices(end, dirX, dirY, perpX, perpY, opts.Head, size, scale)
		outline := make([]geometry.Point, 0, 4+len(head))
		outline = append(outline, offset(start, perpX, perpY, hw+tailHalf))
		outline = append(outline, offset(join, perpX, perpY, hw))
		outline = append(outline, head...)
		outline = append(outline, offset(join, perpX, perpY, -hw))
		outline = append(outline, offset(start, perpX, perpY, -(hw+tailHalf)))
		return outline

	case StyleDouble:
		// The start head points backwards: its frame flips both axes, so
		// its plus→minus sequence continues the loop on the global minus
		// side back around to the plus side.
		headEnd, joinEnd := headVertices(end, dirX, dirY, perpX, perpY, opts.Head, size, scale)
		headStart, joinStart := headVertices(start, -dirX, -dirY, -perpX, -perpY, opts.Head, size, scale)
		outline := make([]geometry.Point, 0, 4+len(headEnd)+len(headStart))
		outline = append(outline, offset(joinStart, perpX, perpY, hw))
		outline = append(outline, offset(joinEnd, perpX, perpY, hw))
		outline = append(outline, headEnd...)
		outline = append(outline, offset(joinEnd, perpX, perpY, -hw))
		outline = append(outline, offset(joinStart, perpX, perpY, -hw))
		outline = append(outline, headStart...)
		return outline

	default:
		return []geometry.Point{
			offset(start, perpX, perpY, hw+tailHalf),
			offset(end, perpX, perpY, hw),
			offset(end, perpX, perpY, -hw),
			offset(start, perpX, perpY, -(hw + tailHalf)),
		}
	}
}

// HeadOutline returns the outline of a single arrowhead with its tip at
// (x,y), pointing along angle. Curved arrows use this with the curve's
// endpoint tangents (QuadTangent at t=0 and t=1) so each head stays tangent
// to the curve while the shaft follows the flattened path.
func HeadOutline(x, y, angle float64, head HeadType, size, scale float64) []geometry.Point {
	scale = finite(scale, 1)
	if scale <= 0 {
		scale = 1
	}
	size = math.Abs(finite(size, 0))
	dirX, dirY := math.Cos(angle), math.Sin(angle)
	perpX, perpY := math.Cos(angle+math.Pi/2), math.Sin(angle+math.Pi/2)
	verts, _ := headVertices(geometry.Point{X: x, Y: y}, dirX, dirY, perpX, perpY, head, size, scale)
	return verts
}

// headVertices builds one arrowhead pointing along (dirX,dirY) with its tip
// at tip. It returns the head's outline vertices ordered from the plus
// (perp) side around the tip to the minus side, and the axis point where the
// shaft joins the head.
func headVertices(tip geometry.Point, dirX, dirY, perpX, perpY float64, head HeadType, size, scale float64) ([]geometry.Point, geometry.Point) {
	length := size * scale
	base := offset(tip, dirX, dirY, -length)

	switch head {
	case HeadChevron:
		w := size * chevronWidthRatio * scale
		notch := offset(tip, dirX, dirY, -length*chevronNotchRatio)
		verts := []geometry.Point{
			offset(base, perpX, perpY, w),
			tip,
			offset(base, perpX, perpY, -w),
			notch,
		}
		return verts, notch

	case HeadStandard:
		w := size * standardWidthRatio * scale
		barb := offset(base, dirX, dirY, -length*standardBarbRatio)
		verts := []geometry.Point{
			offset(base, perpX, perpY, w*standardBaseRatio),
			offset(barb, perpX, perpY, w),
			tip,
			offset(barb, perpX, perpY, -w),
			offset(base, perpX, perpY, -w*standardBaseRatio),
		}
		return verts, base

	default: // HeadPointed and anything unrecognized
		w := size * pointedWidthRatio * scale
		verts := []geometry.Point{
			offset(base, perpX, perpY, w),
			tip,
			offset(base, perpX, perpY, -w),
		}
		return verts, base
	}
}

// offset translates p by s along the unit direction (dx,dy).
func offset(p geometry.Point, dx, dy, s float64) geometry.Point {
	return geometry.Point{X: p.X + dx*s, Y: p.Y + dy*s}
}

// finite returns v, or fallback when v is NaN or infinite.
func finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
