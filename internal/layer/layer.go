package layer

import "math"

// Type identifies which shape family a layer belongs to.
type Type string

// The closed set of shape types the kernel understands. Anything else is
// treated as "no geometry": it produces nil bounds and never matches a hit
// test.
const (
	TypeRectangle Type = "rectangle"
	TypeCircle    Type = "circle"
	TypeEllipse   Type = "ellipse"
	TypeLine      Type = "line"
	TypeArrow     Type = "arrow"
	TypePolygon   Type = "polygon"
	TypeStar      Type = "star"
	TypeText      Type = "text"
	TypePath      Type = "path"
	TypeBlur      Type = "blur"
	TypeGroup     Type = "group"
)

// Vertex is one point of a polygon or freehand path. Either coordinate may
// be absent; a partial vertex contributes nothing to bounds or hit tests
// (it is skipped, never zero-filled).
type Vertex struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
}

// Layer is a single annotation record. Only the fields relevant to the
// layer's Type carry meaning; the rest stay nil. See the package
// documentation for the optional-field and legacy-record conventions.
type Layer struct {
	ID   string `json:"id,omitempty"`
	Type Type   `json:"type,omitempty"`

	// Rectangular shapes (rectangle, blur, text boxes with explicit size)
	// and the center of circles, ellipses, polygons, and stars.
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`

	// Lines and arrows.
	X1       *float64 `json:"x1,omitempty"`
	Y1       *float64 `json:"y1,omitempty"`
	X2       *float64 `json:"x2,omitempty"`
	Y2       *float64 `json:"y2,omitempty"`
	ControlX *float64 `json:"controlX,omitempty"` // quadratic curve control, arrows only
	ControlY *float64 `json:"controlY,omitempty"`

	// Circles and ellipses. RadiusX/RadiusY take precedence over Radius
	// independently per axis.
	Radius  *float64 `json:"radius,omitempty"`
	RadiusX *float64 `json:"radiusX,omitempty"`
	RadiusY *float64 `json:"radiusY,omitempty"`

	// Stars.
	OuterRadius *float64 `json:"outerRadius,omitempty"`
	InnerRadius *float64 `json:"innerRadius,omitempty"`

	// Polygons, paths, and stars share the persisted "points" field: an
	// array of vertices for polygon/path, a point count for star. The
	// decoder splits the two forms into Points and PointCount.
	Points     []Vertex `json:"-"`
	PointCount *float64 `json:"-"`

	// Text.
	Text     string   `json:"text,omitempty"`
	FontSize *float64 `json:"fontSize,omitempty"`

	// Arrow styling.
	ArrowStyle    string   `json:"arrowStyle,omitempty"`    // none, single, double
	ArrowHeadType string   `json:"arrowHeadType,omitempty"` // pointed, chevron, standard
	HeadScale     *float64 `json:"headScale,omitempty"`
	TailWidth     *float64 `json:"tailWidth,omitempty"`

	// Presentation style, carried for round-tripping. Colors are hex
	// strings; see ParseColor.
	Stroke      string   `json:"stroke,omitempty"`
	Fill        string   `json:"fill,omitempty"`
	StrokeWidth *float64 `json:"strokeWidth,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty"`

	// Interaction state, honored by the hit-test stage only.
	Visible *bool `json:"visible,omitempty"` // default true
	Locked  *bool `json:"locked,omitempty"`  // default false

	// Group children. The grouping manager owns the hierarchy; the kernel
	// only ever walks it read-only, with cycle and depth protection.
	Children []*Layer `json:"layers,omitempty"`
}

// Num reads an optional numeric field. It reports the value and whether the
// field is usable: present and finite. NaN and ±Inf count as missing, so a
// corrupt field can never leak into a comparison.
func Num(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	v := *p
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Float returns a pointer to v. Convenience for building layers in code.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// IsVisible reports whether the layer should be considered visible.
// Absent means visible (the editor default).
func (l *Layer) IsVisible() bool {
	return l.Visible == nil || *l.Visible
}

// IsLocked reports whether the layer is locked against interaction.
// Absent means unlocked.
func (l *Layer) IsLocked() bool {
	return l.Locked != nil && *l.Locked
}

// Normalize assigns a Type to a legacy untagged record by field presence:
// rectangular beats line-like beats circular. Tagged records are left alone.
// The JSON decoder calls this once at the boundary; callers constructing
// layers in code may call it themselves.
func (l *Layer) Normalize() {
	if l.Type != "" {
		return
	}
	_, hasX := Num(l.X)
	_, hasY := Num(l.Y)
	_, hasW := Num(l.Width)
	_, hasH := Num(l.Height)
	if hasX && hasY && hasW && hasH {
		l.Type = TypeRectangle
		return
	}
	_, hasX1 := Num(l.X1)
	_, hasY1 := Num(l.Y1)
	_, hasX2 := Num(l.X2)
	_, hasY2 := Num(l.Y2)
	if hasX1 && hasY1 && hasX2 && hasY2 {
		l.Type = TypeLine
		return
	}
	_, hasR := Num(l.Radius)
	if hasX && hasY && hasR {
		l.Type = TypeCircle
	}
}
