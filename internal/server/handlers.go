package server

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/slickdexic/layers-kernel/internal/arrow"
	"github.com/slickdexic/layers-kernel/internal/canvas"
	"github.com/slickdexic/layers-kernel/internal/geometry"
	"github.com/slickdexic/layers-kernel/internal/hittest"
	"github.com/slickdexic/layers-kernel/internal/layer"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "layer_bounds", "hit_test").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// Null kernel results ("no geometry", "no hit") are successful responses
// carrying null fields, not errors.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Layer geometry
	case "layer_bounds":
		return handleLayerBounds(args)
	case "layers_bounds":
		return handleLayersBounds(args)
	case "expand_bounds":
		return handleExpandBounds(args)
	case "hit_test":
		return handleHitTest(args)
	case "star_points":
		return handleStarPoints(args)

	// Arrow geometry
	case "arrow_outline":
		return handleArrowOutline(args)
	case "bezier_tangent":
		return handleBezierTangent(args)

	// Style
	case "style_color":
		return handleStyleColor(args)

	// Canvas
	case "canvas_info":
		return s.handleCanvasInfo(args)
	case "canvas_crop":
		return s.handleCanvasCrop(args)
	case "canvas_blur_region":
		return s.handleCanvasBlurRegion(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Layer Geometry Handlers ===

type layerBoundsArgs struct {
	Layer *layer.Layer `json:"layer"`
}

// boundsResult carries a bounds answer; Bounds is null when the layer has no
// computable geometry.
type boundsResult struct {
	Bounds *geometry.Bounds `json:"bounds"`
	Center *geometry.Point  `json:"center,omitempty"`
}

func handleLayerBounds(args json.RawMessage) (interface{}, error) {
	var a layerBoundsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Layer == nil {
		return nil, fmt.Errorf("missing layer")
	}
	b := geometry.LayerBounds(a.Layer)
	return &boundsResult{Bounds: b, Center: geometry.Center(b)}, nil
}

type layersBoundsArgs struct {
	Layers []*layer.Layer `json:"layers"`
}

func handleLayersBounds(args json.RawMessage) (interface{}, error) {
	var a layersBoundsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b := geometry.MultiLayerBounds(a.Layers)
	return &boundsResult{Bounds: b, Center: geometry.Center(b)}, nil
}

type expandBoundsArgs struct {
	Bounds *geometry.Bounds `json:"bounds"`
	Amount float64          `json:"amount"`
}

func handleExpandBounds(args json.RawMessage) (interface{}, error) {
	var a expandBoundsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Bounds == nil {
		return nil, fmt.Errorf("missing bounds")
	}
	b := geometry.Expand(a.Bounds, a.Amount)
	return &boundsResult{Bounds: b, Center: geometry.Center(b)}, nil
}

type hitTestArgs struct {
	Layers []*layer.Layer `json:"layers"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
}

// hitTestResult reports the first match in array order. Index is -1 and
// Layer null when nothing matched.
type hitTestResult struct {
	Index int          `json:"index"`
	Layer *layer.Layer `json:"layer"`
}

func handleHitTest(args json.RawMessage) (interface{}, error) {
	var a hitTestArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	hit := hittest.LayerAtPoint(geometry.Point{X: a.X, Y: a.Y}, hittest.NewSnapshot(a.Layers))
	result := &hitTestResult{Index: -1}
	if hit != nil {
		result.Layer = hit
		for i, l := range a.Layers {
			if l == hit {
				result.Index = i
				break
			}
		}
	}
	return result, nil
}

type starPointsResult struct {
	Points []geometry.Point `json:"points"`
}

func handleStarPoints(args json.RawMessage) (interface{}, error) {
	var a layerBoundsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Layer == nil {
		return nil, fmt.Errorf("missing layer")
	}
	return &starPointsResult{Points: geometry.StarVertices(a.Layer)}, nil
}

// === Arrow Geometry Handlers ===

type arrowOutlineArgs struct {
	X1         float64  `json:"x1"`
	Y1         float64  `json:"y1"`
	X2         float64  `json:"x2"`
	Y2         float64  `json:"y2"`
	ControlX   *float64 `json:"control_x,omitempty"`
	ControlY   *float64 `json:"control_y,omitempty"`
	ShaftWidth float64  `json:"shaft_width"`
	HeadSize   float64  `json:"head_size"`
	Style      string   `json:"style"`
	HeadType   string   `json:"head_type"`
	HeadScale  float64  `json:"head_scale"`
	TailWidth  float64  `json:"tail_width"`
}

// arrowOutlineResult is the derived arrow geometry. Straight arrows carry
// Outline (the closed shaft-plus-head polygon) and its Triangles; curved
// arrows carry the flattened Path plus one tangent-aligned head outline per
// arrowhead.
type arrowOutlineResult struct {
	Outline   []geometry.Point    `json:"outline,omitempty"`
	Triangles [][3]geometry.Point `json:"triangles,omitempty"`
	Path      []geometry.Point    `json:"path,omitempty"`
	Heads     [][]geometry.Point  `json:"heads,omitempty"`
}

func handleArrowOutline(args json.RawMessage) (interface{}, error) {
	var a arrowOutlineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	style := arrow.Style(a.Style)
	if a.Style == "" {
		style = arrow.StyleSingle
	}
	head := arrow.HeadType(a.HeadType)
	if a.HeadType == "" {
		head = arrow.HeadPointed
	}
	if a.ShaftWidth == 0 {
		a.ShaftWidth = 4
	}
	if a.HeadSize == 0 {
		a.HeadSize = 12
	}
	if a.HeadScale == 0 {
		a.HeadScale = 1
	}

	if a.ControlX != nil && a.ControlY != nil {
		cx, cy := *a.ControlX, *a.ControlY
		result := &arrowOutlineResult{
			Path: arrow.FlattenQuad(16, a.X1, a.Y1, cx, cy, a.X2, a.Y2),
		}
		if style == arrow.StyleSingle || style == arrow.StyleDouble {
			endAngle := arrow.QuadTangent(1, a.X1, a.Y1, cx, cy, a.X2, a.Y2)
			result.Heads = append(result.Heads,
				arrow.HeadOutline(a.X2, a.Y2, endAngle, head, a.HeadSize, a.HeadScale))
		}
		if style == arrow.StyleDouble {
			// The start head points back along the curve.
			startAngle := arrow.QuadTangent(0, a.X1, a.Y1, cx, cy, a.X2, a.Y2) + math.Pi
			result.Heads = append(result.Heads,
				arrow.HeadOutline(a.X1, a.Y1, startAngle, head, a.HeadSize, a.HeadScale))
		}
		return result, nil
	}

	angle := arrow.SegmentAngle(a.X1, a.Y1, a.X2, a.Y2)
	outline := arrow.BuildVertices(a.X1, a.Y1, a.X2, a.Y2, arrow.Options{
		Angle:          angle,
		PerpAngle:      angle + math.Pi/2,
		HalfShaftWidth: a.ShaftWidth / 2,
		HeadSize:       a.HeadSize,
		Style:          style,
		Head:           head,
		HeadScale:      a.HeadScale,
		TailWidth:      a.TailWidth,
	})
	triangles, err := arrow.Triangulate(outline)
	if err != nil {
		return nil, err
	}
	return &arrowOutlineResult{Outline: outline, Triangles: triangles}, nil
}

type bezierTangentArgs struct {
	T  float64 `json:"t"`
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	CX float64 `json:"cx"`
	CY float64 `json:"cy"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

type bezierTangentResult struct {
	Angle float64        `json:"angle"` // radians
	Point geometry.Point `json:"point"` // curve position at t
}

func handleBezierTangent(args json.RawMessage) (interface{}, error) {
	var a bezierTangentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.T < 0 || a.T > 1 || math.IsNaN(a.T) {
		return nil, fmt.Errorf("t must be in [0,1], got %v", a.T)
	}
	return &bezierTangentResult{
		Angle: arrow.QuadTangent(a.T, a.X0, a.Y0, a.CX, a.CY, a.X1, a.Y1),
		Point: arrow.QuadPoint(a.T, a.X0, a.Y0, a.CX, a.CY, a.X1, a.Y1),
	}, nil
}

// === Style Handlers ===

type styleColorArgs struct {
	Color string `json:"color"`
}

func handleStyleColor(args json.RawMessage) (interface{}, error) {
	var a styleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return layer.ParseColor(a.Color)
}

// === Canvas Handlers ===

type canvasInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleCanvasInfo(args json.RawMessage) (interface{}, error) {
	var a canvasInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return canvas.LoadInfo(s.cache, a.Path)
}

type canvasCropArgs struct {
	Path   string           `json:"path"`
	Bounds *geometry.Bounds `json:"bounds"`
	Scale  float64          `json:"scale"`
}

func (s *Server) handleCanvasCrop(args json.RawMessage) (interface{}, error) {
	var a canvasCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return canvas.CropBounds(img, a.Bounds, a.Scale)
}

type canvasBlurRegionArgs struct {
	Path   string           `json:"path"`
	Layer  *layer.Layer     `json:"layer,omitempty"`
	Bounds *geometry.Bounds `json:"bounds,omitempty"`
	Radius float64          `json:"radius"`
}

// handleCanvasBlurRegion blurs the region under a blur layer (or an explicit
// bounds) on the background image. The layer form runs through the same
// bounds calculation the editor uses, so the effect lands exactly under the
// layer's selection box.
func (s *Server) handleCanvasBlurRegion(args json.RawMessage) (interface{}, error) {
	var a canvasBlurRegionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b := a.Bounds
	if b == nil && a.Layer != nil {
		b = geometry.LayerBounds(a.Layer)
	}
	if b == nil {
		return nil, fmt.Errorf("no region: provide bounds or a layer with computable geometry")
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return canvas.BlurRegion(img, b, a.Radius)
}
