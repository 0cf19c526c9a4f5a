package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Schema fragments shared across tool definitions.
func layerSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
	}
}

func layersSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": "Ordered layer records, in the layer store's order",
		"items":       map[string]interface{}{"type": "object"},
	}
}

func boundsSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x":      map[string]interface{}{"type": "number"},
			"y":      map[string]interface{}{"type": "number"},
			"width":  map[string]interface{}{"type": "number"},
			"height": map[string]interface{}{"type": "number"},
		},
		"required": []string{"x", "y", "width", "height"},
	}
}

func numberArg(description string) map[string]interface{} {
	return map[string]interface{}{"type": "number", "description": description}
}

func stringArg(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		// Layer geometry
		{
			Name:        "layer_bounds",
			Description: "Compute the axis-aligned bounding box of one layer record. Returns null bounds for layers with no computable geometry (missing required fields, unknown type).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"layer": layerSchema("A single layer record (rectangle, circle, ellipse, line, arrow, polygon, star, text, path, blur, group)"),
				},
				"required": []string{"layer"},
			},
		},
		{
			Name:        "layers_bounds",
			Description: "Compute the merged bounding box of an ordered layer collection. Entries without computable geometry are ignored; null bounds when nothing contributes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"layers": layersSchema(),
				},
				"required": []string{"layers"},
			},
		},
		{
			Name:        "expand_bounds",
			Description: "Grow (positive amount) or shrink (negative amount) a bounding box symmetrically on all sides. Shrinking collapses toward the center, never below zero size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"bounds": boundsSchema("The box to adjust"),
					"amount": numberArg("Units to add on each side; negative shrinks"),
				},
				"required": []string{"bounds", "amount"},
			},
		},
		{
			Name:        "hit_test",
			Description: "Find the first visible, unlocked layer whose geometry contains the point, iterating the collection in array order. Supply layers top-to-bottom for topmost-wins semantics. Null layer and index -1 on a miss.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"layers": layersSchema(),
					"x":      numberArg("Point X in canvas coordinates"),
					"y":      numberArg("Point Y in canvas coordinates"),
				},
				"required": []string{"layers", "x", "y"},
			},
		},
		{
			Name:        "star_points",
			Description: "Synthesize the outline vertices of a star layer: points alternating between outer and inner radius, starting at the top. Null when the layer lacks a center or outer radius.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"layer": layerSchema("A star layer record with x, y, outerRadius, and optionally innerRadius and points count"),
				},
				"required": []string{"layer"},
			},
		},

		// Arrow geometry
		{
			Name:        "arrow_outline",
			Description: "Build the closed outline of an arrow between two points. Straight arrows return the shaft-plus-head polygon with its triangle list; arrows with a quadratic control point return the flattened path plus tangent-aligned head outlines.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x1":          numberArg("Tail X"),
					"y1":          numberArg("Tail Y"),
					"x2":          numberArg("Tip X"),
					"y2":          numberArg("Tip Y"),
					"control_x":   numberArg("Optional quadratic control point X"),
					"control_y":   numberArg("Optional quadratic control point Y"),
					"shaft_width": numberArg("Full shaft width in canvas units (default 4)"),
					"head_size":   numberArg("Head base length before scaling (default 12)"),
					"style":       stringArg("Arrowheads: none, single (default), or double"),
					"head_type":   stringArg("Head silhouette: pointed (default), chevron, or standard"),
					"head_scale":  numberArg("Multiplier on head extent (default 1); never changes vertex count"),
					"tail_width":  numberArg("Extra shaft width at the tail end only"),
				},
				"required": []string{"x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "bezier_tangent",
			Description: "Tangent angle (radians) and position of a quadratic Bezier at parameter t in [0,1]. At t=0 the tangent points from the start toward the control point; at t=1 from the control point toward the end.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"t":  numberArg("Curve parameter, 0 to 1"),
					"x0": numberArg("Start X"),
					"y0": numberArg("Start Y"),
					"cx": numberArg("Control point X"),
					"cy": numberArg("Control point Y"),
					"x1": numberArg("End X"),
					"y1": numberArg("End Y"),
				},
				"required": []string{"t", "x0", "y0", "cx", "cy", "x1", "y1"},
			},
		},

		// Style
		{
			Name:        "style_color",
			Description: "Validate and normalize a layer style color. Accepts hex in #rrggbb or #rgb form; returns the normalized hex plus RGB and HSL components.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": stringArg("Color string, e.g. \"#FF8800\""),
				},
				"required": []string{"color"},
			},
		},

		// Canvas
		{
			Name:        "canvas_info",
			Description: "Load the background image and report its dimensions, establishing the layer coordinate space.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringArg("Absolute path to the background image (PNG, JPEG, or GIF)"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "canvas_crop",
			Description: "Crop the region under a bounding box from the background image and return it as base64-encoded PNG, optionally rescaled.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   stringArg("Absolute path to the background image"),
					"bounds": boundsSchema("Region to extract, in canvas coordinates"),
					"scale":  numberArg("Output scale factor (default 1.0)"),
				},
				"required": []string{"path", "bounds"},
			},
		},
		{
			Name:        "canvas_blur_region",
			Description: "Apply a gaussian blur to the region under a blur layer (or an explicit bounds) and return the whole canvas with the region blurred in place, as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   stringArg("Absolute path to the background image"),
					"layer":  layerSchema("A blur layer record; its bounding box addresses the region"),
					"bounds": boundsSchema("Explicit region, used when no layer is given"),
					"radius": numberArg("Blur radius in pixels (default 8)"),
				},
				"required": []string{"path"},
			},
		},
	}
}
