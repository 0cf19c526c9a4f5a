// Package server exposes the layer geometry kernel as an MCP tool server.
//
// The kernel itself (geometry, hittest, arrow) is an in-process library with
// no wire protocol; this package is one consumer of it — a JSON-RPC 2.0
// server over stdio following the MCP (Model Context Protocol) conventions,
// so editor tooling and MCP-compatible clients can query annotation geometry
// without linking the Go packages.
//
// # Protocol
//
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods: initialize, tools/list, tools/call, ping.
//
// # Available Tools
//
// Layer geometry:
//   - layer_bounds: bounding box of one layer record
//   - layers_bounds: merged bounding box of a layer collection
//   - expand_bounds: grow or shrink a bounding box symmetrically
//   - hit_test: first visible, unlocked layer containing a point
//   - star_points: synthesized outline of a star layer
//
// Arrow geometry:
//   - arrow_outline: closed shaft-plus-head polygon (straight or quadratic),
//     with the triangle list renderers fill
//   - bezier_tangent: tangent angle of a quadratic Bézier at parameter t
//
// Style:
//   - style_color: validate and normalize a layer style color
//
// Canvas (background image):
//   - canvas_info: dimensions of the background image
//   - canvas_crop: crop a bounds region, optionally scaled
//   - canvas_blur_region: apply a blur layer's effect to the canvas
//
// # Null results
//
// The kernel reports "no geometry" and "no hit" as null values, never as
// errors. Tool results mirror that: a layer with no computable bounds yields
// {"bounds": null}, a miss yields {"layer": null}. JSON-RPC errors are
// reserved for malformed arguments and I/O failures.
//
// # Ordering
//
// hit_test iterates the supplied collection in array order and returns the
// first match. The kernel imposes no z-order policy; supply layers
// top-to-bottom if topmost-wins semantics are wanted.
package server
