// Package arrow derives the outline geometry of arrow annotations.
//
// BuildVertices turns a directed segment plus style parameters into a single
// closed polygon covering the shaft and head(s); the rendering backend fills
// that polygon, either directly or via the triangle list from Triangulate.
// The quadratic Bézier helpers give curved arrows their endpoint tangents so
// heads stay aligned with the curve, and let other stages flatten the curve
// into segments.
//
// Everything here is pure computation on plain values: no rendering, no
// retained state, safe for concurrent callers.
package arrow
