// Package hittest routes pointer events to layers.
//
// Given a point and the ordered layer collection supplied by the store,
// LayerAtPoint returns the first eligible layer whose geometry contains the
// point. Eligibility means visible and unlocked; containment is decided by a
// shape-specific test (exact for rectangles, circles, ellipses, segments,
// paths, polygons, and stars) with a bounding-box fallback for text and blur
// layers. Groups are never hit directly — their children are tested like any
// other entry of the collection the caller supplies.
//
// # Ordering
//
// Iteration is strictly in array order and the first match wins. The kernel
// imposes no z-order policy of its own: callers that want topmost-wins click
// semantics must supply the collection in top-to-bottom order.
//
// # Coordinate space
//
// All tests run in the layer's own coordinate space. Rotation and zoom
// compensation are the caller's concern; in particular the segment hit
// tolerance is a fixed number of canvas units regardless of zoom.
package hittest
