// Package layer defines the shape records the geometry kernel operates on.
//
// A Layer is one annotation placed on top of a background image: a rectangle,
// circle, ellipse, line, arrow, polygon, star, text box, freehand path, blur
// region, or group. Layers are plain data. They are owned and mutated by the
// external layer store; the kernel packages (geometry, hittest, arrow) read
// them and never write back.
//
// # Optional fields
//
// Persisted layers come from an editor front end that omits fields freely, so
// every numeric geometry field is a pointer: nil means the field was absent.
// A layer missing a field its own geometry requires (for example a rectangle
// without a width) has no geometry, and the kernel reports "no result" for it
// rather than guessing. Non-finite values (NaN, ±Inf) are treated exactly
// like missing fields; use Num to read any optional field safely.
//
// # Legacy records
//
// Old revisions predate the type tag. The decoder infers the shape family
// from which fields are present, in this priority order: rectangular
// (x, y, width, height), then line-like (x1, y1, x2, y2), then circular
// (x, y, radius). Inference happens exactly once, when the record is
// unmarshaled; nothing downstream re-infers.
//
// # Coordinate system
//
// All coordinates are in the layer set's own space: origin at the top-left
// of the background image, X increasing rightward, Y increasing downward.
package layer
