// Package geometry computes axis-aligned bounding boxes for annotation
// layers and provides set algebra over them.
//
// This is the leaf of the kernel: it depends only on the layer data model.
// The selection UI places handles with LayerBounds and Center, the alignment
// and distribution commands compare the same boxes, and the grouping manager
// aggregates children with MergeBounds and MultiLayerBounds — so every
// consumer sees one consistent bounds calculation.
//
// # Result convention
//
// Bounds-producing functions return nil when the answer cannot be computed:
// a required field is missing or non-finite, a points array is too short, or
// the layer type is unrecognized. They never guess and never panic on bad
// data. A Bounds that is returned is always normalized: Width and Height are
// non-negative, with negative source extents folded into the origin.
//
// # Purity
//
// Every function is a side-effect-free transformation of its inputs. Passed
// layers are never mutated and never retained, so concurrent callers need no
// coordination beyond not mutating the layer collection mid-call.
package geometry
