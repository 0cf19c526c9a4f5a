package geometry

import (
	"github.com/slickdexic/layers-kernel/internal/layer"
)

// maxGroupDepth caps group-of-group traversal. The grouping manager keeps
// its tree shallow and acyclic, but the kernel cannot trust that: a cycle or
// runaway nesting in persisted data must degrade to a partial result, never
// an infinite recursion.
const maxGroupDepth = 10

// groupBounds aggregates the bounds of a group's children. Traversal is
// bounded two ways: a visited set keyed on layer identity cuts cycles, and
// the depth counter cuts chains deeper than maxGroupDepth. Branches cut off
// by either guard simply contribute nothing; whatever was reachable is still
// merged, so callers get the best-effort box rather than an error.
func groupBounds(l *layer.Layer, visited map[*layer.Layer]bool, depth int) *Bounds {
	if depth >= maxGroupDepth {
		return nil
	}
	if visited == nil {
		visited = make(map[*layer.Layer]bool)
	}
	if visited[l] {
		return nil
	}
	visited[l] = true

	var merged *Bounds
	for _, child := range l.Children {
		b := layerBounds(child, visited, depth+1)
		if b == nil {
			continue
		}
		if merged == nil {
			// Copy rather than alias: the merged box must stay
			// independent of any bounds handed out elsewhere.
			c := *b
			merged = &c
			continue
		}
		merged = union(*merged, *b)
	}
	return merged
}
