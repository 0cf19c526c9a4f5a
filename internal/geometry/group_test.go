package geometry

import (
	"testing"

	"github.com/slickdexic/layers-kernel/internal/layer"
)

func rect(x, y, w, h float64) *layer.Layer {
	return &layer.Layer{
		Type:   layer.TypeRectangle,
		X:      layer.Float(x),
		Y:      layer.Float(y),
		Width:  layer.Float(w),
		Height: layer.Float(h),
	}
}

func group(children ...*layer.Layer) *layer.Layer {
	return &layer.Layer{Type: layer.TypeGroup, Children: children}
}

func TestGroupBounds(t *testing.T) {
	t.Run("flat group unions children", func(t *testing.T) {
		g := group(rect(0, 0, 10, 10), rect(40, 40, 10, 10))
		got := LayerBounds(g)
		want := &Bounds{X: 0, Y: 0, Width: 50, Height: 50}
		if !boundsEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("nested groups", func(t *testing.T) {
		g := group(
			rect(0, 0, 10, 10),
			group(rect(100, 100, 20, 20)),
		)
		got := LayerBounds(g)
		want := &Bounds{X: 0, Y: 0, Width: 120, Height: 120}
		if !boundsEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("empty group", func(t *testing.T) {
		if got := LayerBounds(group()); got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})

	t.Run("children without geometry are skipped", func(t *testing.T) {
		g := group(
			&layer.Layer{Type: layer.TypeRectangle}, // no coordinates
			rect(5, 5, 10, 10),
			nil,
		)
		got := LayerBounds(g)
		want := &Bounds{X: 5, Y: 5, Width: 10, Height: 10}
		if !boundsEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("cycle terminates with partial result", func(t *testing.T) {
		a := group(rect(0, 0, 10, 10))
		b := group(a, rect(20, 20, 10, 10))
		a.Children = append(a.Children, b) // a -> b -> a

		got := LayerBounds(b)
		if got == nil {
			t.Fatal("cycle should still yield the reachable children's bounds")
		}
		want := &Bounds{X: 0, Y: 0, Width: 30, Height: 30}
		if !boundsEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("self-referential group", func(t *testing.T) {
		g := group(rect(1, 1, 2, 2))
		g.Children = append(g.Children, g)
		got := LayerBounds(g)
		want := &Bounds{X: 1, Y: 1, Width: 2, Height: 2}
		if !boundsEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("depth cap cuts runaway nesting", func(t *testing.T) {
		// A chain deeper than the cap: the deepest rectangle is unreachable,
		// but a sibling above the cap still contributes.
		deep := rect(1000, 1000, 1, 1)
		inner := group(deep)
		for i := 0; i < 15; i++ {
			inner = group(inner)
		}
		g := group(rect(0, 0, 10, 10), inner)

		got := LayerBounds(g)
		want := &Bounds{X: 0, Y: 0, Width: 10, Height: 10}
		if !boundsEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("result does not alias a child's bounds", func(t *testing.T) {
		child := rect(0, 0, 10, 10)
		g := group(child)
		first := LayerBounds(g)
		second := LayerBounds(g)
		if first == second {
			t.Error("repeated calls must not share a bounds value")
		}
		first.Width = 999
		if second.Width != 10 {
			t.Error("mutating one result leaked into another")
		}
	})
}
