package geometry

import (
	"math"
	"testing"

	"github.com/slickdexic/layers-kernel/internal/layer"
)

func TestStarVertices(t *testing.T) {
	t.Run("default five-point star", func(t *testing.T) {
		l := &layer.Layer{
			Type: layer.TypeStar,
			X:    layer.Float(100), Y: layer.Float(100),
			OuterRadius: layer.Float(50),
		}
		verts := StarVertices(l)
		if len(verts) != 10 {
			t.Fatalf("vertex count: got %d, want 10", len(verts))
		}
		// First vertex is the top outer point.
		if math.Abs(verts[0].X-100) > epsilon || math.Abs(verts[0].Y-50) > epsilon {
			t.Errorf("top vertex: got %+v, want {100 50}", verts[0])
		}
		// Vertices alternate between outer radius and the default inner
		// radius (half the outer).
		for i, v := range verts {
			d := math.Hypot(v.X-100, v.Y-100)
			want := 50.0
			if i%2 == 1 {
				want = 25.0
			}
			if math.Abs(d-want) > epsilon {
				t.Errorf("vertex %d radius: got %v, want %v", i, d, want)
			}
		}
	})

	t.Run("explicit point count and inner radius", func(t *testing.T) {
		l := &layer.Layer{
			Type: layer.TypeStar,
			X:    layer.Float(0), Y: layer.Float(0),
			OuterRadius: layer.Float(10),
			InnerRadius: layer.Float(7),
			PointCount:  layer.Float(8),
		}
		verts := StarVertices(l)
		if len(verts) != 16 {
			t.Fatalf("vertex count: got %d, want 16", len(verts))
		}
		if d := math.Hypot(verts[1].X, verts[1].Y); math.Abs(d-7) > epsilon {
			t.Errorf("inner radius: got %v, want 7", d)
		}
	})

	t.Run("missing outer radius", func(t *testing.T) {
		l := &layer.Layer{Type: layer.TypeStar, X: layer.Float(0), Y: layer.Float(0)}
		if verts := StarVertices(l); verts != nil {
			t.Errorf("got %d vertices, want nil", len(verts))
		}
	})

	t.Run("point count below minimum falls back to default", func(t *testing.T) {
		l := &layer.Layer{
			Type: layer.TypeStar,
			X:    layer.Float(0), Y: layer.Float(0),
			OuterRadius: layer.Float(10),
			PointCount:  layer.Float(2),
		}
		if verts := StarVertices(l); len(verts) != 10 {
			t.Errorf("vertex count: got %d, want 10", len(verts))
		}
	})

	t.Run("point count above maximum is clamped", func(t *testing.T) {
		l := &layer.Layer{
			Type: layer.TypeStar,
			X:    layer.Float(0), Y: layer.Float(0),
			OuterRadius: layer.Float(10),
			PointCount:  layer.Float(100000),
		}
		if verts := StarVertices(l); len(verts) != 720 {
			t.Errorf("vertex count: got %d, want 720", len(verts))
		}
	})

	t.Run("negative radii read as absolute", func(t *testing.T) {
		l := &layer.Layer{
			Type: layer.TypeStar,
			X:    layer.Float(0), Y: layer.Float(0),
			OuterRadius: layer.Float(-10),
		}
		verts := StarVertices(l)
		if verts == nil {
			t.Fatal("expected vertices")
		}
		if d := math.Hypot(verts[0].X, verts[0].Y); math.Abs(d-10) > epsilon {
			t.Errorf("outer radius: got %v, want 10", d)
		}
	})
}

func TestStarBounds(t *testing.T) {
	t.Run("from radii", func(t *testing.T) {
		l := &layer.Layer{
			Type: layer.TypeStar,
			X:    layer.Float(100), Y: layer.Float(100),
			OuterRadius: layer.Float(50),
			PointCount:  layer.Float(4),
		}
		// With four points the outline touches all four compass extremes.
		got := LayerBounds(l)
		want := &Bounds{X: 50, Y: 50, Width: 100, Height: 100}
		if !boundsEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("falls back to explicit vertex array", func(t *testing.T) {
		l := &layer.Layer{
			Type: layer.TypeStar,
			Points: []layer.Vertex{
				{X: layer.Float(0), Y: layer.Float(0)},
				{X: layer.Float(30), Y: layer.Float(40)},
			},
		}
		got := LayerBounds(l)
		want := &Bounds{X: 0, Y: 0, Width: 30, Height: 40}
		if !boundsEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("no radii and no points", func(t *testing.T) {
		l := &layer.Layer{Type: layer.TypeStar}
		if got := LayerBounds(l); got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})
}
