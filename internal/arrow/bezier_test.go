package arrow

import (
	"math"
	"testing"
)

const angleTol = 1e-5

func TestQuadPoint(t *testing.T) {
	// Symmetric arc: P0=(0,0), C=(50,50), P2=(100,0).
	tests := []struct {
		name  string
		t     float64
		wantX float64
		wantY float64
	}{
		{"start", 0, 0, 0},
		{"apex", 0.5, 50, 25},
		{"end", 1, 100, 0},
		{"quarter", 0.25, 25, 18.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuadPoint(tt.t, 0, 0, 50, 50, 100, 0)
			if math.Abs(got.X-tt.wantX) > angleTol || math.Abs(got.Y-tt.wantY) > angleTol {
				t.Errorf("got %+v, want {%v %v}", got, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestQuadTangent(t *testing.T) {
	// Same arc: the tangent leaves the start toward the control point and
	// arrives at the end from the control point.
	if got := QuadTangent(0, 0, 0, 50, 50, 100, 0); math.Abs(got-math.Pi/4) > angleTol {
		t.Errorf("tangent at 0: got %v, want %v", got, math.Pi/4)
	}
	if got := QuadTangent(1, 0, 0, 50, 50, 100, 0); math.Abs(got+math.Pi/4) > angleTol {
		t.Errorf("tangent at 1: got %v, want %v", got, -math.Pi/4)
	}
	// Apex of the symmetric arc is horizontal.
	if got := QuadTangent(0.5, 0, 0, 50, 50, 100, 0); math.Abs(got) > angleTol {
		t.Errorf("tangent at apex: got %v, want 0", got)
	}
}

func TestFlattenQuad(t *testing.T) {
	pts := FlattenQuad(16, 0, 0, 50, 50, 100, 0)
	if len(pts) != 17 {
		t.Fatalf("sample count: got %d, want 17", len(pts))
	}
	if pts[0].X != 0 || pts[0].Y != 0 {
		t.Errorf("first sample: got %+v, want the start point", pts[0])
	}
	if pts[16].X != 100 || pts[16].Y != 0 {
		t.Errorf("last sample: got %+v, want the end point", pts[16])
	}
	// Samples advance monotonically in X for this curve.
	for i := 1; i < len(pts); i++ {
		if pts[i].X <= pts[i-1].X {
			t.Errorf("sample %d not advancing: %v then %v", i, pts[i-1].X, pts[i].X)
		}
	}

	t.Run("segment count floored at one", func(t *testing.T) {
		pts := FlattenQuad(0, 0, 0, 50, 50, 100, 0)
		if len(pts) != 2 {
			t.Errorf("sample count: got %d, want 2", len(pts))
		}
	})
}

func TestSegmentAngle(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"east", 0, 0, 10, 0, 0},
		{"south", 0, 0, 0, 10, math.Pi / 2},
		{"northwest", 0, 0, -10, -10, -3 * math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentAngle(tt.x1, tt.y1, tt.x2, tt.y2); math.Abs(got-tt.want) > angleTol {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
