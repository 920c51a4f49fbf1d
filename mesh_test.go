package showcase

import (
	"math"
	"testing"
)

func TestQuadMeshIndices(t *testing.T) {
	q := newQuadMesh(meshSegments)
	if got, want := len(q.indices), meshSegments*meshSegments*6; got != want {
		t.Fatalf("indices = %d, want %d", got, want)
	}
	if got := len(q.verts); got != 81 {
		t.Fatalf("verts = %d, want 81", got)
	}
	for i, idx := range q.indices {
		if int(idx) >= len(q.verts) {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}
	// First cell: two triangles sharing the diagonal.
	want := []uint16{0, 1, 9, 1, 10, 9}
	for i, v := range want {
		if q.indices[i] != v {
			t.Errorf("indices[%d] = %d, want %d", i, q.indices[i], v)
		}
	}
}

func TestQuadMeshMinimumSegments(t *testing.T) {
	q := newQuadMesh(0)
	if q.segments != 1 || len(q.indices) != 6 || len(q.verts) != 4 {
		t.Errorf("degenerate mesh = %d segments, %d indices, %d verts", q.segments, len(q.indices), len(q.verts))
	}
}

func TestBendDepth(t *testing.T) {
	sizes := Sizes{Width: 10, Height: 5}
	tests := []struct {
		name       string
		x, y, bend float64
		want       float64
	}{
		{"center", 0, 0, 1, 2},
		{"negative bend", 0, 0, -0.5, 1},
		{"horizontal edge", 5, 0, 1, 1},
		{"corner", 5, 2.5, 1, 0},
		{"no bend", 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bendDepth(tt.x, tt.y, sizes, tt.bend)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("bendDepth(%v, %v, %v) = %v, want %v", tt.x, tt.y, tt.bend, got, tt.want)
			}
		})
	}
	if got := bendDepth(0, 0, Sizes{}, 1); got != 0 {
		t.Errorf("bendDepth with empty sizes = %v, want 0", got)
	}
}
