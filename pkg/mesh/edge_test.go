package mesh

import (
	"math"
	"testing"
)

func TestEdgeLength(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		a, b [3]float64
		want float64
	}{
		{
			name: "semicircle",
			edge: NewEdge(0, 1, pt(1, 1, 0)),
			a:    [3]float64{0, 0, 0},
			b:    [3]float64{2, 0, 0},
			want: math.Pi,
		},
		{
			name: "quarter arc",
			edge: NewEdge(0, 1, pt(math.Sqrt2 / 2, math.Sqrt2 / 2, 0)),
			a:    [3]float64{1, 0, 0},
			b:    [3]float64{0, 1, 0},
			want: math.Pi / 2,
		},
		{
			name: "collinear falls back to chord",
			edge: NewEdge(0, 1, pt(1, 0, 0)),
			a:    [3]float64{0, 0, 0},
			b:    [3]float64{3, 0, 0},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := pt(tt.a[0], tt.a[1], tt.a[2])
			b := pt(tt.b[0], tt.b[1], tt.b[2])
			if got := tt.edge.Length(a, b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEdgeConnects(t *testing.T) {
	e := NewEdge(2, 6, pt(0, 0, 0))
	if !e.Connects(2, 6) || !e.Connects(6, 2) {
		t.Error("Connects must be order-insensitive")
	}
	if e.Connects(2, 5) {
		t.Error("Connects(2, 5) = true for edge 2-6")
	}
}

func TestEdgeIsValid(t *testing.T) {
	a, b := pt(0, 0, 0), pt(2, 0, 0)

	if !NewEdge(0, 1, pt(1, 0.5, 0)).IsValid(a, b) {
		t.Error("proper arc reported invalid")
	}
	if NewEdge(0, 1, pt(1, 0, 0)).IsValid(a, b) {
		t.Error("collinear arc reported valid")
	}
	if NewEdge(0, 1, pt(1, 1, 0)).IsValid(a, a) {
		t.Error("zero-length edge reported valid")
	}
}
