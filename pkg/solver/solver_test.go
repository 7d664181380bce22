package solver

import (
	"errors"
	"math"
	"testing"
)

func TestNewton(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		x0   float64
		want float64
	}{
		{"quadratic", func(x float64) float64 { return x*x - 4 }, 1, 2},
		{"quadratic negative branch", func(x float64) float64 { return x*x - 4 }, -1, -2},
		{"cubic", func(x float64) float64 { return x*x*x - 27 }, 2, 3},
		{"transcendental", func(x float64) float64 { return math.Cos(x) - x }, 1, 0.7390851332151607},
		{"root at seed", func(x float64) float64 { return x - 1 }, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Newton(tt.f, tt.x0)
			if err != nil {
				t.Fatalf("Newton() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-8 {
				t.Errorf("Newton() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewtonNoConvergence(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		x0   float64
	}{
		{"no real root", func(x float64) float64 { return x*x + 1 }, 3},
		{"flat function", func(x float64) float64 { return 1 }, 0},
		{"not evaluable", func(x float64) float64 { return math.NaN() }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Newton(tt.f, tt.x0); !errors.Is(err, ErrNoConvergence) {
				t.Errorf("Newton() error = %v, want ErrNoConvergence", err)
			}
		})
	}
}
