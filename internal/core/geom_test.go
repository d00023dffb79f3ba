package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
			p := V(float64(tc.x)+0.5, float64(tc.y)+0.5)
			if got := r.ContainsPoint(p); got != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", p, got, tc.expected)
			}
		})
	}
}

func TestBoundsInsetAndClamp(t *testing.T) {
	b := NewBounds(V(0, 0), 5, 2)

	in := b.Inset(1)
	if in.Min != V(-4, -1) || in.Max != V(4, 1) {
		t.Errorf("Inset(1) = %+v", in)
	}

	// Insetting past the centre collapses the axis
	collapsed := b.Inset(3)
	if collapsed.Min.Y != 0 || collapsed.Max.Y != 0 {
		t.Errorf("Inset(3) should collapse Y to 0, got %+v", collapsed)
	}
	if collapsed.Min.X != -2 || collapsed.Max.X != 2 {
		t.Errorf("Inset(3) X = [%v,%v], expected [-2,2]", collapsed.Min.X, collapsed.Max.X)
	}

	tests := []struct {
		in, want Vec2
	}{
		{V(0, 0), V(0, 0)},
		{V(10, 0), V(4, 0)},
		{V(-10, -10), V(-4, -1)},
	}
	for _, tc := range tests {
		if got := in.Clamp(tc.in); got != tc.want {
			t.Errorf("Clamp(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}

	if !b.Expand(1).Contains(V(5.5, 2.5)) {
		t.Error("Expand(1) should contain (5.5, 2.5)")
	}
}

func TestVecOps(t *testing.T) {
	v := V(3, 4)
	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}
	n := v.Normalized()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalized length = %v", n.Len())
	}
	if !(Vec2{}).Normalized().IsZero() {
		t.Error("zero vector should normalize to zero")
	}
	if got := V(10, 0).ClampLen(8); got != V(8, 0) {
		t.Errorf("ClampLen = %v", got)
	}
	if got := Lerp(V(0, 0), V(10, 20), 0.7); math.Abs(got.X-7) > 1e-12 || math.Abs(got.Y-14) > 1e-12 {
		t.Errorf("Lerp = %v", got)
	}
	if got := Midpoint(V(100, 100), V(200, 120)); got != V(150, 110) {
		t.Errorf("Midpoint = %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if Clamp01(1.5) != 1 || Clamp01(-0.5) != 0 || Clamp01(0.25) != 0.25 {
		t.Error("Clamp01 out of range")
	}
}
