package core

import "testing"

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
		})
	}
}

func TestRectFContainsStrict(t *testing.T) {
	r := RectF{X: 30, Y: 60, W: 140, H: 30}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"center", 100, 75, true},
		{"just inside corner", 30.001, 60.001, true},
		{"on left edge", 30, 75, false},
		{"on right edge", 170, 75, false},
		{"on top edge", 100, 60, false},
		{"on bottom edge", 100, 90, false},
		{"outside", 10, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsStrict(tc.x, tc.y); got != tc.expected {
				t.Errorf("ContainsStrict(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	if r.Right() != 170 || r.Bottom() != 90 {
		t.Errorf("Right/Bottom = %v/%v, expected 170/90", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if result := ClampF(tc.val, tc.min, tc.max); result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}

func TestIntentString(t *testing.T) {
	tests := []struct {
		in       Intent
		expected string
	}{
		{Intent{}, "-"},
		{Intent{Left: true}, "L"},
		{Intent{Right: true, Start: true}, "R+S"},
		{Intent{Left: true, Right: true}, "L+R"},
	}

	for _, tc := range tests {
		if got := tc.in.String(); got != tc.expected {
			t.Errorf("%+v.String() = %q, expected %q", tc.in, got, tc.expected)
		}
	}
	if !(Intent{}).IsZero() || (Intent{Start: true}).IsZero() {
		t.Error("IsZero mismatch")
	}
}
