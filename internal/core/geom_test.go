package core

import "testing"

func TestRectContains(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		x, y     int
		expected bool
	}{
		{"inside", NewRect(0, 0, 10, 10), 5, 5, true},
		{"top-left corner", NewRect(0, 0, 10, 10), 0, 0, true},
		{"right edge exclusive", NewRect(0, 0, 10, 10), 10, 5, false},
		{"bottom edge exclusive", NewRect(0, 0, 10, 10), 5, 10, false},
		{"outside", NewRect(2, 2, 3, 3), 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-3) != 3 || Abs(3) != 3 {
		t.Error("Abs failed")
	}
	if Min(2, 5) != 2 || Min(5, 2) != 2 {
		t.Error("Min failed")
	}
	if Max(2, 5) != 5 || Max(5, 2) != 5 {
		t.Error("Max failed")
	}
}
