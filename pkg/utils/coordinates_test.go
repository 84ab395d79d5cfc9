package utils

import "testing"

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 100, Y: 20, Width: 200, Height: 20}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"在矩形内", 150, 25, true},
		{"左边界", 100, 25, true},
		{"右边界", 300, 40, true},
		{"左边界外", 99, 25, false},
		{"右边界外", 301, 25, false},
		{"上边界外", 150, 19, false},
		{"下边界外", 150, 41, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRect_Expand(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}.Expand(5)
	if r != (Rect{X: 5, Y: 5, Width: 30, Height: 30}) {
		t.Errorf("Expand(5) = %+v", r)
	}
	if !r.Contains(6, 6) {
		t.Error("expanded rect should contain (6, 6)")
	}
}
