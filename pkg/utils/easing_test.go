package utils

import (
	"math"
	"testing"
)

// TestEaseOutQuad 测试二次方缓出函数
func TestEaseOutQuad(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.75}, // 1 - 0.25
		{"终点", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutQuad(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutQuad(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEasingEndpoints 所有缓动函数在端点处取 0 和 1
func TestEasingEndpoints(t *testing.T) {
	for _, name := range []string{"linear", "outQuad", "outCubic", "inOutCubic", "unknown"} {
		fn := EasingByName(name)
		if math.Abs(fn(0)) > 1e-9 || math.Abs(fn(1)-1) > 1e-9 {
			t.Errorf("%s: f(0)=%v f(1)=%v, want 0 and 1", name, fn(0), fn(1))
		}
	}
}

func TestEasingByName_DefaultIsOutQuad(t *testing.T) {
	if got := EasingByName("")(0.5); got != EaseOutQuad(0.5) {
		t.Errorf("default easing(0.5) = %v, want %v", got, EaseOutQuad(0.5))
	}
}

func TestLookupEasing(t *testing.T) {
	tests := []struct {
		name   string
		wantOK bool
	}{
		{"linear", true},
		{"outQuad", true},
		{"outCubic", true},
		{"inOutCubic", true},
		{"", false},
		{"bounce", false},
		{"OutQuad", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := LookupEasing(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("LookupEasing(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && fn == nil {
				t.Errorf("LookupEasing(%q) returned nil function", tt.name)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(240, 0, 0.25); got != 180 {
		t.Errorf("Lerp(240, 0, 0.25) = %v, want 180", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{-5, 0, 10, 0},
		{5, 0, 10, 5},
		{15, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
