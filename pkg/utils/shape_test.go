package utils

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestClampCornerRadius(t *testing.T) {
	tests := []struct {
		name                  string
		width, height, radius float64
		want                  float64
	}{
		{"正常半径", 300, 60, 10, 10},
		{"胶囊形", 300, 60, 30, 30},
		{"超过短边一半", 300, 60, 45, 30},
		{"负半径", 300, 60, -5, 0},
		{"零尺寸", 0, 60, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampCornerRadius(tt.width, tt.height, tt.radius); got != tt.want {
				t.Errorf("ClampCornerRadius(%v, %v, %v) = %v, want %v", tt.width, tt.height, tt.radius, got, tt.want)
			}
		})
	}
}

// TestDrawRoundedRect 各种尺寸都能直接填充到目标图像，包括子图像
func TestDrawRoundedRect(t *testing.T) {
	tests := []struct {
		name                  string
		width, height, radius float64
	}{
		{"滑槽", 300, 60, 10},
		{"胶囊形", 300, 60, 30},
		{"直角", 120, 40, 0},
		{"零宽度", 0, 60, 10},
		{"负高度", 300, -1, 10},
	}

	dst := ebiten.NewImage(480, 320)
	defer dst.Deallocate()
	sub := dst.SubImage(dst.Bounds().Inset(20)).(*ebiten.Image)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			DrawRoundedRect(dst, 90, 120, tt.width, tt.height, tt.radius, color.RGBA{R: 0x33, G: 0x99, B: 0xff, A: 0x80})
			DrawRoundedRect(sub, 30, 30, tt.width, tt.height, tt.radius, color.White)
		})
	}
}
