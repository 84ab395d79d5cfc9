package utils

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ClampCornerRadius 把圆角半径限制在 [0, min(w, h)/2]
func ClampCornerRadius(width, height, radius float64) float64 {
	limit := math.Min(width, height) / 2
	if limit < 0 {
		limit = 0
	}
	return Clamp(radius, 0, limit)
}

// RoundedRectPath 构建圆角矩形路径
func RoundedRectPath(x, y, width, height, radius float64) *vector.Path {
	r := float32(ClampCornerRadius(width, height, radius))
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+width), float32(y+height)

	path := &vector.Path{}
	path.MoveTo(x0+r, y0)
	path.LineTo(x1-r, y0)
	path.ArcTo(x1, y0, x1, y0+r, r)
	path.LineTo(x1, y1-r)
	path.ArcTo(x1, y1, x1-r, y1, r)
	path.LineTo(x0+r, y1)
	path.ArcTo(x0, y1, x0, y1-r, r)
	path.LineTo(x0, y0+r)
	path.ArcTo(x0, y0, x0+r, y0, r)
	path.Close()
	return path
}

// DrawRoundedRect 绘制填充的圆角矩形
// 宽或高不大于 0 时不绘制
func DrawRoundedRect(dst *ebiten.Image, x, y, width, height, radius float64, clr color.Color) {
	if width <= 0 || height <= 0 {
		return
	}

	op := &vector.DrawPathOptions{}
	op.AntiAlias = true
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(dst, RoundedRectPath(x, y, width, height, radius), &vector.FillOptions{}, op)
}
