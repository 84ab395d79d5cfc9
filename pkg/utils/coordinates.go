package utils

// Rect 屏幕坐标系中的轴对齐矩形
type Rect struct {
	X, Y, Width, Height float64
}

// Contains 检测点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X &&
		x <= r.X+r.Width &&
		y >= r.Y &&
		y <= r.Y+r.Height
}

// Expand 向四周扩展 padding 像素（用于放大点击区域）
func (r Rect) Expand(padding float64) Rect {
	return Rect{
		X:      r.X - padding,
		Y:      r.Y - padding,
		Width:  r.Width + padding*2,
		Height: r.Height + padding*2,
	}
}
