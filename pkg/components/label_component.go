package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LabelComponent 文字标签组件
// PositionComponent 表示文字中心点
type LabelComponent struct {
	Text  string
	Font  *text.GoTextFace
	Color color.RGBA
}
