package entities

import (
	"image/color"

	"github.com/gonewx/slidelock/pkg/components"
	"github.com/gonewx/slidelock/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 按钮默认配色
var (
	buttonNormalColor  = color.RGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff}
	buttonHoverColor   = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
	buttonPressedColor = color.RGBA{R: 0x28, G: 0x28, B: 0x28, A: 0xff}
	buttonTextColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// NewButton 创建纯色圆角按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角位置（屏幕坐标）
//   - width, height: 按钮尺寸
//   - label: 按钮文字
//   - font: 文字字体
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewButton(
	em *ecs.EntityManager,
	x, y, width, height float64,
	label string,
	font *text.GoTextFace,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Width:        width,
		Height:       height,
		NormalColor:  buttonNormalColor,
		HoverColor:   buttonHoverColor,
		PressedColor: buttonPressedColor,
		CornerRadius: height / 4,
		Text:         label,
		Font:         font,
		TextColor:    buttonTextColor,
		State:        components.UINormal,
		Enabled:      true,
		OnClick:      onClick,
	})

	return entity
}
