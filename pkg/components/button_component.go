package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 按钮组件（ECS 架构）
// 纯色圆角按钮，包含外观、文字、状态、回调
type ButtonComponent struct {
	// ===== 按钮尺寸 =====
	Width  float64
	Height float64

	// ===== 外观 =====
	// NormalColor 正常状态背景色
	NormalColor color.RGBA
	// HoverColor 悬停状态背景色
	HoverColor color.RGBA
	// PressedColor 按下状态背景色
	PressedColor color.RGBA
	// CornerRadius 圆角半径
	CornerRadius float64

	// ===== 按钮文字 =====
	Text      string
	Font      *text.GoTextFace
	TextColor color.RGBA

	// ===== 按钮状态 =====
	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// ===== 点击回调 =====
	OnClick func()
}
