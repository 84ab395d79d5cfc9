package systems

import (
	"image/color"

	"github.com/gonewx/slidelock/pkg/components"
	"github.com/gonewx/slidelock/pkg/ecs"
	"github.com/gonewx/slidelock/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体
//
// 职责：
//   - 渲染圆角背景（根据按钮状态选择颜色）
//   - 渲染按钮文字（自动居中，带阴影）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	utils.DrawRoundedRect(screen, pos.X, pos.Y, button.Width, button.Height, button.CornerRadius, buttonColor(button))
	s.drawButtonText(screen, button, pos.X, pos.Y)
}

// buttonColor 根据状态选择背景色
func buttonColor(button *components.ButtonComponent) color.RGBA {
	switch button.State {
	case components.UIHovered:
		return button.HoverColor
	case components.UIClicked:
		return button.PressedColor
	case components.UIDisabled:
		c := button.NormalColor
		c.A /= 2
		return c
	default:
		return button.NormalColor
	}
}

// drawButtonText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Text == "" || button.Font == nil {
		return
	}

	centerX := x + button.Width/2
	centerY := y + button.Height/2

	shadowOffsetX := 1.0
	shadowOffsetY := 1.0

	// 为了让"文字+阴影"整体看起来垂直居中，将主文字向上偏移阴影的一半
	visualCenterOffsetY := -shadowOffsetY / 2.0

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+shadowOffsetX, centerY+shadowOffsetY+visualCenterOffsetY)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 180})
	text.Draw(screen, button.Text, button.Font, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY+visualCenterOffsetY)
	op.ColorScale.ScaleWithColor(button.TextColor)
	text.Draw(screen, button.Text, button.Font, op)
}
