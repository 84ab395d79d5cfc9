package systems

import (
	"github.com/gonewx/slidelock/pkg/components"
	"github.com/gonewx/slidelock/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// LabelRenderSystem 文字标签渲染系统
// PositionComponent 是文字中心点
type LabelRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewLabelRenderSystem 创建标签渲染系统
func NewLabelRenderSystem(em *ecs.EntityManager) *LabelRenderSystem {
	return &LabelRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有标签
func (s *LabelRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.LabelComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		drawCenteredText(screen, label.Text, label.Font, pos.X, pos.Y, label.Color)
	}
}
