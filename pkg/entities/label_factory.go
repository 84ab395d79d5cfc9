package entities

import (
	"image/color"

	"github.com/gonewx/slidelock/pkg/components"
	"github.com/gonewx/slidelock/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewLabel 创建文字标签实体，(x, y) 为文字中心
func NewLabel(em *ecs.EntityManager, x, y float64, str string, font *text.GoTextFace, clr color.RGBA) (ecs.EntityID, *components.LabelComponent) {
	label := &components.LabelComponent{
		Text:  str,
		Font:  font,
		Color: clr,
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, label)

	return entity, label
}
