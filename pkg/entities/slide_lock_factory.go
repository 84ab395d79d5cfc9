package entities

import (
	"github.com/gonewx/slidelock/pkg/components"
	"github.com/gonewx/slidelock/pkg/config"
	"github.com/gonewx/slidelock/pkg/ecs"
	"github.com/gonewx/slidelock/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewSlideLockEntity 创建滑动解锁控件实体
//
// 参数：
//   - em: 实体管理器
//   - cfg: 已验证的控件配置
//   - font: 控件文字字体
//   - handleImage: 滑块图标，可为 nil
//   - x, y: 滑槽左上角位置（屏幕坐标）
//
// 返回：
//   - 实体ID
//   - 控件组件（调用方需要为其绑定 Machine）
func NewSlideLockEntity(
	em *ecs.EntityManager,
	cfg *config.SlideLockConfig,
	font *text.GoTextFace,
	handleImage *ebiten.Image,
	x, y float64,
) (ecs.EntityID, *components.SlideLockComponent) {
	style := cfg.Style

	lock := &components.SlideLockComponent{
		Geometry: cfg.SlideGeometry(),
		Height:   cfg.Geometry.Height,
		Easing:   utils.EasingByName(cfg.Tuning.Easing),
		Style: components.SlideLockStyle{
			LockedColor:        config.MustColor(style.LockedColor),
			UnlockedColor:      config.MustColor(style.UnlockedColor),
			DragColor:          config.MustColor(style.DragColor),
			HandleColor:        config.MustColor(style.HandleColor),
			LockedText:         style.LockedText,
			LockedTextColor:    config.MustColor(style.LockedTextColor),
			DragText:           style.DragText,
			DragTextColor:      config.MustColor(style.DragTextColor),
			UnlockedText:       style.UnlockedText,
			UnlockedTextColor:  config.MustColor(style.UnlockedTextColor),
			Font:               font,
			CornerRadius:       style.CornerRadius,
			HandleCornerRadius: style.HandleCornerRadius,
			HandleImage:        handleImage,
		},
		Velocity: utils.NewVelocityTracker(utils.DefaultVelocityWindow),
	}

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})
	ecs.AddComponent(em, entity, lock)

	return entity, lock
}
