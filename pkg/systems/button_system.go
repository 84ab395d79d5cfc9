package systems

import (
	"github.com/gonewx/slidelock/pkg/components"
	"github.com/gonewx/slidelock/pkg/config"
	"github.com/gonewx/slidelock/pkg/ecs"
	"github.com/gonewx/slidelock/pkg/utils"
)

// ButtonPointerInput 按钮系统指针输入接口
// 用于依赖注入，支持测试时 mock
type ButtonPointerInput interface {
	// PointerState 返回指针是否按下及其位置（鼠标或第一个触摸点）
	PointerState() (pressed bool, x, y int)
}

// ebitenButtonPointerInput Ebitengine 默认实现
type ebitenButtonPointerInput struct{}

func (e *ebitenButtonPointerInput) PointerState() (bool, int, int) {
	return utils.GetPointerState()
}

// defaultButtonPointerInput 默认指针输入实例
var defaultButtonPointerInput ButtonPointerInput = &ebitenButtonPointerInput{}

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测指针释放（在按钮内释放时触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
//
// 注意：光标形状由调用者（如 UnlockScene）统一管理
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	pointerInput  ButtonPointerInput

	wasPressed bool
	// 触摸释放后拿不到位置，记录按下期间最后的位置
	lastX, lastY float64
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		pointerInput:  defaultButtonPointerInput,
	}
}

// NewButtonSystemWithInput 创建带自定义指针输入的按钮系统（用于测试）
func NewButtonSystemWithInput(em *ecs.EntityManager, input ButtonPointerInput) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		pointerInput:  input,
	}
}

// Update 更新按钮交互状态
// 检测指针位置和释放，更新按钮状态并触发回调
func (s *ButtonSystem) Update(deltaTime float64) {
	pressed, px, py := s.pointerInput.PointerState()
	released := !pressed && s.wasPressed
	s.wasPressed = pressed

	x, y := float64(px), float64(py)
	if pressed {
		s.lastX, s.lastY = x, y
	} else if released {
		x, y = s.lastX, s.lastY
	}

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !s.isPointerInButton(x, y, pos, button) {
			button.State = components.UINormal
			continue
		}

		switch {
		case pressed:
			button.State = components.UIClicked
		case released:
			// 释放瞬间触发回调，之后恢复悬停状态
			button.State = components.UIHovered
			if button.OnClick != nil {
				button.OnClick()
			}
		default:
			button.State = components.UIHovered
		}
	}
}

// IsAnyButtonHovered 是否有启用的按钮处于悬停或按下状态（供场景设置光标）
func (s *ButtonSystem) IsAnyButtonHovered() bool {
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if button.State == components.UIHovered || button.State == components.UIClicked {
			return true
		}
	}
	return false
}

// isPointerInButton 检测指针是否在按钮的点击区域内（含 ButtonClickPadding 扩展）
func (s *ButtonSystem) isPointerInButton(x, y float64, pos *components.PositionComponent, button *components.ButtonComponent) bool {
	rect := utils.Rect{X: pos.X, Y: pos.Y, Width: button.Width, Height: button.Height}
	return rect.Expand(config.ButtonClickPadding).Contains(x, y)
}
