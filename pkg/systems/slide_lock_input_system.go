package systems

import (
	"github.com/gonewx/slidelock/pkg/components"
	"github.com/gonewx/slidelock/pkg/ecs"
	"github.com/gonewx/slidelock/pkg/slidelock"
	"github.com/gonewx/slidelock/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// SlideLockPointerInput 滑动解锁系统的指针输入接口
// 用于依赖注入，支持测试时 mock
type SlideLockPointerInput interface {
	// PointerState 返回指针是否按下及其位置（鼠标或第一个触摸点）
	PointerState() (pressed bool, x, y int)
	// IsFocused 窗口是否拥有焦点
	IsFocused() bool
}

// ebitenSlideLockPointerInput Ebitengine 默认实现
type ebitenSlideLockPointerInput struct{}

func (e *ebitenSlideLockPointerInput) PointerState() (bool, int, int) {
	return utils.GetPointerState()
}

func (e *ebitenSlideLockPointerInput) IsFocused() bool {
	return ebiten.IsFocused()
}

// defaultSlideLockPointerInput 默认指针输入实例
var defaultSlideLockPointerInput SlideLockPointerInput = &ebitenSlideLockPointerInput{}

// SlideLockInputSystem 滑动解锁交互系统
// 把原始指针输入翻译为状态机的手势事件
//
// 职责：
//   - 指针在拖拽区域（滑槽起点到滑块右边缘）内按下时开始手势
//   - 按住移动时以 "当前X - 起始X" 作为位移调用 DragMove，Y 方向忽略
//   - 松手时带上估计速度调用 DragEnd
//   - 窗口失去焦点时中断手势（CancelDrag）
//
// 同一时间只跟踪一个指针；状态机拒绝手势时（动画未完成、已解锁）不开始跟踪。
type SlideLockInputSystem struct {
	entityManager *ecs.EntityManager
	pointerInput  SlideLockPointerInput
	wasPressed    bool
}

// NewSlideLockInputSystem 创建滑动解锁交互系统
func NewSlideLockInputSystem(em *ecs.EntityManager) *SlideLockInputSystem {
	return &SlideLockInputSystem{
		entityManager: em,
		pointerInput:  defaultSlideLockPointerInput,
	}
}

// NewSlideLockInputSystemWithInput 创建带自定义指针输入的交互系统（用于测试）
func NewSlideLockInputSystemWithInput(em *ecs.EntityManager, input SlideLockPointerInput) *SlideLockInputSystem {
	return &SlideLockInputSystem{
		entityManager: em,
		pointerInput:  input,
	}
}

// Update 处理本帧的指针输入
func (s *SlideLockInputSystem) Update(deltaTime float64) {
	pressed, px, py := s.pointerInput.PointerState()
	focused := s.pointerInput.IsFocused()
	justPressed := pressed && !s.wasPressed
	s.wasPressed = pressed

	x, y := float64(px), float64(py)

	entities := ecs.GetEntitiesWith2[*components.SlideLockComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		lock, _ := ecs.GetComponent[*components.SlideLockComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if lock == nil || pos == nil || lock.Machine == nil {
			continue
		}

		dragArea := s.dragArea(lock, pos)
		lock.IsHovered = dragArea.Contains(x, y)

		if lock.Tracking {
			s.updateTracking(lock, pressed, focused, x, deltaTime)
			continue
		}

		if justPressed && focused && lock.IsHovered && lock.Machine.BeginDrag() {
			s.startTracking(lock, x)
		}
	}
}

// dragArea 可抓取区域：从滑槽起点到滑块右边缘
func (s *SlideLockInputSystem) dragArea(lock *components.SlideLockComponent, pos *components.PositionComponent) utils.Rect {
	return utils.Rect{
		X:      pos.X,
		Y:      pos.Y,
		Width:  lock.HandleOffset + lock.Geometry.HandleWidth,
		Height: lock.Height,
	}
}

func (s *SlideLockInputSystem) startTracking(lock *components.SlideLockComponent, x float64) {
	lock.Tracking = true
	lock.StartX = x
	lock.LastTranslation = 0
	if lock.Velocity == nil {
		lock.Velocity = utils.NewVelocityTracker(utils.DefaultVelocityWindow)
	}
	lock.Velocity.Reset()
	lock.Velocity.Add(0, x)
}

func (s *SlideLockInputSystem) updateTracking(lock *components.SlideLockComponent, pressed, focused bool, x, deltaTime float64) {
	if !focused {
		lock.Tracking = false
		lock.Machine.CancelDrag()
		return
	}

	if pressed {
		lock.LastTranslation = x - lock.StartX
		lock.Velocity.Add(deltaTime, x)
		lock.Machine.DragMove(slidelock.DragSample{
			Translation: lock.LastTranslation,
			Velocity:    lock.Velocity.Velocity(),
		})
		return
	}

	// 松手：触摸释放后拿不到新位置，使用最后一次采样的位移
	lock.Tracking = false
	lock.Machine.DragEnd(slidelock.DragSample{
		Translation: lock.LastTranslation,
		Velocity:    lock.Velocity.Velocity(),
	})
}
