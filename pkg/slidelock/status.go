// Package slidelock 实现"滑动解锁"控件的核心逻辑
//
// 本包不依赖任何渲染库，只负责：
//   - 拖拽过程中把指针位移换算为滑块偏移（GestureTracker）
//   - 松手时根据位移和速度判定结果（ReleaseEvaluator）
//   - 维护 Locked/Unlocked 状态并驱动动画、通知委托（LockStateMachine）
//
// 绘制、动画播放、样式切换由表现层通过 Presenter 接口提供。
package slidelock

// Status 控件的锁定状态
type Status int

const (
	// Locked 锁定状态（初始状态）
	Locked Status = iota
	// Unlocked 已解锁状态
	Unlocked
)

// String 返回状态名称
func (s Status) String() string {
	switch s {
	case Locked:
		return "Locked"
	case Unlocked:
		return "Unlocked"
	default:
		return "Unknown"
	}
}

// Outcome 一次完整手势的判定结果
type Outcome int

const (
	// OutcomeLocked 未达到解锁阈值，滑块回弹
	OutcomeLocked Outcome = iota
	// OutcomeUnlocked 达到解锁阈值
	OutcomeUnlocked
)

// String 返回判定结果名称
func (o Outcome) String() string {
	if o == OutcomeUnlocked {
		return "Unlocked"
	}
	return "Locked"
}

// DragSample 拖拽过程中的一个输入采样
type DragSample struct {
	Translation float64 // 自手势开始以来的水平位移（像素，可为负）
	Velocity    float64 // 采样时刻的水平速度（像素/秒，可为负）
}
