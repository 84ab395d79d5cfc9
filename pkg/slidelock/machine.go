package slidelock

import (
	"fmt"
	"log"
)

// Presenter 表现层协作者
// 状态机只通过此接口移动滑块、播放动画和切换样式，从不直接绘制
type Presenter interface {
	// RepositionHandle 立即把滑块移动到指定偏移（拖拽中的跟手反馈）
	RepositionHandle(offset float64)
	// PlayUnlockAnimation 播放滑块移动到末端的动画，结束后调用 onComplete
	PlayUnlockAnimation(duration float64, onComplete func())
	// PlayResetAnimation 播放滑块回到起点的动画，结束后调用 onComplete
	PlayResetAnimation(duration float64, onComplete func())
	// ApplyUnlockedStyle 切换为解锁后的外观
	ApplyUnlockedStyle()
	// ApplyLockedStyle 切换为锁定时的外观
	ApplyLockedStyle()
}

// Delegate 状态变化观察者
type Delegate interface {
	StatusChanged(status Status)
}

// DelegateFunc 把普通函数适配为 Delegate
type DelegateFunc func(status Status)

// StatusChanged 实现 Delegate 接口
func (f DelegateFunc) StatusChanged(status Status) {
	f(status)
}

// Phase 状态机当前所处的交互阶段
// 阶段不是锁定状态的一部分，拖拽中的"滑动"从不提交为 Status
type Phase int

const (
	// PhaseIdle 空闲，可以开始新手势或请求复位
	PhaseIdle Phase = iota
	// PhaseDragging 手势进行中
	PhaseDragging
	// PhaseSettling 松手或复位后的动画尚未完成
	PhaseSettling
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseDragging:
		return "Dragging"
	case PhaseSettling:
		return "Settling"
	default:
		return "Unknown"
	}
}

// transition 已开始、尚未提交的状态转换
type transition struct {
	seq    uint64
	target Status
}

// Machine 滑动解锁状态机
//
// 所有方法都应在同一个事件线程（游戏循环的 Update）中调用，内部不加锁。
// 状态转换分两步：Begin 时通知 Presenter 播放动画，
// 动画完成回调中才提交状态、切换样式并通知委托。
type Machine struct {
	geometry  Geometry
	tuning    Tuning
	presenter Presenter
	delegate  Delegate

	status Status
	phase  Phase

	// 当前手势内滑块是否离开过起点
	moved bool

	pending *transition
	seq     uint64
}

// NewMachine 创建状态机，初始状态为 Locked
//
// geometry 非法属于调用方的编程错误，直接 panic；
// 配置文件加载时已通过 Geometry.Validate 提前报错。
func NewMachine(geometry Geometry, tuning Tuning, presenter Presenter) *Machine {
	if err := geometry.Validate(); err != nil {
		panic(fmt.Sprintf("slidelock: invalid geometry: %v", err))
	}
	if presenter == nil {
		panic("slidelock: presenter is nil")
	}
	return &Machine{
		geometry:  geometry,
		tuning:    tuning,
		presenter: presenter,
		status:    Locked,
		phase:     PhaseIdle,
	}
}

// SetDelegate 设置委托（最多一个），传 nil 取消
func (m *Machine) SetDelegate(d Delegate) {
	m.delegate = d
}

// Status 返回已提交的锁定状态
func (m *Machine) Status() Status {
	return m.status
}

// Phase 返回当前交互阶段
func (m *Machine) Phase() Phase {
	return m.phase
}

// Geometry 返回几何配置
func (m *Machine) Geometry() Geometry {
	return m.geometry
}

// Tuning 返回调节参数
func (m *Machine) Tuning() Tuning {
	return m.tuning
}

// BeginDrag 开始一次手势
// 只有在空闲且锁定时才接受；动画未完成或已解锁时返回 false
func (m *Machine) BeginDrag() bool {
	if m.phase != PhaseIdle || m.status != Locked {
		return false
	}
	m.phase = PhaseDragging
	m.moved = false
	return true
}

// DragMove 处理拖拽中的一个采样，只移动滑块，不改变状态
func (m *Machine) DragMove(sample DragSample) {
	if m.phase != PhaseDragging {
		return
	}
	offset := m.geometry.HandleOffset(sample.Translation)
	if offset > 0 {
		m.moved = true
	}
	m.presenter.RepositionHandle(offset)
}

// DragEnd 结束手势并判定结果
//
// 返回判定结果，以及该采样是否被接受（不在拖拽中时返回 false）。
// 解锁：开始解锁转换；未解锁且滑块移动过：开始回弹转换；
// 未解锁且从未移动：什么也不做。
func (m *Machine) DragEnd(sample DragSample) (Outcome, bool) {
	if m.phase != PhaseDragging {
		return OutcomeLocked, false
	}

	offset := m.geometry.HandleOffset(sample.Translation)
	if offset > 0 {
		m.moved = true
	}
	m.presenter.RepositionHandle(offset)

	outcome := Evaluate(m.geometry, m.tuning, sample)
	duration := m.tuning.SettleDuration(sample.Velocity)

	switch {
	case outcome == OutcomeUnlocked:
		log.Printf("[SlideLock] release at %.1f (v=%.1f): unlock", sample.Translation, sample.Velocity)
		m.begin(Unlocked, duration)
	case m.moved:
		log.Printf("[SlideLock] release at %.1f (v=%.1f): reset", sample.Translation, sample.Velocity)
		m.begin(Locked, duration)
	default:
		m.phase = PhaseIdle
	}
	m.moved = false
	return outcome, true
}

// CancelDrag 手势被中断（例如窗口失去焦点）
// 滑块移动过则回弹到起点，否则什么也不做；中断永远不会解锁
func (m *Machine) CancelDrag() {
	m.cancel()
}

// cancel 返回是否开始了回弹转换
func (m *Machine) cancel() bool {
	if m.phase != PhaseDragging {
		return false
	}
	moved := m.moved
	m.moved = false
	if !moved {
		m.phase = PhaseIdle
		return false
	}
	log.Printf("[SlideLock] drag cancelled: reset")
	m.begin(Locked, m.tuning.DurationBase)
	return true
}

// RequestReset 外部复位请求
//
// 已解锁：以固定时长回弹，完成后通知 Locked；
// 已锁定且空闲：无操作，不通知；拖拽中：等同 CancelDrag；
// 动画进行中：忽略。返回是否开始了转换。
func (m *Machine) RequestReset() bool {
	switch m.phase {
	case PhaseSettling:
		return false
	case PhaseDragging:
		return m.cancel()
	}
	if m.status != Unlocked {
		return false
	}
	log.Printf("[SlideLock] reset requested")
	m.begin(Locked, m.tuning.ResetDuration)
	return true
}

// begin 开始一次转换并请求 Presenter 播放对应动画
func (m *Machine) begin(target Status, duration float64) {
	m.seq++
	tr := &transition{seq: m.seq, target: target}
	m.pending = tr
	m.phase = PhaseSettling

	done := func() { m.complete(tr.seq) }
	if target == Unlocked {
		m.presenter.PlayUnlockAnimation(duration, done)
	} else {
		m.presenter.PlayResetAnimation(duration, done)
	}
}

// complete 动画完成回调：提交状态、切换样式、通知委托
// 过期或重复的回调被忽略，保证每次转换最多通知一次
func (m *Machine) complete(seq uint64) {
	if m.pending == nil || m.pending.seq != seq {
		return
	}
	target := m.pending.target
	m.pending = nil
	m.status = target
	m.phase = PhaseIdle

	if target == Unlocked {
		m.presenter.ApplyUnlockedStyle()
	} else {
		m.presenter.ApplyLockedStyle()
	}
	log.Printf("[SlideLock] status committed: %s", target)

	if m.delegate != nil {
		m.delegate.StatusChanged(target)
	}
}
