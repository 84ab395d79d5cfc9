package systems

import (
	"github.com/gonewx/slidelock/pkg/components"
	"github.com/gonewx/slidelock/pkg/ecs"
	"github.com/gonewx/slidelock/pkg/slidelock"
	"github.com/gonewx/slidelock/pkg/utils"
)

// slideLockPresenter 在 SlideLockComponent 上实现 slidelock.Presenter
//
// 动画不在这里推进：只把补间写进组件，
// 由 SlideLockAnimationSystem 每帧推进并在结束时回调状态机。
type slideLockPresenter struct {
	lock *components.SlideLockComponent
}

// NewSlideLockPresenter 创建绑定到组件的表现层协作者
func NewSlideLockPresenter(lock *components.SlideLockComponent) slidelock.Presenter {
	return &slideLockPresenter{lock: lock}
}

func (p *slideLockPresenter) RepositionHandle(offset float64) {
	p.lock.HandleOffset = offset
	p.lock.Tween = nil
}

func (p *slideLockPresenter) PlayUnlockAnimation(duration float64, onComplete func()) {
	p.startTween(p.lock.Geometry.MaxOffset(), duration, onComplete)
}

func (p *slideLockPresenter) PlayResetAnimation(duration float64, onComplete func()) {
	p.startTween(0, duration, onComplete)
}

func (p *slideLockPresenter) ApplyUnlockedStyle() {
	p.lock.Unlocked = true
}

func (p *slideLockPresenter) ApplyLockedStyle() {
	p.lock.Unlocked = false
}

func (p *slideLockPresenter) startTween(to, duration float64, onComplete func()) {
	easing := p.lock.Easing
	if easing == nil {
		easing = utils.EaseOutQuad
	}
	p.lock.Tween = &components.HandleTween{
		From:       p.lock.HandleOffset,
		To:         to,
		Duration:   duration,
		Easing:     easing,
		OnComplete: onComplete,
	}
}

// SlideLockAnimationSystem 滑块动画系统
//
// 职责：
//   - 按 deltaTime 推进 HandleTween，更新 HandleOffset
//   - 动画结束时清除补间并调用一次 OnComplete
type SlideLockAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewSlideLockAnimationSystem 创建滑块动画系统
func NewSlideLockAnimationSystem(em *ecs.EntityManager) *SlideLockAnimationSystem {
	return &SlideLockAnimationSystem{
		entityManager: em,
	}
}

// Update 推进所有进行中的滑块动画
func (s *SlideLockAnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.SlideLockComponent](s.entityManager)

	for _, entityID := range entities {
		lock, ok := ecs.GetComponent[*components.SlideLockComponent](s.entityManager, entityID)
		if !ok || lock.Tween == nil {
			continue
		}
		advanceTween(lock, deltaTime)
	}
}

// advanceTween 推进单个补间，结束时回调
func advanceTween(lock *components.SlideLockComponent, deltaTime float64) {
	tween := lock.Tween
	if deltaTime > 0 {
		tween.Elapsed += deltaTime
	}

	progress := 1.0
	if tween.Duration > 0 {
		progress = utils.Clamp(tween.Elapsed/tween.Duration, 0, 1)
	}

	easing := tween.Easing
	if easing == nil {
		easing = utils.EaseOutQuad
	}
	lock.HandleOffset = utils.Lerp(tween.From, tween.To, easing(progress))

	if progress < 1 {
		return
	}

	// 先清除再回调：回调里可能立即开始新的补间
	lock.HandleOffset = tween.To
	lock.Tween = nil
	if tween.OnComplete != nil {
		tween.OnComplete()
	}
}
