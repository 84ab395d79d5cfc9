package slidelock

import "math"

// Tuning 手势判定与动画时长的可调参数
type Tuning struct {
	// DampingFactor 松手速度折算为额外位移的系数（惯性投射）
	DampingFactor float64
	// DurationScale 松手后回弹/解锁动画时长的速度系数（秒/像素）
	DurationScale float64
	// DurationBase 松手后回弹/解锁动画的基础时长（秒）
	DurationBase float64
	// ResetDuration 外部请求复位时的固定动画时长（秒）
	ResetDuration float64
}

// DefaultTuning 返回默认参数
func DefaultTuning() Tuning {
	return Tuning{
		DampingFactor: 0.2,
		DurationScale: 0.0002,
		DurationBase:  0.2,
		ResetDuration: 0.2,
	}
}

// Momentum 松手速度折算出的惯性位移
func (t Tuning) Momentum(velocity float64) float64 {
	return velocity * t.DampingFactor
}

// SettleDuration 松手后动画时长（秒）
// 公式：|velocity × DampingFactor × DurationScale| + DurationBase
func (t Tuning) SettleDuration(velocity float64) float64 {
	d := math.Abs(t.Momentum(velocity)*t.DurationScale) + t.DurationBase
	if math.IsNaN(d) || d < 0 {
		return t.DurationBase
	}
	return d
}

// ProjectedTranslation 计算带惯性的投射位移，结果不小于 0
func ProjectedTranslation(tuning Tuning, sample DragSample) float64 {
	projected := sample.Translation + tuning.Momentum(sample.Velocity)
	if math.IsNaN(projected) || projected < 0 {
		return 0
	}
	return projected
}

// Evaluate 判定一次已结束手势的结果
//
// 投射位移加上滑块宽度严格大于阈值时解锁，否则回弹。
// 纯函数：相同输入总是得到相同结果。
func Evaluate(geometry Geometry, tuning Tuning, sample DragSample) Outcome {
	projected := ProjectedTranslation(tuning, sample)
	if projected+geometry.HandleWidth > geometry.Threshold() {
		return OutcomeUnlocked
	}
	return OutcomeLocked
}
