package utils

// DefaultVelocityWindow 速度估计使用的时间窗口（秒）
const DefaultVelocityWindow = 0.1

type velocitySample struct {
	time float64
	x    float64
}

// VelocityTracker 根据最近一段时间内的位置采样估计水平速度
//
// Ebitengine 只提供指针位置，松手速度需要自己估计：
// 保留窗口内的采样，用首尾两点的位移除以时间差。
type VelocityTracker struct {
	window  float64
	now     float64
	samples []velocitySample
}

// NewVelocityTracker 创建速度估计器，window <= 0 时使用默认窗口
func NewVelocityTracker(window float64) *VelocityTracker {
	if window <= 0 {
		window = DefaultVelocityWindow
	}
	return &VelocityTracker{window: window}
}

// Reset 清空所有采样（新手势开始时调用）
func (v *VelocityTracker) Reset() {
	v.now = 0
	v.samples = v.samples[:0]
}

// Add 记录一个采样，deltaTime 为距上一次采样经过的时间（秒）
func (v *VelocityTracker) Add(deltaTime, x float64) {
	if deltaTime > 0 {
		v.now += deltaTime
	}
	v.samples = append(v.samples, velocitySample{time: v.now, x: x})

	// 丢弃窗口外的旧采样，但至少保留两个用于计算
	cutoff := v.now - v.window
	drop := 0
	for drop < len(v.samples)-2 && v.samples[drop].time < cutoff {
		drop++
	}
	if drop > 0 {
		v.samples = append(v.samples[:0], v.samples[drop:]...)
	}
}

// Velocity 返回估计速度（像素/秒），采样不足或时间差为 0 时返回 0
func (v *VelocityTracker) Velocity() float64 {
	if len(v.samples) < 2 {
		return 0
	}
	first := v.samples[0]
	last := v.samples[len(v.samples)-1]
	dt := last.time - first.time
	if dt <= 0 {
		return 0
	}
	return (last.x - first.x) / dt
}
