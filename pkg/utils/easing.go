package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 滑块的解锁/回弹动画默认使用 EaseOutQuad（开始快、结束慢）。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutCubic 三次方缓出
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// easings 配置中可用的缓动函数名
var easings = map[string]EasingFunc{
	"linear":     EaseLinear,
	"outQuad":    EaseOutQuad,
	"outCubic":   EaseOutCubic,
	"inOutCubic": EaseInOutCubic,
}

// LookupEasing 按名字查找缓动函数，名字未知时 ok 为 false
func LookupEasing(name string) (fn EasingFunc, ok bool) {
	fn, ok = easings[name]
	return fn, ok
}

// EasingByName 根据配置中的名字返回缓动函数
// 未知名字返回 EaseOutQuad
func EasingByName(name string) EasingFunc {
	if fn, ok := LookupEasing(name); ok {
		return fn
	}
	return EaseOutQuad
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
