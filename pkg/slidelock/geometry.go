package slidelock

import (
	"fmt"
	"math"
)

// Geometry 控件的几何配置
// 由表现层提供，手势进行期间不可修改
type Geometry struct {
	TrackWidth  float64 // 滑槽总宽度（像素）
	HandleWidth float64 // 滑块宽度（像素）

	// UnlockThresholdFraction 解锁阈值距滑槽末端的内缩量，以滑块宽度为单位
	// 0.5 表示滑块前沿越过"末端减半个滑块宽度"的位置即视为解锁
	UnlockThresholdFraction float64
}

// DefaultUnlockThresholdFraction 默认阈值内缩比例（半个滑块宽度）
const DefaultUnlockThresholdFraction = 0.5

// Validate 检查几何配置是否可用
func (g Geometry) Validate() error {
	if !(g.TrackWidth > 0) || math.IsInf(g.TrackWidth, 0) {
		return fmt.Errorf("track width must be positive, got %v", g.TrackWidth)
	}
	if !(g.HandleWidth > 0) || math.IsInf(g.HandleWidth, 0) {
		return fmt.Errorf("handle width must be positive, got %v", g.HandleWidth)
	}
	if g.HandleWidth > g.TrackWidth {
		return fmt.Errorf("handle width (%v) exceeds track width (%v)", g.HandleWidth, g.TrackWidth)
	}
	if g.UnlockThresholdFraction < 0 || g.UnlockThresholdFraction > 1 || math.IsNaN(g.UnlockThresholdFraction) {
		return fmt.Errorf("unlock threshold fraction must be in [0, 1], got %v", g.UnlockThresholdFraction)
	}
	return nil
}

// MaxOffset 滑块可移动的最大偏移（滑块右边缘贴住滑槽末端）
func (g Geometry) MaxOffset() float64 {
	return math.Max(0, g.TrackWidth-g.HandleWidth)
}

// Threshold 解锁阈值：滑块前沿（偏移 + 滑块宽度）必须严格大于此值
func (g Geometry) Threshold() float64 {
	return g.TrackWidth - g.HandleWidth*g.UnlockThresholdFraction
}

// HandleOffset 将手势位移换算为滑块偏移
//
// 偏移相对滑槽起点，限制在 [0, MaxOffset] 内；
// 越界或非法输入（NaN）一律钳制，不会报错。
func (g Geometry) HandleOffset(translation float64) float64 {
	if math.IsNaN(translation) || translation < 0 {
		return 0
	}
	if max := g.MaxOffset(); translation > max {
		return max
	}
	return translation
}
