package components

import (
	"image/color"

	"github.com/gonewx/slidelock/pkg/slidelock"
	"github.com/gonewx/slidelock/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SlideLockStyle 滑动解锁控件的外观
type SlideLockStyle struct {
	LockedColor   color.RGBA // 锁定时滑槽背景色
	UnlockedColor color.RGBA // 解锁后拖拽区域颜色
	DragColor     color.RGBA // 拖拽区域颜色（跟随滑块）
	HandleColor   color.RGBA // 滑块高亮色

	LockedText        string     // 滑槽上的提示文字
	LockedTextColor   color.RGBA // 提示文字颜色
	DragText          string     // 拖拽区域上的文字
	DragTextColor     color.RGBA // 拖拽区域文字颜色
	UnlockedText      string     // 解锁后拖拽区域上的文字
	UnlockedTextColor color.RGBA // 解锁后文字颜色

	Font               *text.GoTextFace
	CornerRadius       float64 // 滑槽圆角
	HandleCornerRadius float64 // 滑块圆角

	// HandleImage 滑块图标，可为 nil；只在锁定外观下绘制
	HandleImage *ebiten.Image
}

// HandleTween 滑块位置补间动画
type HandleTween struct {
	From     float64
	To       float64
	Duration float64 // 秒
	Elapsed  float64 // 秒
	Easing   utils.EasingFunc

	// OnComplete 动画结束时调用一次
	OnComplete func()
}

// SlideLockComponent 滑动解锁控件组件
//
// 表现层数据：几何尺寸、外观、当前滑块偏移、动画和指针跟踪状态。
// 锁定状态本身由 Machine 持有，组件只保存它的外观投影（Unlocked）。
type SlideLockComponent struct {
	Geometry slidelock.Geometry
	Height   float64
	Style    SlideLockStyle
	Easing   utils.EasingFunc

	// HandleOffset 滑块相对滑槽起点的当前偏移
	HandleOffset float64
	// Unlocked 当前是否使用解锁外观
	Unlocked bool
	// Tween 进行中的滑块动画，nil 表示没有
	Tween *HandleTween

	// Machine 控件状态机，由场景在创建实体后绑定
	Machine *slidelock.Machine

	// ===== 指针跟踪 =====
	// Tracking 当前指针是否正在驱动手势
	Tracking bool
	// StartX 手势开始时指针的 X 坐标
	StartX float64
	// LastTranslation 最近一次采样的位移
	LastTranslation float64
	// Velocity 松手速度估计
	Velocity *utils.VelocityTracker
	// IsHovered 指针是否悬停在滑块上
	IsHovered bool
}
