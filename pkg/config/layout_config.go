package config

// 布局配置常量
// 本文件定义了宿主界面的窗口尺寸和各 UI 元素的位置

const (
	// GameWindowWidth 逻辑屏幕宽度（像素），与实际窗口大小无关
	GameWindowWidth = 480

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 320

	// SlideLockY 滑动解锁控件的顶部 Y 坐标，控件水平居中
	SlideLockY = 120.0

	// StatusLabelY 状态文字的中心 Y 坐标
	StatusLabelY = 60.0

	// ResetButtonWidth 复位按钮宽度
	ResetButtonWidth = 120.0

	// ResetButtonHeight 复位按钮高度
	ResetButtonHeight = 40.0

	// ResetButtonY 复位按钮顶部 Y 坐标
	ResetButtonY = 230.0

	// ButtonClickPadding 按钮点击区域扩展（像素）
	// 在实际按钮区域四周扩展此值，让点击更容易
	ButtonClickPadding = 8.0
)

// CenteredX 返回宽度为 width 的元素在逻辑屏幕中水平居中时的 X 坐标
func CenteredX(width float64) float64 {
	return (GameWindowWidth - width) / 2
}
