package components

// PositionComponent 实体左上角在屏幕坐标系中的位置
type PositionComponent struct {
	X float64
	Y float64
}
