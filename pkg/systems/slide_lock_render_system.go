package systems

import (
	"image/color"
	"math"

	"github.com/gonewx/slidelock/pkg/components"
	"github.com/gonewx/slidelock/pkg/ecs"
	"github.com/gonewx/slidelock/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// slideLockLayers 每个控件的离屏图层
type slideLockLayers struct {
	track *ebiten.Image // 滑槽内容，最终按圆角蒙版裁剪
	mask  *ebiten.Image // 圆角蒙版
}

// SlideLockRenderSystem 滑动解锁控件渲染系统
//
// 绘制顺序（都在滑槽坐标系内，超出滑槽的部分被圆角蒙版裁掉）：
//  1. 滑槽背景和锁定提示文字（位于滑块右侧区域的中心）
//  2. 拖拽区域：右边缘与滑块右边缘对齐、宽度为两倍滑槽的圆角矩形，
//     锁定时为 DragColor，解锁后为 UnlockedColor
//  3. 拖拽区域文字，跟随滑块移动
//  4. 锁定时绘制滑块高亮和滑块图标（图标居中，超出滑块时等比缩小）
type SlideLockRenderSystem struct {
	entityManager *ecs.EntityManager
	layers        map[ecs.EntityID]*slideLockLayers
}

// NewSlideLockRenderSystem 创建滑动解锁渲染系统
func NewSlideLockRenderSystem(em *ecs.EntityManager) *SlideLockRenderSystem {
	return &SlideLockRenderSystem{
		entityManager: em,
		layers:        make(map[ecs.EntityID]*slideLockLayers),
	}
}

// Draw 渲染所有滑动解锁控件
func (s *SlideLockRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.SlideLockComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		lock, _ := ecs.GetComponent[*components.SlideLockComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if lock == nil || pos == nil {
			continue
		}

		layers := s.layersFor(entityID, lock)
		if layers == nil {
			continue
		}

		s.drawTrack(layers.track, lock)

		// 圆角裁剪：只保留蒙版不透明的像素
		clipOp := &ebiten.DrawImageOptions{}
		clipOp.Blend = ebiten.BlendDestinationIn
		layers.track.DrawImage(layers.mask, clipOp)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(layers.track, op)
	}
}

// layersFor 返回实体的离屏图层，尺寸变化时重建
func (s *SlideLockRenderSystem) layersFor(entityID ecs.EntityID, lock *components.SlideLockComponent) *slideLockLayers {
	w := int(math.Ceil(lock.Geometry.TrackWidth))
	h := int(math.Ceil(lock.Height))
	if w <= 0 || h <= 0 {
		return nil
	}

	if layers, ok := s.layers[entityID]; ok {
		b := layers.track.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return layers
		}
		layers.track.Deallocate()
		layers.mask.Deallocate()
	}

	mask := ebiten.NewImage(w, h)
	utils.DrawRoundedRect(mask, 0, 0, lock.Geometry.TrackWidth, lock.Height, lock.Style.CornerRadius, color.White)

	layers := &slideLockLayers{
		track: ebiten.NewImage(w, h),
		mask:  mask,
	}
	s.layers[entityID] = layers
	return layers
}

// drawTrack 在离屏图层上绘制控件内容
func (s *SlideLockRenderSystem) drawTrack(dst *ebiten.Image, lock *components.SlideLockComponent) {
	dst.Clear()

	style := lock.Style
	trackWidth := lock.Geometry.TrackWidth
	handleWidth := lock.Geometry.HandleWidth
	height := lock.Height
	offset := lock.HandleOffset

	// 1. 滑槽背景 + 锁定提示
	utils.DrawRoundedRect(dst, 0, 0, trackWidth, height, style.CornerRadius, style.LockedColor)
	drawCenteredText(dst, style.LockedText, style.Font, handleWidth+(trackWidth-handleWidth)/2, height/2, style.LockedTextColor)

	// 2. 拖拽区域
	handleRight := offset + handleWidth
	dragColor := style.DragColor
	dragText := style.DragText
	dragTextColor := style.DragTextColor
	if lock.Unlocked {
		dragColor = style.UnlockedColor
		dragText = style.UnlockedText
		dragTextColor = style.UnlockedTextColor
	}
	utils.DrawRoundedRect(dst, handleRight-2*trackWidth, 0, 2*trackWidth, height, style.HandleCornerRadius, dragColor)

	// 3. 拖拽区域文字
	drawCenteredText(dst, dragText, style.Font, handleRight-trackWidth/2, height/2, dragTextColor)

	// 4. 滑块高亮和图标
	if !lock.Unlocked {
		utils.DrawRoundedRect(dst, offset, 0, handleWidth, height, style.HandleCornerRadius, style.HandleColor)
		drawHandleImage(dst, style.HandleImage, offset, handleWidth, height)
	}
}

// drawHandleImage 把图标居中绘制在滑块内
func drawHandleImage(dst, img *ebiten.Image, offset, handleWidth, height float64) {
	if img == nil {
		return
	}

	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if w <= 0 || h <= 0 {
		return
	}
	scale := math.Min(1, math.Min(handleWidth/w, height/h))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offset+(handleWidth-w*scale)/2, (height-h*scale)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// drawCenteredText 以 (cx, cy) 为中心绘制单行文字
func drawCenteredText(dst *ebiten.Image, str string, face *text.GoTextFace, cx, cy float64, clr color.RGBA) {
	if str == "" || face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}
