package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/slidelock/pkg/components"
	"github.com/gonewx/slidelock/pkg/config"
	"github.com/gonewx/slidelock/pkg/ecs"
	"github.com/gonewx/slidelock/pkg/entities"
	"github.com/gonewx/slidelock/pkg/game"
	"github.com/gonewx/slidelock/pkg/slidelock"
	"github.com/gonewx/slidelock/pkg/systems"
	"github.com/gonewx/slidelock/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	backgroundColor = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	statusTextColor = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

// statusLabelScale 状态文字相对控件文字的放大倍数
const statusLabelScale = 1.25

// UnlockScene 滑动解锁演示界面
//
// 包含一个滑动解锁控件、显示当前状态的文字和一个 Reset 按钮。
// 场景是控件的委托：状态变化时记录日志、更新文字并播放提示音。
// Reset 按钮和 R 键都会请求复位。
type UnlockScene struct {
	entityManager *ecs.EntityManager
	audioManager  *game.AudioManager // 可为 nil

	// 系统
	slideLockInputSystem     *systems.SlideLockInputSystem
	slideLockAnimationSystem *systems.SlideLockAnimationSystem
	slideLockRenderSystem    *systems.SlideLockRenderSystem
	buttonSystem             *systems.ButtonSystem
	buttonRenderSystem       *systems.ButtonRenderSystem
	labelRenderSystem        *systems.LabelRenderSystem

	lock        *components.SlideLockComponent
	machine     *slidelock.Machine
	statusLabel *components.LabelComponent

	// 键盘输入和光标设置，测试时可替换
	keyJustPressed func(key ebiten.Key) bool
	setCursorShape func(shape ebiten.CursorShapeType)
}

// NewUnlockScene 创建解锁界面
//
// 参数：
//   - rm: 资源管理器（加载字体）
//   - am: 音频管理器，可为 nil（静音）
//   - cfg: 已验证的控件配置
func NewUnlockScene(rm *game.ResourceManager, am *game.AudioManager, cfg *config.SlideLockConfig) (*UnlockScene, error) {
	font, err := rm.LoadFont(cfg.Style.FontFile, cfg.Style.FontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load slide lock font: %w", err)
	}
	statusFont, err := rm.LoadFont(cfg.Style.FontFile, cfg.Style.FontSize*statusLabelScale)
	if err != nil {
		return nil, fmt.Errorf("failed to load status font: %w", err)
	}

	var handleImage *ebiten.Image
	if cfg.Style.HandleImage != "" {
		handleImage, err = rm.LoadImage(cfg.Style.HandleImage)
		if err != nil {
			return nil, fmt.Errorf("failed to load handle image: %w", err)
		}
	}

	em := ecs.NewEntityManager()
	s := &UnlockScene{
		entityManager:            em,
		audioManager:             am,
		slideLockInputSystem:     systems.NewSlideLockInputSystem(em),
		slideLockAnimationSystem: systems.NewSlideLockAnimationSystem(em),
		slideLockRenderSystem:    systems.NewSlideLockRenderSystem(em),
		buttonSystem:             systems.NewButtonSystem(em),
		buttonRenderSystem:       systems.NewButtonRenderSystem(em),
		labelRenderSystem:        systems.NewLabelRenderSystem(em),
		keyJustPressed:           inpututil.IsKeyJustPressed,
		setCursorShape:           ebiten.SetCursorShape,
	}

	// 控件水平居中
	_, lock := entities.NewSlideLockEntity(em, cfg, font, handleImage,
		config.CenteredX(cfg.Geometry.TrackWidth), config.SlideLockY)
	s.lock = lock
	s.machine = slidelock.NewMachine(cfg.SlideGeometry(), cfg.SlideTuning(), systems.NewSlideLockPresenter(lock))
	s.machine.SetDelegate(s)
	lock.Machine = s.machine

	_, s.statusLabel = entities.NewLabel(em, config.GameWindowWidth/2, config.StatusLabelY,
		s.machine.Status().String(), statusFont, statusTextColor)

	entities.NewButton(em,
		config.CenteredX(config.ResetButtonWidth), config.ResetButtonY,
		config.ResetButtonWidth, config.ResetButtonHeight,
		"Reset", font, s.onResetClicked)

	log.Printf("[UnlockScene] Created (track %.0f, handle %.0f)", cfg.Geometry.TrackWidth, cfg.Geometry.HandleWidth)
	return s, nil
}

// StatusChanged 实现 slidelock.Delegate
func (s *UnlockScene) StatusChanged(status slidelock.Status) {
	log.Printf("[UnlockScene] status: %s", status)
	s.statusLabel.Text = status.String()

	if s.audioManager == nil {
		return
	}
	if status == slidelock.Unlocked {
		s.audioManager.PlaySound(game.SoundUnlock)
	} else {
		s.audioManager.PlaySound(game.SoundLock)
	}
}

// Machine 返回控件状态机
func (s *UnlockScene) Machine() *slidelock.Machine {
	return s.machine
}

// Update 更新界面逻辑
func (s *UnlockScene) Update(deltaTime float64) {
	if s.keyJustPressed(ebiten.KeyR) {
		s.requestReset("key R")
	}

	s.buttonSystem.Update(deltaTime)
	s.slideLockInputSystem.Update(deltaTime)
	s.slideLockAnimationSystem.Update(deltaTime)

	s.updateMouseCursor()
}

// Draw 渲染界面
func (s *UnlockScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s.labelRenderSystem.Draw(screen)
	s.slideLockRenderSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)
}

// onResetClicked Reset 按钮回调
func (s *UnlockScene) onResetClicked() {
	if s.audioManager != nil {
		s.audioManager.PlaySound(game.SoundClick)
	}
	s.requestReset("button")
}

func (s *UnlockScene) requestReset(source string) {
	if !s.machine.RequestReset() {
		log.Printf("[UnlockScene] reset (%s) ignored in phase %s, status %s", source, s.machine.Phase(), s.machine.Status())
	}
}

// updateMouseCursor 悬停在滑块或按钮上时显示手形光标（移动端没有光标）
func (s *UnlockScene) updateMouseCursor() {
	if utils.IsMobile() {
		return
	}

	cursorShape := ebiten.CursorShapeDefault
	if s.lock.Tracking || (s.lock.IsHovered && !s.lock.Unlocked) || s.buttonSystem.IsAnyButtonHovered() {
		cursorShape = ebiten.CursorShapePointer
	}
	s.setCursorShape(cursorShape)
}
