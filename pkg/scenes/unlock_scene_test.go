package scenes

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonewx/slidelock/pkg/config"
	"github.com/gonewx/slidelock/pkg/game"
	"github.com/gonewx/slidelock/pkg/slidelock"
	"github.com/gonewx/slidelock/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// scriptedPointer 测试用指针输入，同时满足控件和按钮系统的接口
type scriptedPointer struct {
	pressed bool
	x, y    int
}

func (p *scriptedPointer) PointerState() (bool, int, int) {
	return p.pressed, p.x, p.y
}

func (p *scriptedPointer) IsFocused() bool {
	return true
}

type sceneHarness struct {
	scene   *UnlockScene
	pointer *scriptedPointer
	keys    map[ebiten.Key]bool
	cursor  ebiten.CursorShapeType
}

// newTestScene 创建注入了 mock 输入的解锁界面
// 默认配置下控件位于 (90, 120)，300x60；Reset 按钮位于 (180, 230)，120x40
func newTestScene(t *testing.T) *sceneHarness {
	t.Helper()

	scene, err := NewUnlockScene(game.NewResourceManager(), nil, config.DefaultSlideLockConfig())
	if err != nil {
		t.Fatalf("NewUnlockScene() error: %v", err)
	}

	h := &sceneHarness{
		scene:   scene,
		pointer: &scriptedPointer{},
		keys:    make(map[ebiten.Key]bool),
	}
	scene.slideLockInputSystem = systems.NewSlideLockInputSystemWithInput(scene.entityManager, h.pointer)
	scene.buttonSystem = systems.NewButtonSystemWithInput(scene.entityManager, h.pointer)
	scene.keyJustPressed = func(key ebiten.Key) bool { return h.keys[key] }
	scene.setCursorShape = func(shape ebiten.CursorShapeType) { h.cursor = shape }
	return h
}

// frame 设置指针并推进一帧
func (h *sceneHarness) frame(pressed bool, x, y int) {
	h.pointer.pressed, h.pointer.x, h.pointer.y = pressed, x, y
	h.scene.Update(1.0 / 60.0)
}

// settle 推进足够多帧让动画完成
func (h *sceneHarness) settle() {
	for i := 0; i < 120; i++ {
		h.frame(false, 0, 0)
	}
}

// unlock 把滑块拖到末端并松手
func (h *sceneHarness) unlock(t *testing.T) {
	t.Helper()
	h.frame(true, 100, 150)
	h.frame(true, 250, 150)
	h.frame(true, 400, 150)
	h.frame(false, 400, 150)
	h.settle()
	if h.scene.Machine().Status() != slidelock.Unlocked {
		t.Fatalf("setup: Status() = %v, want Unlocked", h.scene.Machine().Status())
	}
}

func TestUnlockScene_InitialState(t *testing.T) {
	h := newTestScene(t)

	if h.scene.Machine().Status() != slidelock.Locked {
		t.Errorf("Status() = %v, want Locked", h.scene.Machine().Status())
	}
	if h.scene.statusLabel.Text != "Locked" {
		t.Errorf("status label = %q, want Locked", h.scene.statusLabel.Text)
	}
	if h.scene.lock.Machine != h.scene.Machine() {
		t.Error("control is not bound to the scene's machine")
	}
}

// TestUnlockScene_DragUnlocks 拖过阈值后状态文字更新为 Unlocked
func TestUnlockScene_DragUnlocks(t *testing.T) {
	h := newTestScene(t)
	h.unlock(t)

	if h.scene.statusLabel.Text != "Unlocked" {
		t.Errorf("status label = %q, want Unlocked", h.scene.statusLabel.Text)
	}
}

// TestUnlockScene_ResetButton 点击 Reset 按钮后回到 Locked
func TestUnlockScene_ResetButton(t *testing.T) {
	h := newTestScene(t)
	h.unlock(t)

	h.frame(true, 240, 250)
	h.frame(false, 240, 250)
	if h.scene.Machine().Phase() != slidelock.PhaseSettling {
		t.Fatalf("Phase() = %v, want Settling after reset click", h.scene.Machine().Phase())
	}
	if h.scene.statusLabel.Text != "Unlocked" {
		t.Error("label must not change before the reset animation completes")
	}

	h.settle()
	if h.scene.Machine().Status() != slidelock.Locked || h.scene.statusLabel.Text != "Locked" {
		t.Errorf("status = %v label = %q, want Locked", h.scene.Machine().Status(), h.scene.statusLabel.Text)
	}
	if h.scene.lock.HandleOffset != 0 {
		t.Errorf("HandleOffset = %v, want 0", h.scene.lock.HandleOffset)
	}
}

// TestUnlockScene_ResetKey R 键同样请求复位
func TestUnlockScene_ResetKey(t *testing.T) {
	h := newTestScene(t)
	h.unlock(t)

	h.keys[ebiten.KeyR] = true
	h.frame(false, 0, 0)
	h.keys[ebiten.KeyR] = false
	h.settle()

	if h.scene.Machine().Status() != slidelock.Locked {
		t.Errorf("Status() = %v, want Locked", h.scene.Machine().Status())
	}
}

// TestUnlockScene_ResetWhileLocked 锁定时复位无效果，文字不变
func TestUnlockScene_ResetWhileLocked(t *testing.T) {
	h := newTestScene(t)

	h.frame(true, 240, 250)
	h.frame(false, 240, 250)

	if h.scene.Machine().Phase() != slidelock.PhaseIdle {
		t.Errorf("Phase() = %v, want Idle", h.scene.Machine().Phase())
	}
	if h.scene.statusLabel.Text != "Locked" {
		t.Errorf("status label = %q, want Locked", h.scene.statusLabel.Text)
	}
}

// TestUnlockScene_Cursor 悬停在可交互元素上时切换为手形光标
func TestUnlockScene_Cursor(t *testing.T) {
	h := newTestScene(t)

	tests := []struct {
		name string
		x, y int
		want ebiten.CursorShapeType
	}{
		{name: "滑块上", x: 100, y: 150, want: ebiten.CursorShapePointer},
		{name: "按钮上", x: 240, y: 250, want: ebiten.CursorShapePointer},
		{name: "空白处", x: 10, y: 10, want: ebiten.CursorShapeDefault},
		{name: "滑块右侧的滑槽", x: 300, y: 150, want: ebiten.CursorShapeDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.frame(false, tt.x, tt.y)
			if h.cursor != tt.want {
				t.Errorf("cursor = %v, want %v", h.cursor, tt.want)
			}
		})
	}
}

// TestUnlockScene_HandleImage 配置了滑块图标时加载并挂到控件外观上
func TestUnlockScene_HandleImage(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 32, 32))); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	iconPath := filepath.Join(dir, "arrow.png")
	if err := os.WriteFile(iconPath, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		path      string
		wantImage bool
		wantErr   bool
	}{
		{name: "未配置图标", path: ""},
		{name: "图标存在", path: iconPath, wantImage: true},
		{name: "图标不存在", path: filepath.Join(dir, "missing.png"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultSlideLockConfig()
			cfg.Style.HandleImage = tt.path

			scene, err := NewUnlockScene(game.NewResourceManager(), nil, cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("NewUnlockScene() expected error for missing handle image")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewUnlockScene() error: %v", err)
			}
			if got := scene.lock.Style.HandleImage != nil; got != tt.wantImage {
				t.Errorf("HandleImage set = %v, want %v", got, tt.wantImage)
			}
		})
	}
}

// TestUnlockScene_Draw 锁定、拖拽中和解锁后都能完整绘制一帧（含滑块图标）
func TestUnlockScene_Draw(t *testing.T) {
	h := newTestScene(t)
	screen := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	defer screen.Deallocate()
	// 图标比滑块大，绘制时按比例缩小
	icon := ebiten.NewImage(80, 80)
	defer icon.Deallocate()
	h.scene.lock.Style.HandleImage = icon

	h.scene.Draw(screen)

	h.frame(true, 100, 150)
	h.frame(true, 200, 150)
	h.scene.Draw(screen)

	h.frame(true, 400, 150)
	h.frame(false, 400, 150)
	h.settle()
	h.scene.Draw(screen)

	if !h.scene.lock.Unlocked {
		t.Error("expected unlocked style after the drag")
	}
}
