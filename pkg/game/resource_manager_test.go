package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gonewx/slidelock/pkg/embedded"
	"golang.org/x/image/font/gofont/goregular"
)

// encodePNG 生成 w x h 的纯色 PNG
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 0xff, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	return buf.Bytes()
}

// TestLoadFont_Cache tests that faces are cached by size.
func TestLoadFont_Cache(t *testing.T) {
	rm := NewResourceManager()

	face1, err := rm.LoadFont("", 16)
	if err != nil {
		t.Fatalf("LoadFont(16) failed: %v", err)
	}
	face2, err := rm.LoadFont("", 16)
	if err != nil {
		t.Fatalf("LoadFont(16) second call failed: %v", err)
	}
	if face1 != face2 {
		t.Error("LoadFont should return the cached face for the same size")
	}

	face3, err := rm.LoadFont("", 24)
	if err != nil {
		t.Fatalf("LoadFont(24) failed: %v", err)
	}
	if face3 == face1 || face3.Size != 24 {
		t.Errorf("LoadFont(24) returned size %v", face3.Size)
	}
	if face3.Source != face1.Source {
		t.Error("faces should share one font source")
	}
}

func TestLoadFont_InvalidSize(t *testing.T) {
	rm := NewResourceManager()
	for _, size := range []float64{0, -12} {
		if _, err := rm.LoadFont("", size); err == nil {
			t.Errorf("LoadFont(%v) expected error", size)
		}
	}
}

// TestLoadSlideLockConfig_Embedded tests loading the embedded default.
func TestLoadSlideLockConfig_Embedded(t *testing.T) {
	t.Cleanup(func() { embedded.Init(nil) })

	embedded.Init(fstest.MapFS{
		DefaultSlideLockConfigPath: &fstest.MapFile{Data: []byte("geometry:\n  trackWidth: 320\n")},
	})

	rm := NewResourceManager()
	cfg, err := rm.LoadSlideLockConfig("")
	if err != nil {
		t.Fatalf("LoadSlideLockConfig failed: %v", err)
	}
	if cfg.Geometry.TrackWidth != 320 {
		t.Errorf("TrackWidth = %v, want 320", cfg.Geometry.TrackWidth)
	}
	// 未出现的字段保持默认
	if cfg.Geometry.HandleWidth != 60 {
		t.Errorf("HandleWidth = %v, want 60", cfg.Geometry.HandleWidth)
	}
}

func TestLoadSlideLockConfig_NotInitialized(t *testing.T) {
	embedded.Init(nil)

	rm := NewResourceManager()
	if _, err := rm.LoadSlideLockConfig(""); err == nil {
		t.Error("expected error when embedded resources are not initialized")
	}
}

// TestLoadSlideLockConfig_File tests the on-disk override.
func TestLoadSlideLockConfig_File(t *testing.T) {
	dir := t.TempDir()
	rm := NewResourceManager()

	valid := filepath.Join(dir, "valid.yaml")
	if err := os.WriteFile(valid, []byte("tuning:\n  dampingFactor: 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := rm.LoadSlideLockConfig(valid)
	if err != nil {
		t.Fatalf("LoadSlideLockConfig(%s) failed: %v", valid, err)
	}
	if cfg.Tuning.DampingFactor != 0.5 {
		t.Errorf("DampingFactor = %v, want 0.5", cfg.Tuning.DampingFactor)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("geometry:\n  handleWidth: 400\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := rm.LoadSlideLockConfig(invalid); err == nil || !strings.Contains(err.Error(), "geometry") {
		t.Errorf("expected geometry validation error, got %v", err)
	}

	if _, err := rm.LoadSlideLockConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestLoadFont_File tests loading a font by path, from the embedded FS and from disk.
func TestLoadFont_File(t *testing.T) {
	t.Cleanup(func() { embedded.Init(nil) })
	embedded.Init(fstest.MapFS{
		"data/fonts/broken.ttf": &fstest.MapFile{Data: []byte("not a font")},
	})

	dir := t.TempDir()
	onDisk := filepath.Join(dir, "copy.ttf")
	if err := os.WriteFile(onDisk, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "内置字体", path: ""},
		{name: "磁盘字体文件", path: onDisk},
		{name: "嵌入的损坏文件", path: "data/fonts/broken.ttf", wantErr: true},
		{name: "文件不存在", path: filepath.Join(dir, "missing.ttf"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := NewResourceManager()
			face, err := rm.LoadFont(tt.path, 16)
			if tt.wantErr {
				if err == nil {
					t.Errorf("LoadFont(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFont(%q) failed: %v", tt.path, err)
			}
			if face.Size != 16 {
				t.Errorf("Size = %v, want 16", face.Size)
			}
		})
	}
}

// TestLoadFont_SeparateSources tests that different files do not share a source.
func TestLoadFont_SeparateSources(t *testing.T) {
	dir := t.TempDir()
	onDisk := filepath.Join(dir, "copy.ttf")
	if err := os.WriteFile(onDisk, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	rm := NewResourceManager()
	builtin, err := rm.LoadFont("", 16)
	if err != nil {
		t.Fatal(err)
	}
	fromFile, err := rm.LoadFont(onDisk, 16)
	if err != nil {
		t.Fatal(err)
	}
	if builtin == fromFile || builtin.Source == fromFile.Source {
		t.Error("faces from different font files must not share cache entries")
	}
}

// TestLoadImage tests image loading, caching and error paths.
func TestLoadImage(t *testing.T) {
	t.Cleanup(func() { embedded.Init(nil) })
	embedded.Init(fstest.MapFS{
		"data/images/arrow.png": &fstest.MapFile{Data: encodePNG(t, 24, 16)},
		"data/images/bad.png":   &fstest.MapFile{Data: []byte("not a png")},
	})

	dir := t.TempDir()
	onDisk := filepath.Join(dir, "knob.png")
	if err := os.WriteFile(onDisk, encodePNG(t, 8, 8), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name          string
		path          string
		wantW, wantH  int
		wantErrSubstr string
	}{
		{name: "嵌入图片", path: "data/images/arrow.png", wantW: 24, wantH: 16},
		{name: "磁盘图片", path: onDisk, wantW: 8, wantH: 8},
		{name: "解码失败", path: "data/images/bad.png", wantErrSubstr: "decode"},
		{name: "文件不存在", path: filepath.Join(dir, "missing.png"), wantErrSubstr: "read"},
	}

	rm := NewResourceManager()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := rm.LoadImage(tt.path)
			if tt.wantErrSubstr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErrSubstr) {
					t.Errorf("LoadImage(%q) error = %v, want containing %q", tt.path, err, tt.wantErrSubstr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadImage(%q) failed: %v", tt.path, err)
			}
			if b := img.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}

			again, err := rm.LoadImage(tt.path)
			if err != nil || again != img {
				t.Error("second LoadImage should return the cached image")
			}
		})
	}
}
