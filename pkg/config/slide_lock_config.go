package config

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gonewx/slidelock/pkg/slidelock"
	"github.com/gonewx/slidelock/pkg/utils"
	"gopkg.in/yaml.v3"
)

// SlideLockConfig 滑动解锁控件配置
// 对应 data/slide_lock.yaml
type SlideLockConfig struct {
	Geometry GeometryConfig `yaml:"geometry"`
	Tuning   TuningConfig   `yaml:"tuning"`
	Style    StyleConfig    `yaml:"style"`
}

// GeometryConfig 几何尺寸
type GeometryConfig struct {
	TrackWidth              float64 `yaml:"trackWidth"`              // 滑槽宽度
	HandleWidth             float64 `yaml:"handleWidth"`             // 滑块宽度
	Height                  float64 `yaml:"height"`                  // 控件高度
	UnlockThresholdFraction float64 `yaml:"unlockThresholdFraction"` // 阈值内缩（滑块宽度的比例）
}

// TuningConfig 手势与动画参数
type TuningConfig struct {
	DampingFactor float64 `yaml:"dampingFactor"` // 速度 -> 惯性位移系数
	DurationScale float64 `yaml:"durationScale"` // 动画时长速度系数
	DurationBase  float64 `yaml:"durationBase"`  // 松手后动画基础时长（秒）
	ResetDuration float64 `yaml:"resetDuration"` // 外部复位动画时长（秒）
	Easing        string  `yaml:"easing"`        // 缓动函数名：linear / outQuad / outCubic / inOutCubic
}

// StyleConfig 外观（颜色为 #RRGGBB 或 #RRGGBBAA）
type StyleConfig struct {
	LockedColor        string  `yaml:"lockedColor"`
	UnlockedColor      string  `yaml:"unlockedColor"`
	DragColor          string  `yaml:"dragColor"`
	HandleColor        string  `yaml:"handleColor"`
	LockedText         string  `yaml:"lockedText"`
	LockedTextColor    string  `yaml:"lockedTextColor"`
	DragText           string  `yaml:"dragText"`
	DragTextColor      string  `yaml:"dragTextColor"`
	UnlockedText       string  `yaml:"unlockedText"`
	UnlockedTextColor  string  `yaml:"unlockedTextColor"`
	FontSize           float64 `yaml:"fontSize"`
	CornerRadius       float64 `yaml:"cornerRadius"`
	HandleCornerRadius float64 `yaml:"handleCornerRadius"`

	// FontFile TTF/OTF 字体路径，为空使用内置 Go Regular
	FontFile string `yaml:"fontFile"`
	// HandleImage 滑块图标（PNG）路径，为空不绘制；解锁后隐藏
	HandleImage string `yaml:"handleImage"`
}

// DefaultSlideLockConfig 返回默认配置（与内置 YAML 一致）
func DefaultSlideLockConfig() *SlideLockConfig {
	return &SlideLockConfig{
		Geometry: GeometryConfig{
			TrackWidth:              300,
			HandleWidth:             60,
			Height:                  60,
			UnlockThresholdFraction: slidelock.DefaultUnlockThresholdFraction,
		},
		Tuning: TuningConfig{
			DampingFactor: 0.2,
			DurationScale: 0.0002,
			DurationBase:  0.2,
			ResetDuration: 0.2,
			Easing:        "outQuad",
		},
		Style: StyleConfig{
			LockedColor:        "#808080",
			UnlockedColor:      "#000000",
			DragColor:          "#555555",
			HandleColor:        "#FFFFFF40",
			LockedText:         "UNLOCK",
			LockedTextColor:    "#FFFFFF",
			DragText:           "UNLOCKING",
			DragTextColor:      "#FFFFFF",
			UnlockedText:       "UNLOCKED",
			UnlockedTextColor:  "#FFFFFF",
			FontSize:           16,
			CornerRadius:       30,
			HandleCornerRadius: 30,
		},
	}
}

// LoadSlideLockConfig 从文件加载配置
func LoadSlideLockConfig(path string) (*SlideLockConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read slide lock config: %w", err)
	}
	return ParseSlideLockConfig(data)
}

// ParseSlideLockConfig 解析 YAML 配置
// 未出现的字段保留默认值
func ParseSlideLockConfig(data []byte) (*SlideLockConfig, error) {
	cfg := DefaultSlideLockConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse slide lock config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid slide lock config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置
func (c *SlideLockConfig) Validate() error {
	if err := c.SlideGeometry().Validate(); err != nil {
		return fmt.Errorf("geometry: %w", err)
	}
	if !isFinite(c.Geometry.Height) || c.Geometry.Height <= 0 {
		return fmt.Errorf("geometry: height must be positive, got %v", c.Geometry.Height)
	}
	if !isFinite(c.Tuning.DampingFactor) || c.Tuning.DampingFactor < 0 {
		return fmt.Errorf("tuning: dampingFactor must be a finite value >= 0, got %v", c.Tuning.DampingFactor)
	}

	durations := []struct {
		name  string
		value float64
	}{
		{"durationScale", c.Tuning.DurationScale},
		{"durationBase", c.Tuning.DurationBase},
		{"resetDuration", c.Tuning.ResetDuration},
	}
	for _, d := range durations {
		if !isFinite(d.value) || d.value < 0 {
			return fmt.Errorf("tuning: %s must be a finite value >= 0, got %v", d.name, d.value)
		}
	}
	if _, ok := utils.LookupEasing(c.Tuning.Easing); !ok {
		return fmt.Errorf("tuning: unknown easing %q", c.Tuning.Easing)
	}

	if !isFinite(c.Style.FontSize) || c.Style.FontSize <= 0 {
		return fmt.Errorf("style: fontSize must be positive, got %v", c.Style.FontSize)
	}
	if !isFinite(c.Style.CornerRadius) || !isFinite(c.Style.HandleCornerRadius) {
		return fmt.Errorf("style: corner radii must be finite")
	}

	colors := map[string]string{
		"lockedColor":       c.Style.LockedColor,
		"unlockedColor":     c.Style.UnlockedColor,
		"dragColor":         c.Style.DragColor,
		"handleColor":       c.Style.HandleColor,
		"lockedTextColor":   c.Style.LockedTextColor,
		"dragTextColor":     c.Style.DragTextColor,
		"unlockedTextColor": c.Style.UnlockedTextColor,
	}
	for name, value := range colors {
		if _, err := ParseHexColor(value); err != nil {
			return fmt.Errorf("style: %s: %w", name, err)
		}
	}

	return nil
}

// isFinite 排除 NaN 和 ±Inf（YAML 中的 .nan / .inf）
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SlideGeometry 转换为核心包的几何配置
func (c *SlideLockConfig) SlideGeometry() slidelock.Geometry {
	return slidelock.Geometry{
		TrackWidth:              c.Geometry.TrackWidth,
		HandleWidth:             c.Geometry.HandleWidth,
		UnlockThresholdFraction: c.Geometry.UnlockThresholdFraction,
	}
}

// SlideTuning 转换为核心包的调节参数
func (c *SlideLockConfig) SlideTuning() slidelock.Tuning {
	return slidelock.Tuning{
		DampingFactor: c.Tuning.DampingFactor,
		DurationScale: c.Tuning.DurationScale,
		DurationBase:  c.Tuning.DurationBase,
		ResetDuration: c.Tuning.ResetDuration,
	}
}

// ParseHexColor 解析 #RRGGBB 或 #RRGGBBAA 颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustColor 解析已验证过的颜色，失败时返回不透明黑色
func MustColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}
