package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"log"
	"os"

	"github.com/gonewx/slidelock/pkg/config"
	"github.com/gonewx/slidelock/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultSlideLockConfigPath is the embedded slide lock configuration.
const DefaultSlideLockConfigPath = "data/slide_lock.yaml"

// ResourceManager is responsible for centralized management of application resources.
// It provides loading and caching for images, font faces and the slide lock
// configuration.
//
// Resource paths starting with "data/" are looked up in the embedded file
// system first and fall back to disk. An empty font path selects Go Regular
// from golang.org/x/image, so the default build ships no binary font assets.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is meant to be used from the
// game loop goroutine only.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image          // Cache for loaded images: path -> image
	fontSources   map[string]*text.GoTextFaceSource // Parsed font files: path -> source ("" is Go Regular)
	fontFaceCache map[string]*text.GoTextFace       // Cache for text faces: "path:size" -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		fontSources:   make(map[string]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}
}

// readResource reads a resource from the embedded file system when it is
// there, otherwise from disk.
func (rm *ResourceManager) readResource(path string) ([]byte, error) {
	if embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadImage loads a PNG image and caches it by path.
//
// Returns an error if the file cannot be read or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := rm.readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	log.Printf("[ResourceManager] Loaded image %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return ebitenImg, nil
}

// LoadFont returns a text face of the given size from a TTF/OTF file.
// An empty path selects Go Regular. Faces are cached by path and size; each
// font file is parsed once.
//
// Returns an error if size is not positive or the font data cannot be read or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}

	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := rm.loadFontSource(path)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face

	return face, nil
}

func (rm *ResourceManager) loadFontSource(path string) (*text.GoTextFaceSource, error) {
	if source, exists := rm.fontSources[path]; exists {
		return source, nil
	}

	fontData := goregular.TTF
	if path != "" {
		data, err := rm.readResource(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		fontData = data
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %q: %w", path, err)
	}
	rm.fontSources[path] = source

	return source, nil
}

// LoadSlideLockConfig loads the slide lock configuration.
//
// An empty path selects the embedded default (DefaultSlideLockConfigPath),
// which requires embedded.Init to have been called. Any other path is read
// from disk, which lets the -config flag override the built-in values.
func (rm *ResourceManager) LoadSlideLockConfig(path string) (*config.SlideLockConfig, error) {
	if path != "" {
		log.Printf("[ResourceManager] Loading slide lock config from %s", path)
		return config.LoadSlideLockConfig(path)
	}

	data, err := embedded.ReadFile(DefaultSlideLockConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded slide lock config: %w", err)
	}

	cfg, err := config.ParseSlideLockConfig(data)
	if err != nil {
		return nil, err
	}

	log.Printf("[ResourceManager] Loaded embedded slide lock config")
	return cfg, nil
}
