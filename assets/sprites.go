package assets

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"
	"log"

	"github.com/automoto/nightslash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// SpriteLoader loads sprite sheets from an asset tree and caches sheets and
// frames. A missing sheet is logged once and reported as nil so callers can
// draw a plain shape instead.
type SpriteLoader struct {
	fsys       fs.FS
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
	missing    map[string]bool
}

func NewSpriteLoader(fsys fs.FS) *SpriteLoader {
	return &SpriteLoader{
		fsys:       fsys,
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
		missing:    make(map[string]bool),
	}
}

// SheetPath is where the sheet for a sprite key and state lives.
func SheetPath(key string, state config.StateID) string {
	return fmt.Sprintf("images/spritesheets/%s/%s.png", key, state.String())
}

// LoadImage returns the image at path, or nil if it cannot be read.
func (l *SpriteLoader) LoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}
	if l.missing[path] || l.fsys == nil {
		return nil
	}

	img, err := l.decode(path)
	if err != nil {
		log.Printf("Warning: %v", err)
		l.missing[path] = true
		return nil
	}
	l.cache[path] = img
	return img
}

func (l *SpriteLoader) decode(path string) (*ebiten.Image, error) {
	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create image from bytes for %s: %w", path, err)
	}
	return img, nil
}

// Frame returns a cached sub-image for one frame of a sheet laid out
// horizontally in square cells, or nil if the sheet is missing.
func (l *SpriteLoader) Frame(key string, state config.StateID, index int) *ebiten.Image {
	cacheKey := fmt.Sprintf("%s/%s/%d", key, state.String(), index)
	if img, ok := l.frameCache[cacheKey]; ok {
		return img
	}

	sheet := l.LoadImage(SheetPath(key, state))
	if sheet == nil {
		return nil
	}
	size := config.SpriteFrameSize
	src := image.Rect(index*size, 0, (index+1)*size, size)
	if !src.In(sheet.Bounds()) {
		return nil
	}
	frame := sheet.SubImage(src).(*ebiten.Image)
	l.frameCache[cacheKey] = frame
	return frame
}

// Preload loads every sheet named in the animation table so the first frame
// of a stage does not stall on decoding.
func (l *SpriteLoader) Preload() {
	for key, states := range config.CharacterAnimations {
		for state := range states {
			l.LoadImage(SheetPath(key, state))
		}
	}
}
