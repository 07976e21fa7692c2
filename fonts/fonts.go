package fonts

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadAll loads every face from one TTF file in the asset tree. Faces that
// cannot be loaded fall back to the built-in bitmap face.
func LoadAll(fsys fs.FS, path string) {
	if fsys == nil {
		log.Printf("Warning: no asset directory, using the built-in font")
		return
	}
	ttf, err := fs.ReadFile(fsys, path)
	if err != nil {
		log.Printf("Warning: %v, using the built-in font", err)
		return
	}
	sizes := map[FontName]float64{Regular: 14, Bold: 20, Title: 32, Small: 12}
	for name, size := range sizes {
		if err := LoadFontWithSize(name, ttf, size); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		return basicfont.Face7x13
	}
	return f
}
