package fonts

import (
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Arcade      FontName = "arcade"
	ArcadeTitle FontName = "arcade-title"
	ArcadeSmall FontName = "arcade-small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadFont parses a TTF and registers it under name at the given size. On a
// parse failure the name falls back to the built-in bitmap face so text
// rendering keeps working.
func LoadFont(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: could not parse font %s: %v", name, err)
		fonts[name] = basicfont.Face7x13
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

// LoadFallback registers the built-in bitmap face under name. Used when no
// font file ships alongside the binary.
func LoadFallback(name FontName) {
	fonts[name] = basicfont.Face7x13
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		return basicfont.Face7x13
	}
	return f
}
