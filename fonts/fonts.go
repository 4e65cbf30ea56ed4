package fonts

import (
	"fmt"

	cfg "github.com/automoto/herofield/config"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title   FontName = "title"
	Heading FontName = "heading"
	Body    FontName = "body"
	Small   FontName = "small"
	Mono    FontName = "mono"
)

// Get returns the loaded face for drawing with ebiten/text.
func (f FontName) Get() font.Face {
	return getFont(f)
}

// UIFace returns the face wrapped for ebitenui widgets.
func (f FontName) UIFace() text.Face {
	return text.NewGoXFace(getFont(f))
}

var (
	fonts = map[FontName]font.Face{}
)

// Load parses the bundled Go fonts at the configured sizes times scale.
func Load(scale float64) error {
	if scale <= 0 {
		scale = 1
	}
	specs := []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Title, gobold.TTF, cfg.Landing.TitleFontSize},
		{Heading, gobold.TTF, cfg.Landing.HeadingFontSize},
		{Body, goregular.TTF, cfg.Landing.BodyFontSize},
		{Small, goregular.TTF, cfg.Landing.SmallFontSize},
		{Mono, gomono.TTF, cfg.Landing.SmallFontSize},
	}
	for _, s := range specs {
		if err := LoadFontWithSize(s.name, s.ttf, s.size*scale); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
