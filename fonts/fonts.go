package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title       FontName = "title"
	Description FontName = "description"
	Digits      FontName = "digits"
)

// Default sizes in points
const (
	TitleSize       = 28
	DescriptionSize = 18
	DigitsSize      = 16
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the font for drawing with ebiten's text package.
func (f FontName) Face() text.Face {
	face, ok := faces[f]
	if !ok {
		face = text.NewGoXFace(getFont(f))
		faces[f] = face
	}
	return face
}

var (
	fonts = map[FontName]font.Face{}
	faces = map[FontName]text.Face{}
)

// LoadDefaultFonts loads Go Regular at the default sizes.
func LoadDefaultFonts() error {
	for name, size := range map[FontName]float64{
		Title:       TitleSize,
		Description: DescriptionSize,
		Digits:      DigitsSize,
	} {
		if err := LoadFontWithSize(name, goregular.TTF, size); err != nil {
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
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(faces, name)
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
