package types

import (
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Fonts groups the faces used across screens. basicfont has a single size,
// so Normal and Small share it; the split keeps call sites stable.
type Fonts struct {
	Normal font.Face
	Small  font.Face
}

var defaultFonts *Fonts

func InitFonts() {
	defaultFonts = &Fonts{
		Normal: basicfont.Face7x13,
		Small:  basicfont.Face7x13,
	}
}

func GetFonts() *Fonts {
	if defaultFonts == nil {
		InitFonts()
	}
	return defaultFonts
}

// CenteredX returns the x offset that centers s inside a span of width pixels.
func CenteredX(face font.Face, s string, width int) int {
	return (width - text.BoundString(face, s).Dx()) / 2
}
