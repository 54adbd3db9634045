// Package fonts holds the font faces the layout canvas measures text with.
//
// The Go font family ships with golang.org/x/image, so no font files need to be
// embedded or fetched at runtime.
package fonts

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type FontFamily string
type FontStyle string

type Font struct {
	Family FontFamily
	Style  FontStyle
	Size   int
}

func (f FontFamily) Font(size int, style FontStyle) Font {
	return Font{
		Family: f,
		Style:  style,
		Size:   size,
	}
}

// Sizeless drops the size so the font can be used as a FontFaces key.
func (f Font) Sizeless() Font {
	f.Size = 0
	return f
}

const (
	FONT_SIZE_XS  = 12
	FONT_SIZE_S   = 14
	FONT_SIZE_M   = 16
	FONT_SIZE_L   = 20
	FONT_SIZE_XL  = 24
	FONT_SIZE_XXL = 28

	FONT_STYLE_REGULAR FontStyle = "regular"
	FONT_STYLE_BOLD    FontStyle = "bold"
	FONT_STYLE_ITALIC  FontStyle = "italic"

	Sans FontFamily = "GoSans"
	Mono FontFamily = "GoMono"
)

var FontSizes = []int{
	FONT_SIZE_XS,
	FONT_SIZE_S,
	FONT_SIZE_M,
	FONT_SIZE_L,
	FONT_SIZE_XL,
	FONT_SIZE_XXL,
}

var FontStyles = []FontStyle{
	FONT_STYLE_REGULAR,
	FONT_STYLE_BOLD,
	FONT_STYLE_ITALIC,
}

var FontFamilies = []FontFamily{
	Sans,
	Mono,
}

// FontFaces maps a sizeless Font to its TrueType bytes.
var FontFaces = map[Font][]byte{
	{Family: Sans, Style: FONT_STYLE_REGULAR}: goregular.TTF,
	{Family: Sans, Style: FONT_STYLE_BOLD}:    gobold.TTF,
	{Family: Sans, Style: FONT_STYLE_ITALIC}:  goitalic.TTF,
	{Family: Mono, Style: FONT_STYLE_REGULAR}: gomono.TTF,
	{Family: Mono, Style: FONT_STYLE_BOLD}:    gomonobold.TTF,
	{Family: Mono, Style: FONT_STYLE_ITALIC}:  gomonoitalic.TTF,
}
