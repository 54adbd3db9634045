package color

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Defaults applied to elements that carry no style of their own.
const (
	DefaultFill   = "#ffffff"
	DefaultStroke = "#000000"
	DefaultText   = "#000000"
	LightText     = "#ffffff"

	// Highlight is mixed over the fill of highlighted elements.
	Highlight = "#ffe066"
)

// Normalize parses any CSS color and returns it as lowercase #rrggbb.
func Normalize(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex(), nil
}

func Darken(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	// decrease luminance by 10%
	return colorful.Hsl(h, s, l-.1).Clamped().Hex(), nil
}

// Blend mixes a towards b in Lab space; t=0 is a, t=1 is b.
func Blend(a, b string, t float64) (string, error) {
	ca, err := csscolorparser.Parse(a)
	if err != nil {
		return "", err
	}
	cb, err := csscolorparser.Parse(b)
	if err != nil {
		return "", err
	}
	from := colorful.Color{R: ca.R, G: ca.G, B: ca.B}
	to := colorful.Color{R: cb.R, G: cb.G, B: cb.B}
	return from.BlendLab(to, t).Clamped().Hex(), nil
}

func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}

	l := float64(
		float64(0.299)*float64(c.R) +
			float64(0.587)*float64(c.G) +
			float64(0.114)*float64(c.B),
	)
	return l, nil
}

// TextFor picks a readable label color for text drawn over fill.
func TextFor(fill string) (string, error) {
	l, err := Luminance(fill)
	if err != nil {
		return "", err
	}
	if l < .5 {
		return LightText, nil
	}
	return DefaultText, nil
}
