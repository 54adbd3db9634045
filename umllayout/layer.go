// Package umllayout sizes diagram elements to fit their labels and stacks the rows of
// containers.
package umllayout

import (
	"oss.terrastruct.com/uml/lib/fonts"
	"oss.terrastruct.com/uml/lib/geo"
	"oss.terrastruct.com/uml/lib/textmeasure"
	"oss.terrastruct.com/uml/umlelement"
)

type TextStyle struct {
	Bold   bool
	Italic bool
	// Markdown measures the text as rendered markdown.
	Markdown bool
}

// Layer is what elements are rendered against: it measures text and collects the
// elements whose layout changed.
type Layer interface {
	MeasureText(text string, style TextStyle) geo.Size
	Register(els ...*umlelement.Element)
}

// Canvas is a Layer measuring with the bundled Go fonts.
//
// A Canvas caches glyph metrics and is not safe for concurrent use.
type Canvas struct {
	ruler    *textmeasure.Ruler
	fontSize int

	registered []*umlelement.Element
}

var _ Layer = &Canvas{}

func NewCanvas(fontSize int) (*Canvas, error) {
	ruler, err := textmeasure.NewRuler()
	if err != nil {
		return nil, err
	}
	if fontSize <= 0 {
		fontSize = fonts.FONT_SIZE_M
	}
	return &Canvas{
		ruler:    ruler,
		fontSize: fontSize,
	}, nil
}

func (c *Canvas) MeasureText(text string, style TextStyle) geo.Size {
	if text == "" {
		return geo.Size{}
	}
	if style.Markdown {
		w, h, err := textmeasure.MeasureMarkdown(text, c.ruler)
		if err == nil {
			return geo.NewSize(float64(w), float64(h))
		}
	}

	fontStyle := fonts.FONT_STYLE_REGULAR
	switch {
	case style.Bold:
		fontStyle = fonts.FONT_STYLE_BOLD
	case style.Italic:
		fontStyle = fonts.FONT_STYLE_ITALIC
	}
	w, h := c.ruler.Measure(fonts.Sans.Font(c.fontSize, fontStyle), text)
	return geo.NewSize(float64(w), float64(h))
}

func (c *Canvas) Register(els ...*umlelement.Element) {
	c.registered = append(c.registered, els...)
}

// Registered returns every element registered since the last Reset, in order.
func (c *Canvas) Registered() []*umlelement.Element {
	return c.registered
}

func (c *Canvas) Reset() {
	c.registered = nil
}
