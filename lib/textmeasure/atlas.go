package textmeasure

import (
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"oss.terrastruct.com/uml/lib/geo"
)

// glyph describes the ink box of one rune relative to its dot, and how far the dot
// moves after drawing it.
type glyph struct {
	frame   rect
	advance float64
}

// atlas caches glyph metrics of a single sized face. Glyphs are looked up lazily, so
// an atlas costs nothing until text is measured with it.
type atlas struct {
	face       font.Face
	glyphs     map[rune]glyph
	ascent     float64
	descent    float64
	lineHeight float64
}

func newAtlas(face font.Face) *atlas {
	m := face.Metrics()
	return &atlas{
		face:       face,
		glyphs:     make(map[rune]glyph),
		ascent:     i2f(m.Ascent),
		descent:    i2f(m.Descent),
		lineHeight: i2f(m.Height),
	}
}

func (a *atlas) glyph(r rune) (glyph, bool) {
	if g, ok := a.glyphs[r]; ok {
		return g, true
	}
	b, advance, ok := a.face.GlyphBounds(r)
	if !ok {
		return glyph{}, false
	}
	// font space is y-down, text space is y-up
	g := glyph{
		frame: rect{
			tl: geo.Point{X: i2f(fixed.I(b.Min.X.Floor())), Y: -i2f(fixed.I(b.Max.Y.Ceil()))},
			br: geo.Point{X: i2f(fixed.I(b.Max.X.Ceil())), Y: -i2f(fixed.I(b.Min.Y.Floor()))},
		},
		advance: i2f(advance),
	}
	a.glyphs[r] = g
	return g, true
}

func (a *atlas) kern(r0, r1 rune) float64 {
	return i2f(a.face.Kern(r0, r1))
}

// drawRune places r after prevR at dot. It returns the line box the rune occupies (an
// empty rect for runes without ink, like spaces) and the next dot.
func (a *atlas) drawRune(prevR, r rune, dot geo.Point) (bounds rect, newDot geo.Point) {
	g, ok := a.glyph(r)
	if !ok {
		r = unicode.ReplacementChar
		g, ok = a.glyph(r)
		if !ok {
			return newRect(), dot
		}
	}

	if prevR >= 0 {
		dot.X += a.kern(prevR, r)
	}

	bounds = g.frame.translate(dot)
	if !bounds.empty() {
		bounds = rect{
			tl: geo.Point{X: bounds.tl.X, Y: dot.Y - a.descent},
			br: geo.Point{X: bounds.br.X, Y: dot.Y + a.ascent},
		}
	}

	dot.X += g.advance
	return bounds, dot
}

func i2f(i fixed.Int26_6) float64 {
	return float64(i) / (1 << 6)
}
