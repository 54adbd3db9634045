// Ported from https://github.com/faiface/pixel/tree/master/text
// Trimmed down to essentials of measuring text

package textmeasure

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/golang/freetype/truetype"

	"oss.terrastruct.com/uml/lib/fonts"
	"oss.terrastruct.com/uml/lib/geo"
)

const TAB_SIZE = 4

// Ruler measures the extents text occupies when drawn with a given font.
//
// Newlines, tabs and carriage returns are supported. Text is laid out from an origin
// dot that moves right as runes are drawn and back to the origin column, one line
// lower, on every newline.
//
// A Ruler caches glyph metrics per sized font and is not safe for concurrent use.
type Ruler struct {
	// LineHeightFactor scales the distance between two lines of text.
	//
	// Example:
	//   ruler.LineHeightFactor = 1.5
	LineHeightFactor float64

	atlases map[fonts.Font]*atlas
	ttfs    map[fonts.Font]*truetype.Font

	// when measuring text also union the bounds with the dot, so trailing whitespace
	// counts
	boundsWithDot bool
}

// NewRuler parses every face in fonts.FontFaces.
func NewRuler() (*Ruler, error) {
	r := &Ruler{
		LineHeightFactor: 1.,
		atlases:          make(map[fonts.Font]*atlas),
		ttfs:             make(map[fonts.Font]*truetype.Font),
	}

	for font, face := range fonts.FontFaces {
		ttf, err := truetype.Parse(face)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %s %s: %w", font.Family, font.Style, err)
		}
		r.ttfs[font.Sizeless()] = ttf
	}

	return r, nil
}

func (r *Ruler) HasFontFamilyLoaded(fontFamily fonts.FontFamily) bool {
	for _, fontStyle := range fonts.FontStyles {
		if _, ok := r.ttfs[fontFamily.Font(0, fontStyle)]; !ok {
			return false
		}
	}
	return true
}

func (r *Ruler) atlas(font fonts.Font) (*atlas, error) {
	if a, ok := r.atlases[font]; ok {
		return a, nil
	}
	ttf, ok := r.ttfs[font.Sizeless()]
	if !ok {
		return nil, fmt.Errorf("font %s %s is not loaded", font.Family, font.Style)
	}
	a := newAtlas(truetype.NewFace(ttf, &truetype.Options{
		Size: float64(font.Size),
	}))
	r.atlases[font] = a
	return a, nil
}

// Measure returns the pixel extents of s rounded up to whole pixels.
func (r *Ruler) Measure(font fonts.Font, s string) (width, height int) {
	w, h := r.MeasurePrecise(font, s)
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// MeasurePrecise returns the extents of s. Unknown fonts measure as zero.
func (r *Ruler) MeasurePrecise(font fonts.Font, s string) (width, height float64) {
	a, err := r.atlas(font)
	if err != nil {
		return 0, 0
	}
	b := r.measure(a, s)
	return b.w(), b.h()
}

func (r *Ruler) measure(a *atlas, s string) rect {
	orig := geo.Point{}
	dot := orig
	prevR := rune(-1)
	bounds := newRect()

	for len(s) > 0 {
		ch, l := utf8.DecodeRuneInString(s)
		s = s[l:]

		var control bool
		dot, control = r.controlRune(a, ch, orig, dot)
		if control {
			prevR = -1
			continue
		}

		var rb rect
		rb, dot = a.drawRune(prevR, ch, dot)
		prevR = ch

		if r.boundsWithDot {
			bounds = bounds.union(rect{dot, dot})
			bounds = bounds.union(rb)
		} else if bounds.empty() {
			bounds = rb
		} else if !rb.empty() {
			bounds = bounds.union(rb)
		}
	}
	return bounds
}

// controlRune checks if ch is a control rune (newline, tab, ...). If it is, a new dot position and
// true is returned. If ch is not a control rune, the original dot and false is returned.
func (r *Ruler) controlRune(a *atlas, ch rune, orig, dot geo.Point) (newDot geo.Point, control bool) {
	switch ch {
	case '\n':
		dot.X = orig.X
		dot.Y -= r.LineHeightFactor * a.lineHeight
	case '\r':
		dot.X = orig.X
	case '\t':
		tabWidth := r.spaceWidth(a) * TAB_SIZE
		rem := math.Mod(dot.X-orig.X, tabWidth)
		rem = math.Mod(rem, rem+tabWidth)
		if rem == 0 {
			rem = tabWidth
		}
		dot.X += rem
	default:
		return dot, false
	}
	return dot, true
}

func (r *Ruler) spaceWidth(a *atlas) float64 {
	g, _ := a.glyph(' ')
	return g.advance
}
