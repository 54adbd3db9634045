package textmeasure

import (
	"math"

	"oss.terrastruct.com/uml/lib/geo"
)

// rect is an axis aligned box in y-up text space.
type rect struct {
	tl geo.Point
	br geo.Point
}

func newRect() rect {
	return rect{}
}

func (r rect) w() float64 {
	return r.br.X - r.tl.X
}

func (r rect) h() float64 {
	return r.br.Y - r.tl.Y
}

func (r rect) empty() bool {
	return r.w()*r.h() == 0
}

func (r rect) translate(p geo.Point) rect {
	return rect{
		tl: geo.Point{X: r.tl.X + p.X, Y: r.tl.Y + p.Y},
		br: geo.Point{X: r.br.X + p.X, Y: r.br.Y + p.Y},
	}
}

func (r1 rect) union(r2 rect) rect {
	return rect{
		tl: geo.Point{X: math.Min(r1.tl.X, r2.tl.X), Y: math.Min(r1.tl.Y, r2.tl.Y)},
		br: geo.Point{X: math.Max(r1.br.X, r2.br.X), Y: math.Max(r1.br.Y, r2.br.Y)},
	}
}
