package geo

import "fmt"

// Bounds is the geometry every diagram element carries. X and Y are relative to the
// owning container, or to the diagram when the element is top level.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewBounds(x, y, width, height float64) Bounds {
	return Bounds{X: x, Y: y, Width: width, Height: height}
}

func (b Bounds) TopLeft() Point {
	return Point{X: b.X, Y: b.Y}
}

func (b Bounds) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

func (b Bounds) Size() Size {
	return Size{Width: b.Width, Height: b.Height}
}

func (b Bounds) IsZero() bool {
	return b == Bounds{}
}

func (b Bounds) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.X+b.Width && p.Y >= b.Y && p.Y <= b.Y+b.Height
}

func (b Bounds) Translate(dx, dy float64) Bounds {
	b.X += dx
	b.Y += dy
	return b
}

// Union returns the smallest Bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	minX := Min(b.X, o.X)
	minY := Min(b.Y, o.Y)
	maxX := Max(b.X+b.Width, o.X+o.Width)
	maxY := Max(b.Y+b.Height, o.Y+o.Height)
	return Bounds{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (b Bounds) ToString() string {
	return fmt.Sprintf("{X: %.1f, Y: %.1f, Width: %.0f, Height: %.0f}", b.X, b.Y, b.Width, b.Height)
}
