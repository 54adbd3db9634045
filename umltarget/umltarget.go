// Package umltarget is the positioned, styled form of a diagram handed to renderers.
// Every position in it is absolute.
package umltarget

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"

	"oss.terrastruct.com/uml/lib/geo"
	"oss.terrastruct.com/uml/lib/go2"
)

const (
	DEFAULT_STROKE_WIDTH  = 1
	HIGHLIGHT_BLEND_RATIO = .5
)

type Diagram struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	Shapes      []Shape      `json:"shapes"`
	Connections []Connection `json:"connections"`
}

func NewDiagram(id, typ string) *Diagram {
	return &Diagram{
		ID:          id,
		Type:        typ,
		Shapes:      []Shape{},
		Connections: []Connection{},
	}
}

func (diagram Diagram) Bytes() ([]byte, error) {
	b1, err := json.Marshal(diagram.Shapes)
	if err != nil {
		return nil, err
	}
	b2, err := json.Marshal(diagram.Connections)
	if err != nil {
		return nil, err
	}
	return append(append([]byte(diagram.Type), b1...), b2...), nil
}

// HashID identifies the rendered content of diagram. Diagrams that would render the
// same share a HashID.
func (diagram Diagram) HashID() (string, error) {
	bytes, err := diagram.Bytes()
	if err != nil {
		return "", err
	}
	h := fnv.New32a()
	h.Write(bytes)
	return fmt.Sprintf("uml-%d", h.Sum32()), nil
}

func (diagram Diagram) GetShape(id string) (Shape, bool) {
	for _, s := range diagram.Shapes {
		if s.ID == id {
			return s, true
		}
	}
	return Shape{}, false
}

// BoundingBox returns the corners of the smallest box holding every shape and route.
func (diagram Diagram) BoundingBox() (topLeft, bottomRight geo.Point) {
	if len(diagram.Shapes) == 0 && len(diagram.Connections) == 0 {
		return geo.Point{}, geo.Point{}
	}
	x1, y1 := math.Inf(1), math.Inf(1)
	x2, y2 := math.Inf(-1), math.Inf(-1)

	for _, s := range diagram.Shapes {
		half := math.Ceil(float64(s.StrokeWidth) / 2.)
		x1 = go2.Min(x1, s.Pos.X-half)
		y1 = go2.Min(y1, s.Pos.Y-half)
		x2 = go2.Max(x2, s.Pos.X+s.Width+half)
		y2 = go2.Max(y2, s.Pos.Y+s.Height+half)
	}
	for _, c := range diagram.Connections {
		for _, p := range c.Route {
			x1 = go2.Min(x1, p.X)
			y1 = go2.Min(y1, p.Y)
			x2 = go2.Max(x2, p.X)
			y2 = go2.Max(y2, p.Y)
		}
	}
	return geo.Point{X: x1, Y: y1}, geo.Point{X: x2, Y: y2}
}

type Shape struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Owner string `json:"owner,omitempty"`

	Pos    geo.Point `json:"pos"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`

	Fill        string `json:"fill"`
	Stroke      string `json:"stroke"`
	StrokeWidth int    `json:"strokeWidth"`
	Highlighted bool   `json:"highlighted,omitempty"`

	Text

	Stereotype string `json:"stereotype,omitempty"`
	// HeaderHeight and DividerPosition are relative to Pos.
	HeaderHeight    float64 `json:"headerHeight,omitempty"`
	DividerPosition float64 `json:"dividerPosition,omitempty"`

	// Icon is the SVG markup of user model icons.
	Icon string `json:"icon,omitempty"`

	ZIndex int `json:"zIndex"`
	Level  int `json:"level"`
}

type Text struct {
	Label     string `json:"label"`
	Color     string `json:"color"`
	Italic    bool   `json:"italic"`
	Bold      bool   `json:"bold"`
	Underline bool   `json:"underline"`
}

type Connection struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	Src          string `json:"src"`
	SrcDirection string `json:"srcDirection"`
	SrcLabel     string `json:"srcLabel,omitempty"`
	Dst          string `json:"dst"`
	DstDirection string `json:"dstDirection"`
	DstLabel     string `json:"dstLabel,omitempty"`

	Stroke      string  `json:"stroke"`
	StrokeWidth int     `json:"strokeWidth"`
	StrokeDash  float64 `json:"strokeDash"`

	Text

	Route geo.Points `json:"route"`

	ZIndex int `json:"zIndex"`
}

// EndpointLabel joins the multiplicity and role of a relationship end the way they are
// drawn next to it.
func EndpointLabel(multiplicity, role string) string {
	switch {
	case multiplicity == "":
		return role
	case role == "":
		return multiplicity
	}
	return role + " " + multiplicity
}
