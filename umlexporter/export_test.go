package umlexporter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/uml/lib/color"
	"oss.terrastruct.com/uml/lib/geo"
	"oss.terrastruct.com/uml/lib/log"
	"oss.terrastruct.com/uml/umldiagram"
	"oss.terrastruct.com/uml/umlexporter"
)

const shopModel = `{
  "id": "shop",
  "type": "ClassDiagram",
  "elements": {
    "pkg": {"type": "Package", "name": "billing", "bounds": {"x": 100, "y": 50, "width": 400, "height": 300}},
    "c1": {"type": "Class", "name": "Order", "owner": "pkg", "bounds": {"x": 10, "y": 20, "width": 200, "height": 100},
           "fillColor": "navy", "attributes": ["a1"]},
    "a1": {"type": "ClassAttribute", "name": "id", "owner": "c1", "visibility": "private", "attributeType": "int",
           "bounds": {"x": 0.5, "y": 40.5, "width": 199, "height": 30}},
    "c2": {"type": "Interface", "name": "Payable", "bounds": {"x": 600, "y": 0},
           "strokeColor": "not a color", "highlight": "yellow"}
  },
  "relationships": {
    "r1": {"type": "ClassRealization", "name": "implements",
           "bounds": {"x": 310, "y": 50, "width": 290, "height": 70},
           "path": [{"x": 0, "y": 70}, {"x": 290, "y": 0}],
           "source": {"element": "c1", "direction": "Right", "multiplicity": "1", "role": "order"},
           "target": {"element": "c2", "direction": "Left"}}
  }
}`

func TestExport(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)

	d, table, err := umldiagram.Load([]byte(shopModel))
	assert.NoError(t, err)
	d.OwnedElements = append(d.OwnedElements, "ghost")

	diagram, err := umlexporter.Export(ctx, d, table)
	assert.NoError(t, err)
	assert.Equal(t, "shop", diagram.ID)
	assert.Equal(t, "ClassDiagram", diagram.Type)

	var ids []string
	for _, s := range diagram.Shapes {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"c2", "pkg", "c1", "a1"}, ids)

	c1, ok := diagram.GetShape("c1")
	assert.True(t, ok)
	assert.Equal(t, geo.Point{X: 110, Y: 70}, c1.Pos)
	assert.Equal(t, 2, c1.Level)
	assert.Equal(t, "#000080", c1.Fill)
	assert.Equal(t, color.LightText, c1.Color)
	assert.Equal(t, color.DefaultStroke, c1.Stroke)
	assert.True(t, c1.Bold)
	assert.Equal(t, "pkg", c1.Owner)

	a1, _ := diagram.GetShape("a1")
	assert.Equal(t, geo.Point{X: 110.5, Y: 110.5}, a1.Pos)
	assert.Equal(t, "- id: int", a1.Label)
	assert.Equal(t, 0, a1.StrokeWidth)
	assert.Equal(t, color.DefaultText, a1.Color)

	c2, _ := diagram.GetShape("c2")
	assert.Equal(t, "interface", c2.Stereotype)
	assert.Equal(t, color.DefaultStroke, c2.Stroke)
	assert.True(t, c2.Highlighted)
	assert.NotEqual(t, color.DefaultFill, c2.Fill)
	assert.Equal(t, 1, c2.Level)

	assert.Len(t, diagram.Connections, 1)
	r1 := diagram.Connections[0]
	assert.Equal(t, "ClassRealization", r1.Type)
	assert.Equal(t, "c1", r1.Src)
	assert.Equal(t, "c2", r1.Dst)
	assert.Equal(t, "order 1", r1.SrcLabel)
	assert.Equal(t, "", r1.DstLabel)
	assert.Equal(t, "implements", r1.Label)
	assert.Equal(t, geo.Points{{X: 310, Y: 120}, {X: 600, Y: 50}}, r1.Route)
	assert.Greater(t, r1.StrokeDash, 0.)
	assert.Equal(t, 4, r1.ZIndex)

	tl, br := diagram.BoundingBox()
	assert.Equal(t, geo.Point{X: 99, Y: -1}, tl)
	assert.Equal(t, geo.Point{X: 801, Y: 351}, br)
}

func TestExportHashID(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)

	export := func() string {
		d, table, err := umldiagram.Load([]byte(shopModel))
		assert.NoError(t, err)
		diagram, err := umlexporter.Export(ctx, d, table)
		assert.NoError(t, err)
		id, err := diagram.HashID()
		assert.NoError(t, err)
		return id
	}
	assert.Equal(t, export(), export())

	d, table, err := umldiagram.Load([]byte(shopModel))
	assert.NoError(t, err)
	c1, _ := table.Get("c1")
	c1.Bounds.X++
	diagram, err := umlexporter.Export(ctx, d, table)
	assert.NoError(t, err)
	moved, err := diagram.HashID()
	assert.NoError(t, err)
	assert.NotEqual(t, export(), moved)
}
