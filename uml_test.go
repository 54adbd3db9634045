package uml_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/uml"
	"oss.terrastruct.com/uml/lib/log"
)

const model = `{
  "type": "ClassDiagram",
  "elements": {
    "c1": {"type": "Class", "name": "Order", "attributes": ["a1"], "methods": ["m1"]},
    "a1": {"type": "ClassAttribute", "name": "+ id: Integer", "owner": "c1"},
    "m1": {"type": "ClassMethod", "name": "+ pay(): void", "owner": "c1"},
    "c2": {"type": "Class", "name": "Customer", "bounds": {"x": 500, "y": 0}}
  },
  "relationships": {
    "r1": {"type": "ClassBidirectional", "source": {"element": "c1", "direction": "Right"},
           "target": {"element": "c2", "direction": "Left"}},
    "r2": {"type": "ObjectLink", "source": {"element": "c1", "direction": "Right"},
           "target": {"element": "c2", "direction": "Left"}}
  }
}`

func TestLayout(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)

	diagram, err := uml.Layout(ctx, []byte(model), nil)
	assert.NoError(t, err)
	assert.Len(t, diagram.Shapes, 4)
	assert.Len(t, diagram.Connections, 2)

	c1, ok := diagram.GetShape("c1")
	assert.True(t, ok)
	a1, _ := diagram.GetShape("a1")
	m1, _ := diagram.GetShape("m1")
	assert.Equal(t, 40.+30+30, c1.Height)
	assert.Equal(t, 40., c1.HeaderHeight)
	assert.Equal(t, 70., c1.DividerPosition)
	assert.Equal(t, c1.Pos.Y+40.5, a1.Pos.Y)
	assert.Equal(t, c1.Pos.Y+70.5, m1.Pos.Y)
	assert.Equal(t, c1.Width-1, a1.Width)
	assert.Equal(t, "+ id: int", a1.Label)

	r1 := diagram.Connections[0]
	assert.Equal(t, "r1", r1.ID)
	assert.Len(t, r1.Route, 2)
	assert.Equal(t, c1.Pos.X+c1.Width, r1.Route[0].X)
	assert.Equal(t, c1.Pos.Y+c1.Height/2, r1.Route[0].Y)
	assert.Equal(t, 500., r1.Route[1].X)

	again, err := uml.Layout(ctx, []byte(model), nil)
	assert.NoError(t, err)
	assert.Equal(t, diagram, again)
}

func TestLayoutActions(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)

	diagram, err := uml.Layout(ctx, []byte(model), &uml.LayoutOptions{
		Actions: []byte(`[
			{"type": "REMOVE", "payload": {"owner": "diagram", "ids": ["c2"]}},
			{"type": "UPDATE_BOUNDS", "payload": {"id": "c1"}},
			{"type": "APPEND", "payload": {"owner": "elsewhere", "ids": ["c2"]}},
			{"type": "APPEND", "payload": {"owner": "diagram", "ids": ["ghost"]}}
		]`),
	})
	assert.NoError(t, err)
	assert.Len(t, diagram.Shapes, 3)
	_, ok := diagram.GetShape("c2")
	assert.False(t, ok)

	_, err = uml.Layout(ctx, []byte(model), &uml.LayoutOptions{
		Actions: []byte(`[{"payload": {}}]`),
	})
	assert.Error(t, err)
}

func TestLayoutStrictRelationships(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)

	actions := []byte(`[{"type": "APPEND", "payload": {"owner": "diagram", "ids": ["r2"]}}]`)

	_, err := uml.Layout(ctx, []byte(model), &uml.LayoutOptions{
		Actions:             actions,
		StrictRelationships: true,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Class does not support ObjectLink relationships")

	_, err = uml.Layout(ctx, []byte(model), &uml.LayoutOptions{Actions: actions})
	assert.NoError(t, err)
}

func TestLayoutBadModel(t *testing.T) {
	t.Parallel()

	ctx := log.WithTB(context.Background(), t, nil)

	_, err := uml.Layout(ctx, []byte(`{"elements": {"x": {}}}`), nil)
	assert.Error(t, err)

	cycle := `{"elements": {"a": {"type": "Package", "owner": "b"}, "b": {"type": "Package", "owner": "a"}}}`
	_, err = uml.Layout(ctx, []byte(cycle), &uml.LayoutOptions{
		Actions: []byte(`[{"type": "APPEND", "payload": {"owner": "diagram", "ids": ["a"]}}]`),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "owner cycle")
}
