package umldiagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/uml/umldiagram"
)

const orderModel = `{
  "version": "3.0.0",
  "type": "ClassDiagram",
  "size": {"width": 800, "height": 600},
  "elements": {
    "c1": {"type": "Class", "name": "Order", "owner": null, "bounds": {"x": 0, "y": 0, "width": 200, "height": 100},
           "attributes": ["a2", "a1"], "methods": ["m1"]},
    "a1": {"type": "ClassAttribute", "name": "+ id: Integer", "owner": "c1"},
    "a2": {"type": "ClassAttribute", "name": "total", "owner": "c1", "visibility": "private", "attributeType": "float"},
    "m1": {"type": "ClassMethod", "name": "+ pay(): void", "owner": "c1"},
    "c2": {"type": "Enumeration", "name": "Status", "owner": null},
    "n1": {"type": "Comments", "name": "remember refunds", "owner": null}
  },
  "relationships": {
    "r1": {"type": "ClassDependency", "source": {"element": "c1", "direction": "Right"},
           "target": {"element": "c2", "direction": "Left"}}
  }
}`

func TestLoad(t *testing.T) {
	t.Parallel()

	d, table, err := umldiagram.Load([]byte(orderModel))
	assert.NoError(t, err)

	assert.Equal(t, umldiagram.DefaultDiagramID, d.ID)
	assert.Equal(t, umldiagram.ClassDiagram, d.Type)
	assert.Equal(t, 800., d.Bounds.Width)
	assert.Equal(t, []string{"c1", "c2", "n1"}, d.OwnedElements)
	assert.Equal(t, []string{"r1"}, d.OwnedRelationships)
	assert.Equal(t, 7, table.Len())

	c1, ok := table.Get("c1")
	assert.True(t, ok)
	assert.Equal(t, []string{"a2", "a1"}, c1.Classifier.Attributes)
	assert.Equal(t, []string{"m1"}, c1.Classifier.Methods)

	a1, _ := table.Get("a1")
	assert.Equal(t, "id", a1.Name)
	assert.Equal(t, "int", a1.Member.AttributeType)

	m1, _ := table.Get("m1")
	assert.Equal(t, "pay()", m1.Name)
	assert.Equal(t, "any", m1.Member.AttributeType)

	containers := umldiagram.Containers(table)
	assert.Equal(t, map[string][]string{
		"c1": {"a2", "a1", "m1"},
		"c2": {},
	}, containers)
}

func TestLoadSave(t *testing.T) {
	t.Parallel()

	d, table, err := umldiagram.Load([]byte(orderModel))
	assert.NoError(t, err)

	b, err := umldiagram.Save(d, table)
	assert.NoError(t, err)

	reloaded, table2, err := umldiagram.Load(b)
	assert.NoError(t, err)
	assert.Equal(t, d, reloaded)
	assert.Equal(t, table.All(), table2.All())
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"bad_json":      `{`,
		"unknown_kind":  `{"elements": {"x": {"type": "Actor"}}}`,
		"unknown_owner": `{"elements": {"a": {"type": "ClassAttribute", "owner": "gone"}}}`,
		"no_type":       `{"elements": {"a": {"name": "a"}}}`,
		"owner_cycle":   `{"elements": {"a": {"type": "Package", "owner": "b"}, "b": {"type": "Package", "owner": "a"}}}`,
		"self_owner":    `{"elements": {"a": {"type": "Package", "owner": "a"}}}`,
	}
	for name, model := range testCases {
		_, _, err := umldiagram.Load([]byte(model))
		assert.Error(t, err, name)
	}
}
