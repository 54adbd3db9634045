package umlelement_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/uml/lib/geo"
	"oss.terrastruct.com/uml/lib/go2"
	"oss.terrastruct.com/uml/umlelement"
)

func TestNew(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		partial    umlelement.Partial
		assertions func(t *testing.T, el *umlelement.Element)
	}{
		{
			name:    "defaults",
			partial: umlelement.Partial{},
			assertions: func(t *testing.T, el *umlelement.Element) {
				assert.NotEmpty(t, el.ID)
				assert.Equal(t, umlelement.Class, el.Kind)
				assert.Nil(t, el.Owner)
				assert.True(t, el.IsRoot())
				assert.Equal(t, geo.NewBounds(0, 0, 200, 100), el.Bounds)
				assert.NotNil(t, el.Classifier)
				assert.Nil(t, el.Classifier.Stereotype)
			},
		},
		{
			name: "explicit_fields",
			partial: umlelement.Partial{
				ID:    go2.Pointer("c1"),
				Name:  go2.Pointer("Customer"),
				Owner: go2.Pointer("p1"),
				Bounds: &umlelement.PartialBounds{
					X:     go2.Pointer(10.),
					Width: go2.Pointer(300.),
				},
			},
			assertions: func(t *testing.T, el *umlelement.Element) {
				assert.Equal(t, "c1", el.ID)
				assert.Equal(t, "Customer", el.Name)
				assert.Equal(t, "p1", el.OwnerID())
				assert.Equal(t, geo.NewBounds(10, 0, 300, 100), el.Bounds)
			},
		},
		{
			name:    "abstract_class",
			partial: umlelement.Partial{Kind: go2.Pointer(umlelement.AbstractClass)},
			assertions: func(t *testing.T, el *umlelement.Element) {
				assert.True(t, el.Classifier.Italic)
				assert.Equal(t, "abstract", *el.Classifier.Stereotype)
			},
		},
		{
			name:    "enumeration",
			partial: umlelement.Partial{Kind: go2.Pointer(umlelement.Enumeration)},
			assertions: func(t *testing.T, el *umlelement.Element) {
				assert.Equal(t, "enumeration", *el.Classifier.Stereotype)
				assert.False(t, el.Features().Connectable)
			},
		},
		{
			name: "member",
			partial: umlelement.Partial{
				Kind:          go2.Pointer(umlelement.ClassAttribute),
				AttributeType: go2.Pointer("Integer"),
			},
			assertions: func(t *testing.T, el *umlelement.Element) {
				assert.Equal(t, 30., el.Bounds.Height)
				assert.Equal(t, umlelement.Public, el.Member.Visibility)
				assert.Equal(t, "int", el.Member.AttributeType)
				assert.Equal(t, umlelement.ImplementationNone, el.Member.ImplementationType)
				assert.Nil(t, el.Classifier)
			},
		},
		{
			name: "method_with_code",
			partial: umlelement.Partial{
				Kind: go2.Pointer(umlelement.ClassMethod),
				Code: go2.Pointer("return 1"),
			},
			assertions: func(t *testing.T, el *umlelement.Element) {
				assert.Equal(t, umlelement.ImplementationCode, el.Member.ImplementationType)
			},
		},
		{
			name:    "final_node",
			partial: umlelement.Partial{Kind: go2.Pointer(umlelement.StateFinalNode)},
			assertions: func(t *testing.T, el *umlelement.Element) {
				assert.Equal(t, geo.NewSize(50, 50), el.Bounds.Size())
			},
		},
		{
			name:    "rag_element",
			partial: umlelement.Partial{Kind: go2.Pointer(umlelement.AgentRagElement)},
			assertions: func(t *testing.T, el *umlelement.Element) {
				assert.Equal(t, geo.NewSize(140, 120), el.Bounds.Size())
			},
		},
		{
			name: "agent_intent",
			partial: umlelement.Partial{
				Kind:              go2.Pointer(umlelement.AgentIntent),
				IntentDescription: go2.Pointer("greets the user"),
			},
			assertions: func(t *testing.T, el *umlelement.Element) {
				assert.NotNil(t, el.State)
				assert.Equal(t, "greets the user", el.State.IntentDescription)
			},
		},
		{
			name: "relationship",
			partial: umlelement.Partial{
				Kind:   go2.Pointer(umlelement.ClassInheritance),
				Source: &umlelement.PartialEndpoint{Element: go2.Pointer("a")},
				Target: &umlelement.PartialEndpoint{Element: go2.Pointer("b"), Direction: go2.Pointer(umlelement.Up)},
			},
			assertions: func(t *testing.T, el *umlelement.Element) {
				assert.Equal(t, geo.Bounds{}, el.Bounds)
				assert.Equal(t, "a", el.Relationship.Source.Element)
				assert.Equal(t, umlelement.Up, el.Relationship.Target.Direction)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.assertions(t, umlelement.New(tc.partial))
		})
	}
}

func TestNewDoesNotAlias(t *testing.T) {
	t.Parallel()

	owner := "p1"
	el := umlelement.New(umlelement.Partial{Owner: &owner})
	owner = "p2"
	assert.Equal(t, "p1", el.OwnerID())
}

func TestCopy(t *testing.T) {
	t.Parallel()

	el := umlelement.New(umlelement.Partial{ID: go2.Pointer("c1"), Owner: go2.Pointer("p1")})
	el.Classifier.Attributes = []string{"a1"}

	cp := el.Copy()
	cp.Classifier.Attributes[0] = "a2"
	*cp.Owner = "p2"
	cp.Bounds.Width = 1

	assert.Equal(t, []string{"a1"}, el.Classifier.Attributes)
	assert.Equal(t, "p1", el.OwnerID())
	assert.Equal(t, 200., el.Bounds.Width)
}

func TestDecodePartial(t *testing.T) {
	t.Parallel()

	var raw map[string]interface{}
	err := json.Unmarshal([]byte(`{
		"id": "a1",
		"name": "- id: Integer",
		"type": "ClassAttribute",
		"owner": "c1",
		"bounds": {"x": 0, "y": 40, "width": 200, "height": 30},
		"unknown": true
	}`), &raw)
	assert.NoError(t, err)

	p, err := umlelement.DecodePartial(raw)
	assert.NoError(t, err)

	el := umlelement.New(p)
	assert.Equal(t, "a1", el.ID)
	assert.Equal(t, "id", el.Name)
	assert.Equal(t, "c1", el.OwnerID())
	assert.Equal(t, geo.NewBounds(0, 40, 200, 30), el.Bounds)
	assert.Equal(t, umlelement.Private, el.Member.Visibility)
	assert.Equal(t, "int", el.Member.AttributeType)
	assert.Equal(t, "- id: int", el.DisplayName())
}

func TestDecodePartialNullOwner(t *testing.T) {
	t.Parallel()

	p, err := umlelement.DecodePartial(map[string]interface{}{
		"type":  "Class",
		"owner": nil,
	})
	assert.NoError(t, err)
	assert.Nil(t, p.Owner)
}

func TestDecodePartialBadType(t *testing.T) {
	t.Parallel()

	_, err := umlelement.DecodePartial(map[string]interface{}{
		"bounds": "wide",
	})
	assert.Error(t, err)
}
