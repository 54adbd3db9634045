package umlelement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/uml/lib/geo"
	"oss.terrastruct.com/uml/lib/go2"
	"oss.terrastruct.com/uml/umlelement"
)

func TestModelRoundTrip(t *testing.T) {
	t.Parallel()

	els := []*umlelement.Element{
		umlelement.New(umlelement.Partial{
			ID:         go2.Pointer("c1"),
			Name:       go2.Pointer("Order"),
			Kind:       go2.Pointer(umlelement.Interface),
			Attributes: []string{"a1"},
			Methods:    []string{"m1"},
			FillColor:  go2.Pointer("#ffeeee"),
		}),
		umlelement.New(umlelement.Partial{
			ID:                 go2.Pointer("m1"),
			Name:               go2.Pointer("total"),
			Kind:               go2.Pointer(umlelement.ClassMethod),
			Owner:              go2.Pointer("c1"),
			Visibility:         go2.Pointer(umlelement.Private),
			AttributeType:      go2.Pointer("float"),
			ImplementationType: go2.Pointer(umlelement.ImplementationStateMachine),
			StateMachineID:     go2.Pointer("sm1"),
		}),
		umlelement.New(umlelement.Partial{
			ID:                go2.Pointer("i1"),
			Kind:              go2.Pointer(umlelement.AgentIntent),
			Bodies:            []string{"b1"},
			IntentDescription: go2.Pointer("asks for the order"),
		}),
		umlelement.New(umlelement.Partial{
			ID:     go2.Pointer("r1"),
			Kind:   go2.Pointer(umlelement.ClassAggregation),
			Source: &umlelement.PartialEndpoint{Element: go2.Pointer("c1"), Direction: go2.Pointer(umlelement.Down), Multiplicity: go2.Pointer("1")},
			Target: &umlelement.PartialEndpoint{Element: go2.Pointer("c2"), Direction: go2.Pointer(umlelement.Up), Role: go2.Pointer("items")},
			Path:   []geo.Point{{X: 0, Y: 0}, {X: 0, Y: 40}},
		}),
	}

	for _, el := range els {
		b, err := umlelement.MarshalModel(el)
		assert.NoError(t, err)
		got, err := umlelement.UnmarshalModel(el.ID, b)
		assert.NoError(t, err)
		assert.Equal(t, el, got, string(b))
	}
}

func TestUnmarshalModel(t *testing.T) {
	t.Parallel()

	el, err := umlelement.UnmarshalModel("s1", []byte(`{"type": "StateFinalNode", "name": "done"}`))
	assert.NoError(t, err)
	assert.Equal(t, "s1", el.ID)
	assert.Equal(t, 50., el.Bounds.Width)

	_, err = umlelement.UnmarshalModel("x", []byte(`{"name": "no type"}`))
	assert.Error(t, err)

	_, err = umlelement.UnmarshalModel("x", []byte(`{"type": "Actor"}`))
	assert.Error(t, err)

	_, err = umlelement.UnmarshalModel("x", []byte(`[`))
	assert.Error(t, err)
}
