package umlelement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/uml/umlelement"
)

func TestGetFeatures(t *testing.T) {
	t.Parallel()

	class := umlelement.GetFeatures(umlelement.Class)
	assert.True(t, class.Connectable)
	assert.True(t, class.Droppable)
	assert.Equal(t, umlelement.ResizeBoth, class.Resizable)

	attr := umlelement.GetFeatures(umlelement.ClassAttribute)
	assert.Equal(t, umlelement.Features{Resizable: umlelement.ResizeNone}, attr)

	final := umlelement.GetFeatures(umlelement.StateFinalNode)
	assert.Equal(t, umlelement.ResizeNone, final.Resizable)
	assert.False(t, final.Updatable)
	assert.True(t, final.Connectable)

	assert.False(t, umlelement.GetFeatures(umlelement.Enumeration).Connectable)

	agent := umlelement.GetFeatures(umlelement.AgentState)
	assert.False(t, agent.Droppable)
	assert.True(t, agent.Resizable.Width())
	assert.False(t, agent.Resizable.Height())

	link := umlelement.GetFeatures(umlelement.ClassAggregation)
	assert.False(t, link.Movable)
	assert.True(t, link.Updatable)

	unknown := umlelement.GetFeatures("Nope")
	assert.False(t, unknown.Selectable)
	assert.False(t, unknown.Resizable.Width())
}

func TestEveryKindHasFeatures(t *testing.T) {
	t.Parallel()

	for _, k := range umlelement.Kinds() {
		assert.True(t, umlelement.GetFeatures(k).Hoverable || k.IsMember() || k == umlelement.UserModelIcon, k)
	}
}

func TestKinds(t *testing.T) {
	t.Parallel()

	kinds := umlelement.Kinds()
	assert.Len(t, kinds, 38)
	for i := 1; i < len(kinds); i++ {
		assert.Less(t, string(kinds[i-1]), string(kinds[i]))
	}
	assert.True(t, umlelement.Link.IsRelationship())
	assert.False(t, umlelement.Class.IsRelationship())
	assert.False(t, umlelement.Kind("Actor").IsValid())
}
