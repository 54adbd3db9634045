package umldiagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/uml/umldiagram"
)

func TestUnmarshalActions(t *testing.T) {
	t.Parallel()

	actions, err := umldiagram.UnmarshalActions([]byte(`[
		{"type": "APPEND", "payload": {"owner": "d", "ids": ["e1", "e2"]}},
		{"type": "REMOVE", "payload": {"owner": "d", "ids": ["e1"]}},
		{"type": "UPDATE_BOUNDS", "payload": {"id": "e2", "bounds": {"x": 1}}}
	]`))
	assert.NoError(t, err)
	assert.Len(t, actions, 3)
	assert.Equal(t, umldiagram.Append{Owner: "d", IDs: []string{"e1", "e2"}}, actions[0])
	assert.Equal(t, umldiagram.Remove{Owner: "d", IDs: []string{"e1"}}, actions[1])
	assert.Equal(t, umldiagram.UpdateBoundsType, actions[2].Type())

	b, err := umldiagram.MarshalActions(actions)
	assert.NoError(t, err)
	again, err := umldiagram.UnmarshalActions(b)
	assert.NoError(t, err)
	assert.Equal(t, actions[:2], again[:2])
	assert.Equal(t, umldiagram.UpdateBoundsType, again[2].Type())

	_, err = umldiagram.UnmarshalActions([]byte(`[{"payload": {}}]`))
	assert.Error(t, err)

	_, err = umldiagram.UnmarshalActions([]byte(`[{"type": "APPEND", "payload": {"ids": "e1"}}]`))
	assert.Error(t, err)
}
