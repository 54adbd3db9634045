package umldiagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/uml/umldiagram"
)

func diagram(owned ...string) *umldiagram.Diagram {
	d := umldiagram.New("d", umldiagram.ClassDiagram)
	d.OwnedElements = append(d.OwnedElements, owned...)
	return d
}

func TestReduce(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		owned   []string
		actions []umldiagram.Action
		exp     []string
	}{
		{
			name:    "append_to_empty",
			actions: []umldiagram.Action{umldiagram.Append{Owner: "d", IDs: []string{"e1", "e2"}}},
			exp:     []string{"e1", "e2"},
		},
		{
			name:  "append_is_newest_first",
			owned: []string{"s1", "s2"},
			actions: []umldiagram.Action{
				umldiagram.Append{Owner: "d", IDs: []string{"a1", "a2"}},
				umldiagram.Append{Owner: "d", IDs: []string{"b1"}},
			},
			exp: []string{"b1", "a1", "a2", "s1", "s2"},
		},
		{
			name:  "append_dedupes_keeping_first",
			owned: []string{"s1", "a1"},
			actions: []umldiagram.Action{
				umldiagram.Append{Owner: "d", IDs: []string{"a1", "b1", "a1"}},
			},
			exp: []string{"a1", "b1", "s1"},
		},
		{
			name:    "remove_keeps_order",
			owned:   []string{"e1", "e2", "e3", "e4"},
			actions: []umldiagram.Action{umldiagram.Remove{Owner: "d", IDs: []string{"e3", "e1", "x"}}},
			exp:     []string{"e2", "e4"},
		},
		{
			name:    "remove_everything",
			owned:   []string{"e1"},
			actions: []umldiagram.Action{umldiagram.Remove{Owner: "d", IDs: []string{"e1"}}},
			exp:     []string{},
		},
		{
			name:  "pointer_actions",
			owned: []string{"e1"},
			actions: []umldiagram.Action{
				&umldiagram.Append{Owner: "d", IDs: []string{"e2"}},
				&umldiagram.Remove{Owner: "d", IDs: []string{"e1"}},
			},
			exp: []string{"e2"},
		},
		{
			name:  "scenario",
			owned: []string{},
			actions: []umldiagram.Action{
				umldiagram.Append{Owner: "d", IDs: []string{"e1", "e2"}},
				umldiagram.Append{Owner: "d", IDs: []string{"e2", "e3"}},
				umldiagram.Remove{Owner: "d", IDs: []string{"e1"}},
			},
			exp: []string{"e2", "e3"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := diagram(tc.owned...)
			for _, a := range tc.actions {
				d = umldiagram.Reduce(d, a)
			}
			assert.Equal(t, tc.exp, d.OwnedElements)
		})
	}
}

func TestReduceScenarioSteps(t *testing.T) {
	t.Parallel()

	d := diagram()
	d = umldiagram.Reduce(d, umldiagram.Append{Owner: d.ID, IDs: []string{"e1", "e2"}})
	assert.Equal(t, []string{"e1", "e2"}, d.OwnedElements)
	d = umldiagram.Reduce(d, umldiagram.Append{Owner: d.ID, IDs: []string{"e2", "e3"}})
	assert.Equal(t, []string{"e2", "e3", "e1"}, d.OwnedElements)
	d = umldiagram.Reduce(d, umldiagram.Remove{Owner: d.ID, IDs: []string{"e1"}})
	assert.Equal(t, []string{"e2", "e3"}, d.OwnedElements)
}

func TestReduceAppendAppend(t *testing.T) {
	t.Parallel()

	s := []string{"s1", "s2", "s3"}
	sets := [][]string{
		{},
		{"a1"},
		{"a1", "a2"},
		{"s2", "a1"},
		{"b1", "s1"},
	}
	for _, a := range sets {
		for _, b := range sets {
			d := diagram(s...)
			d = umldiagram.Reduce(d, umldiagram.Append{Owner: "d", IDs: a})
			d = umldiagram.Reduce(d, umldiagram.Append{Owner: "d", IDs: b})

			exp := dedupe(concat(b, a, s))
			assert.Equal(t, exp, d.OwnedElements, "A=%v B=%v", a, b)
		}
	}
}

func TestReduceIdempotent(t *testing.T) {
	t.Parallel()

	for _, ids := range [][]string{{"a1"}, {"s2", "a1"}, {}} {
		once := umldiagram.Reduce(diagram("s1", "s2"), umldiagram.Append{Owner: "d", IDs: ids})
		twice := umldiagram.Reduce(once, umldiagram.Append{Owner: "d", IDs: ids})
		assert.Equal(t, once.OwnedElements, twice.OwnedElements)
		assert.Same(t, once, twice)

		removed := umldiagram.Reduce(diagram("s1", "s2", "a1"), umldiagram.Remove{Owner: "d", IDs: ids})
		fixed := umldiagram.Reduce(removed, umldiagram.Remove{Owner: "d", IDs: ids})
		assert.Same(t, removed, fixed)
	}
}

func TestReduceIgnoresOtherOwners(t *testing.T) {
	t.Parallel()

	d := diagram("s1")
	assert.Same(t, d, umldiagram.Reduce(d, umldiagram.Append{Owner: "other", IDs: []string{"a1"}}))
	assert.Same(t, d, umldiagram.Reduce(d, umldiagram.Remove{Owner: "other", IDs: []string{"s1"}}))
	assert.Same(t, d, umldiagram.Reduce(d, umldiagram.Append{Owner: "", IDs: []string{"a1"}}))
}

func TestReduceInert(t *testing.T) {
	t.Parallel()

	d := diagram("s1")
	for _, typ := range umldiagram.InertTypes {
		assert.Same(t, d, umldiagram.Reduce(d, umldiagram.Inert{Kind: typ}), typ)
	}
	assert.Same(t, d, umldiagram.Reduce(d, umldiagram.Inert{Kind: "SOMETHING_ELSE"}))
}

func TestReduceDoesNotMutate(t *testing.T) {
	t.Parallel()

	d := diagram("s1", "s2")
	next := umldiagram.Reduce(d, umldiagram.Append{Owner: "d", IDs: []string{"a1"}})
	next = umldiagram.Reduce(next, umldiagram.Remove{Owner: "d", IDs: []string{"s1"}})

	assert.Equal(t, []string{"s1", "s2"}, d.OwnedElements)
	assert.Equal(t, []string{"a1", "s2"}, next.OwnedElements)
	assert.NotSame(t, d, next)
	assert.Equal(t, d.ID, next.ID)
}

func concat(sets ...[]string) []string {
	var out []string
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
