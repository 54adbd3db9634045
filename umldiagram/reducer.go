package umldiagram

import (
	"oss.terrastruct.com/uml/lib/go2"
)

// Reduce returns the diagram after applying action to state.
//
// Append and Remove addressed to another owner, and every other action type, return
// state itself. So does a transition that leaves the membership as it was. state is
// never modified.
func Reduce(state *Diagram, action Action) *Diagram {
	var owned []string
	switch a := action.(type) {
	case Append:
		if a.Owner != state.ID {
			return state
		}
		owned = AppendIDs(state.OwnedElements, a.IDs)
	case *Append:
		return Reduce(state, *a)
	case Remove:
		if a.Owner != state.ID {
			return state
		}
		owned = RemoveIDs(state.OwnedElements, a.IDs)
	case *Remove:
		return Reduce(state, *a)
	default:
		return state
	}

	if go2.Equal(owned, state.OwnedElements) {
		return state
	}
	next := state.copy()
	next.OwnedElements = owned
	return next
}

// AppendIDs returns ids followed by owned, keeping the first occurrence of each ID.
func AppendIDs(owned, ids []string) []string {
	out := make([]string, 0, len(ids)+len(owned))
	out = append(out, ids...)
	out = append(out, owned...)
	return go2.Dedupe(out)
}

// RemoveIDs returns owned without ids. Survivors keep their order.
func RemoveIDs(owned, ids []string) []string {
	return go2.Without(owned, ids)
}
