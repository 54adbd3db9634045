package umldiagram

import (
	"oss.terrastruct.com/uml/lib/go2"
)

// Router delivers each action to the one container it is addressed to.
//
// The diagram's own membership is reduced with Reduce. Nested containers, such as a
// package or a class, keep their membership in a slice registered under their ID and
// get the same Append and Remove transitions. Actions addressed to an owner that was
// never registered are absorbed.
//
// Router is not safe for concurrent use. Store serializes access to it.
type Router struct {
	diagram    *Diagram
	containers map[string][]string
}

func NewRouter(d *Diagram) *Router {
	return &Router{
		diagram:    d,
		containers: make(map[string][]string),
	}
}

func (r *Router) Diagram() *Diagram {
	return r.diagram
}

// Register makes owner routable with ids as its current members.
func (r *Router) Register(owner string, ids []string) {
	r.containers[owner] = append([]string{}, ids...)
}

// Unregister stops routing to owner.
func (r *Router) Unregister(owner string) {
	delete(r.containers, owner)
}

// Members returns the membership of owner, which may be the diagram itself.
func (r *Router) Members(owner string) ([]string, bool) {
	if owner == r.diagram.ID {
		return r.diagram.OwnedElements, true
	}
	ids, ok := r.containers[owner]
	return ids, ok
}

// Route applies a and reports whether any membership changed.
func (r *Router) Route(a Action) bool {
	o, ok := owner(a)
	if !ok {
		return false
	}

	if o == r.diagram.ID {
		next := Reduce(r.diagram, a)
		changed := next != r.diagram
		r.diagram = next
		return changed
	}

	ids, ok := r.containers[o]
	if !ok {
		return false
	}
	var next []string
	switch a := a.(type) {
	case Append:
		next = AppendIDs(ids, a.IDs)
	case *Append:
		next = AppendIDs(ids, a.IDs)
	case Remove:
		next = RemoveIDs(ids, a.IDs)
	case *Remove:
		next = RemoveIDs(ids, a.IDs)
	}
	if go2.Equal(next, ids) {
		return false
	}
	r.containers[o] = next
	return true
}
