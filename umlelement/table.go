package umlelement

import (
	"golang.org/x/exp/slices"
)

// Table resolves element IDs to records. Membership lists only hold IDs, the records
// themselves live in a Table.
type Table interface {
	Get(id string) (*Element, bool)
}

// Map is an in-memory Table.
//
// Listing methods sort by ID so their output does not depend on map iteration order.
type Map struct {
	els map[string]*Element
}

var _ Table = &Map{}

func NewMap(els ...*Element) *Map {
	m := &Map{
		els: make(map[string]*Element, len(els)),
	}
	for _, el := range els {
		m.Put(el)
	}
	return m
}

func (m *Map) Get(id string) (*Element, bool) {
	el, ok := m.els[id]
	return el, ok
}

// Put inserts el or replaces the record with the same ID.
func (m *Map) Put(el *Element) {
	m.els[el.ID] = el
}

func (m *Map) Delete(id string) {
	delete(m.els, id)
}

func (m *Map) Len() int {
	return len(m.els)
}

// All returns every record.
func (m *Map) All() []*Element {
	els := make([]*Element, 0, len(m.els))
	for _, el := range m.els {
		els = append(els, el)
	}
	sortByID(els)
	return els
}

// Children returns the direct children of owner. An empty owner lists root elements.
func (m *Map) Children(owner string) []*Element {
	var els []*Element
	for _, el := range m.els {
		if el.OwnerID() == owner {
			els = append(els, el)
		}
	}
	sortByID(els)
	return els
}

// Descendants returns every element transitively owned by id, parents before children.
func (m *Map) Descendants(id string) []*Element {
	var out []*Element
	for _, child := range m.Children(id) {
		out = append(out, child)
		out = append(out, m.Descendants(child.ID)...)
	}
	return out
}

// Relationships returns the relationships with id as source or target.
func (m *Map) Relationships(id string) []*Element {
	var out []*Element
	for _, el := range m.All() {
		r := el.Relationship
		if r != nil && (r.Source.Element == id || r.Target.Element == id) {
			out = append(out, el)
		}
	}
	return out
}

func sortByID(els []*Element) {
	slices.SortFunc(els, func(a, b *Element) bool {
		return a.ID < b.ID
	})
}
