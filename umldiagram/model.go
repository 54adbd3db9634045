package umldiagram

import (
	"encoding/json"
	"fmt"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/uml/lib/geo"
	"oss.terrastruct.com/uml/umlclassifier"
	"oss.terrastruct.com/uml/umlelement"
)

const ModelVersion = "3.0.0"

// Model is the interchange form of a diagram and every element in it.
type Model struct {
	Version       string                     `json:"version"`
	ID            string                     `json:"id,omitempty"`
	Type          Type                       `json:"type"`
	Size          geo.Size                   `json:"size"`
	Elements      map[string]json.RawMessage `json:"elements"`
	Relationships map[string]json.RawMessage `json:"relationships"`
}

// Load decodes a model into a diagram and a table of its elements.
//
// Root elements and relationships become the diagram's membership in ID order.
// Containers get their children ordered as their payload lists them, then sorted with
// umlclassifier.ReorderChildren.
func Load(b []byte) (_ *Diagram, _ *umlelement.Map, err error) {
	defer xdefer.Errorf(&err, "failed to load model")

	var m Model
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, nil, err
	}

	table := umlelement.NewMap()
	for _, raws := range []map[string]json.RawMessage{m.Elements, m.Relationships} {
		for id, raw := range raws {
			el, err := umlelement.UnmarshalModel(id, raw)
			if err != nil {
				return nil, nil, err
			}
			table.Put(el)
		}
	}

	d := New(m.ID, m.Type)
	d.Bounds = geo.NewBounds(0, 0, m.Size.Width, m.Size.Height)

	for _, el := range table.All() {
		if el.Owner != nil {
			if _, ok := table.Get(*el.Owner); !ok {
				return nil, nil, fmt.Errorf("element %q is owned by unknown element %q", el.ID, *el.Owner)
			}
			if err := ownerCycle(table, el); err != nil {
				return nil, nil, err
			}
			continue
		}
		if el.Kind.IsRelationship() {
			d.OwnedRelationships = append(d.OwnedRelationships, el.ID)
		} else {
			d.OwnedElements = append(d.OwnedElements, el.ID)
		}
	}

	for _, el := range table.All() {
		if umlclassifier.IsContainer(el.Kind) {
			Arrange(el, table)
		}
	}

	return d, table, nil
}

// ownerCycle walks the owner chain of el and errors when it comes back to an element
// it already visited.
func ownerCycle(table *umlelement.Map, el *umlelement.Element) error {
	seen := map[string]struct{}{el.ID: {}}
	for el.Owner != nil {
		parent, ok := table.Get(*el.Owner)
		if !ok {
			return nil
		}
		if _, ok := seen[parent.ID]; ok {
			return fmt.Errorf("element %q is part of an owner cycle", parent.ID)
		}
		seen[parent.ID] = struct{}{}
		el = parent
	}
	return nil
}

// Arrange orders the children of el in table and writes the order into el's payload.
func Arrange(el *umlelement.Element, table *umlelement.Map) []string {
	ordered := umlclassifier.Arrange(el, table.Children(el.ID))
	umlclassifier.Sync(el, ordered, table)
	return ordered
}

// Save encodes d and the elements of table into a model.
func Save(d *Diagram, table *umlelement.Map) (_ []byte, err error) {
	defer xdefer.Errorf(&err, "failed to save model")

	m := Model{
		Version:       ModelVersion,
		ID:            d.ID,
		Type:          d.Type,
		Size:          d.Bounds.Size(),
		Elements:      make(map[string]json.RawMessage),
		Relationships: make(map[string]json.RawMessage),
	}
	for _, el := range table.All() {
		raw, err := umlelement.MarshalModel(el)
		if err != nil {
			return nil, err
		}
		if el.Kind.IsRelationship() {
			m.Relationships[el.ID] = raw
		} else {
			m.Elements[el.ID] = raw
		}
	}
	return json.MarshalIndent(m, "", "  ")
}

// Containers returns the ordered children of every element in table that has children
// or can take some, ready to Register on a Store.
func Containers(table *umlelement.Map) map[string][]string {
	out := make(map[string][]string)
	for _, el := range table.All() {
		children := table.Children(el.ID)
		if len(children) == 0 && !IsContainer(el.Kind) {
			continue
		}
		if umlclassifier.IsContainer(el.Kind) {
			out[el.ID] = umlclassifier.Arrange(el, children)
			continue
		}
		ids := make([]string, 0, len(children))
		for _, c := range children {
			ids = append(ids, c.ID)
		}
		out[el.ID] = ids
	}
	return out
}

// IsContainer reports whether elements of kind can own other elements.
func IsContainer(kind umlelement.Kind) bool {
	return umlclassifier.IsContainer(kind) || umlelement.GetFeatures(kind).Droppable
}
