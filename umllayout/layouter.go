package umllayout

import (
	"context"
	"fmt"

	"cdr.dev/slog"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/uml/lib/geo"
	"oss.terrastruct.com/uml/lib/log"
	"oss.terrastruct.com/uml/umlclassifier"
	"oss.terrastruct.com/uml/umlelement"
	"oss.terrastruct.com/uml/umlrelationship"
)

// Tree is an element table that can list the children of an element.
type Tree interface {
	umlelement.Table
	Children(owner string) []*umlelement.Element
}

type Layouter struct {
	Layer Layer
}

func NewLayouter(layer Layer) *Layouter {
	return &Layouter{Layer: layer}
}

// Layout renders the elements ids name and everything they contain. Children are
// rendered before their container, and relationships after every node so that they
// can be routed between the final bounds of their endpoints.
//
// Every element a render returned is registered on the layer once, in render order,
// and returned.
func (l *Layouter) Layout(ctx context.Context, tree Tree, ids []string) (_ []*umlelement.Element, err error) {
	defer xdefer.Errorf(&err, "failed to layout %d elements", len(ids))

	s := &layoutState{
		tree:  tree,
		layer: l.Layer,
		seen:  make(map[*umlelement.Element]struct{}),

		visiting: make(map[*umlelement.Element]struct{}),
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		el, ok := tree.Get(id)
		if !ok {
			return nil, fmt.Errorf("unknown element %q", id)
		}
		s.layout(ctx, el)
	}

	for _, rel := range s.relationships {
		s.route(ctx, rel)
	}

	return s.changed, nil
}

type layoutState struct {
	tree  Tree
	layer Layer

	changed       []*umlelement.Element
	seen          map[*umlelement.Element]struct{}
	relationships []*umlelement.Element

	// visiting holds the elements on the current descent, so owner cycles end.
	visiting map[*umlelement.Element]struct{}
}

func (s *layoutState) layout(ctx context.Context, el *umlelement.Element) {
	if el.Kind.IsRelationship() {
		s.relationships = append(s.relationships, el)
		return
	}

	if _, ok := s.visiting[el]; ok {
		log.Warn(ctx, "element owns itself", slog.F("id", el.ID))
		return
	}
	s.visiting[el] = struct{}{}
	defer delete(s.visiting, el)

	children := s.children(el)
	for _, c := range children {
		s.layout(ctx, c)
	}

	var nodes []*umlelement.Element
	for _, c := range children {
		if !c.Kind.IsRelationship() {
			nodes = append(nodes, c)
		}
	}

	before := el.Bounds
	s.register(Render(s.layer, el, nodes)...)
	log.Debug(ctx, "rendered element",
		slog.F("id", el.ID),
		slog.F("kind", el.Kind),
		slog.F("before", before.ToString()),
		slog.F("after", el.Bounds.ToString()),
	)
}

// children returns the children of el in display order.
func (s *layoutState) children(el *umlelement.Element) []*umlelement.Element {
	children := s.tree.Children(el.ID)
	if !umlclassifier.IsContainer(el.Kind) {
		return children
	}

	byID := make(map[string]*umlelement.Element, len(children))
	for _, c := range children {
		byID[c.ID] = c
	}
	ordered := make([]*umlelement.Element, 0, len(children))
	for _, id := range umlclassifier.Arrange(el, children) {
		ordered = append(ordered, byID[id])
	}
	return ordered
}

func (s *layoutState) route(ctx context.Context, rel *umlelement.Element) {
	source, target, err := umlrelationship.Endpoints(s.tree, rel)
	if err != nil {
		log.Warn(ctx, "relationship not routed", slog.F("id", rel.ID), slog.Error(err))
		s.register(umlrelationship.Render(rel)...)
		return
	}

	origin := geo.Point{}
	if owner, ok := s.tree.Get(rel.OwnerID()); ok {
		origin = Absolute(s.tree, owner).TopLeft()
	}
	sb := Absolute(s.tree, source).Translate(-origin.X, -origin.Y)
	tb := Absolute(s.tree, target).Translate(-origin.X, -origin.Y)

	umlrelationship.Route(rel, sb, tb)
	s.register(rel)
}

func (s *layoutState) register(els ...*umlelement.Element) {
	for _, el := range els {
		if _, ok := s.seen[el]; ok {
			continue
		}
		s.seen[el] = struct{}{}
		s.changed = append(s.changed, el)
		s.layer.Register(el)
	}
}

// Absolute returns the bounds of el relative to the diagram instead of its owner.
func Absolute(table umlelement.Table, el *umlelement.Element) geo.Bounds {
	b := el.Bounds
	seen := map[string]struct{}{el.ID: {}}
	for owner := el.Owner; owner != nil; {
		if _, ok := seen[*owner]; ok {
			break
		}
		seen[*owner] = struct{}{}
		parent, ok := table.Get(*owner)
		if !ok {
			break
		}
		b = b.Translate(parent.Bounds.X, parent.Bounds.Y)
		owner = parent.Owner
	}
	return b
}
