// Package umlrelationship holds the whitelist of relationship kinds each element kind
// may start, and the geometry of relationship paths.
package umlrelationship

import (
	"fmt"

	"oss.terrastruct.com/uml/lib/geo"
	"oss.terrastruct.com/uml/lib/go2"
	"oss.terrastruct.com/uml/umlelement"
)

var classRelationships = []umlelement.Kind{
	umlelement.ClassBidirectional,
	umlelement.ClassOCLLink,
	umlelement.ClassAggregation,
	umlelement.ClassDependency,
	umlelement.ClassComposition,
	umlelement.ClassUnidirectional,
	umlelement.ClassInheritance,
	umlelement.ClassRealization,
}

var stateRelationships = []umlelement.Kind{
	umlelement.StateTransition,
}

var supported = map[umlelement.Kind][]umlelement.Kind{
	umlelement.Class:         classRelationships,
	umlelement.AbstractClass: classRelationships,
	umlelement.Interface:     classRelationships,
	umlelement.Enumeration:   classRelationships,

	umlelement.ClassOCLConstraint: {umlelement.ClassOCLLink},

	umlelement.ObjectName: {umlelement.ObjectLink},

	umlelement.StateActionNode:  stateRelationships,
	umlelement.StateFinalNode:   stateRelationships,
	umlelement.StateInitialNode: stateRelationships,

	umlelement.AgentState: {
		umlelement.AgentStateTransition,
		umlelement.AgentStateTransitionInit,
		umlelement.Link,
	},
	umlelement.AgentIntent:     {umlelement.Link},
	umlelement.AgentRagElement: {umlelement.Link},

	umlelement.Comments: {umlelement.Link},

	umlelement.UserModelName: {umlelement.UserModelLink, umlelement.Link},
}

// Supported returns the relationship kinds an element of kind source may start.
func Supported(source umlelement.Kind) []umlelement.Kind {
	return append([]umlelement.Kind(nil), supported[source]...)
}

// IsSupported reports whether rel may start at an element of kind source.
func IsSupported(source, rel umlelement.Kind) bool {
	return go2.Contains(supported[source], rel)
}

type UnsupportedError struct {
	Source       umlelement.Kind
	Relationship umlelement.Kind
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s does not support %s relationships", e.Source, e.Relationship)
}

// DanglingError is returned for a relationship endpoint missing from the table.
type DanglingError struct {
	Relationship string
	Element      string
}

func (e *DanglingError) Error() string {
	return fmt.Sprintf("relationship %q references unknown element %q", e.Relationship, e.Element)
}

// New returns a relationship of kind from source to target.
func New(kind umlelement.Kind, source, target string) *umlelement.Element {
	return umlelement.New(umlelement.Partial{
		Kind:   go2.Pointer(kind),
		Source: &umlelement.PartialEndpoint{Element: go2.Pointer(source), Direction: go2.Pointer(umlelement.Right)},
		Target: &umlelement.PartialEndpoint{Element: go2.Pointer(target), Direction: go2.Pointer(umlelement.Left)},
	})
}

// Endpoints resolves the source and target of rel.
func Endpoints(table umlelement.Table, rel *umlelement.Element) (source, target *umlelement.Element, err error) {
	if rel.Relationship == nil {
		return nil, nil, fmt.Errorf("%q is not a relationship", rel.ID)
	}
	source, ok := table.Get(rel.Relationship.Source.Element)
	if !ok {
		return nil, nil, &DanglingError{Relationship: rel.ID, Element: rel.Relationship.Source.Element}
	}
	target, ok = table.Get(rel.Relationship.Target.Element)
	if !ok {
		return nil, nil, &DanglingError{Relationship: rel.ID, Element: rel.Relationship.Target.Element}
	}
	return source, target, nil
}

// Validate checks that both endpoints of rel exist and that its kind is supported by
// its source.
func Validate(table umlelement.Table, rel *umlelement.Element) error {
	if err := umlelement.Validate(rel); err != nil {
		return err
	}
	source, _, err := Endpoints(table, rel)
	if err != nil {
		return err
	}
	if !IsSupported(source.Kind, rel.Kind) {
		return &UnsupportedError{Source: source.Kind, Relationship: rel.Kind}
	}
	return nil
}

// Port is where a relationship leaving b in direction d attaches.
func Port(b geo.Bounds, d umlelement.Direction) geo.Point {
	c := b.Center()
	switch d {
	case umlelement.Up:
		return geo.Point{X: c.X, Y: b.Y}
	case umlelement.Down:
		return geo.Point{X: c.X, Y: b.Y + b.Height}
	case umlelement.Left:
		return geo.Point{X: b.X, Y: c.Y}
	case umlelement.Upleft:
		return geo.Point{X: b.X, Y: b.Y}
	case umlelement.Upright:
		return geo.Point{X: b.X + b.Width, Y: b.Y}
	case umlelement.Downleft:
		return geo.Point{X: b.X, Y: b.Y + b.Height}
	case umlelement.Downright:
		return geo.Point{X: b.X + b.Width, Y: b.Y + b.Height}
	default:
		return geo.Point{X: b.X + b.Width, Y: c.Y}
	}
}

// Route draws a straight path between the ports of source and target, given in
// absolute coordinates, unless rel was laid out by hand. It then calls Render.
func Route(rel *umlelement.Element, source, target geo.Bounds) {
	r := rel.Relationship
	if !r.IsManuallyLayouted {
		rel.Bounds = geo.Bounds{}
		r.Path = geo.Points{
			Port(source, r.Source.Direction),
			Port(target, r.Target.Direction),
		}
	}
	Render(rel)
}

// Render sets the bounds of rel to the bounding box of its path and makes the path
// relative to them. Rendering twice does nothing the second time.
func Render(rel *umlelement.Element) []*umlelement.Element {
	r := rel.Relationship
	if r == nil || len(r.Path) == 0 {
		return []*umlelement.Element{rel}
	}
	box := r.Path.BoundingBox()
	rel.Bounds = geo.NewBounds(rel.Bounds.X+box.X, rel.Bounds.Y+box.Y, box.Width, box.Height)
	r.Path = r.Path.Translate(-box.X, -box.Y)
	return []*umlelement.Element{rel}
}
