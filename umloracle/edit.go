package umloracle

import (
	"context"
	"fmt"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/uml/lib/color"
	"oss.terrastruct.com/uml/lib/geo"
	"oss.terrastruct.com/uml/lib/go2"
	"oss.terrastruct.com/uml/umlclassifier"
	"oss.terrastruct.com/uml/umldiagram"
	"oss.terrastruct.com/uml/umlelement"
	"oss.terrastruct.com/uml/umllayout"
	"oss.terrastruct.com/uml/umlrelationship"
)

// DropError is returned when an element is created in or moved into an owner that
// cannot hold it.
type DropError struct {
	Owner umlelement.Kind
	Child umlelement.Kind
}

func (e *DropError) Error() string {
	return fmt.Sprintf("%s cannot own %s", e.Owner, e.Child)
}

// FeatureError is returned when the features of an element forbid an edit.
type FeatureError struct {
	ID      string
	Kind    umlelement.Kind
	Feature string
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("%q (%s) is not %s", e.ID, e.Kind, e.Feature)
}

// Create adds a new element built from p to table under owner, or to the diagram when
// owner is empty, and appends it to its owner's membership in store.
func Create(ctx context.Context, store *umldiagram.Store, table *umlelement.Map, p umlelement.Partial, owner string) (_ *umlelement.Element, err error) {
	defer xdefer.Errorf(&err, "failed to create %v", go2.Deref(p.Kind, umlelement.Class))

	if p.Kind != nil && p.Kind.IsRelationship() {
		return nil, fmt.Errorf("relationships are created with Connect")
	}
	p.Owner = nil
	if owner != "" {
		p.Owner = go2.Pointer(owner)
	}
	el := umlelement.New(p)
	if _, ok := table.Get(el.ID); ok {
		return nil, fmt.Errorf("element %q already exists", el.ID)
	}

	var parent *umlelement.Element
	if owner != "" {
		var ok bool
		parent, ok = table.Get(owner)
		if !ok {
			return nil, fmt.Errorf("unknown owner %q", owner)
		}
		if err := accepts(parent, el); err != nil {
			return nil, err
		}
	}
	if err := umlelement.Validate(el); err != nil {
		return nil, err
	}

	table.Put(el)
	if umldiagram.IsContainer(el.Kind) {
		store.Register(el.ID, nil)
	}
	err = store.Dispatch(ctx, umldiagram.Append{
		Owner: membership(store, owner),
		IDs:   []string{el.ID},
	})
	if err != nil {
		table.Delete(el.ID)
		store.Unregister(el.ID)
		return nil, err
	}
	rearrange(table, parent)
	return el, nil
}

// Connect adds a relationship of kind from sourceID to targetID. Nothing is added
// when either endpoint is not connectable or the source does not support kind.
func Connect(ctx context.Context, store *umldiagram.Store, table *umlelement.Map, kind umlelement.Kind, sourceID, targetID string) (_ *umlelement.Element, err error) {
	defer xdefer.Errorf(&err, "failed to connect %#v to %#v", sourceID, targetID)

	if !kind.IsRelationship() {
		return nil, fmt.Errorf("%s is not a relationship", kind)
	}
	for _, id := range []string{sourceID, targetID} {
		el, ok := table.Get(id)
		if !ok {
			return nil, fmt.Errorf("unknown element %q", id)
		}
		if !umlelement.GetFeatures(el.Kind).Connectable {
			return nil, &FeatureError{ID: el.ID, Kind: el.Kind, Feature: "connectable"}
		}
	}

	rel := umlrelationship.New(kind, sourceID, targetID)
	if err := umlrelationship.Validate(table, rel); err != nil {
		return nil, err
	}

	table.Put(rel)
	err = store.Dispatch(ctx, umldiagram.Append{
		Owner: membership(store, ""),
		IDs:   []string{rel.ID},
	})
	if err != nil {
		table.Delete(rel.ID)
		return nil, err
	}
	return rel, nil
}

// Delete removes id, everything it contains and every relationship attached to any of
// them from table and from their owners' membership in store.
func Delete(ctx context.Context, store *umldiagram.Store, table *umlelement.Map, id string) (err error) {
	defer xdefer.Errorf(&err, "failed to delete %#v", id)

	el, ok := table.Get(id)
	if !ok {
		return fmt.Errorf("unknown element %q", id)
	}

	doomed := append([]*umlelement.Element{el}, table.Descendants(id)...)
	seen := make(map[string]struct{}, len(doomed))
	for _, d := range doomed {
		seen[d.ID] = struct{}{}
	}
	for _, d := range doomed {
		for _, rel := range table.Relationships(d.ID) {
			if _, ok := seen[rel.ID]; ok {
				continue
			}
			seen[rel.ID] = struct{}{}
			doomed = append(doomed, rel)
		}
	}

	var owners []string
	byOwner := make(map[string][]string)
	for _, d := range doomed {
		o := membership(store, d.OwnerID())
		if _, ok := byOwner[o]; !ok {
			owners = append(owners, o)
		}
		byOwner[o] = append(byOwner[o], d.ID)
	}
	actions := make([]umldiagram.Action, 0, len(owners))
	for _, o := range owners {
		actions = append(actions, umldiagram.Remove{Owner: o, IDs: byOwner[o]})
	}
	if err := store.Dispatch(ctx, actions...); err != nil {
		return err
	}

	for _, d := range doomed {
		table.Delete(d.ID)
		store.Unregister(d.ID)
	}
	if parent, ok := table.Get(el.OwnerID()); ok {
		rearrange(table, parent)
	}
	return nil
}

// Move reparents id under newOwner, or to the diagram when newOwner is empty. The
// element keeps its position on the diagram.
func Move(ctx context.Context, store *umldiagram.Store, table *umlelement.Map, id, newOwner string) (err error) {
	defer xdefer.Errorf(&err, "failed to move %#v to %#v", id, newOwner)

	el, ok := table.Get(id)
	if !ok {
		return fmt.Errorf("unknown element %q", id)
	}
	if !umlelement.GetFeatures(el.Kind).Movable {
		return &FeatureError{ID: el.ID, Kind: el.Kind, Feature: "movable"}
	}
	oldOwner := el.OwnerID()
	if oldOwner == newOwner {
		return nil
	}

	var parent *umlelement.Element
	if newOwner != "" {
		parent, ok = table.Get(newOwner)
		if !ok {
			return fmt.Errorf("unknown owner %q", newOwner)
		}
		if contains(table, id, newOwner) {
			return fmt.Errorf("cannot move %q into itself", id)
		}
		if err := accepts(parent, el); err != nil {
			return err
		}
	}

	err = store.Dispatch(ctx,
		umldiagram.Remove{Owner: membership(store, oldOwner), IDs: []string{id}},
		umldiagram.Append{Owner: membership(store, newOwner), IDs: []string{id}},
	)
	if err != nil {
		return err
	}

	abs := umllayout.Absolute(table, el)
	origin := geo.Point{}
	if parent != nil {
		origin = umllayout.Absolute(table, parent).TopLeft()
	}
	oldParent, _ := table.Get(oldOwner)

	el.Owner = nil
	if newOwner != "" {
		el.Owner = go2.Pointer(newOwner)
	}
	el.Bounds.X = abs.X - origin.X
	el.Bounds.Y = abs.Y - origin.Y

	rearrange(table, oldParent)
	rearrange(table, parent)
	return nil
}

// Resize sets the size of id as far as its features allow. Elements resizable in one
// dimension ignore the other.
func Resize(table umlelement.Table, id string, width, height float64) (err error) {
	defer xdefer.Errorf(&err, "failed to resize %#v", id)

	el, ok := table.Get(id)
	if !ok {
		return fmt.Errorf("unknown element %q", id)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("negative size %vx%v", width, height)
	}
	r := umlelement.GetFeatures(el.Kind).Resizable
	if !r.Width() && !r.Height() {
		return &FeatureError{ID: el.ID, Kind: el.Kind, Feature: "resizable"}
	}
	if r.Width() {
		el.Bounds.Width = width
	}
	if r.Height() {
		el.Bounds.Height = height
	}
	return nil
}

// Rename sets the name of id. Members are renamed through the element that contains
// them, so the check is made against the outermost owner.
func Rename(table umlelement.Table, id, name string) (err error) {
	defer xdefer.Errorf(&err, "failed to rename %#v", id)

	el, ok := table.Get(id)
	if !ok {
		return fmt.Errorf("unknown element %q", id)
	}
	root := Root(table, el)
	if f, _ := GetFeatures(table, id); !f.Updatable {
		return &FeatureError{ID: root.ID, Kind: root.Kind, Feature: "updatable"}
	}
	el.Name = name
	return nil
}

// Style holds the colors of an element. Nil fields are left alone and empty strings
// reset a color to its default.
type Style struct {
	Fill   *string
	Stroke *string
	Text   *string
}

// Recolor sets the colors of id. Colors may be any CSS color and are stored as #rrggbb.
func Recolor(table umlelement.Table, id string, style Style) (err error) {
	defer xdefer.Errorf(&err, "failed to recolor %#v", id)

	el, ok := table.Get(id)
	if !ok {
		return fmt.Errorf("unknown element %q", id)
	}

	fields := []struct {
		value *string
		dst   *string
	}{
		{style.Fill, &el.FillColor},
		{style.Stroke, &el.StrokeColor},
		{style.Text, &el.TextColor},
	}
	next := make([]string, len(fields))
	for i, f := range fields {
		next[i] = *f.dst
		if f.value == nil {
			continue
		}
		if *f.value == "" {
			next[i] = ""
			continue
		}
		c, err := color.Normalize(*f.value)
		if err != nil {
			return fmt.Errorf("invalid color %q: %w", *f.value, err)
		}
		next[i] = c
	}
	for i, f := range fields {
		*f.dst = next[i]
	}
	return nil
}

func accepts(parent, child *umlelement.Element) error {
	if umlclassifier.IsContainer(parent.Kind) {
		if len(umlclassifier.ReorderChildren(parent.Kind, []*umlelement.Element{child})) == 1 {
			return nil
		}
		return &DropError{Owner: parent.Kind, Child: child.Kind}
	}
	if !umlelement.GetFeatures(parent.Kind).Droppable || child.Kind.IsMember() {
		return &DropError{Owner: parent.Kind, Child: child.Kind}
	}
	return nil
}

// membership returns the store owner of elements owned by owner.
func membership(store *umldiagram.Store, owner string) string {
	if owner == "" {
		return store.State().ID
	}
	return owner
}

// rearrange rewrites the child order in the payload of parent after its children
// changed.
func rearrange(table *umlelement.Map, parent *umlelement.Element) {
	if parent == nil || !umlclassifier.IsContainer(parent.Kind) {
		return
	}
	umldiagram.Arrange(parent, table)
}

// contains reports whether id is descendant or id itself.
func contains(table umlelement.Table, id, descendant string) bool {
	seen := make(map[string]struct{})
	for cur := descendant; cur != ""; {
		if cur == id {
			return true
		}
		if _, ok := seen[cur]; ok {
			return false
		}
		seen[cur] = struct{}{}
		el, ok := table.Get(cur)
		if !ok {
			return false
		}
		cur = el.OwnerID()
	}
	return false
}
