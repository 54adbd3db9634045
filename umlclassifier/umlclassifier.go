// Package umlclassifier orders and summarizes the children of container elements:
// classes and their attributes and methods, agent states and their bodies.
package umlclassifier

import (
	"golang.org/x/exp/slices"

	"oss.terrastruct.com/uml/lib/go2"
	"oss.terrastruct.com/uml/umlelement"
)

const (
	StereotypeHeaderHeight    = 50.
	NonStereotypeHeaderHeight = 40.
)

// buckets lists, per container kind, the child kinds that are displayed and the order
// their buckets are displayed in. Kinds sharing a bucket keep their relative order.
var buckets = map[umlelement.Kind][][]umlelement.Kind{
	umlelement.Class:         classBuckets,
	umlelement.AbstractClass: classBuckets,
	umlelement.Interface:     classBuckets,
	umlelement.Enumeration:   classBuckets,
	umlelement.ObjectName: {
		{umlelement.ObjectAttribute},
		{umlelement.ObjectMethod},
	},
	umlelement.UserModelName: {
		{umlelement.UserModelAttribute},
		{umlelement.ClassMethod, umlelement.ObjectMethod},
	},
	umlelement.AgentState: {
		{umlelement.AgentStateBody},
		{umlelement.AgentStateFallbackBody},
	},
	umlelement.AgentIntent: {
		{umlelement.AgentIntentBody},
	},
}

var classBuckets = [][]umlelement.Kind{
	{umlelement.ClassAttribute},
	{umlelement.ClassMethod},
}

// ReorderChildren returns the IDs of children in display order: a stable partition
// into the buckets of kind. Children of a kind no bucket takes are dropped. Kinds
// without buckets return every ID in input order.
func ReorderChildren(kind umlelement.Kind, children []*umlelement.Element) []string {
	bs, ok := buckets[kind]
	if !ok {
		ids := make([]string, 0, len(children))
		for _, c := range children {
			ids = append(ids, c.ID)
		}
		return ids
	}

	ordered := make([][]string, len(bs))
	for _, c := range children {
		if i := bucketOf(bs, c.Kind); i >= 0 {
			ordered[i] = append(ordered[i], c.ID)
		}
	}

	ids := []string{}
	for _, b := range ordered {
		ids = append(ids, b...)
	}
	return ids
}

func bucketOf(bs [][]umlelement.Kind, k umlelement.Kind) int {
	for i, b := range bs {
		if go2.Contains(b, k) {
			return i
		}
	}
	return -1
}

// IsContainer reports whether kind orders its children.
func IsContainer(kind umlelement.Kind) bool {
	_, ok := buckets[kind]
	return ok
}

// IsClassifier reports whether kind carries attributes and methods.
func IsClassifier(kind umlelement.Kind) bool {
	return umlelement.IsClassifierKind(kind)
}

// IsAttribute reports whether children of kind are stacked above the divider.
func IsAttribute(kind umlelement.Kind) bool {
	switch kind {
	case umlelement.ClassAttribute, umlelement.ObjectAttribute, umlelement.UserModelAttribute,
		umlelement.AgentStateBody, umlelement.AgentIntentBody:
		return true
	}
	return false
}

// Stereotype returns the label drawn above el's name, or "".
func Stereotype(el *umlelement.Element) string {
	switch {
	case el.Classifier != nil:
		return go2.Deref(el.Classifier.Stereotype, "")
	case el.State != nil:
		return go2.Deref(el.State.Stereotype, "")
	}
	return ""
}

// HeaderHeight is the height of the name compartment of el.
func HeaderHeight(el *umlelement.Element) float64 {
	if Stereotype(el) != "" {
		return StereotypeHeaderHeight
	}
	return NonStereotypeHeaderHeight
}

// Sync writes the ordered child IDs into el's payload. Attributes and methods are
// split by the kind of each child in table; IDs table does not know are skipped.
func Sync(el *umlelement.Element, ordered []string, table umlelement.Table) {
	var first, second []string
	for _, id := range ordered {
		child, ok := table.Get(id)
		if !ok {
			continue
		}
		if IsAttribute(child.Kind) {
			first = append(first, id)
		} else {
			second = append(second, id)
		}
	}

	switch {
	case el.Classifier != nil:
		el.Classifier.Attributes = nonNil(first)
		el.Classifier.Methods = nonNil(second)
		el.Classifier.HasAttributes = len(first) > 0
		el.Classifier.HasMethods = len(second) > 0
	case el.State != nil:
		el.State.Bodies = nonNil(first)
		el.State.FallbackBodies = second
		el.State.HasBody = len(first) > 0
		el.State.HasFallbackBody = len(second) > 0
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// Listed returns the child IDs el's payload records, in display order.
func Listed(el *umlelement.Element) []string {
	switch {
	case el.Classifier != nil:
		return append(append([]string{}, el.Classifier.Attributes...), el.Classifier.Methods...)
	case el.State != nil:
		return append(append([]string{}, el.State.Bodies...), el.State.FallbackBodies...)
	}
	return nil
}

// Arrange is ReorderChildren applied to children sorted the way el's payload lists
// them. Children missing from the payload follow the listed ones in input order.
func Arrange(el *umlelement.Element, children []*umlelement.Element) []string {
	listed := Listed(el)
	index := func(id string) int {
		if i := slices.Index(listed, id); i >= 0 {
			return i
		}
		return len(listed)
	}
	sorted := append([]*umlelement.Element{}, children...)
	slices.SortStableFunc(sorted, func(a, b *umlelement.Element) bool {
		return index(a.ID) < index(b.ID)
	})
	return ReorderChildren(el.Kind, sorted)
}
