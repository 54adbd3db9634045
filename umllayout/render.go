package umllayout

import (
	"strings"

	"oss.terrastruct.com/uml/lib/geo"
	"oss.terrastruct.com/uml/umlclassifier"
	"oss.terrastruct.com/uml/umlelement"
	"oss.terrastruct.com/uml/umlrelationship"
)

const (
	MemberPadding      = 20.
	ClassifierPadding  = 20.
	AgentStatePadding  = 60.
	AgentIntentPadding = 110.

	AgentStateMinWidth     = 80.
	AgentStateMaxAutoWidth = 420.

	AgentIntentDescriptionHeight = 30.

	IconMinWidth = 20.

	NamePadding       = 20.
	NameMinWidth      = 100.
	NameMinHeight     = 50.
	RagMinWidth       = 120.
	RagMinHeight      = 110.
	RagPadding        = 40.
	CommentsMinWidth  = 160.
	CommentsMinHeight = 50.
	CommentsPadding   = 20.
	PackagePadding    = 10.
)

type renderFunc func(layer Layer, el *umlelement.Element, children []*umlelement.Element) []*umlelement.Element

var renderers map[umlelement.Kind]renderFunc

func init() {
	renderers = map[umlelement.Kind]renderFunc{
		umlelement.Package: renderPackage,

		umlelement.Class:         renderClassifier,
		umlelement.AbstractClass: renderClassifier,
		umlelement.Interface:     renderClassifier,
		umlelement.Enumeration:   renderClassifier,
		umlelement.ObjectName:    renderClassifier,
		umlelement.UserModelName: renderClassifier,

		umlelement.ClassAttribute:         renderMember,
		umlelement.ClassMethod:            renderMember,
		umlelement.ObjectAttribute:        renderMember,
		umlelement.ObjectMethod:           renderMember,
		umlelement.UserModelAttribute:     renderMember,
		umlelement.AgentStateBody:         renderMember,
		umlelement.AgentStateFallbackBody: renderMember,
		umlelement.AgentIntentBody:        renderMember,

		umlelement.UserModelIcon: renderIcon,

		umlelement.ClassOCLConstraint: renderName,
		umlelement.StateActionNode:    renderName,

		umlelement.StateFinalNode:   renderFixed,
		umlelement.StateInitialNode: renderFixed,

		umlelement.Comments:        renderComments,
		umlelement.AgentRagElement: renderRag,

		umlelement.AgentState:  renderAgentState,
		umlelement.AgentIntent: renderAgentIntent,
	}
}

// Render sizes el to its label and, for containers, stacks children inside it. It
// returns el followed by every child it moved.
//
// Render writes bounds and the layout flags of payloads only. Rendering again against
// the same layer changes nothing. Callers must not render one element from two
// goroutines at once.
func Render(layer Layer, el *umlelement.Element, children []*umlelement.Element) []*umlelement.Element {
	if el.Kind.IsRelationship() {
		return umlrelationship.Render(el)
	}
	fn, ok := renderers[el.Kind]
	if !ok {
		return renderFixed(layer, el, children)
	}
	return fn(layer, el, children)
}

func round(v float64) float64 {
	return geo.RoundTo(v, geo.Radix)
}

func renderFixed(_ Layer, el *umlelement.Element, _ []*umlelement.Element) []*umlelement.Element {
	return []*umlelement.Element{el}
}

func renderMember(layer Layer, el *umlelement.Element, _ []*umlelement.Element) []*umlelement.Element {
	w := layer.MeasureText(el.DisplayName(), TextStyle{}).Width + MemberPadding
	el.Bounds.Width = geo.Max(el.Bounds.Width, round(w))
	return []*umlelement.Element{el}
}

func renderIcon(_ Layer, el *umlelement.Element, _ []*umlelement.Element) []*umlelement.Element {
	el.Bounds.Width = geo.Max(el.Bounds.Width, IconMinWidth)
	return []*umlelement.Element{el}
}

func renderName(layer Layer, el *umlelement.Element, _ []*umlelement.Element) []*umlelement.Element {
	size := layer.MeasureText(el.Name, TextStyle{Bold: true})
	el.Bounds.Width = geo.Max(el.Bounds.Width, geo.Max(NameMinWidth, round(size.Width+2*NamePadding)))
	el.Bounds.Height = geo.Max(el.Bounds.Height, geo.Max(NameMinHeight, round(size.Height+2*NamePadding)))
	return []*umlelement.Element{el}
}

func renderRag(layer Layer, el *umlelement.Element, _ []*umlelement.Element) []*umlelement.Element {
	minWidth := geo.Max(RagMinWidth, layer.MeasureText(el.Name, TextStyle{}).Width+RagPadding)
	el.Bounds.Width = geo.Max(el.Bounds.Width, minWidth)
	el.Bounds.Height = geo.Max(el.Bounds.Height, RagMinHeight)
	return []*umlelement.Element{el}
}

func renderComments(layer Layer, el *umlelement.Element, _ []*umlelement.Element) []*umlelement.Element {
	size := layer.MeasureText(el.Name, TextStyle{Markdown: true})
	el.Bounds.Width = geo.Max(el.Bounds.Width, geo.Max(CommentsMinWidth, round(size.Width+2*CommentsPadding)))
	el.Bounds.Height = geo.Max(el.Bounds.Height, geo.Max(CommentsMinHeight, round(size.Height+2*CommentsPadding)))
	return []*umlelement.Element{el}
}

// renderPackage grows el until it contains every child.
func renderPackage(_ Layer, el *umlelement.Element, children []*umlelement.Element) []*umlelement.Element {
	for _, c := range children {
		if c.Kind.IsRelationship() {
			continue
		}
		el.Bounds.Width = geo.Max(el.Bounds.Width, c.Bounds.X+c.Bounds.Width+PackagePadding)
		el.Bounds.Height = geo.Max(el.Bounds.Height, c.Bounds.Y+c.Bounds.Height+PackagePadding)
	}
	return []*umlelement.Element{el}
}

// rows splits children into the rows above and below the divider, dropping children
// the container does not display.
func rows(el *umlelement.Element, children []*umlelement.Element) (above, below []*umlelement.Element) {
	byID := make(map[string]*umlelement.Element, len(children))
	for _, c := range children {
		byID[c.ID] = c
	}
	for _, id := range umlclassifier.ReorderChildren(el.Kind, children) {
		c := byID[id]
		if umlclassifier.IsAttribute(c.Kind) {
			above = append(above, c)
		} else {
			below = append(below, c)
		}
	}
	return above, below
}

// stack places rows under each other starting at y and returns the y below the last.
func stack(rows []*umlelement.Element, y, width float64) float64 {
	for _, r := range rows {
		r.Bounds.X = 0.5
		r.Bounds.Y = y + 0.5
		r.Bounds.Width = width - 1
		y += r.Bounds.Height
	}
	return y
}

// fitWidth returns the rounded width of el at least as wide as the bold name of el
// and the label of every row, each with padding added.
func fitWidth(layer Layer, el *umlelement.Element, rows []*umlelement.Element, padding float64) float64 {
	w := round(el.Bounds.Width)
	w = geo.Max(w, round(layer.MeasureText(el.Name, TextStyle{Bold: true}).Width+padding))
	for _, r := range rows {
		w = geo.Max(w, round(layer.MeasureText(r.DisplayName(), TextStyle{}).Width+padding))
	}
	return w
}

func renderClassifier(layer Layer, el *umlelement.Element, children []*umlelement.Element) []*umlelement.Element {
	attributes, methods := rows(el, children)
	c := el.Classifier

	el.Bounds.Width = fitWidth(layer, el, append(append([]*umlelement.Element{}, attributes...), methods...), ClassifierPadding)
	if stereotype := umlclassifier.Stereotype(el); stereotype != "" {
		el.Bounds.Width = geo.Max(el.Bounds.Width, round(layer.MeasureText("«"+stereotype+"»", TextStyle{}).Width+ClassifierPadding))
	}

	header := umlclassifier.HeaderHeight(el)
	y := stack(attributes, header, el.Bounds.Width)
	divider := y
	y = stack(methods, y, el.Bounds.Width)
	el.Bounds.Height = y

	if c != nil {
		c.HeaderHeight = header
		c.DividerPosition = divider
		c.HasAttributes = len(attributes) > 0
		c.HasMethods = len(methods) > 0
	}

	return concat(el, attributes, methods)
}

func renderAgentState(layer Layer, el *umlelement.Element, children []*umlelement.Element) []*umlelement.Element {
	bodies, fallbacks := rows(el, children)

	w := fitWidth(layer, el, append(append([]*umlelement.Element{}, bodies...), fallbacks...), AgentStatePadding)
	el.Bounds.Width = geo.Clamp(w, AgentStateMinWidth, AgentStateMaxAutoWidth)

	y := stack(bodies, umlclassifier.HeaderHeight(el), el.Bounds.Width)
	divider := y
	y = stack(fallbacks, y, el.Bounds.Width)
	el.Bounds.Height = y

	if s := el.State; s != nil {
		s.DividerPosition = divider
		s.HasBody = len(bodies) > 0
		s.HasFallbackBody = len(fallbacks) > 0
	}

	return concat(el, bodies, fallbacks)
}

func renderAgentIntent(layer Layer, el *umlelement.Element, children []*umlelement.Element) []*umlelement.Element {
	bodies, _ := rows(el, children)

	description := ""
	if el.State != nil {
		description = el.State.IntentDescription
	}
	hasDescription := strings.TrimSpace(description) != ""

	el.Bounds.Width = fitWidth(layer, el, bodies, AgentIntentPadding)
	if hasDescription {
		el.Bounds.Width = geo.Max(el.Bounds.Width, round(layer.MeasureText(description, TextStyle{}).Width+AgentIntentPadding))
	}

	y := umlclassifier.HeaderHeight(el)
	if hasDescription {
		y += AgentIntentDescriptionHeight
	}
	y = stack(bodies, y, el.Bounds.Width)
	el.Bounds.Height = y

	if s := el.State; s != nil {
		s.DividerPosition = y
		s.HasBody = len(bodies) > 0
	}

	return concat(el, bodies)
}

func concat(el *umlelement.Element, groups ...[]*umlelement.Element) []*umlelement.Element {
	out := []*umlelement.Element{el}
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
