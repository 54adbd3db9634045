// Package umlelement defines the records every diagram node and edge is stored as.
//
// An Element is a tagged union: Kind selects which of the payload pointers is set.
// Behavior that differs per kind lives in lookup tables keyed by Kind (see GetFeatures)
// instead of methods on per-kind types.
package umlelement

import (
	"github.com/google/uuid"

	"oss.terrastruct.com/uml/lib/geo"
	"oss.terrastruct.com/uml/lib/go2"
)

type Element struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
	Kind Kind   `json:"type" validate:"umlkind"`
	// Owner is nil for elements owned by the diagram root.
	Owner  *string    `json:"owner"`
	Bounds geo.Bounds `json:"bounds"`

	Highlight   string `json:"highlight,omitempty"`
	FillColor   string `json:"fillColor,omitempty"`
	StrokeColor string `json:"strokeColor,omitempty"`
	TextColor   string `json:"textColor,omitempty"`

	Classifier   *Classifier   `json:"classifier,omitempty"`
	Member       *Member       `json:"member,omitempty"`
	State        *State        `json:"state,omitempty"`
	Icon         *Icon         `json:"icon,omitempty"`
	Relationship *Relationship `json:"relationship,omitempty"`
}

// Classifier is the payload of classes, enumerations, objects and user model names.
type Classifier struct {
	Stereotype *string `json:"stereotype"`
	Italic     bool    `json:"italic"`
	Underline  bool    `json:"underline"`

	Attributes []string `json:"attributes"`
	Methods    []string `json:"methods"`

	HasAttributes   bool    `json:"hasAttributes"`
	HasMethods      bool    `json:"hasMethods"`
	HeaderHeight    float64 `json:"headerHeight"`
	DividerPosition float64 `json:"dividerPosition"`
}

// Member is the payload of attributes and methods.
type Member struct {
	Visibility         Visibility         `json:"visibility"`
	AttributeType      string             `json:"attributeType"`
	Code               string             `json:"code,omitempty"`
	ImplementationType ImplementationType `json:"implementationType"`
	StateMachineID     string             `json:"stateMachineId,omitempty"`
	QuantumCircuitID   string             `json:"quantumCircuitId,omitempty"`
}

// State is the payload of agent states and intents.
type State struct {
	Stereotype *string `json:"stereotype"`
	Italic     bool    `json:"italic"`
	Underline  bool    `json:"underline"`

	Bodies         []string `json:"bodies"`
	FallbackBodies []string `json:"fallbackBodies,omitempty"`

	DividerPosition   float64 `json:"dividerPosition"`
	HasBody           bool    `json:"hasBody"`
	HasFallbackBody   bool    `json:"hasFallbackBody"`
	IntentDescription string  `json:"intent_description,omitempty"`
}

type Icon struct {
	SVG string `json:"svg"`
}

type Direction string

const (
	Up        Direction = "Up"
	Right     Direction = "Right"
	Down      Direction = "Down"
	Left      Direction = "Left"
	Upright   Direction = "Upright"
	Upleft    Direction = "Upleft"
	Downright Direction = "Downright"
	Downleft  Direction = "Downleft"
)

type Endpoint struct {
	Element      string    `json:"element" validate:"required"`
	Direction    Direction `json:"direction"`
	Multiplicity string    `json:"multiplicity,omitempty"`
	Role         string    `json:"role,omitempty"`
}

// Relationship is the payload of every relationship kind. Path is relative to the
// relationship's bounds.
type Relationship struct {
	Source             Endpoint   `json:"source"`
	Target             Endpoint   `json:"target"`
	Path               geo.Points `json:"path"`
	IsManuallyLayouted bool       `json:"isManuallyLayouted,omitempty"`
}

// Default dimensions of a freshly created element.
const (
	DefaultWidth  = 200.
	DefaultHeight = 100.
	MemberHeight  = 30.
)

var defaultSizes = map[Kind]geo.Size{
	StateFinalNode:   {Width: 50, Height: 50},
	StateInitialNode: {Width: 45, Height: 45},
	AgentRagElement:  {Width: 140, Height: 120},
	Comments:         {Width: 160, Height: 50},
	UserModelIcon:    {Width: 20, Height: 20},
}

var defaultStereotypes = map[Kind]string{
	AbstractClass: "abstract",
	Interface:     "interface",
	Enumeration:   "enumeration",
}

// IsClassifierKind reports whether elements of kind k carry a Classifier payload.
func IsClassifierKind(k Kind) bool {
	switch k {
	case Class, AbstractClass, Interface, Enumeration, ObjectName, UserModelName:
		return true
	}
	return false
}

func isMemberKind(k Kind) bool {
	switch k {
	case ClassAttribute, ClassMethod, ObjectAttribute, ObjectMethod, UserModelAttribute:
		return true
	}
	return false
}

func isStateKind(k Kind) bool {
	return k == AgentState || k == AgentIntent
}

func defaultSize(k Kind) geo.Size {
	if s, ok := defaultSizes[k]; ok {
		return s
	}
	if k.IsRelationship() {
		return geo.Size{}
	}
	if k.IsMember() {
		return geo.NewSize(DefaultWidth, MemberHeight)
	}
	return geo.NewSize(DefaultWidth, DefaultHeight)
}

// New returns an element with every field p leaves unset taken from the defaults of
// its kind. An unset kind means Class and an unset ID gets a random UUID.
func New(p Partial) *Element {
	kind := go2.Deref(p.Kind, Class)
	size := defaultSize(kind)

	el := &Element{
		ID:          go2.Deref(p.ID, ""),
		Name:        go2.Deref(p.Name, ""),
		Kind:        kind,
		Bounds:      geo.NewBounds(0, 0, size.Width, size.Height),
		Highlight:   go2.Deref(p.Highlight, ""),
		FillColor:   go2.Deref(p.FillColor, ""),
		StrokeColor: go2.Deref(p.StrokeColor, ""),
		TextColor:   go2.Deref(p.TextColor, ""),
	}
	if el.ID == "" {
		el.ID = uuid.NewString()
	}
	if p.Owner != nil {
		el.Owner = go2.Pointer(*p.Owner)
	}
	if p.Bounds != nil {
		el.Bounds = p.Bounds.apply(el.Bounds)
	}

	switch {
	case IsClassifierKind(kind):
		c := &Classifier{
			Italic:     go2.Deref(p.Italic, kind == AbstractClass),
			Underline:  go2.Deref(p.Underline, kind == ObjectName),
			Attributes: append([]string{}, p.Attributes...),
			Methods:    append([]string{}, p.Methods...),
		}
		c.HasAttributes = len(c.Attributes) > 0
		c.HasMethods = len(c.Methods) > 0
		if s, ok := defaultStereotypes[kind]; ok {
			c.Stereotype = go2.Pointer(s)
		}
		if p.Stereotype != nil {
			c.Stereotype = go2.Pointer(*p.Stereotype)
		}
		el.Classifier = c
	case isMemberKind(kind):
		el.Member = &Member{
			Visibility:         go2.Deref(p.Visibility, Public),
			AttributeType:      NormalizeType(go2.Deref(p.AttributeType, "")),
			Code:               go2.Deref(p.Code, ""),
			ImplementationType: go2.Deref(p.ImplementationType, ImplementationNone),
			StateMachineID:     go2.Deref(p.StateMachineID, ""),
			QuantumCircuitID:   go2.Deref(p.QuantumCircuitID, ""),
		}
		if el.Member.ImplementationType == ImplementationNone && el.Member.Code != "" {
			el.Member.ImplementationType = ImplementationCode
		}
	case isStateKind(kind):
		s := &State{
			Italic:            go2.Deref(p.Italic, false),
			Underline:         go2.Deref(p.Underline, false),
			Bodies:            append([]string{}, p.Bodies...),
			FallbackBodies:    append([]string(nil), p.FallbackBodies...),
			IntentDescription: go2.Deref(p.IntentDescription, ""),
		}
		s.HasBody = len(s.Bodies) > 0
		s.HasFallbackBody = len(s.FallbackBodies) > 0
		if p.Stereotype != nil {
			s.Stereotype = go2.Pointer(*p.Stereotype)
		}
		el.State = s
	case kind == UserModelIcon:
		el.Icon = &Icon{SVG: go2.Deref(p.SVG, "")}
	case kind.IsRelationship():
		r := &Relationship{
			IsManuallyLayouted: go2.Deref(p.IsManuallyLayouted, false),
			Path:               append(geo.Points{}, p.Path...),
		}
		if p.Source != nil {
			r.Source = p.Source.apply(r.Source)
		}
		if p.Target != nil {
			r.Target = p.Target.apply(r.Target)
		}
		el.Relationship = r
	}

	return el
}

// IsRoot reports whether el is owned by the diagram itself.
func (el *Element) IsRoot() bool {
	return el.Owner == nil
}

// OwnerID returns the owner's ID, or "" for root elements.
func (el *Element) OwnerID() string {
	return go2.Deref(el.Owner, "")
}

func (el *Element) Features() Features {
	return GetFeatures(el.Kind)
}

// Copy returns a deep copy of el.
func (el *Element) Copy() *Element {
	el2 := *el
	if el.Owner != nil {
		el2.Owner = go2.Pointer(*el.Owner)
	}
	if el.Classifier != nil {
		c := *el.Classifier
		c.Stereotype = copyString(c.Stereotype)
		c.Attributes = append([]string{}, c.Attributes...)
		c.Methods = append([]string{}, c.Methods...)
		el2.Classifier = &c
	}
	if el.Member != nil {
		m := *el.Member
		el2.Member = &m
	}
	if el.State != nil {
		s := *el.State
		s.Stereotype = copyString(s.Stereotype)
		s.Bodies = append([]string{}, s.Bodies...)
		s.FallbackBodies = append([]string(nil), s.FallbackBodies...)
		el2.State = &s
	}
	if el.Icon != nil {
		i := *el.Icon
		el2.Icon = &i
	}
	if el.Relationship != nil {
		r := *el.Relationship
		r.Path = append(geo.Points{}, r.Path...)
		el2.Relationship = &r
	}
	return &el2
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	return go2.Pointer(*s)
}
