package umlelement

import (
	"encoding/json"
	"fmt"

	"oss.terrastruct.com/uml/lib/geo"
)

// modelElement is the flat interchange form of an Element: payload fields sit next to
// the common ones, the way editors exchange models.
type modelElement struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Type   Kind       `json:"type"`
	Owner  *string    `json:"owner"`
	Bounds geo.Bounds `json:"bounds"`

	Highlight   string `json:"highlight,omitempty"`
	FillColor   string `json:"fillColor,omitempty"`
	StrokeColor string `json:"strokeColor,omitempty"`
	TextColor   string `json:"textColor,omitempty"`

	Stereotype *string `json:"stereotype,omitempty"`
	Italic     *bool   `json:"italic,omitempty"`
	Underline  *bool   `json:"underline,omitempty"`

	Attributes     []string `json:"attributes,omitempty"`
	Methods        []string `json:"methods,omitempty"`
	Bodies         []string `json:"bodies,omitempty"`
	FallbackBodies []string `json:"fallbackBodies,omitempty"`

	Visibility         Visibility         `json:"visibility,omitempty"`
	AttributeType      string             `json:"attributeType,omitempty"`
	Code               string             `json:"code,omitempty"`
	ImplementationType ImplementationType `json:"implementationType,omitempty"`
	StateMachineID     string             `json:"stateMachineId,omitempty"`
	QuantumCircuitID   string             `json:"quantumCircuitId,omitempty"`

	IntentDescription string `json:"intent_description,omitempty"`

	SVG string `json:"svg,omitempty"`

	Source             *Endpoint  `json:"source,omitempty"`
	Target             *Endpoint  `json:"target,omitempty"`
	Path               geo.Points `json:"path,omitempty"`
	IsManuallyLayouted bool       `json:"isManuallyLayouted,omitempty"`
}

// MarshalModel encodes el in the flat interchange form read by UnmarshalModel.
func MarshalModel(el *Element) ([]byte, error) {
	m := modelElement{
		ID:          el.ID,
		Name:        el.Name,
		Type:        el.Kind,
		Owner:       el.Owner,
		Bounds:      el.Bounds,
		Highlight:   el.Highlight,
		FillColor:   el.FillColor,
		StrokeColor: el.StrokeColor,
		TextColor:   el.TextColor,
	}
	if c := el.Classifier; c != nil {
		m.Stereotype = c.Stereotype
		m.Italic = &c.Italic
		m.Underline = &c.Underline
		m.Attributes = c.Attributes
		m.Methods = c.Methods
	}
	if mem := el.Member; mem != nil {
		m.Visibility = mem.Visibility
		m.AttributeType = mem.AttributeType
		m.Code = mem.Code
		m.ImplementationType = mem.ImplementationType
		m.StateMachineID = mem.StateMachineID
		m.QuantumCircuitID = mem.QuantumCircuitID
	}
	if s := el.State; s != nil {
		m.Stereotype = s.Stereotype
		m.Italic = &s.Italic
		m.Underline = &s.Underline
		m.Bodies = s.Bodies
		m.FallbackBodies = s.FallbackBodies
		m.IntentDescription = s.IntentDescription
	}
	if i := el.Icon; i != nil {
		m.SVG = i.SVG
	}
	if r := el.Relationship; r != nil {
		m.Source = &r.Source
		m.Target = &r.Target
		m.Path = r.Path
		m.IsManuallyLayouted = r.IsManuallyLayouted
	}
	return json.Marshal(m)
}

// UnmarshalModel decodes one element of an interchange model. id is the key the
// element is stored under and wins over an id inside the object.
func UnmarshalModel(id string, b []byte) (*Element, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal element %q: %w", id, err)
	}
	p, err := DecodePartial(raw)
	if err != nil {
		return nil, fmt.Errorf("element %q: %w", id, err)
	}
	if id != "" {
		p.ID = &id
	}
	if p.Kind == nil {
		return nil, fmt.Errorf("element %q has no type", id)
	}
	el := New(p)
	if err := Validate(el); err != nil {
		return nil, err
	}
	return el, nil
}
