package umlelement

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"oss.terrastruct.com/uml/lib/geo"
)

// Partial holds the optional fields an Element is created from. Nil means unset.
// Kind specific fields are ignored for kinds that do not carry them.
type Partial struct {
	ID    *string `mapstructure:"id"`
	Name  *string `mapstructure:"name"`
	Kind  *Kind   `mapstructure:"type"`
	Owner *string `mapstructure:"owner"`

	Bounds *PartialBounds `mapstructure:"bounds"`

	Highlight   *string `mapstructure:"highlight"`
	FillColor   *string `mapstructure:"fillColor"`
	StrokeColor *string `mapstructure:"strokeColor"`
	TextColor   *string `mapstructure:"textColor"`

	Stereotype *string `mapstructure:"stereotype"`
	Italic     *bool   `mapstructure:"italic"`
	Underline  *bool   `mapstructure:"underline"`

	Attributes     []string `mapstructure:"attributes"`
	Methods        []string `mapstructure:"methods"`
	Bodies         []string `mapstructure:"bodies"`
	FallbackBodies []string `mapstructure:"fallbackBodies"`

	Visibility         *Visibility         `mapstructure:"visibility"`
	AttributeType      *string             `mapstructure:"attributeType"`
	Code               *string             `mapstructure:"code"`
	ImplementationType *ImplementationType `mapstructure:"implementationType"`
	StateMachineID     *string             `mapstructure:"stateMachineId"`
	QuantumCircuitID   *string             `mapstructure:"quantumCircuitId"`

	IntentDescription *string `mapstructure:"intent_description"`

	SVG *string `mapstructure:"svg"`

	Source             *PartialEndpoint `mapstructure:"source"`
	Target             *PartialEndpoint `mapstructure:"target"`
	Path               []geo.Point      `mapstructure:"path"`
	IsManuallyLayouted *bool            `mapstructure:"isManuallyLayouted"`
}

type PartialBounds struct {
	X      *float64 `mapstructure:"x"`
	Y      *float64 `mapstructure:"y"`
	Width  *float64 `mapstructure:"width"`
	Height *float64 `mapstructure:"height"`
}

func (pb *PartialBounds) apply(b geo.Bounds) geo.Bounds {
	if pb.X != nil {
		b.X = *pb.X
	}
	if pb.Y != nil {
		b.Y = *pb.Y
	}
	if pb.Width != nil {
		b.Width = *pb.Width
	}
	if pb.Height != nil {
		b.Height = *pb.Height
	}
	return b
}

type PartialEndpoint struct {
	Element      *string    `mapstructure:"element"`
	Direction    *Direction `mapstructure:"direction"`
	Multiplicity *string    `mapstructure:"multiplicity"`
	Role         *string    `mapstructure:"role"`
}

func (pe *PartialEndpoint) apply(e Endpoint) Endpoint {
	if pe.Element != nil {
		e.Element = *pe.Element
	}
	if pe.Direction != nil {
		e.Direction = *pe.Direction
	}
	if pe.Multiplicity != nil {
		e.Multiplicity = *pe.Multiplicity
	}
	if pe.Role != nil {
		e.Role = *pe.Role
	}
	return e
}

// DecodePartial decodes loosely typed input, such as a JSON object decoded into a map,
// into a Partial. Keys it does not know are ignored.
//
// Members written in the legacy format carry their visibility and type inside the
// name ("+ id: Integer"). When neither visibility nor attributeType is present the
// name is split with ParseNameFormat.
func DecodePartial(in map[string]interface{}) (Partial, error) {
	var p Partial
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &p,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return Partial{}, err
	}
	if err := dec.Decode(in); err != nil {
		return Partial{}, fmt.Errorf("failed to decode element: %w", err)
	}

	if p.Kind != nil && isMemberKind(*p.Kind) && p.Name != nil &&
		p.Visibility == nil && p.AttributeType == nil {
		parsed := ParseNameFormat(*p.Name)
		p.Name = &parsed.Name
		p.Visibility = &parsed.Visibility
		p.AttributeType = &parsed.AttributeType
	}
	return p, nil
}
