package umldiagram

import (
	"encoding/json"
	"fmt"
)

type ActionType string

const (
	AppendType ActionType = "APPEND"
	RemoveType ActionType = "REMOVE"

	AddElementType         ActionType = "ADD_ELEMENT"
	DeleteElementType      ActionType = "DELETE_ELEMENT"
	AddRelationshipType    ActionType = "ADD_RELATIONSHIP"
	DeleteRelationshipType ActionType = "DELETE_RELATIONSHIP"
	UpdateBoundsType       ActionType = "UPDATE_BOUNDS"
)

// InertTypes are accepted by Reduce and change nothing.
var InertTypes = []ActionType{
	AddElementType,
	DeleteElementType,
	AddRelationshipType,
	DeleteRelationshipType,
	UpdateBoundsType,
}

type Action interface {
	Type() ActionType
}

// Append adds IDs to the front of the membership of Owner.
type Append struct {
	Owner string   `json:"owner"`
	IDs   []string `json:"ids"`
}

func (Append) Type() ActionType {
	return AppendType
}

// Remove drops IDs from the membership of Owner.
type Remove struct {
	Owner string   `json:"owner"`
	IDs   []string `json:"ids"`
}

func (Remove) Type() ActionType {
	return RemoveType
}

// Inert carries any action type this package has no transition for.
type Inert struct {
	Kind    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (a Inert) Type() ActionType {
	return a.Kind
}

// owner returns the container a is addressed to.
func owner(a Action) (string, bool) {
	switch a := a.(type) {
	case Append:
		return a.Owner, true
	case *Append:
		return a.Owner, true
	case Remove:
		return a.Owner, true
	case *Remove:
		return a.Owner, true
	}
	return "", false
}

type wireAction struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// UnmarshalActions decodes a JSON list of {"type", "payload"} objects. Types without a
// transition decode to Inert.
func UnmarshalActions(b []byte) ([]Action, error) {
	var wire []wireAction
	if err := json.Unmarshal(b, &wire); err != nil {
		return nil, fmt.Errorf("failed to unmarshal actions: %w", err)
	}

	actions := make([]Action, 0, len(wire))
	for i, w := range wire {
		switch w.Type {
		case AppendType:
			var a Append
			if err := json.Unmarshal(w.Payload, &a); err != nil {
				return nil, fmt.Errorf("action %d: %w", i, err)
			}
			actions = append(actions, a)
		case RemoveType:
			var a Remove
			if err := json.Unmarshal(w.Payload, &a); err != nil {
				return nil, fmt.Errorf("action %d: %w", i, err)
			}
			actions = append(actions, a)
		case "":
			return nil, fmt.Errorf("action %d has no type", i)
		default:
			actions = append(actions, Inert{Kind: w.Type, Payload: w.Payload})
		}
	}
	return actions, nil
}

// MarshalActions encodes actions in the form read by UnmarshalActions.
func MarshalActions(actions []Action) ([]byte, error) {
	wire := make([]wireAction, 0, len(actions))
	for _, a := range actions {
		var payload json.RawMessage
		var err error
		if in, ok := a.(Inert); ok {
			payload = in.Payload
		} else {
			payload, err = json.Marshal(a)
			if err != nil {
				return nil, err
			}
		}
		wire = append(wire, wireAction{Type: a.Type(), Payload: payload})
	}
	return json.Marshal(wire)
}
