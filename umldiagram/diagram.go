// Package umldiagram tracks which elements belong to a diagram and to each of its
// containers. Membership only changes through Actions applied by Reduce.
package umldiagram

import (
	"oss.terrastruct.com/uml/lib/geo"
)

type Type string

const (
	ClassDiagram  Type = "ClassDiagram"
	ObjectDiagram Type = "ObjectDiagram"
	StateMachine  Type = "StateMachineDiagram"
	AgentDiagram  Type = "AgentDiagram"
	UserDiagram   Type = "UserDiagram"
)

const DefaultDiagramID = "diagram"

// Diagram is the root container. Its fields must not be written outside of Reduce:
// a *Diagram that has been handed out is never modified again.
type Diagram struct {
	ID     string     `json:"id"`
	Type   Type       `json:"type"`
	Bounds geo.Bounds `json:"bounds"`

	OwnedElements []string `json:"ownedElements"`
	// OwnedRelationships is loaded and saved but no action changes it.
	OwnedRelationships []string `json:"ownedRelationships"`
}

func New(id string, t Type) *Diagram {
	if id == "" {
		id = DefaultDiagramID
	}
	return &Diagram{
		ID:                 id,
		Type:               t,
		OwnedElements:      []string{},
		OwnedRelationships: []string{},
	}
}

func (d *Diagram) copy() *Diagram {
	cp := *d
	return &cp
}
