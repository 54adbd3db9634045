package umlelement

import (
	"golang.org/x/exp/slices"
)

// Kind tags every element and relationship. The set is closed: a Kind outside of it
// is not IsValid.
type Kind string

const (
	Package       Kind = "Package"
	Class         Kind = "Class"
	AbstractClass Kind = "AbstractClass"
	Interface     Kind = "Interface"
	Enumeration   Kind = "Enumeration"

	ClassAttribute     Kind = "ClassAttribute"
	ClassMethod        Kind = "ClassMethod"
	ClassOCLConstraint Kind = "ClassOCLConstraint"

	ObjectName      Kind = "ObjectName"
	ObjectAttribute Kind = "ObjectAttribute"
	ObjectMethod    Kind = "ObjectMethod"

	StateActionNode  Kind = "StateActionNode"
	StateFinalNode   Kind = "StateFinalNode"
	StateInitialNode Kind = "StateInitialNode"

	AgentState             Kind = "AgentState"
	AgentStateBody         Kind = "AgentStateBody"
	AgentStateFallbackBody Kind = "AgentStateFallbackBody"
	AgentIntent            Kind = "AgentIntent"
	AgentIntentBody        Kind = "AgentIntentBody"
	AgentRagElement        Kind = "AgentRagElement"

	Comments Kind = "Comments"

	UserModelName      Kind = "UserModelName"
	UserModelAttribute Kind = "UserModelAttribute"
	UserModelIcon      Kind = "UserModelIcon"
)

const (
	ClassBidirectional  Kind = "ClassBidirectional"
	ClassUnidirectional Kind = "ClassUnidirectional"
	ClassAggregation    Kind = "ClassAggregation"
	ClassComposition    Kind = "ClassComposition"
	ClassDependency     Kind = "ClassDependency"
	ClassInheritance    Kind = "ClassInheritance"
	ClassRealization    Kind = "ClassRealization"
	ClassOCLLink        Kind = "ClassOCLLink"

	ObjectLink Kind = "ObjectLink"

	StateTransition Kind = "StateTransition"

	AgentStateTransition     Kind = "AgentStateTransition"
	AgentStateTransitionInit Kind = "AgentStateTransitionInit"

	UserModelLink Kind = "UserModelLink"

	Link Kind = "Link"
)

var elementKinds = map[Kind]struct{}{
	Package: {}, Class: {}, AbstractClass: {}, Interface: {}, Enumeration: {},
	ClassAttribute: {}, ClassMethod: {}, ClassOCLConstraint: {},
	ObjectName: {}, ObjectAttribute: {}, ObjectMethod: {},
	StateActionNode: {}, StateFinalNode: {}, StateInitialNode: {},
	AgentState: {}, AgentStateBody: {}, AgentStateFallbackBody: {},
	AgentIntent: {}, AgentIntentBody: {}, AgentRagElement: {},
	Comments: {},
	UserModelName: {}, UserModelAttribute: {}, UserModelIcon: {},
}

var relationshipKinds = map[Kind]struct{}{
	ClassBidirectional: {}, ClassUnidirectional: {}, ClassAggregation: {},
	ClassComposition: {}, ClassDependency: {}, ClassInheritance: {},
	ClassRealization: {}, ClassOCLLink: {},
	ObjectLink:      {},
	StateTransition: {},
	AgentStateTransition: {}, AgentStateTransitionInit: {},
	UserModelLink: {},
	Link:          {},
}

func (k Kind) IsRelationship() bool {
	_, ok := relationshipKinds[k]
	return ok
}

func (k Kind) IsValid() bool {
	_, ok := elementKinds[k]
	return ok || k.IsRelationship()
}

// IsMember reports whether k is drawn as a row inside a classifier or agent state.
func (k Kind) IsMember() bool {
	switch k {
	case ClassAttribute, ClassMethod,
		ObjectAttribute, ObjectMethod,
		UserModelAttribute,
		AgentStateBody, AgentStateFallbackBody, AgentIntentBody:
		return true
	}
	return false
}

// Kinds returns every valid kind in lexical order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(elementKinds)+len(relationshipKinds))
	for k := range elementKinds {
		kinds = append(kinds, k)
	}
	for k := range relationshipKinds {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
