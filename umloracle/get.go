package umloracle

import (
	"fmt"

	"oss.terrastruct.com/uml/umlelement"
	"oss.terrastruct.com/uml/umlrelationship"
)

// Root returns the outermost owner of el, or el when it is owned by the diagram.
func Root(table umlelement.Table, el *umlelement.Element) *umlelement.Element {
	seen := map[string]struct{}{el.ID: {}}
	for el.Owner != nil {
		parent, ok := table.Get(*el.Owner)
		if !ok {
			break
		}
		if _, ok := seen[parent.ID]; ok {
			break
		}
		seen[parent.ID] = struct{}{}
		el = parent
	}
	return el
}

// GetFeatures returns what the editor lets a user do with id. Members are edited
// through the element that owns them, so the features are those of Root.
func GetFeatures(table umlelement.Table, id string) (umlelement.Features, error) {
	el, ok := table.Get(id)
	if !ok {
		return umlelement.Features{}, fmt.Errorf("unknown element %q", id)
	}
	return umlelement.GetFeatures(Root(table, el).Kind), nil
}

// ConnectableKinds returns the relationship kinds Connect accepts with sourceID as
// source. Sources that are not connectable get none.
func ConnectableKinds(table umlelement.Table, sourceID string) ([]umlelement.Kind, error) {
	el, ok := table.Get(sourceID)
	if !ok {
		return nil, fmt.Errorf("unknown element %q", sourceID)
	}
	if !umlelement.GetFeatures(el.Kind).Connectable {
		return nil, nil
	}
	return umlrelationship.Supported(el.Kind), nil
}
