package umlelement

// Resize names the dimensions a user may drag.
type Resize string

const (
	ResizeNone   Resize = "none"
	ResizeBoth   Resize = "both"
	ResizeWidth  Resize = "width"
	ResizeHeight Resize = "height"
)

func (r Resize) Width() bool {
	return r == ResizeBoth || r == ResizeWidth
}

func (r Resize) Height() bool {
	return r == ResizeBoth || r == ResizeHeight
}

// Features describes what the editor lets a user do with every element of a kind.
type Features struct {
	Hoverable                    bool   `json:"hoverable"`
	Selectable                   bool   `json:"selectable"`
	Movable                      bool   `json:"movable"`
	Resizable                    Resize `json:"resizable"`
	Connectable                  bool   `json:"connectable"`
	Updatable                    bool   `json:"updatable"`
	Droppable                    bool   `json:"droppable"`
	AlternativePortVisualization bool   `json:"alternativePortVisualization"`
}

var (
	elementFeatures = Features{
		Hoverable:   true,
		Selectable:  true,
		Movable:     true,
		Resizable:   ResizeBoth,
		Connectable: true,
		Updatable:   true,
	}

	containerFeatures = with(elementFeatures, func(f *Features) {
		f.Droppable = true
	})

	memberFeatures = with(elementFeatures, func(f *Features) {
		f.Hoverable = false
		f.Selectable = false
		f.Movable = false
		f.Resizable = ResizeNone
		f.Connectable = false
		f.Updatable = false
	})

	nodeFeatures = with(elementFeatures, func(f *Features) {
		f.Resizable = ResizeNone
		f.Updatable = false
	})

	agentFeatures = with(containerFeatures, func(f *Features) {
		f.Droppable = false
		f.Resizable = ResizeWidth
	})

	relationshipFeatures = with(elementFeatures, func(f *Features) {
		f.Movable = false
		f.Resizable = ResizeNone
		f.Connectable = false
	})
)

func with(f Features, fn func(*Features)) Features {
	fn(&f)
	return f
}

var features = map[Kind]Features{
	Package:       containerFeatures,
	Class:         containerFeatures,
	AbstractClass: containerFeatures,
	Interface:     containerFeatures,
	Enumeration: with(containerFeatures, func(f *Features) {
		f.Connectable = false
	}),
	ObjectName:    containerFeatures,
	UserModelName: containerFeatures,

	ClassAttribute:         memberFeatures,
	ClassMethod:            memberFeatures,
	ObjectAttribute:        memberFeatures,
	ObjectMethod:           memberFeatures,
	UserModelAttribute:     memberFeatures,
	UserModelIcon:          memberFeatures,
	AgentStateBody:         memberFeatures,
	AgentStateFallbackBody: memberFeatures,
	AgentIntentBody:        memberFeatures,

	ClassOCLConstraint: elementFeatures,
	StateActionNode:    elementFeatures,
	StateFinalNode:     nodeFeatures,
	StateInitialNode:   nodeFeatures,
	Comments:           elementFeatures,
	AgentRagElement:    elementFeatures,

	AgentState:  agentFeatures,
	AgentIntent: agentFeatures,
}

func init() {
	for k := range relationshipKinds {
		features[k] = relationshipFeatures
	}
}

// GetFeatures returns the capabilities of kind k. Unknown kinds get no capabilities.
func GetFeatures(k Kind) Features {
	f, ok := features[k]
	if !ok {
		return Features{Resizable: ResizeNone}
	}
	return f
}
