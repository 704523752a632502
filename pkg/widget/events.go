package widget

import (
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/semantics"
)

// PointerKind identifies the phase of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerMove
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerMove:
		return "move"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer interaction in window coordinates.
type PointerEvent struct {
	Kind     PointerKind
	Position graphics.Offset
	Button   int
}

// TextEvent carries committed text input.
type TextEvent struct {
	Text string
}

// AccessEvent is an action requested by an assistive technology.
type AccessEvent struct {
	Target ID
	Action semantics.Action
}

// LifeCycleKind identifies a lifecycle notification.
type LifeCycleKind int

const (
	// WidgetAdded is delivered once to each widget right after it is inserted
	// into the tree.
	WidgetAdded LifeCycleKind = iota
	// DisabledChanged reports a change of the disabled flag for a subtree.
	DisabledChanged
	// BuildFocusChain asks widgets to register themselves as focusable.
	BuildFocusChain
	// RouteWidgetAdded travels down the tree after a structural edit. Widgets
	// forward it like any other event; a pod that has not been inserted yet
	// inserts its child and turns it into WidgetAdded for that child only.
	RouteWidgetAdded
)

func (k LifeCycleKind) String() string {
	switch k {
	case WidgetAdded:
		return "WidgetAdded"
	case DisabledChanged:
		return "DisabledChanged"
	case BuildFocusChain:
		return "BuildFocusChain"
	case RouteWidgetAdded:
		return "RouteWidgetAdded"
	default:
		return "Unknown"
	}
}

// LifeCycle is a notification that travels down the whole tree.
type LifeCycle struct {
	Kind     LifeCycleKind
	Disabled bool
}

// StatusChangeKind identifies a status notification.
type StatusChangeKind int

const (
	HotChanged StatusChangeKind = iota
	FocusChanged
)

// StatusChange is delivered to a single widget when its hot or focus status flips.
type StatusChange struct {
	Kind  StatusChangeKind
	Value bool
}
