package widget

import (
	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/semantics"
	"github.com/go-drift/arbor/pkg/treearena"
)

// passState is shared by every context created during one pass.
type passState struct {
	measurer graphics.TextMeasurer

	handled      bool
	focusRequest ID
	resignFocus  bool
	focusChain   []ID
}

// ctxBase holds the node being visited: its state and the children handles
// of both trees. Child lookups are confined to the node's subtree.
type ctxBase struct {
	global         *passState
	state          *State
	widgetChildren treearena.ChildrenMut[Widget]
	stateChildren  treearena.ChildrenMut[State]
}

func newCtxBase(global *passState, w treearena.Mut[Widget], s treearena.Mut[State]) ctxBase {
	return ctxBase{
		global:         global,
		state:          s.Item,
		widgetChildren: w.Children,
		stateChildren:  s.Children,
	}
}

// WidgetID returns the ID of the widget being visited.
func (c *ctxBase) WidgetID() ID {
	return c.state.ID
}

// Size returns the size from the widget's last layout.
func (c *ctxBase) Size() graphics.Size {
	return c.state.Size
}

// IsHot reports whether the pointer is over the widget.
func (c *ctxBase) IsHot() bool {
	return c.state.IsHot
}

// HasFocus reports whether the widget has keyboard focus.
func (c *ctxBase) HasFocus() bool {
	return c.state.HasFocus
}

// IsDisabled reports whether the widget is disabled.
func (c *ctxBase) IsDisabled() bool {
	return c.state.IsDisabled
}

// TextMeasurer returns the measurer used for text layout.
func (c *ctxBase) TextMeasurer() graphics.TextMeasurer {
	if c.global == nil || c.global.measurer == nil {
		return graphics.DefaultMeasurer
	}
	return c.global.measurer
}

// RequestLayout schedules layout, paint and accessibility for the widget.
func (c *ctxBase) RequestLayout() {
	c.state.NeedsLayout = true
	c.state.NeedsPaint = true
	c.state.NeedsAccessibility = true
}

// RequestPaint schedules a repaint of the widget.
func (c *ctxBase) RequestPaint() {
	c.state.NeedsPaint = true
}

// RequestAccessibilityUpdate schedules an accessibility pass for the widget.
func (c *ctxBase) RequestAccessibilityUpdate() {
	c.state.NeedsAccessibility = true
}

// child resolves a direct or indirect child in both trees.
func (c *ctxBase) child(op string, id ID) (treearena.Mut[Widget], treearena.Mut[State]) {
	w, ok := c.widgetChildren.FindMut(id.ToRaw())
	if !ok {
		errors.Invariant(op, id.ToRaw(), "child widget not in widget tree")
	}
	s, ok := c.stateChildren.FindMut(id.ToRaw())
	if !ok {
		errors.Invariant(op, id.ToRaw(), "child widget state not in widget tree")
	}
	return w, s
}

// childState resolves a child in the state tree only.
func (c *ctxBase) childState(op string, id ID) *State {
	s, ok := c.stateChildren.FindMut(id.ToRaw())
	if !ok {
		errors.Invariant(op, id.ToRaw(), "child widget state not in widget tree")
	}
	return s.Item
}

// Child is anything that names a child widget, typically a *Pod.
type Child interface {
	ID() ID
}

// EventCtx is passed to pointer, text and accessibility event handlers.
type EventCtx struct {
	ctxBase
}

// SetHandled stops the event from bubbling to ancestors.
func (c *EventCtx) SetHandled() {
	c.global.handled = true
}

// IsHandled reports whether a widget has handled the current event.
func (c *EventCtx) IsHandled() bool {
	return c.global.handled
}

// RequestFocus asks for keyboard focus to move to this widget once the event
// has been dispatched.
func (c *EventCtx) RequestFocus() {
	c.global.focusRequest = c.state.ID
	c.global.resignFocus = false
}

// ResignFocus gives up keyboard focus if this widget holds it.
func (c *EventCtx) ResignFocus() {
	if c.state.HasFocus {
		c.global.resignFocus = true
		c.global.focusRequest = 0
	}
}

// LocalPosition converts a window position into the widget's coordinates.
func (c *EventCtx) LocalPosition(window graphics.Offset) graphics.Offset {
	return graphics.Offset{X: window.X - c.state.WindowOrigin.X, Y: window.Y - c.state.WindowOrigin.Y}
}

// LifeCycleCtx is passed to Lifecycle and OnStatusChange.
type LifeCycleCtx struct {
	ctxBase
}

// RegisterForFocus adds the widget to the focus chain. Only meaningful while
// handling BuildFocusChain.
func (c *LifeCycleCtx) RegisterForFocus() {
	c.global.focusChain = append(c.global.focusChain, c.state.ID)
}

// LayoutCtx is passed to Layout.
type LayoutCtx struct {
	ctxBase
}

// PlaceChild sets a child's origin in this widget's coordinate space. Every
// child that is laid out must be placed before Layout returns.
func (c *LayoutCtx) PlaceChild(child Child, origin graphics.Offset) {
	st := c.childState("place_child", child.ID())
	if st.Origin != origin {
		st.NeedsPaint = true
		c.state.NeedsPaint = true
	}
	st.Origin = origin
	st.placed = true
}

// ChildSize returns the size a child reported in its last layout.
func (c *LayoutCtx) ChildSize(child Child) graphics.Size {
	return c.childState("child_size", child.ID()).Size
}

// PaintCtx is passed to Paint.
type PaintCtx struct {
	ctxBase
}

// AccessCtx is passed to Accessibility. It exposes the node being built for
// the current widget.
type AccessCtx struct {
	ctxBase
	node *semantics.Node
}

// Node returns the accessibility node of the widget being visited.
func (c *AccessCtx) Node() *semantics.Node {
	return c.node
}

// SetLabel sets the accessible name of the widget.
func (c *AccessCtx) SetLabel(label string) {
	c.node.Label = label
}

// AddAction advertises an action the widget supports.
func (c *AccessCtx) AddAction(action semantics.Action) {
	c.node.Actions = append(c.node.Actions, action)
}
