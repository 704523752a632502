package widget

import (
	stderrors "errors"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/semantics"
	"github.com/go-drift/arbor/pkg/treearena"
)

// Tree drives the passes over an Arena whose single root is a widget,
// normally a RootWidget. It is the only code that starts a traversal; the
// arena itself is a passive store.
//
// A Tree is not safe for concurrent use. Each pass runs to completion before
// the next one starts.
type Tree struct {
	arena    *Arena
	root     ID
	measurer graphics.TextMeasurer

	focused    ID
	focusChain []ID
}

// Option configures a Tree.
type Option func(*Tree)

// WithTextMeasurer sets the measurer exposed to widgets through their contexts.
func WithTextMeasurer(m graphics.TextMeasurer) Option {
	return func(t *Tree) {
		t.measurer = m
	}
}

// WithRootID fixes the root's ID instead of allocating one.
func WithRootID(id ID) Option {
	return func(t *Tree) {
		t.root = id
	}
}

// NewTree inserts root into a fresh arena and delivers WidgetAdded so that
// every pod in the initial tree inserts its child.
func NewTree(root Widget, opts ...Option) *Tree {
	t := &Tree{arena: NewArena()}
	for _, opt := range opts {
		opt(t)
	}
	if t.root.IsZero() {
		t.root = NextID()
	}
	t.arena.InsertRoot(t.root, root)
	t.Lifecycle(LifeCycle{Kind: WidgetAdded})
	return t
}

// Arena returns the underlying node store.
func (t *Tree) Arena() *Arena {
	return t.arena
}

// RootID returns the root widget's ID.
func (t *Tree) RootID() ID {
	return t.root
}

// Root returns a read-only view of the root.
func (t *Tree) Root() WidgetRef {
	w, s := t.arena.GetPair(t.root)
	return newWidgetRef(w, s)
}

// Focused returns the widget holding keyboard focus, or the zero ID.
func (t *Tree) Focused() ID {
	return t.focused
}

func (t *Tree) pass() *passState {
	return &passState{measurer: t.measurer}
}

// Lifecycle delivers ev to the root, which forwards it down the tree.
func (t *Tree) Lifecycle(ev LifeCycle) {
	global := t.pass()
	w, s := t.arena.GetPairMut(t.root)
	if ev.Kind == DisabledChanged {
		s.Item.IsDisabled = ev.Disabled
	}
	switch {
	case ev.Kind == RouteWidgetAdded && s.Item.IsNew:
		ev.Kind = WidgetAdded
	case ev.Kind == WidgetAdded && !s.Item.IsNew:
		ev.Kind = RouteWidgetAdded
	}
	ctx := &LifeCycleCtx{newCtxBase(global, w, s)}
	(*w.Item).Lifecycle(ctx, ev)
	switch ev.Kind {
	case WidgetAdded:
		s.Item.IsNew = false
	case BuildFocusChain:
		t.focusChain = global.focusChain
	}
}

// Layout lays out the tree under bc, places the root at the origin and
// refreshes every widget's window origin. It returns the root's size.
func (t *Tree) Layout(bc layout.BoxConstraints) graphics.Size {
	w, s := t.arena.GetPairMut(t.root)
	ctx := &LayoutCtx{newCtxBase(t.pass(), w, s)}
	size := runLayout(ctx, *w.Item, bc)
	s.Item.Origin = graphics.Origin
	s.Item.placed = true
	updateWindowOrigins(t.arena.GetStateMut(t.root), graphics.Origin)
	return size
}

func updateWindowOrigins(s treearena.Mut[State], parentOrigin graphics.Offset) {
	s.Item.WindowOrigin = parentOrigin.Add(s.Item.Origin)
	for _, raw := range s.Children.IDs() {
		child, _ := s.Children.FindMut(raw)
		updateWindowOrigins(child, s.Item.WindowOrigin)
	}
}

// Paint records the whole tree into a new scene.
func (t *Tree) Paint() *graphics.Scene {
	scene := graphics.NewScene()
	w, s := t.arena.GetPairMut(t.root)
	ctx := &PaintCtx{newCtxBase(t.pass(), w, s)}
	(*w.Item).Paint(ctx, scene)
	s.Item.NeedsPaint = false
	return scene
}

// Accessibility builds the accessibility tree. The root node carries the
// root widget's role.
func (t *Tree) Accessibility() *semantics.Node {
	w, s := t.arena.GetPairMut(t.root)
	node := newAccessNode(*w.Item, s.Item)
	ctx := &AccessCtx{ctxBase: newCtxBase(t.pass(), w, s), node: node}
	(*w.Item).Accessibility(ctx)
	s.Item.NeedsAccessibility = false
	return node
}

// HitTest returns the deepest widget whose window rect contains pos. Later
// siblings win over earlier ones.
func (t *Tree) HitTest(pos graphics.Offset) (ID, bool) {
	return hitTest(t.Root(), pos)
}

func hitTest(r WidgetRef, pos graphics.Offset) (ID, bool) {
	if !r.State.WindowRect().Contains(pos) {
		return 0, false
	}
	children := r.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if id, ok := hitTest(children[i], pos); ok {
			return id, true
		}
	}
	return r.ID(), true
}

// DispatchPointer updates hot status, then delivers ev to the widget under
// the pointer and bubbles it up through its ancestors until handled.
// It reports whether any widget handled the event.
func (t *Tree) DispatchPointer(ev PointerEvent) bool {
	target, ok := ID(0), false
	if ev.Kind != PointerLeave {
		target, ok = t.HitTest(ev.Position)
	}
	t.updateHot(target, ok)
	if !ok {
		return false
	}
	return t.bubble(target, func(w Widget, ctx *EventCtx) {
		w.OnPointerEvent(ctx, ev)
	})
}

// DispatchText delivers ev to the focused widget and bubbles it up.
func (t *Tree) DispatchText(ev TextEvent) bool {
	if t.focused.IsZero() || !t.arena.Has(t.focused) {
		return false
	}
	return t.bubble(t.focused, func(w Widget, ctx *EventCtx) {
		w.OnTextEvent(ctx, ev)
	})
}

// DispatchAccess delivers an assistive-technology action to its target. The
// target may have been removed since the accessibility tree was built, in
// which case the event is dropped.
func (t *Tree) DispatchAccess(ev AccessEvent) bool {
	if !t.arena.Has(ev.Target) {
		return false
	}
	return t.bubble(ev.Target, func(w Widget, ctx *EventCtx) {
		w.OnAccessEvent(ctx, ev)
	})
}

func (t *Tree) bubble(target ID, deliver func(Widget, *EventCtx)) bool {
	global := t.pass()
	for id, ok := target, true; ok; id, ok = t.arena.ParentOf(id) {
		w, s := t.arena.GetPairMut(id)
		ctx := &EventCtx{newCtxBase(global, w, s)}
		deliver(*w.Item, ctx)
		if global.handled {
			break
		}
	}
	t.mergeUpFrom(target)
	t.applyFocus(global)
	return global.handled
}

// mergeUpFrom folds pending work from id into each of its ancestors.
func (t *Tree) mergeUpFrom(id ID) {
	for {
		parent, ok := t.arena.ParentOf(id)
		if !ok {
			return
		}
		child := t.arena.GetState(id)
		t.arena.GetStateMut(parent).Item.MergeUp(&child.Item)
		id = parent
	}
}

func (t *Tree) updateHot(target ID, hasTarget bool) {
	hot := make(map[ID]bool)
	if hasTarget {
		for id, ok := target, true; ok; id, ok = t.arena.ParentOf(id) {
			hot[id] = true
		}
	}
	var changed []ID
	t.Root().Walk(func(r WidgetRef) bool {
		if r.State.IsHot != hot[r.ID()] {
			changed = append(changed, r.ID())
		}
		return true
	})
	for _, id := range changed {
		t.statusChange(id, StatusChange{Kind: HotChanged, Value: hot[id]})
	}
}

func (t *Tree) statusChange(id ID, ev StatusChange) {
	w, s := t.arena.GetPairMut(id)
	switch ev.Kind {
	case HotChanged:
		s.Item.IsHot = ev.Value
	case FocusChanged:
		s.Item.HasFocus = ev.Value
	}
	ctx := &LifeCycleCtx{newCtxBase(t.pass(), w, s)}
	(*w.Item).OnStatusChange(ctx, ev)
	t.mergeUpFrom(id)
}

func (t *Tree) applyFocus(global *passState) {
	switch {
	case global.resignFocus:
		t.SetFocus(0)
	case !global.focusRequest.IsZero():
		t.SetFocus(global.focusRequest)
	}
}

// SetFocus moves keyboard focus to id, or clears it for the zero ID.
// Both the old and the new holder receive FocusChanged.
func (t *Tree) SetFocus(id ID) {
	if id == t.focused {
		return
	}
	if !id.IsZero() && !t.arena.Has(id) {
		return
	}
	old := t.focused
	t.focused = id
	if !old.IsZero() && t.arena.Has(old) {
		t.statusChange(old, StatusChange{Kind: FocusChanged, Value: false})
	}
	if !id.IsZero() {
		t.statusChange(id, StatusChange{Kind: FocusChanged, Value: true})
	}
}

// FocusNext rebuilds the focus chain and moves focus to the next widget in
// it, wrapping around. It returns the newly focused ID.
func (t *Tree) FocusNext() ID {
	t.Lifecycle(LifeCycle{Kind: BuildFocusChain})
	if len(t.focusChain) == 0 {
		return 0
	}
	next := t.focusChain[0]
	for i, id := range t.focusChain {
		if id == t.focused {
			next = t.focusChain[(i+1)%len(t.focusChain)]
			break
		}
	}
	t.SetFocus(next)
	return next
}

// Edit runs fn with mutable access to the widget id. Afterwards a
// RouteWidgetAdded pass inserts and announces newly added
// pods, and pending work is merged into the ancestors.
func (t *Tree) Edit(id ID, fn func(ctx *MutateCtx)) {
	w, s := t.arena.GetPairMut(id)
	ctx := &MutateCtx{ctxBase: newCtxBase(t.pass(), w, s), widget: w.Item}
	fn(ctx)
	if t.focused != 0 && !t.arena.Has(t.focused) {
		t.focused = 0
	}
	t.Lifecycle(LifeCycle{Kind: RouteWidgetAdded})
	mergeSubtree(t.arena.GetStateMut(id))
	t.mergeUpFrom(id)
}

// mergeSubtree folds pending work from every descendant of s into s,
// children before parents.
func mergeSubtree(s treearena.Mut[State]) {
	for _, raw := range s.Children.IDs() {
		child, _ := s.Children.FindMut(raw)
		mergeSubtree(child)
		s.Item.MergeUp(child.Item)
	}
}

// Guard runs fn and converts a panic, including invariant violations, into
// an *errors.ArborError carrying the panic's stack. The panic itself is
// reported to the global error handler once, by errors.Catch.
func (t *Tree) Guard(op string, fn func(*Tree)) error {
	perr := errors.Catch(op, func() { fn(t) })
	if perr == nil {
		return nil
	}
	kind := errors.KindPanic
	var inv *errors.InvariantError
	if stderrors.As(perr, &inv) {
		kind = errors.KindInvariant
	}
	return &errors.ArborError{
		Op:         op,
		Kind:       kind,
		Err:        perr,
		StackTrace: perr.StackTrace,
		Timestamp:  perr.Timestamp,
	}
}

// MutateCtx gives mutable access to one widget outside of a pass.
type MutateCtx struct {
	ctxBase
	widget *Widget
}

// Widget returns the widget being edited.
func (c *MutateCtx) Widget() Widget {
	return *c.widget
}

// State returns a copy of the widget's state.
func (c *MutateCtx) State() State {
	return *c.state
}

// Child returns a context for editing a descendant in place.
func (c *MutateCtx) Child(child Child) *MutateCtx {
	w, s := c.child("mutate_child", child.ID())
	return &MutateCtx{ctxBase: newCtxBase(c.global, w, s), widget: w.Item}
}

// RemoveChild deletes a direct child and its subtree from both trees.
// Removing a child that was never inserted is a no-op.
func (c *MutateCtx) RemoveChild(child Child) {
	raw := child.ID().ToRaw()
	_, inStates := c.stateChildren.Remove(raw)
	_, inWidgets := c.widgetChildren.Remove(raw)
	if inStates != inWidgets {
		errors.Invariant("remove_child", raw, "widget and state trees diverged")
	}
	if inStates {
		c.state.ChildrenChanged = true
		c.RequestLayout()
	}
}

// Downcast returns the widget being edited as W. It panics if the widget has
// a different type.
func Downcast[W Widget](c *MutateCtx) W {
	w, ok := (*c.widget).(W)
	if !ok {
		errors.Invariant("downcast", c.state.ID.ToRaw(), "widget is a "+(*c.widget).TraceSpan())
	}
	return w
}
