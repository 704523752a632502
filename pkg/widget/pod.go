package widget

import (
	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/semantics"
)

// Pod is a parent's slot for one child widget.
//
// A new pod holds its widget until the first lifecycle event reaches it. At
// that point the widget and a fresh State are inserted into the arena under
// the parent, and the pod keeps only the ID.
type Pod[W Widget] struct {
	id       ID
	widget   W
	inserted bool
}

// NewPod wraps w in a pod with a newly allocated ID.
func NewPod[W Widget](w W) Pod[W] {
	return Pod[W]{id: NextID(), widget: w}
}

// NewPodWithID wraps w in a pod with a caller-chosen ID.
func NewPodWithID[W Widget](w W, id ID) Pod[W] {
	return Pod[W]{id: id, widget: w}
}

// ID returns the child's identifier.
func (p *Pod[W]) ID() ID {
	return p.id
}

// IsInserted reports whether the child has been added to the arena.
func (p *Pod[W]) IsInserted() bool {
	return p.inserted
}

// Pending returns the widget of a pod that has not been inserted yet.
func (p *Pod[W]) Pending() (W, bool) {
	return p.widget, !p.inserted
}

// Lifecycle forwards a lifecycle event to the child. A child that has not been
// inserted yet is inserted first and receives WidgetAdded before ev. An
// inserted child never sees WidgetAdded again: both WidgetAdded and
// RouteWidgetAdded reach it as RouteWidgetAdded.
func (p *Pod[W]) Lifecycle(ctx *LifeCycleCtx, ev LifeCycle) {
	if !p.inserted {
		insertPair("lifecycle", ctx.widgetChildren, ctx.stateChildren, p.id, p.widget)
		var zero W
		p.widget = zero
		p.inserted = true
		ctx.state.ChildrenChanged = true
		p.deliver(ctx, LifeCycle{Kind: WidgetAdded})
		if ev.Kind == WidgetAdded || ev.Kind == RouteWidgetAdded {
			return
		}
	}
	if ev.Kind == WidgetAdded {
		ev.Kind = RouteWidgetAdded
	}
	p.deliver(ctx, ev)
}

func (p *Pod[W]) deliver(ctx *LifeCycleCtx, ev LifeCycle) {
	w, s := ctx.child("lifecycle", p.id)
	if ev.Kind == DisabledChanged {
		s.Item.IsDisabled = ev.Disabled
	}
	child := &LifeCycleCtx{newCtxBase(ctx.global, w, s)}
	(*w.Item).Lifecycle(child, ev)
	if ev.Kind == WidgetAdded {
		s.Item.IsNew = false
	}
	ctx.state.MergeUp(s.Item)
}

// Layout lays out the child under bc and returns its size. The caller must
// then place the child with LayoutCtx.PlaceChild.
func (p *Pod[W]) Layout(ctx *LayoutCtx, bc layout.BoxConstraints) graphics.Size {
	p.mustBeInserted("layout")
	w, s := ctx.child("layout", p.id)
	s.Item.placed = false
	child := &LayoutCtx{newCtxBase(ctx.global, w, s)}
	size := runLayout(child, *w.Item, bc)
	ctx.state.MergeUp(s.Item)
	return size
}

// Paint records the child into scene, translated to the child's origin.
func (p *Pod[W]) Paint(ctx *PaintCtx, scene *graphics.Scene) {
	p.mustBeInserted("paint")
	w, s := ctx.child("paint", p.id)
	scene.PushTranslate(s.Item.Origin)
	child := &PaintCtx{newCtxBase(ctx.global, w, s)}
	(*w.Item).Paint(child, scene)
	scene.Pop()
	s.Item.NeedsPaint = false
}

// Accessibility appends the child's node to the current node and lets the
// child describe itself.
func (p *Pod[W]) Accessibility(ctx *AccessCtx) {
	p.mustBeInserted("accessibility")
	w, s := ctx.child("accessibility", p.id)
	node := newAccessNode(*w.Item, s.Item)
	ctx.node.Children = append(ctx.node.Children, node)
	child := &AccessCtx{ctxBase: newCtxBase(ctx.global, w, s), node: node}
	(*w.Item).Accessibility(child)
	s.Item.NeedsAccessibility = false
}

func (p *Pod[W]) mustBeInserted(op string) {
	if !p.inserted {
		errors.Invariant(op, p.id.ToRaw(), "widget pod used before WidgetAdded")
	}
}

// runLayout calls w.Layout and records the result in the widget's state. It
// panics if a child that was laid out was not placed.
func runLayout(ctx *LayoutCtx, w Widget, bc layout.BoxConstraints) graphics.Size {
	size := w.Layout(ctx, bc)
	for _, id := range w.ChildrenIDs() {
		s, ok := ctx.stateChildren.FindMut(id.ToRaw())
		if !ok {
			continue
		}
		if !s.Item.placed && !s.Item.NeedsLayout {
			errors.Invariant("layout", id.ToRaw(), w.TraceSpan()+" laid out a child without placing it")
		}
	}
	if ctx.state.Size != size {
		ctx.state.NeedsPaint = true
	}
	ctx.state.Size = size
	ctx.state.NeedsLayout = false
	ctx.state.ChildrenChanged = false
	return size
}

func newAccessNode(w Widget, st *State) *semantics.Node {
	return &semantics.Node{
		ID:       st.ID.ToRaw(),
		Role:     w.AccessibilityRole(),
		Rect:     st.WindowRect(),
		Disabled: st.IsDisabled,
	}
}
