package widget

import (
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/semantics"
)

// RootWidget is the top node of every tree. It holds exactly one child,
// forwards all passes to it unchanged, and reports the window role so that
// each accessibility tree has a single window at its root.
type RootWidget[W Widget] struct {
	pod Pod[W]
}

// NewRootWidget wraps w as the tree's root.
func NewRootWidget[W Widget](w W) *RootWidget[W] {
	return &RootWidget[W]{pod: NewPod(w)}
}

// RootWidgetFromPod wraps an existing pod as the tree's root.
func RootWidgetFromPod[W Widget](pod Pod[W]) *RootWidget[W] {
	return &RootWidget[W]{pod: pod}
}

// Child returns the pod of the wrapped widget.
func (r *RootWidget[W]) Child() *Pod[W] {
	return &r.pod
}

func (r *RootWidget[W]) OnPointerEvent(ctx *EventCtx, event PointerEvent) {}
func (r *RootWidget[W]) OnTextEvent(ctx *EventCtx, event TextEvent)       {}
func (r *RootWidget[W]) OnAccessEvent(ctx *EventCtx, event AccessEvent)   {}

func (r *RootWidget[W]) OnStatusChange(ctx *LifeCycleCtx, event StatusChange) {}

func (r *RootWidget[W]) Lifecycle(ctx *LifeCycleCtx, event LifeCycle) {
	r.pod.Lifecycle(ctx, event)
}

// Layout gives the child the root's constraints, places it at the origin and
// takes on its size.
func (r *RootWidget[W]) Layout(ctx *LayoutCtx, bc layout.BoxConstraints) graphics.Size {
	size := r.pod.Layout(ctx, bc)
	ctx.PlaceChild(&r.pod, graphics.Origin)
	return size
}

func (r *RootWidget[W]) Paint(ctx *PaintCtx, scene *graphics.Scene) {
	r.pod.Paint(ctx, scene)
}

func (r *RootWidget[W]) AccessibilityRole() semantics.Role {
	return semantics.RoleWindow
}

func (r *RootWidget[W]) Accessibility(ctx *AccessCtx) {
	r.pod.Accessibility(ctx)
}

func (r *RootWidget[W]) ChildrenIDs() []ID {
	return []ID{r.pod.ID()}
}

func (r *RootWidget[W]) TraceSpan() string {
	return "RootWidget"
}
