package widget

import (
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/semantics"
)

// Widget is the protocol every node of the tree implements.
//
// Widgets never hold references to other widgets. A container owns its
// children through Pods and reaches them through the context it is handed.
type Widget interface {
	OnPointerEvent(ctx *EventCtx, event PointerEvent)
	OnTextEvent(ctx *EventCtx, event TextEvent)
	OnAccessEvent(ctx *EventCtx, event AccessEvent)

	// OnStatusChange is called when the widget's hot or focus status changes.
	OnStatusChange(ctx *LifeCycleCtx, event StatusChange)
	// Lifecycle is called for tree-wide notifications. Containers must
	// forward it to every child pod.
	Lifecycle(ctx *LifeCycleCtx, event LifeCycle)

	// Layout computes the widget's size under the given constraints and
	// places its children.
	Layout(ctx *LayoutCtx, bc layout.BoxConstraints) graphics.Size
	// Paint records the widget into scene, in local coordinates.
	Paint(ctx *PaintCtx, scene *graphics.Scene)

	AccessibilityRole() semantics.Role
	// Accessibility fills in the widget's node and forwards to child pods.
	Accessibility(ctx *AccessCtx)

	// ChildrenIDs lists the IDs of the widget's direct children, in order.
	ChildrenIDs() []ID
	// TraceSpan returns a short label identifying the widget in traces and dumps.
	TraceSpan() string
}
