package widgets

import (
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/semantics"
	"github.com/go-drift/arbor/pkg/widget"
)

// Column lays its children out top to bottom, left aligned, with Spacing
// between consecutive children. Its width is that of the widest child.
//
// Children are held in pods, so each child is inserted into the arena under
// the column the first time a lifecycle event reaches it.
type Column struct {
	Spacing float64

	children []widget.Pod[widget.Widget]
}

// NewColumn returns a column holding children in order.
func NewColumn(children ...widget.Widget) *Column {
	c := &Column{}
	for _, child := range children {
		c.children = append(c.children, widget.NewPod(child))
	}
	return c
}

// Len returns the number of children.
func (c *Column) Len() int {
	return len(c.children)
}

// ChildID returns the ID of the i-th child.
func (c *Column) ChildID(i int) widget.ID {
	return c.children[i].ID()
}

// AddChild appends child and returns its ID. The child is inserted into the
// arena when widget.Tree.Edit routes RouteWidgetAdded after the edit.
func (c *Column) AddChild(ctx *widget.MutateCtx, child widget.Widget) widget.ID {
	pod := widget.NewPod(child)
	c.children = append(c.children, pod)
	ctx.RequestLayout()
	return pod.ID()
}

// RemoveChildAt deletes the i-th child and its subtree from both trees.
func (c *Column) RemoveChildAt(ctx *widget.MutateCtx, i int) {
	ctx.RemoveChild(&c.children[i])
	c.children = append(c.children[:i], c.children[i+1:]...)
}

// EditChild gives mutable access to the i-th child.
func (c *Column) EditChild(ctx *widget.MutateCtx, i int) *widget.MutateCtx {
	return ctx.Child(&c.children[i])
}

func (c *Column) OnPointerEvent(ctx *widget.EventCtx, event widget.PointerEvent)     {}
func (c *Column) OnTextEvent(ctx *widget.EventCtx, event widget.TextEvent)           {}
func (c *Column) OnAccessEvent(ctx *widget.EventCtx, event widget.AccessEvent)       {}
func (c *Column) OnStatusChange(ctx *widget.LifeCycleCtx, event widget.StatusChange) {}

func (c *Column) Lifecycle(ctx *widget.LifeCycleCtx, event widget.LifeCycle) {
	for i := range c.children {
		c.children[i].Lifecycle(ctx, event)
	}
}

func (c *Column) Layout(ctx *widget.LayoutCtx, bc layout.BoxConstraints) graphics.Size {
	childBC := bc.Loosen()
	var y, width float64
	for i := range c.children {
		if i > 0 {
			y += c.Spacing
		}
		size := c.children[i].Layout(ctx, childBC)
		ctx.PlaceChild(&c.children[i], graphics.Offset{Y: y})
		y += size.Height
		width = max(width, size.Width)
	}
	return bc.Constrain(graphics.Size{Width: width, Height: y})
}

func (c *Column) Paint(ctx *widget.PaintCtx, scene *graphics.Scene) {
	for i := range c.children {
		c.children[i].Paint(ctx, scene)
	}
}

func (c *Column) AccessibilityRole() semantics.Role {
	return semantics.RoleGenericContainer
}

func (c *Column) Accessibility(ctx *widget.AccessCtx) {
	for i := range c.children {
		c.children[i].Accessibility(ctx)
	}
}

func (c *Column) ChildrenIDs() []widget.ID {
	ids := make([]widget.ID, len(c.children))
	for i := range c.children {
		ids[i] = c.children[i].ID()
	}
	return ids
}

func (c *Column) TraceSpan() string { return "Column" }
