package cmd

import (
	"fmt"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/semantics"
	"github.com/go-drift/arbor/pkg/widget"
	"github.com/go-drift/arbor/pkg/widgets"
)

// counterDemo is the tree `arbor dump` mounts: a title, a count and a button
// that increments it.
type counterDemo struct {
	column *widgets.Column
	count  int
}

const (
	demoCountIndex  = 1
	demoButtonIndex = 3
)

func newCounterDemo(title string) *counterDemo {
	d := &counterDemo{}
	button := widgets.NewTextButton("Increment", func() { d.count++ })
	button.Color = graphics.RGB(0x1E, 0x88, 0xE5)
	d.column = widgets.NewColumn(
		widgets.NewLabel(title),
		widgets.NewLabel(countText(0)),
		widgets.VSpace(8),
		button,
	)
	d.column.Spacing = 4
	return d
}

func countText(n int) string {
	return fmt.Sprintf("Count: %d", n)
}

// click activates the button the way a screen reader would and updates the
// count label to match.
func (d *counterDemo) click(tree *widget.Tree) {
	tree.DispatchAccess(widget.AccessEvent{
		Target: d.column.ChildID(demoButtonIndex),
		Action: semantics.ActionClick,
	})
	tree.Edit(d.column.ChildID(demoCountIndex), func(ctx *widget.MutateCtx) {
		widget.Downcast[*widgets.Label](ctx).SetText(ctx, countText(d.count))
	})
}
