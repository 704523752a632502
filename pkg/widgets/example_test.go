package widgets_test

import (
	"fmt"
	"os"

	"github.com/go-drift/arbor/pkg/debugdump"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/widget"
	"github.com/go-drift/arbor/pkg/widgets"
)

// This example mounts a column with a label and a button and prints the
// resulting tree.
func ExampleColumn() {
	col := widgets.NewColumn(
		widgets.NewLabel("Count: 0"),
		widgets.NewTextButton("Increment", nil),
	)
	col.Spacing = 4

	tree := widget.NewTree(widget.NewRootWidget(col))
	tree.Layout(layout.Loose(graphics.Size{Width: 320, Height: 240}))
	tree.Paint()

	dump := debugdump.Capture(tree.Root(), debugdump.Options{
		StableIDs: true,
		Semantics: tree.Accessibility(),
	})
	debugdump.Render(os.Stdout, dump, debugdump.PlainStyle())
	// Output:
	// RootWidget RootWidget#0 window 79x46 at (0, 0)
	// └── Column Column#0 generic_container 79x46 at (0, 0)
	//     ├── Label Label#0 label 56x13 at (0, 0) "Count: 0"
	//     └── Button Button#0 button 79x29 at (0, 17) "Increment"
	//         └── Label Label#1 label 63x13 at (8, 8) "Increment"
}

// This example edits a mounted column to append a child.
func ExampleColumn_AddChild() {
	col := widgets.NewColumn(widgets.NewLabel("first"))
	tree := widget.NewTree(widget.NewRootWidget(col))

	var added widget.ID
	colID, _ := tree.Arena().ParentOf(col.ChildID(0))
	tree.Edit(colID, func(ctx *widget.MutateCtx) {
		added = widget.Downcast[*widgets.Column](ctx).AddChild(ctx, widgets.NewLabel("second"))
	})

	fmt.Println(col.Len(), tree.Arena().Has(added), tree.Arena().Verify())
	// Output: 2 true <nil>
}

// This example creates a button with a click handler.
func ExampleNewTextButton() {
	button := widgets.NewTextButton("Submit", func() {
		fmt.Println("Submitted!")
	})
	button.Padding = 12
	_ = button
}
