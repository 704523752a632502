// Package widgets provides a small set of concrete widgets built on the
// widget package's dispatch protocol.
//
// The set is deliberately small. It covers the shapes a tree takes in
// practice:
//
//   - SizedBox and Label are leaves.
//   - Button owns exactly one child pod.
//   - Column owns any number of sibling pods and lays them out top to bottom.
//
// Widgets are created with struct literals or the NewXxx helpers and handed to
// a widget.Tree, usually wrapped in a widget.RootWidget:
//
//	col := widgets.NewColumn(
//	    widgets.NewLabel("Counter"),
//	    widgets.NewTextButton("Increment", onClick),
//	)
//	tree := widget.NewTree(widget.NewRootWidget(col))
//	tree.Layout(layout.Loose(viewport))
//
// Structural changes after mounting go through widget.Tree.Edit so that the
// widget and state trees stay in step:
//
//	tree.Edit(colID, func(ctx *widget.MutateCtx) {
//	    widget.Downcast[*widgets.Column](ctx).RemoveChildAt(ctx, 0)
//	})
package widgets
