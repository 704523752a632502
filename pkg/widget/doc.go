// Package widget provides the node store of the retained widget tree and the
// protocol every widget implements.
//
// # Two trees
//
// Arena keeps widget objects and their State in two tree arenas keyed by the
// same ID. The trees always have the same shape. Because they are separate
// containers, a pass can hold a widget and its state mutably at once:
//
//	w, st := arena.GetPairMut(id)
//	size := (*w.Item).Layout(ctx, bc)
//	st.Item.Size = size
//
// Lookups through "must exist" accessors panic with an *errors.InvariantError
// when the identifier is missing. Has and TryGetWidgetRef are the probing
// entry points.
//
// # Pods
//
// A parent owns each child through a Pod. The pod holds only the child's ID
// once the child has been inserted; parents never keep references to other
// widgets. Contexts resolve pods through the children handles of the node
// being visited, so recursion never needs a tree-wide lookup.
//
//	func (c *Column) Layout(ctx *widget.LayoutCtx, bc layout.BoxConstraints) graphics.Size {
//	    for i := range c.children {
//	        size := c.children[i].Layout(ctx, bc.Loosen())
//	        ctx.PlaceChild(&c.children[i], graphics.Offset{Y: y})
//	        y += size.Height
//	    }
//	    ...
//	}
//
// # Root
//
// RootWidget wraps the application's top widget. It forwards every pass to
// its single child, places it at the origin, and reports the window role.
package widget
