package widget

import (
	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/treearena"
)

// WidgetRef is a read-only view of one node: the widget, a copy of its
// state, and the children handles of both trees. Passes that only read use it
// to walk the tree.
//
// A WidgetRef must not be kept across a structural change to the tree.
type WidgetRef struct {
	Widget Widget
	State  State

	widgetChildren treearena.ChildrenRef[Widget]
	stateChildren  treearena.ChildrenRef[State]
}

func newWidgetRef(w treearena.Ref[Widget], s treearena.Ref[State]) WidgetRef {
	return WidgetRef{
		Widget:         w.Item,
		State:          s.Item,
		widgetChildren: w.Children,
		stateChildren:  s.Children,
	}
}

// ID returns the node's identifier.
func (r WidgetRef) ID() ID {
	return r.State.ID
}

// Children returns views of the direct children in ChildrenIDs order.
// Pods whose child has not been inserted yet are skipped. A child present in
// only one of the two trees is an invariant violation.
func (r WidgetRef) Children() []WidgetRef {
	ids := r.Widget.ChildrenIDs()
	children := make([]WidgetRef, 0, len(ids))
	for _, id := range ids {
		child, ok := r.child(id)
		if !ok {
			continue
		}
		children = append(children, child)
	}
	return children
}

// FindWidgetByID returns the node with the given id if it is r itself or
// one of its descendants.
func (r WidgetRef) FindWidgetByID(id ID) (WidgetRef, bool) {
	if r.ID() == id {
		return r, true
	}
	return r.child(id)
}

// child resolves a descendant through both subtree handles.
func (r WidgetRef) child(id ID) (WidgetRef, bool) {
	s, inStates := r.stateChildren.Find(id.ToRaw())
	w, inWidgets := r.widgetChildren.Find(id.ToRaw())
	switch {
	case !inStates && !inWidgets:
		return WidgetRef{}, false
	case !inWidgets:
		errors.Invariant("widget_ref_child", id.ToRaw(), "found state but not widget")
	case !inStates:
		errors.Invariant("widget_ref_child", id.ToRaw(), "found widget but not state")
	}
	return newWidgetRef(w, s), true
}

// Walk visits r and its descendants depth-first, parents first. Returning
// false from fn skips the node's children.
func (r WidgetRef) Walk(fn func(WidgetRef) bool) {
	if !fn(r) {
		return
	}
	for _, child := range r.Children() {
		child.Walk(fn)
	}
}

// Count returns the number of nodes in r's subtree, r included.
func (r WidgetRef) Count() int {
	n := 0
	r.Walk(func(WidgetRef) bool {
		n++
		return true
	})
	return n
}
