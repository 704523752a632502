package widget

import (
	"fmt"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/treearena"
)

// Arena stores every widget and its State in two parallel trees.
//
// Both trees always hold the same IDs with the same parents and the same
// child order. Structural changes go through InsertRoot, InsertChild and
// Remove, which update both trees within a single call. Accessors assume the
// trees agree and panic if they do not.
type Arena struct {
	widgets *treearena.TreeArena[Widget]
	states  *treearena.TreeArena[State]
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{
		widgets: treearena.New[Widget](),
		states:  treearena.New[State](),
	}
}

// Len returns the number of widgets in the arena.
func (a *Arena) Len() int {
	return a.widgets.Len()
}

// Has reports whether id is present in the widget tree.
func (a *Arena) Has(id ID) bool {
	_, ok := a.widgets.Find(id.ToRaw())
	return ok
}

// ParentOf returns the parent of id, or false if id is a root.
// It panics if id is not in the arena.
func (a *Arena) ParentOf(id ID) (ID, bool) {
	ref, ok := a.widgets.Find(id.ToRaw())
	if !ok {
		errors.Invariant("parent_of", id.ToRaw(), "widget not found in arena")
	}
	parent, ok := ref.ParentID()
	if !ok {
		return 0, false
	}
	return IDFromRaw(parent), true
}

// GetPair returns read-only views of the widget and its state.
func (a *Arena) GetPair(id ID) (treearena.Ref[Widget], treearena.Ref[State]) {
	w, ok := a.widgets.Find(id.ToRaw())
	if !ok {
		errors.Invariant("get_pair", id.ToRaw(), "widget not in widget tree")
	}
	s, ok := a.states.Find(id.ToRaw())
	if !ok {
		errors.Invariant("get_pair", id.ToRaw(), "widget state not in widget tree")
	}
	return w, s
}

// GetPairMut returns mutable views of the widget and its state. The two views
// point into different trees and may be written independently.
func (a *Arena) GetPairMut(id ID) (treearena.Mut[Widget], treearena.Mut[State]) {
	w, ok := a.widgets.FindMut(id.ToRaw())
	if !ok {
		errors.Invariant("get_pair_mut", id.ToRaw(), "widget not in widget tree")
	}
	s, ok := a.states.FindMut(id.ToRaw())
	if !ok {
		errors.Invariant("get_pair_mut", id.ToRaw(), "widget state not in widget tree")
	}
	return w, s
}

// GetWidget returns a read-only view of the widget without touching the state tree.
func (a *Arena) GetWidget(id ID) treearena.Ref[Widget] {
	w, ok := a.widgets.Find(id.ToRaw())
	if !ok {
		errors.Invariant("get_widget", id.ToRaw(), "widget not in widget tree")
	}
	return w
}

// GetWidgetMut returns a mutable view of the widget.
func (a *Arena) GetWidgetMut(id ID) treearena.Mut[Widget] {
	w, ok := a.widgets.FindMut(id.ToRaw())
	if !ok {
		errors.Invariant("get_widget_mut", id.ToRaw(), "widget not in widget tree")
	}
	return w
}

// GetState returns a read-only view of the state without touching the widget tree.
func (a *Arena) GetState(id ID) treearena.Ref[State] {
	s, ok := a.states.Find(id.ToRaw())
	if !ok {
		errors.Invariant("get_state", id.ToRaw(), "widget state not in widget tree")
	}
	return s
}

// GetStateMut returns a mutable view of the state.
func (a *Arena) GetStateMut(id ID) treearena.Mut[State] {
	s, ok := a.states.FindMut(id.ToRaw())
	if !ok {
		errors.Invariant("get_state_mut", id.ToRaw(), "widget state not in widget tree")
	}
	return s
}

// TryGetWidgetRef returns a combined read-only view of the widget, its state
// and both children handles. It returns false if id is not in the arena.
func (a *Arena) TryGetWidgetRef(id ID) (WidgetRef, bool) {
	s, ok := a.states.Find(id.ToRaw())
	if !ok {
		return WidgetRef{}, false
	}
	w, ok := a.widgets.Find(id.ToRaw())
	if !ok {
		errors.Invariant("try_get_widget_ref", id.ToRaw(), "found state but not widget")
	}
	return newWidgetRef(w, s), true
}

// InsertRoot adds w as a new top-level node with a fresh state.
func (a *Arena) InsertRoot(id ID, w Widget) {
	insertPair("insert_root", a.widgets.RootsMut(), a.states.RootsMut(), id, w)
}

// InsertChild adds w as the last child of parent with a fresh state.
// It panics if parent is missing or id is already present.
func (a *Arena) InsertChild(parent, id ID, w Widget) {
	pw, inWidgets := a.widgets.FindMut(parent.ToRaw())
	ps, inStates := a.states.FindMut(parent.ToRaw())
	switch {
	case !inWidgets && !inStates:
		errors.Invariant("insert_child", parent.ToRaw(), "parent not in widget tree")
	case !inWidgets:
		errors.Invariant("insert_child", parent.ToRaw(), "parent state not in widget tree")
	case !inStates:
		errors.Invariant("insert_child", parent.ToRaw(), "parent widget has no state")
	}
	insertPair("insert_child", pw.Children, ps.Children, id, w)
}

// Remove deletes id and its subtree from both trees and returns the widget.
// It returns false if id is in neither tree and panics if it is in only one.
func (a *Arena) Remove(id ID) (Widget, bool) {
	wRef, inWidgets := a.widgets.Find(id.ToRaw())
	sRef, inStates := a.states.Find(id.ToRaw())
	switch {
	case !inWidgets && !inStates:
		return nil, false
	case !inWidgets:
		errors.Invariant("remove", id.ToRaw(), "widget state present without widget")
	case !inStates:
		errors.Invariant("remove", id.ToRaw(), "widget present without widget state")
	}

	wParent, wHas := wRef.ParentID()
	sParent, sHas := sRef.ParentID()
	if wHas != sHas || wParent != sParent {
		errors.Invariant("remove", id.ToRaw(), "widget and state trees disagree on parent")
	}

	wSiblings, sSiblings := a.widgets.RootsMut(), a.states.RootsMut()
	if wHas {
		pw, _ := a.widgets.FindMut(wParent)
		ps, _ := a.states.FindMut(sParent)
		wSiblings, sSiblings = pw.Children, ps.Children
	}
	sSiblings.Remove(id.ToRaw())
	w, _ := wSiblings.Remove(id.ToRaw())
	return w, true
}

// RootIDs returns the IDs of the top-level nodes.
func (a *Arena) RootIDs() []ID {
	raw := a.widgets.Roots().IDs()
	ids := make([]ID, len(raw))
	for i, r := range raw {
		ids[i] = IDFromRaw(r)
	}
	return ids
}

// Verify checks that the widget and state trees have the same shape.
// It returns an error describing the first mismatch found.
func (a *Arena) Verify() error {
	if a.widgets.Len() != a.states.Len() {
		return fmt.Errorf("widget tree has %d nodes, state tree has %d", a.widgets.Len(), a.states.Len())
	}
	return verifyLevel(a.widgets.Roots(), a.states.Roots(), "roots")
}

func verifyLevel(widgets treearena.ChildrenRef[Widget], states treearena.ChildrenRef[State], where string) error {
	wIDs, sIDs := widgets.IDs(), states.IDs()
	if len(wIDs) != len(sIDs) {
		return fmt.Errorf("%s: widget tree has %d children, state tree has %d", where, len(wIDs), len(sIDs))
	}
	for i := range wIDs {
		if wIDs[i] != sIDs[i] {
			return fmt.Errorf("%s: child %d is %s in widget tree but %s in state tree",
				where, i, IDFromRaw(wIDs[i]), IDFromRaw(sIDs[i]))
		}
		w, _ := widgets.Find(wIDs[i])
		s, _ := states.Find(sIDs[i])
		if s.Item.ID != IDFromRaw(wIDs[i]) {
			return fmt.Errorf("%s: state stored under %s carries id %s", where, IDFromRaw(wIDs[i]), s.Item.ID)
		}
		if err := verifyLevel(w.Children, s.Children, IDFromRaw(wIDs[i]).String()); err != nil {
			return err
		}
	}
	return nil
}

// insertPair inserts a widget and its fresh state under the given pair of
// handles. The handles must belong to the same node of each tree.
func insertPair(op string, widgets treearena.ChildrenMut[Widget], states treearena.ChildrenMut[State], id ID, w Widget) {
	if id.IsZero() {
		errors.Invariant(op, 0, "zero widget id")
	}
	if widgets.AsRef().IsZero() || states.AsRef().IsZero() {
		errors.Invariant(op, id.ToRaw(), "missing children handle")
	}
	if widgets.AsRef().InArena(id.ToRaw()) {
		errors.Invariant(op, id.ToRaw(), "widget already in widget tree")
	}
	if states.AsRef().InArena(id.ToRaw()) {
		errors.Invariant(op, id.ToRaw(), "widget state already in widget tree")
	}
	states.Insert(id.ToRaw(), NewState(id, w.TraceSpan()))
	widgets.Insert(id.ToRaw(), w)
}
