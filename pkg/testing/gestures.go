package testing

import (
	"fmt"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/semantics"
	"github.com/go-drift/arbor/pkg/widget"
)

// center returns the middle of r's window rect.
func center(r widget.WidgetRef) graphics.Offset {
	rect := r.State.WindowRect()
	return graphics.Offset{
		X: rect.Left + rect.Width()/2,
		Y: rect.Top + rect.Height()/2,
	}
}

func (t *WidgetTester) locate(op string, finder Finder) (widget.WidgetRef, error) {
	if t.tree == nil {
		return widget.WidgetRef{}, ErrNoWidget
	}
	result := t.Find(finder)
	if !result.Exists() {
		return widget.WidgetRef{}, fmt.Errorf("%s: finder matched no widgets: %s", op, finder.Description())
	}
	return result.First(), nil
}

// Tap simulates a press and release at the center of the first widget
// matched by finder.
func (t *WidgetTester) Tap(finder Finder) error {
	r, err := t.locate("Tap", finder)
	if err != nil {
		return err
	}
	return t.TapAt(center(r))
}

// TapAt simulates a press and release at the given window position.
func (t *WidgetTester) TapAt(pos graphics.Offset) error {
	if err := t.SendPointer(widget.PointerEvent{Kind: widget.PointerMove, Position: pos}); err != nil {
		return err
	}
	if err := t.SendPointer(widget.PointerEvent{Kind: widget.PointerDown, Position: pos}); err != nil {
		return err
	}
	return t.SendPointer(widget.PointerEvent{Kind: widget.PointerUp, Position: pos})
}

// Hover moves the pointer to the center of the first widget matched by finder.
func (t *WidgetTester) Hover(finder Finder) error {
	r, err := t.locate("Hover", finder)
	if err != nil {
		return err
	}
	return t.SendPointer(widget.PointerEvent{Kind: widget.PointerMove, Position: center(r)})
}

// Leave moves the pointer out of the window.
func (t *WidgetTester) Leave() error {
	return t.SendPointer(widget.PointerEvent{Kind: widget.PointerLeave})
}

// SendPointer dispatches ev and pumps a frame.
func (t *WidgetTester) SendPointer(ev widget.PointerEvent) error {
	return t.dispatch("arbortest.SendPointer", func(tree *widget.Tree) {
		tree.DispatchPointer(ev)
	})
}

// EnterText delivers text to the focused widget and pumps a frame.
func (t *WidgetTester) EnterText(text string) error {
	return t.dispatch("arbortest.EnterText", func(tree *widget.Tree) {
		tree.DispatchText(widget.TextEvent{Text: text})
	})
}

// FocusNext moves keyboard focus along the focus chain and pumps a frame.
func (t *WidgetTester) FocusNext() error {
	return t.dispatch("arbortest.FocusNext", func(tree *widget.Tree) {
		tree.FocusNext()
	})
}

// Activate performs an accessibility action on the first widget matched by
// finder, the way a screen reader would.
func (t *WidgetTester) Activate(finder Finder, action semantics.Action) error {
	r, err := t.locate("Activate", finder)
	if err != nil {
		return err
	}
	id := r.ID()
	return t.dispatch("arbortest.Activate", func(tree *widget.Tree) {
		tree.DispatchAccess(widget.AccessEvent{Target: id, Action: action})
	})
}

func (t *WidgetTester) dispatch(op string, fn func(*widget.Tree)) error {
	if t.tree == nil {
		return ErrNoWidget
	}
	if err := t.tree.Guard(op, fn); err != nil {
		return err
	}
	return t.Pump()
}
