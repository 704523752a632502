package widget

import "github.com/go-drift/arbor/pkg/graphics"

// State is the per-node bookkeeping the passes maintain alongside each widget.
// It lives in its own tree so that a pass can hold a widget and its State
// mutably at the same time.
type State struct {
	ID        ID
	DebugName string

	// Size is the size reported by the widget's last layout.
	Size graphics.Size
	// Origin is the widget's position in its parent's coordinate space.
	Origin graphics.Offset
	// WindowOrigin is the widget's position in window coordinates.
	WindowOrigin graphics.Offset

	NeedsLayout        bool
	NeedsPaint         bool
	NeedsAccessibility bool

	// ChildrenChanged is set when a descendant was added or removed.
	ChildrenChanged bool

	IsNew      bool
	IsHot      bool
	HasFocus   bool
	IsDisabled bool

	placed bool
}

// NewState returns the state for a freshly created widget. Every pass is
// pending until it has run once.
func NewState(id ID, debugName string) State {
	return State{
		ID:                 id,
		DebugName:          debugName,
		NeedsLayout:        true,
		NeedsPaint:         true,
		NeedsAccessibility: true,
		IsNew:              true,
	}
}

// LayoutRect returns the widget's bounds in its parent's coordinate space.
func (s *State) LayoutRect() graphics.Rect {
	return graphics.RectFromOffsetSize(s.Origin, s.Size)
}

// WindowRect returns the widget's bounds in window coordinates.
func (s *State) WindowRect() graphics.Rect {
	return graphics.RectFromOffsetSize(s.WindowOrigin, s.Size)
}

// MergeUp folds a child's pending work into its parent.
func (s *State) MergeUp(child *State) {
	s.NeedsLayout = s.NeedsLayout || child.NeedsLayout
	s.NeedsPaint = s.NeedsPaint || child.NeedsPaint
	s.NeedsAccessibility = s.NeedsAccessibility || child.NeedsAccessibility
	s.ChildrenChanged = s.ChildrenChanged || child.ChildrenChanged
}
