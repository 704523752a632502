package widgets

import (
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/semantics"
	"github.com/go-drift/arbor/pkg/widget"
)

// Label displays a block of text. Lines are separated by '\n'.
//
// The label measures itself with the tree's text measurer, so its size is the
// text extent clamped to the incoming constraints.
type Label struct {
	Text string
	// Color is the text color. Defaults to black if zero.
	Color graphics.Color

	ascent float64
}

// NewLabel returns a label showing text.
func NewLabel(text string) *Label {
	return &Label{Text: text}
}

// SetText replaces the text and schedules a new layout.
// Call it from inside widget.Tree.Edit.
func (l *Label) SetText(ctx *widget.MutateCtx, text string) {
	if l.Text == text {
		return
	}
	l.Text = text
	ctx.RequestLayout()
}

func (l *Label) OnPointerEvent(ctx *widget.EventCtx, event widget.PointerEvent)     {}
func (l *Label) OnTextEvent(ctx *widget.EventCtx, event widget.TextEvent)           {}
func (l *Label) OnAccessEvent(ctx *widget.EventCtx, event widget.AccessEvent)       {}
func (l *Label) OnStatusChange(ctx *widget.LifeCycleCtx, event widget.StatusChange) {}
func (l *Label) Lifecycle(ctx *widget.LifeCycleCtx, event widget.LifeCycle)         {}

func (l *Label) Layout(ctx *widget.LayoutCtx, bc layout.BoxConstraints) graphics.Size {
	m := ctx.TextMeasurer().Measure(l.Text)
	l.ascent = m.Ascent
	return bc.Constrain(m.Size)
}

func (l *Label) Paint(ctx *widget.PaintCtx, scene *graphics.Scene) {
	color := l.Color
	if color == graphics.ColorTransparent {
		color = graphics.ColorBlack
	}
	scene.DrawText(l.Text, graphics.Offset{Y: l.ascent}, color)
}

func (l *Label) AccessibilityRole() semantics.Role {
	return semantics.RoleLabel
}

func (l *Label) Accessibility(ctx *widget.AccessCtx) {
	ctx.SetLabel(l.Text)
}

func (l *Label) ChildrenIDs() []widget.ID { return nil }

func (l *Label) TraceSpan() string { return "Label" }
