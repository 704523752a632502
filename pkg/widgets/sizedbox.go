package widgets

import (
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/semantics"
	"github.com/go-drift/arbor/pkg/widget"
)

// SizedBox is a childless box of a fixed size, constrained by its parent.
//
// It is mostly used as a spacer or placeholder:
//
//	// Vertical gap in a Column
//	SizedBox{Height: 24}
//
//	// Colored placeholder announced as an image
//	SizedBox{Width: 64, Height: 64, Color: graphics.RGB(200, 200, 200), Role: semantics.RoleImage, Label: "avatar"}
type SizedBox struct {
	Width  float64
	Height float64
	// Color fills the box when non-zero.
	Color graphics.Color
	// Role is reported to accessibility. Defaults to RoleGenericContainer.
	Role semantics.Role
	// Label is the accessible name.
	Label string
}

// VSpace returns a SizedBox of the given height, for use as a vertical gap.
func VSpace(height float64) *SizedBox {
	return &SizedBox{Height: height}
}

func (s *SizedBox) OnPointerEvent(ctx *widget.EventCtx, event widget.PointerEvent)     {}
func (s *SizedBox) OnTextEvent(ctx *widget.EventCtx, event widget.TextEvent)           {}
func (s *SizedBox) OnAccessEvent(ctx *widget.EventCtx, event widget.AccessEvent)       {}
func (s *SizedBox) OnStatusChange(ctx *widget.LifeCycleCtx, event widget.StatusChange) {}
func (s *SizedBox) Lifecycle(ctx *widget.LifeCycleCtx, event widget.LifeCycle)         {}

func (s *SizedBox) Layout(ctx *widget.LayoutCtx, bc layout.BoxConstraints) graphics.Size {
	return bc.Constrain(graphics.Size{Width: s.Width, Height: s.Height})
}

func (s *SizedBox) Paint(ctx *widget.PaintCtx, scene *graphics.Scene) {
	if s.Color == graphics.ColorTransparent {
		return
	}
	scene.DrawRect(graphics.RectFromOffsetSize(graphics.Origin, ctx.Size()), s.Color)
}

func (s *SizedBox) AccessibilityRole() semantics.Role {
	if s.Role == semantics.RoleUnknown {
		return semantics.RoleGenericContainer
	}
	return s.Role
}

func (s *SizedBox) Accessibility(ctx *widget.AccessCtx) {
	ctx.SetLabel(s.Label)
}

func (s *SizedBox) ChildrenIDs() []widget.ID { return nil }

func (s *SizedBox) TraceSpan() string { return "SizedBox" }
