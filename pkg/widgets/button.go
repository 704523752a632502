package widgets

import (
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/semantics"
	"github.com/go-drift/arbor/pkg/widget"
)

// Button wraps one child in a padded, clickable box.
//
// A click is a pointer press followed by a release while the pointer is still
// over the button, or an ActionClick from assistive technology. Disabled
// buttons ignore both.
//
// Example:
//
//	NewTextButton("Submit", handleSubmit)
//
//	// Any child widget
//	&Button{Child: widget.NewPod[widget.Widget](icon), Padding: 4, OnClick: onTap}
type Button struct {
	Child widget.Pod[widget.Widget]
	// OnClick is called on every click.
	OnClick func()
	// Padding is applied on all four sides. Defaults to 8 if zero.
	Padding float64
	// Name is the accessible name.
	Name string
	// Color, HotColor and PressedColor fill the background.
	Color        graphics.Color
	HotColor     graphics.Color
	PressedColor graphics.Color

	pressed bool
}

const defaultButtonPadding = 8

var (
	defaultButtonColor   = graphics.RGB(0xE0, 0xE0, 0xE0)
	defaultButtonHot     = graphics.RGB(0xD0, 0xD0, 0xD0)
	defaultButtonPressed = graphics.RGB(0xB0, 0xB0, 0xB0)
)

// NewButton returns a button around child.
func NewButton(child widget.Widget, onClick func()) *Button {
	return &Button{Child: widget.NewPod(child), OnClick: onClick}
}

// NewTextButton returns a button showing a Label with text. The text is also
// the button's accessible name.
func NewTextButton(text string, onClick func()) *Button {
	b := NewButton(NewLabel(text), onClick)
	b.Name = text
	return b
}

// IsPressed reports whether a press is in progress.
func (b *Button) IsPressed() bool {
	return b.pressed
}

func (b *Button) padding() float64 {
	if b.Padding == 0 {
		return defaultButtonPadding
	}
	return b.Padding
}

func (b *Button) click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) OnPointerEvent(ctx *widget.EventCtx, event widget.PointerEvent) {
	if ctx.IsDisabled() {
		return
	}
	switch event.Kind {
	case widget.PointerDown:
		b.pressed = true
		ctx.RequestFocus()
		ctx.RequestPaint()
		ctx.SetHandled()
	case widget.PointerUp:
		if b.pressed && ctx.IsHot() {
			b.click()
		}
		b.pressed = false
		ctx.RequestPaint()
		ctx.SetHandled()
	}
}

func (b *Button) OnTextEvent(ctx *widget.EventCtx, event widget.TextEvent) {
	if ctx.IsDisabled() || !isActivation(event.Text) {
		return
	}
	b.click()
	ctx.SetHandled()
}

// isActivation reports whether text activates a focused button.
func isActivation(text string) bool {
	return text == " " || text == "\n"
}

func (b *Button) OnAccessEvent(ctx *widget.EventCtx, event widget.AccessEvent) {
	if ctx.IsDisabled() {
		return
	}
	switch event.Action {
	case semantics.ActionClick:
		b.click()
		ctx.SetHandled()
	case semantics.ActionFocus:
		ctx.RequestFocus()
		ctx.SetHandled()
	}
}

func (b *Button) OnStatusChange(ctx *widget.LifeCycleCtx, event widget.StatusChange) {
	ctx.RequestPaint()
}

func (b *Button) Lifecycle(ctx *widget.LifeCycleCtx, event widget.LifeCycle) {
	switch event.Kind {
	case widget.BuildFocusChain:
		if !ctx.IsDisabled() {
			ctx.RegisterForFocus()
		}
	case widget.DisabledChanged:
		b.pressed = false
		ctx.RequestPaint()
	}
	b.Child.Lifecycle(ctx, event)
}

func (b *Button) Layout(ctx *widget.LayoutCtx, bc layout.BoxConstraints) graphics.Size {
	p := b.padding()
	size := b.Child.Layout(ctx, bc.Deflate(2*p, 2*p))
	ctx.PlaceChild(&b.Child, graphics.Offset{X: p, Y: p})
	return bc.Constrain(graphics.Size{Width: size.Width + 2*p, Height: size.Height + 2*p})
}

func (b *Button) Paint(ctx *widget.PaintCtx, scene *graphics.Scene) {
	scene.DrawRect(graphics.RectFromOffsetSize(graphics.Origin, ctx.Size()), b.background(ctx))
	b.Child.Paint(ctx, scene)
}

func (b *Button) background(ctx *widget.PaintCtx) graphics.Color {
	switch {
	case b.pressed:
		return pick(b.PressedColor, defaultButtonPressed)
	case ctx.IsHot():
		return pick(b.HotColor, defaultButtonHot)
	default:
		return pick(b.Color, defaultButtonColor)
	}
}

func pick(c, fallback graphics.Color) graphics.Color {
	if c == graphics.ColorTransparent {
		return fallback
	}
	return c
}

func (b *Button) AccessibilityRole() semantics.Role {
	return semantics.RoleButton
}

func (b *Button) Accessibility(ctx *widget.AccessCtx) {
	ctx.SetLabel(b.Name)
	if !ctx.IsDisabled() {
		ctx.AddAction(semantics.ActionClick)
		ctx.AddAction(semantics.ActionFocus)
	}
	b.Child.Accessibility(ctx)
}

func (b *Button) ChildrenIDs() []widget.ID {
	return []widget.ID{b.Child.ID()}
}

func (b *Button) TraceSpan() string { return "Button" }
