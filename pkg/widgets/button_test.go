package widgets_test

import (
	"testing"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/semantics"
	arbortest "github.com/go-drift/arbor/pkg/testing"
	"github.com/go-drift/arbor/pkg/widget"
	"github.com/go-drift/arbor/pkg/widgets"
	"github.com/google/go-cmp/cmp"
)

func TestButton_LayoutAddsPadding(t *testing.T) {
	tests := []struct {
		name      string
		padding   float64
		wantSize  graphics.Size
		wantChild graphics.Offset
	}{
		{"default padding", 0, graphics.Size{Width: 30, Height: 29}, graphics.Offset{X: 8, Y: 8}},
		{"custom padding", 2, graphics.Size{Width: 18, Height: 17}, graphics.Offset{X: 2, Y: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := arbortest.NewWidgetTesterWithT(t)
			b := widgets.NewTextButton("Go", nil)
			b.Padding = tt.padding
			tester.PumpWidget(b)

			if got := tester.Find(arbortest.ByType[*widgets.Button]()).State().Size; got != tt.wantSize {
				t.Errorf("button size = %v, want %v", got, tt.wantSize)
			}
			if got := tester.Find(arbortest.ByText("Go")).State().Origin; got != tt.wantChild {
				t.Errorf("child origin = %v, want %v", got, tt.wantChild)
			}
		})
	}
}

func TestButton_TapClicks(t *testing.T) {
	tester := arbortest.NewWidgetTesterWithT(t)
	clicks := 0
	tester.PumpWidget(widgets.NewTextButton("Go", func() { clicks++ }))

	for i := 0; i < 2; i++ {
		if err := tester.Tap(arbortest.ByText("Go")); err != nil {
			t.Fatal(err)
		}
	}
	if clicks != 2 {
		t.Errorf("clicks = %d, want 2", clicks)
	}
	b := tester.Find(arbortest.ByType[*widgets.Button]()).Widget().(*widgets.Button)
	if b.IsPressed() {
		t.Error("expected the press to end on release")
	}
}

func TestButton_PressWithoutReleaseDoesNotClick(t *testing.T) {
	tester := arbortest.NewWidgetTesterWithT(t)
	clicks := 0
	tester.PumpWidget(widgets.NewTextButton("Go", func() { clicks++ }))

	tester.SendPointer(widget.PointerEvent{Kind: widget.PointerDown, Position: graphics.Offset{X: 2, Y: 2}})
	b := tester.Find(arbortest.ByType[*widgets.Button]()).Widget().(*widgets.Button)
	if !b.IsPressed() {
		t.Fatal("expected the button to be pressed")
	}
	if clicks != 0 {
		t.Errorf("clicks = %d before release", clicks)
	}
}

func TestButton_BackgroundFollowsStatus(t *testing.T) {
	tester := arbortest.NewWidgetTesterWithT(t)
	b := widgets.NewTextButton("Go", nil)
	b.Color = graphics.RGB(1, 1, 1)
	b.HotColor = graphics.RGB(2, 2, 2)
	tester.PumpWidget(b)

	background := func() graphics.Color {
		for _, op := range tester.Scene().Ops() {
			if op.Kind == graphics.OpDrawRect {
				return op.Color
			}
		}
		return graphics.ColorTransparent
	}
	if got := background(); got != b.Color {
		t.Errorf("idle background = %v, want %v", got, b.Color)
	}
	tester.Hover(arbortest.ByType[*widgets.Button]())
	if got := background(); got != b.HotColor {
		t.Errorf("hot background = %v, want %v", got, b.HotColor)
	}
	tester.Leave()
	if got := background(); got != b.Color {
		t.Errorf("background after leave = %v, want %v", got, b.Color)
	}
}

func TestButton_Accessibility(t *testing.T) {
	tester := arbortest.NewWidgetTesterWithT(t)
	clicks := 0
	tester.PumpWidget(widgets.NewTextButton("Save", func() { clicks++ }))

	id := tester.Find(arbortest.ByRole(semantics.RoleButton)).ID()
	node := tester.Semantics().Find(id.ToRaw())
	if node.Label != "Save" {
		t.Errorf("label = %q, want Save", node.Label)
	}
	want := []semantics.Action{semantics.ActionClick, semantics.ActionFocus}
	if diff := cmp.Diff(want, node.Actions); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}

	tester.Activate(arbortest.ByRole(semantics.RoleButton), semantics.ActionFocus)
	if tester.Tree().Focused() != id {
		t.Error("expected ActionFocus to focus the button")
	}
	tester.Activate(arbortest.ByRole(semantics.RoleButton), semantics.ActionClick)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestButton_DisabledIgnoresInput(t *testing.T) {
	tester := arbortest.NewWidgetTesterWithT(t)
	clicks := 0
	tester.PumpWidget(widgets.NewTextButton("Go", func() { clicks++ }))

	tester.Tree().Lifecycle(widget.LifeCycle{Kind: widget.DisabledChanged, Disabled: true})
	tester.Pump()

	tester.Tap(arbortest.ByText("Go"))
	tester.Activate(arbortest.ByText("Go"), semantics.ActionClick)
	if clicks != 0 {
		t.Errorf("disabled button clicked %d times", clicks)
	}
	id := tester.Find(arbortest.ByType[*widgets.Button]()).ID()
	node := tester.Semantics().Find(id.ToRaw())
	if !node.Disabled || len(node.Actions) != 0 {
		t.Errorf("disabled node = %+v, want disabled without actions", node)
	}
	if err := tester.FocusNext(); err != nil {
		t.Fatal(err)
	}
	if !tester.Tree().Focused().IsZero() {
		t.Error("expected a disabled button to stay out of the focus chain")
	}
}
