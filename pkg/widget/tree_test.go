package widget

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/semantics"
	"github.com/google/go-cmp/cmp"
)

var viewport = layout.Loose(graphics.Size{Width: 200, Height: 200})

type stackFixture struct {
	tree   *Tree
	root   *RootWidget[*testStack]
	stack  *testStack
	leaves []*testLeaf
}

func newStackFixture(t *testing.T) stackFixture {
	t.Helper()
	leaves := []*testLeaf{
		{size: graphics.Size{Width: 50, Height: 10}, label: "first"},
		{size: graphics.Size{Width: 80, Height: 20}, label: "second"},
		{size: graphics.Size{Width: 30, Height: 30}, label: "third"},
	}
	stack := newTestStack(leaves[0], leaves[1], leaves[2])
	stack.spacing = 5
	root := NewRootWidget(stack)
	tree := NewTree(root)
	tree.Layout(viewport)
	return stackFixture{tree: tree, root: root, stack: stack, leaves: leaves}
}

func (f stackFixture) leafID(i int) ID {
	return f.stack.children[i].ID()
}

func TestTree_MountsEveryPod(t *testing.T) {
	f := newStackFixture(t)
	a := f.tree.Arena()

	if a.Len() != 5 {
		t.Errorf("Len = %d, want 5", a.Len())
	}
	if err := a.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	for i := range f.stack.children {
		if !f.stack.children[i].IsInserted() {
			t.Errorf("pod %d was not inserted", i)
		}
		parent, ok := a.ParentOf(f.leafID(i))
		if !ok || parent != f.root.Child().ID() {
			t.Errorf("ParentOf(leaf %d) = (%s, %v)", i, parent, ok)
		}
		if a.GetState(f.leafID(i)).Item.IsNew {
			t.Errorf("leaf %d still marked new after WidgetAdded", i)
		}
	}

	var spans []string
	f.tree.Root().Walk(func(r WidgetRef) bool {
		spans = append(spans, r.Widget.TraceSpan())
		return true
	})
	want := []string{"RootWidget", "testStack", "testLeaf", "testLeaf", "testLeaf"}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_LayoutPlacesChildren(t *testing.T) {
	f := newStackFixture(t)
	a := f.tree.Arena()

	wantY := []float64{0, 15, 40}
	for i, y := range wantY {
		st := a.GetState(f.leafID(i)).Item
		if st.Origin != (graphics.Offset{Y: y}) {
			t.Errorf("leaf %d origin = %v, want (0, %g)", i, st.Origin, y)
		}
		if st.WindowOrigin != (graphics.Offset{Y: y}) {
			t.Errorf("leaf %d window origin = %v, want (0, %g)", i, st.WindowOrigin, y)
		}
		if st.NeedsLayout {
			t.Errorf("leaf %d still needs layout", i)
		}
	}
	rootState := a.GetState(f.tree.RootID()).Item
	if rootState.Size != (graphics.Size{Width: 80, Height: 70}) {
		t.Errorf("root size = %v, want 80x70", rootState.Size)
	}
}

func TestTree_PaintTranslatesPods(t *testing.T) {
	f := newStackFixture(t)
	scene := f.tree.Paint()

	var offsets []graphics.Offset
	for _, op := range scene.Ops() {
		if op.Kind == graphics.OpPushTranslate {
			offsets = append(offsets, op.Offset)
		}
	}
	want := []graphics.Offset{{}, {}, {Y: 15}, {Y: 40}}
	if diff := cmp.Diff(want, offsets); diff != "" {
		t.Errorf("translate offsets mismatch (-want +got):\n%s", diff)
	}
	if scene.Depth() != 0 {
		t.Errorf("unbalanced scene, depth %d", scene.Depth())
	}
	if f.tree.Arena().GetState(f.leafID(0)).Item.NeedsPaint {
		t.Error("expected paint to clear NeedsPaint")
	}
}

func TestTree_AccessibilityTree(t *testing.T) {
	f := newStackFixture(t)
	node := f.tree.Accessibility()

	if node.Count() != 5 {
		t.Errorf("node count = %d, want 5", node.Count())
	}
	second := node.Find(f.leafID(1).ToRaw())
	if second == nil {
		t.Fatal("expected node for second leaf")
	}
	if second.Label != "second" || second.Rect != graphics.RectFromLTWH(0, 15, 80, 20) {
		t.Errorf("second leaf node = %q %v", second.Label, second.Rect)
	}
}

func TestTree_HitTest(t *testing.T) {
	f := newStackFixture(t)

	tests := []struct {
		name string
		pos  graphics.Offset
		want ID
		ok   bool
	}{
		{"first leaf", graphics.Offset{X: 10, Y: 5}, f.leafID(0), true},
		{"gap hits stack", graphics.Offset{X: 10, Y: 12}, f.root.Child().ID(), true},
		{"third leaf", graphics.Offset{X: 1, Y: 41}, f.leafID(2), true},
		{"outside", graphics.Offset{X: 500, Y: 500}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.tree.HitTest(tt.pos)
			if got != tt.want || ok != tt.ok {
				t.Errorf("HitTest(%v) = (%s, %v), want (%s, %v)", tt.pos, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTree_DispatchPointerBubbles(t *testing.T) {
	f := newStackFixture(t)
	down := PointerEvent{Kind: PointerDown, Position: graphics.Offset{X: 10, Y: 20}}

	if f.tree.DispatchPointer(down) {
		t.Error("expected unhandled event")
	}
	if diff := cmp.Diff([]PointerKind{PointerDown}, f.leaves[1].pointers); diff != "" {
		t.Errorf("leaf pointers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]PointerKind{PointerDown}, f.stack.pointers); diff != "" {
		t.Errorf("expected event to bubble to the stack (-want +got):\n%s", diff)
	}

	f.leaves[1].handle = true
	if !f.tree.DispatchPointer(down) {
		t.Error("expected handled event")
	}
	if len(f.stack.pointers) != 1 {
		t.Errorf("handled event still reached the stack: %v", f.stack.pointers)
	}
}

func TestTree_HotStatus(t *testing.T) {
	f := newStackFixture(t)
	a := f.tree.Arena()

	f.tree.DispatchPointer(PointerEvent{Kind: PointerMove, Position: graphics.Offset{X: 1, Y: 1}})
	if !a.GetState(f.leafID(0)).Item.IsHot || !a.GetState(f.tree.RootID()).Item.IsHot {
		t.Error("expected leaf and its ancestors to be hot")
	}
	if a.GetState(f.leafID(1)).Item.IsHot {
		t.Error("expected sibling not to be hot")
	}

	f.tree.Paint()
	f.tree.DispatchPointer(PointerEvent{Kind: PointerLeave})
	want := []StatusChange{{Kind: HotChanged, Value: true}, {Kind: HotChanged, Value: false}}
	if diff := cmp.Diff(want, f.leaves[0].statuses); diff != "" {
		t.Errorf("status changes mismatch (-want +got):\n%s", diff)
	}
	if a.GetState(f.tree.RootID()).Item.IsHot {
		t.Error("expected root to cool down after leave")
	}
	if !a.GetState(f.tree.RootID()).Item.NeedsPaint {
		t.Error("expected RequestPaint in OnStatusChange to reach the root")
	}
}

func TestTree_FocusAndText(t *testing.T) {
	f := newStackFixture(t)
	f.leaves[0].focusable = true
	f.leaves[2].focusable = true

	if f.tree.DispatchText(TextEvent{Text: "lost"}) {
		t.Error("expected text without focus to be dropped")
	}
	if got := f.tree.FocusNext(); got != f.leafID(0) {
		t.Fatalf("FocusNext = %s, want %s", got, f.leafID(0))
	}
	if got := f.tree.FocusNext(); got != f.leafID(2) {
		t.Fatalf("FocusNext = %s, want %s", got, f.leafID(2))
	}
	if !f.tree.DispatchText(TextEvent{Text: "hi"}) {
		t.Error("expected focused widget to handle text")
	}
	if diff := cmp.Diff([]string{"hi"}, f.leaves[2].texts); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}
	if f.tree.Arena().GetState(f.leafID(0)).Item.HasFocus {
		t.Error("expected previous holder to lose focus")
	}

	// Clicking a focusable widget moves focus to it.
	f.tree.DispatchPointer(PointerEvent{Kind: PointerDown, Position: graphics.Offset{X: 1, Y: 1}})
	if f.tree.Focused() != f.leafID(0) {
		t.Errorf("Focused = %s, want %s", f.tree.Focused(), f.leafID(0))
	}
}

func TestTree_DispatchAccess(t *testing.T) {
	f := newStackFixture(t)
	target := f.leafID(1)

	if !f.tree.DispatchAccess(AccessEvent{Target: target, Action: semantics.ActionClick}) {
		t.Error("expected access event to be handled")
	}
	if diff := cmp.Diff([]semantics.Action{semantics.ActionClick}, f.leaves[1].access); diff != "" {
		t.Errorf("access actions mismatch (-want +got):\n%s", diff)
	}

	f.tree.Edit(f.root.Child().ID(), func(ctx *MutateCtx) {
		stack := Downcast[*testStack](ctx)
		ctx.RemoveChild(&stack.children[1])
		stack.children = append(stack.children[:1], stack.children[2:]...)
	})
	if f.tree.DispatchAccess(AccessEvent{Target: target, Action: semantics.ActionClick}) {
		t.Error("expected stale target to be dropped")
	}
}

func TestTree_EditAddsAndRemovesChildren(t *testing.T) {
	f := newStackFixture(t)
	stackID := f.root.Child().ID()
	removed := f.leafID(0)
	added := &testLeaf{size: graphics.Size{Width: 5, Height: 5}, label: "added"}
	survivors := f.leaves[1:]
	var before [][]LifeCycleKind
	for _, l := range survivors {
		before = append(before, append([]LifeCycleKind(nil), l.lifecycles...))
	}

	f.tree.Edit(stackID, func(ctx *MutateCtx) {
		stack := Downcast[*testStack](ctx)
		ctx.RemoveChild(&stack.children[0])
		stack.children = append(stack.children[1:], NewPod[Widget](added))
	})

	a := f.tree.Arena()
	if a.Has(removed) {
		t.Error("expected removed child to be gone")
	}
	if _, ok := a.TryGetWidgetRef(removed); ok {
		t.Error("expected stale id to be absent")
	}
	if err := a.Verify(); err != nil {
		t.Fatalf("Verify after edit: %v", err)
	}
	newID := f.stack.children[2].ID()
	if !a.Has(newID) {
		t.Fatal("expected added child to be inserted")
	}
	if diff := cmp.Diff([]LifeCycleKind{WidgetAdded}, added.lifecycles); diff != "" {
		t.Errorf("added lifecycle mismatch (-want +got):\n%s", diff)
	}
	for i, l := range survivors {
		want := append(before[i], RouteWidgetAdded)
		if diff := cmp.Diff(want, l.lifecycles); diff != "" {
			t.Errorf("surviving leaf %d lifecycle mismatch (-want +got):\n%s", i, diff)
		}
	}
	if !a.GetState(f.tree.RootID()).Item.NeedsLayout {
		t.Error("expected the edit to schedule layout up to the root")
	}

	f.tree.Layout(viewport)
	if got := a.GetState(newID).Item.Origin; got != (graphics.Offset{Y: 60}) {
		t.Errorf("added child origin = %v, want (0, 60)", got)
	}
}

func TestTree_EditChildAndDowncastMismatch(t *testing.T) {
	f := newStackFixture(t)

	f.tree.Edit(f.root.Child().ID(), func(ctx *MutateCtx) {
		leafCtx := ctx.Child(&f.stack.children[2])
		leaf := Downcast[*testLeaf](leafCtx)
		leaf.size = graphics.Size{Width: 60, Height: 60}
		leafCtx.RequestLayout()
	})
	if !f.tree.Arena().GetState(f.leafID(2)).Item.NeedsLayout {
		t.Error("expected RequestLayout through a child context to reach the child")
	}
	if !f.tree.Arena().GetState(f.tree.RootID()).Item.NeedsLayout {
		t.Error("expected the child's pending layout to be merged up to the root")
	}

	expectInvariant(t, "downcast", f.tree.RootID(), func() {
		f.tree.Edit(f.tree.RootID(), func(ctx *MutateCtx) {
			Downcast[*testLeaf](ctx)
		})
	})
}

// unplaced lays out its child but forgets to place it.
type unplaced struct {
	testStack
}

func (u *unplaced) Layout(ctx *LayoutCtx, bc layout.BoxConstraints) graphics.Size {
	return u.children[0].Layout(ctx, bc)
}

func TestTree_LayoutWithoutPlacingPanics(t *testing.T) {
	w := &unplaced{testStack: *newTestStack(&testLeaf{})}
	tree := NewTree(NewRootWidget(w))
	expectInvariant(t, "layout", w.children[0].ID(), func() {
		tree.Layout(viewport)
	})
}

func TestTree_PodUsedBeforeInsertPanics(t *testing.T) {
	f := newStackFixture(t)
	pending := NewPod[Widget](&testLeaf{})
	f.tree.Edit(f.tree.RootID(), func(ctx *MutateCtx) {
		lctx := &LayoutCtx{ctx.ctxBase}
		expectInvariant(t, "layout", pending.ID(), func() {
			pending.Layout(lctx, viewport)
		})
	})
}

func TestTree_GuardConvertsInvariant(t *testing.T) {
	f := newStackFixture(t)
	missing := Reserved(500)

	err := f.tree.Guard("test.lookup", func(tr *Tree) {
		tr.Arena().GetPair(missing)
	})
	var aerr *errors.ArborError
	if !stderrors.As(err, &aerr) {
		t.Fatalf("expected *errors.ArborError, got %T", err)
	}
	if aerr.Kind != errors.KindInvariant {
		t.Errorf("Kind = %v, want invariant", aerr.Kind)
	}
	if !strings.Contains(aerr.StackTrace, "(*Arena).GetPair") {
		t.Errorf("expected the stack of the failed lookup, got:\n%s", aerr.StackTrace)
	}
	if aerr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	var inv *errors.InvariantError
	if !stderrors.As(err, &inv) || inv.ID != missing.ToRaw() {
		t.Errorf("expected InvariantError for %s in chain, got %v", missing, err)
	}

	if err := f.tree.Guard("test.ok", func(*Tree) {}); err != nil {
		t.Errorf("Guard(ok) = %v", err)
	}
}

func TestTree_WithRootIDAndMeasurer(t *testing.T) {
	m := graphics.FaceMeasurer{}
	var seen graphics.TextMeasurer
	probe := &measureProbe{seen: &seen}
	tree := NewTree(NewRootWidget(probe), WithRootID(Reserved(1)), WithTextMeasurer(m))
	tree.Layout(viewport)

	if tree.RootID() != Reserved(1) {
		t.Errorf("RootID = %s, want %s", tree.RootID(), Reserved(1))
	}
	if seen != graphics.TextMeasurer(m) {
		t.Errorf("measurer = %#v, want %#v", seen, m)
	}
}

type measureProbe struct {
	testLeaf
	seen *graphics.TextMeasurer
}

func (p *measureProbe) Layout(ctx *LayoutCtx, bc layout.BoxConstraints) graphics.Size {
	*p.seen = ctx.TextMeasurer()
	return graphics.Size{}
}

func TestTree_RepeatedEditsAnnounceWidgetOnce(t *testing.T) {
	leaf := &testLeaf{size: graphics.Size{Width: 10, Height: 10}}
	stack := newTestStack(leaf)
	tree := NewTree(NewRootWidget(stack))
	stackID := tree.Root().Children()[0].ID()

	for i := 0; i < 3; i++ {
		tree.Edit(stackID, func(*MutateCtx) {})
	}

	want := []LifeCycleKind{WidgetAdded, RouteWidgetAdded, RouteWidgetAdded, RouteWidgetAdded}
	if diff := cmp.Diff(want, leaf.lifecycles); diff != "" {
		t.Errorf("lifecycles after no-op edits (-want +got):\n%s", diff)
	}
	if tree.Arena().GetState(stack.children[0].ID()).Item.IsNew {
		t.Error("expected leaf to stay announced")
	}
}

func TestTree_LifecycleWidgetAddedOnMountedRootIsRouted(t *testing.T) {
	leaf := &testLeaf{size: graphics.Size{Width: 10, Height: 10}}
	tree := NewTree(NewRootWidget(leaf))

	tree.Lifecycle(LifeCycle{Kind: WidgetAdded})

	want := []LifeCycleKind{WidgetAdded, RouteWidgetAdded}
	if diff := cmp.Diff(want, leaf.lifecycles); diff != "" {
		t.Errorf("lifecycles (-want +got):\n%s", diff)
	}
}
