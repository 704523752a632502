package testing

import (
	stderrors "errors"
	"fmt"
	"sync"
	"testing"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/layout"
	"github.com/go-drift/arbor/pkg/semantics"
	"github.com/go-drift/arbor/pkg/widget"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ErrNoWidget is returned by operations that need a mounted tree.
var ErrNoWidget = stderrors.New("no widget mounted")

// WidgetTester mounts a widget in a fresh tree and drives its passes
// without a real renderer. Paint output is kept as a recorded scene.
type WidgetTester struct {
	tree     *widget.Tree
	size     graphics.Size
	measurer graphics.TextMeasurer
	scene    *graphics.Scene
	access   *semantics.Node

	reported    *recordingHandler
	prevHandler errors.ErrorHandler
}

// NewWidgetTester creates a tester with the default surface size. Errors
// reported to the global handler are recorded instead of logged until
// Cleanup is called.
func NewWidgetTester() *WidgetTester {
	t := &WidgetTester{
		size:        graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		measurer:    graphics.DefaultMeasurer,
		reported:    &recordingHandler{},
		prevHandler: errors.DefaultHandler,
	}
	errors.SetHandler(t.reported)
	return t
}

// NewWidgetTesterWithT creates a tester that cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the global error handler.
func (t *WidgetTester) Cleanup() {
	errors.SetHandler(t.prevHandler)
}

// SetSize sets the logical surface size. The root is laid out with loose
// constraints of this size.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
}

// SetTextMeasurer replaces the measurer. Must be called before PumpWidget.
func (t *WidgetTester) SetTextMeasurer(m graphics.TextMeasurer) {
	t.measurer = m
}

// PumpWidget mounts w under a RootWidget in a new tree and runs one frame.
func (t *WidgetTester) PumpWidget(w widget.Widget) error {
	t.tree = nil
	var tree *widget.Tree
	if perr := errors.Catch("arbortest.PumpWidget", func() {
		tree = widget.NewTree(widget.NewRootWidget(w), widget.WithTextMeasurer(t.measurer))
	}); perr != nil {
		return perr
	}
	t.tree = tree
	return t.Pump()
}

// Pump runs layout, paint and the accessibility pass, then verifies the
// arena.
func (t *WidgetTester) Pump() error {
	if t.tree == nil {
		return ErrNoWidget
	}
	err := t.tree.Guard("arbortest.Pump", func(tree *widget.Tree) {
		tree.Layout(layout.Loose(t.size))
		t.scene = tree.Paint()
		t.access = tree.Accessibility()
	})
	if err != nil {
		return err
	}
	if err := t.tree.Arena().Verify(); err != nil {
		return fmt.Errorf("arbortest.Pump: %w", err)
	}
	return nil
}

// Tree returns the mounted tree, or nil.
func (t *WidgetTester) Tree() *widget.Tree {
	return t.tree
}

// Scene returns the scene recorded by the last pump.
func (t *WidgetTester) Scene() *graphics.Scene {
	return t.scene
}

// Semantics returns the accessibility tree built by the last pump.
func (t *WidgetTester) Semantics() *semantics.Node {
	return t.access
}

// Reported returns the errors and panics reported to the global handler
// since the tester was created.
func (t *WidgetTester) Reported() []error {
	return t.reported.all()
}

// Find evaluates a finder against the current tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.tree == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		refs:   finder.Evaluate(t.tree.Root()),
		finder: finder,
	}
}

// Edit runs fn with mutable access to the first widget matched by finder,
// then pumps a frame.
func (t *WidgetTester) Edit(finder Finder, fn func(ctx *widget.MutateCtx)) error {
	if t.tree == nil {
		return ErrNoWidget
	}
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Edit: finder matched no widgets: %s", finder.Description())
	}
	id := result.ID()
	if err := t.tree.Guard("arbortest.Edit", func(tree *widget.Tree) {
		tree.Edit(id, fn)
	}); err != nil {
		return err
	}
	return t.Pump()
}

// recordingHandler collects everything reported to the global error handler.
type recordingHandler struct {
	mu   sync.Mutex
	errs []error
}

func (h *recordingHandler) HandleError(err *errors.ArborError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *recordingHandler) all() []error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]error(nil), h.errs...)
}
