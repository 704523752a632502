package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/arbor/pkg/semantics"
	"github.com/go-drift/arbor/pkg/widget"
	"github.com/go-drift/arbor/pkg/widgets"
)

// Finder locates widgets in a mounted tree.
type Finder interface {
	// Evaluate returns all matching widgets under root, depth-first, parents
	// before children.
	Evaluate(root widget.WidgetRef) []widget.WidgetRef
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	refs   []widget.WidgetRef
	finder Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() widget.WidgetRef {
	if len(r.refs) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.describe()))
	}
	return r.refs[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) widget.WidgetRef {
	if index < 0 || index >= len(r.refs) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.refs), r.describe()))
	}
	return r.refs[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []widget.WidgetRef {
	return r.refs
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.refs)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.refs) > 0
}

// Widget returns the first matched widget. Panics if no matches.
func (r FinderResult) Widget() widget.Widget {
	return r.First().Widget
}

// ID returns the ID of the first match. Panics if no matches.
func (r FinderResult) ID() widget.ID {
	return r.First().ID()
}

// State returns a copy of the first match's state. Panics if no matches.
func (r FinderResult) State() widget.State {
	return r.First().State
}

func collectMatches(root widget.WidgetRef, match func(widget.WidgetRef) bool) []widget.WidgetRef {
	var out []widget.WidgetRef
	root.Walk(func(r widget.WidgetRef) bool {
		if match(r) {
			out = append(out, r)
		}
		return true
	})
	return out
}

// predicateFinder matches widgets satisfying a predicate.
type predicateFinder struct {
	fn   func(widget.WidgetRef) bool
	desc string
}

func (f *predicateFinder) Evaluate(root widget.WidgetRef) []widget.WidgetRef {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByType returns a finder that matches widgets of type T.
func ByType[T widget.Widget]() Finder {
	t := reflect.TypeFor[T]()
	return &predicateFinder{
		fn: func(r widget.WidgetRef) bool {
			return reflect.TypeOf(r.Widget) == t
		},
		desc: fmt.Sprintf("ByType(%s)", t),
	}
}

// ByID returns a finder that matches the widget with the given ID.
func ByID(id widget.ID) Finder {
	return &predicateFinder{
		fn:   func(r widget.WidgetRef) bool { return r.ID() == id },
		desc: fmt.Sprintf("ByID(%s)", id),
	}
}

// ByText returns a finder that matches [widgets.Label] with exact text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(r widget.WidgetRef) bool {
			l, ok := r.Widget.(*widgets.Label)
			return ok && l.Text == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches [widgets.Label] whose text
// contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(r widget.WidgetRef) bool {
			l, ok := r.Widget.(*widgets.Label)
			return ok && strings.Contains(l.Text, substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByRole returns a finder that matches widgets reporting role.
func ByRole(role semantics.Role) Finder {
	return &predicateFinder{
		fn:   func(r widget.WidgetRef) bool { return r.Widget.AccessibilityRole() == role },
		desc: fmt.Sprintf("ByRole(%s)", role),
	}
}

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(fn func(widget.WidgetRef) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds widgets matching 'matching' that are strict
// descendants of widgets matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root widget.WidgetRef) []widget.WidgetRef {
	var results []widget.WidgetRef
	seen := make(map[widget.ID]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range ancestor.Children() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match.ID()] {
					seen[match.ID()] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches widgets satisfying 'matching'
// that are descendants of widgets matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}
