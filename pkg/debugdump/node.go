// Package debugdump renders a mounted widget tree for humans and tools.
//
// A dump is captured once from a widget.WidgetRef into a plain Node tree and
// can then be printed as an indented, optionally colored tree or encoded as
// YAML or JSON.
package debugdump

import (
	"fmt"
	"math"

	"github.com/go-drift/arbor/pkg/semantics"
	"github.com/go-drift/arbor/pkg/widget"
)

// Node is one widget in a dump.
type Node struct {
	ID       string     `yaml:"id" json:"id"`
	Type     string     `yaml:"type" json:"type"`
	Role     string     `yaml:"role" json:"role"`
	Label    string     `yaml:"label,omitempty" json:"label,omitempty"`
	Size     [2]float64 `yaml:"size,flow" json:"size"`
	Offset   [2]float64 `yaml:"offset,flow" json:"offset"`
	Flags    []string   `yaml:"flags,flow,omitempty" json:"flags,omitempty"`
	Children []*Node    `yaml:"children,omitempty" json:"children,omitempty"`
}

// Options controls Capture.
type Options struct {
	// StableIDs replaces widget IDs with per-type counters such as
	// "Label#0", so that dumps of equal trees compare equal.
	StableIDs bool
	// Semantics, when set, supplies accessible labels by widget ID.
	Semantics *semantics.Node
}

// Capture walks r's subtree and returns its dump.
func Capture(r widget.WidgetRef, opts Options) *Node {
	c := &capturer{opts: opts}
	return c.capture(r)
}

type capturer struct {
	opts   Options
	counts map[string]int
}

func (c *capturer) capture(r widget.WidgetRef) *Node {
	span := r.Widget.TraceSpan()
	st := r.State
	n := &Node{
		ID:     c.id(span, r.ID()),
		Type:   span,
		Role:   r.Widget.AccessibilityRole().String(),
		Size:   [2]float64{round2(st.Size.Width), round2(st.Size.Height)},
		Offset: [2]float64{round2(st.Origin.X), round2(st.Origin.Y)},
		Flags:  flags(&st),
	}
	if c.opts.Semantics != nil {
		if sn := c.opts.Semantics.Find(r.ID().ToRaw()); sn != nil {
			n.Label = sn.Label
		}
	}
	for _, child := range r.Children() {
		n.Children = append(n.Children, c.capture(child))
	}
	return n
}

func (c *capturer) id(span string, id widget.ID) string {
	if !c.opts.StableIDs {
		return id.String()
	}
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[span]
	c.counts[span] = n + 1
	return fmt.Sprintf("%s#%d", span, n)
}

func flags(st *widget.State) []string {
	var out []string
	add := func(set bool, name string) {
		if set {
			out = append(out, name)
		}
	}
	add(st.NeedsLayout, "needs-layout")
	add(st.NeedsPaint, "needs-paint")
	add(st.NeedsAccessibility, "needs-access")
	add(st.IsHot, "hot")
	add(st.HasFocus, "focus")
	add(st.IsDisabled, "disabled")
	return out
}

// Count returns the number of nodes in n's subtree, n included.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
