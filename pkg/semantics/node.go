package semantics

import "github.com/go-drift/arbor/pkg/graphics"

// Action identifies an accessibility action an assistive technology can request.
type Action int

const (
	ActionNone Action = iota
	ActionClick
	ActionFocus
	ActionScrollIntoView
)

func (a Action) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionFocus:
		return "focus"
	case ActionScrollIntoView:
		return "scroll_into_view"
	default:
		return "none"
	}
}

// Node is one entry in the accessibility tree.
type Node struct {
	// ID is the raw identifier of the widget that produced this node.
	ID uint64

	Role  Role
	Label string

	// Rect is the node's bounds in window coordinates.
	Rect graphics.Rect

	Actions  []Action
	Disabled bool

	Children []*Node
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Find returns the node with the given id, or nil.
func (n *Node) Find(id uint64) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if found != nil {
			return false
		}
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}
