// Package treearena provides an ID-keyed forest.
//
// A TreeArena stores one value per node. Each node records its parent key and
// the ordered keys of its children. Lookups return a view of the node together
// with a children handle. The handle resolves keys only within that node's
// subtree, which lets a caller descend recursively while holding on to an
// ancestor. Keys are unique across the whole arena.
//
// A TreeArena is not safe for concurrent use.
package treearena

import "fmt"

type node[T any] struct {
	item      T
	parent    uint64
	hasParent bool
	children  []uint64
}

// TreeArena is a forest of values of type T keyed by raw uint64 identifiers.
type TreeArena[T any] struct {
	nodes map[uint64]*node[T]
	roots []uint64
}

// New creates an empty arena.
func New[T any]() *TreeArena[T] {
	return &TreeArena[T]{nodes: make(map[uint64]*node[T])}
}

// Len returns the number of nodes in the arena.
func (a *TreeArena[T]) Len() int {
	return len(a.nodes)
}

// Roots returns a read-only handle onto the top level of the forest.
// Its lookups cover the entire arena.
func (a *TreeArena[T]) Roots() ChildrenRef[T] {
	return ChildrenRef[T]{arena: a}
}

// RootsMut returns a mutable handle onto the top level of the forest.
func (a *TreeArena[T]) RootsMut() ChildrenMut[T] {
	return ChildrenMut[T]{ChildrenRef[T]{arena: a}}
}

// Find returns a read-only view of the node with the given key.
func (a *TreeArena[T]) Find(id uint64) (Ref[T], bool) {
	return a.Roots().Find(id)
}

// FindMut returns a mutable view of the node with the given key.
func (a *TreeArena[T]) FindMut(id uint64) (Mut[T], bool) {
	return a.RootsMut().FindMut(id)
}

// Ref is a read-only view of one node.
type Ref[T any] struct {
	// ID is the node's key.
	ID uint64
	// Item is the node's value.
	Item T
	// Children resolves keys within this node's subtree.
	Children ChildrenRef[T]

	parent    uint64
	hasParent bool
}

// ParentID returns the key of the node's parent, or false for a root.
func (r Ref[T]) ParentID() (uint64, bool) {
	return r.parent, r.hasParent
}

// Mut is a mutable view of one node. Writes through Item update the arena.
type Mut[T any] struct {
	// ID is the node's key.
	ID uint64
	// Item points at the value stored in the arena.
	Item *T
	// Children resolves and mutates keys within this node's subtree.
	Children ChildrenMut[T]

	parent    uint64
	hasParent bool
}

// ParentID returns the key of the node's parent, or false for a root.
func (m Mut[T]) ParentID() (uint64, bool) {
	return m.parent, m.hasParent
}

// AsRef returns a read-only view of the same node.
func (m Mut[T]) AsRef() Ref[T] {
	return Ref[T]{
		ID:        m.ID,
		Item:      *m.Item,
		Children:  m.Children.AsRef(),
		parent:    m.parent,
		hasParent: m.hasParent,
	}
}

// ChildrenRef is a read-only handle onto the children of one node, or onto the
// roots of the arena when obtained from Roots.
type ChildrenRef[T any] struct {
	arena    *TreeArena[T]
	owner    uint64
	hasOwner bool
}

// IsZero reports whether the handle is unset.
func (c ChildrenRef[T]) IsZero() bool {
	return c.arena == nil
}

// IDs returns the keys of the direct children, in order.
func (c ChildrenRef[T]) IDs() []uint64 {
	if c.arena == nil {
		return nil
	}
	var ids []uint64
	if !c.hasOwner {
		ids = c.arena.roots
	} else if n, ok := c.arena.nodes[c.owner]; ok {
		ids = n.children
	}
	out := make([]uint64, len(ids))
	copy(out, ids)
	return out
}

// Len returns the number of direct children.
func (c ChildrenRef[T]) Len() int {
	if c.arena == nil {
		return 0
	}
	if !c.hasOwner {
		return len(c.arena.roots)
	}
	if n, ok := c.arena.nodes[c.owner]; ok {
		return len(n.children)
	}
	return 0
}

// Has reports whether id is a descendant of the handle's owner.
func (c ChildrenRef[T]) Has(id uint64) bool {
	_, ok := c.lookup(id)
	return ok
}

// InArena reports whether id is present anywhere in the arena the handle
// belongs to, regardless of the handle's scope.
func (c ChildrenRef[T]) InArena(id uint64) bool {
	if c.arena == nil {
		return false
	}
	_, ok := c.arena.nodes[id]
	return ok
}

// Find returns a read-only view of a descendant of the handle's owner.
func (c ChildrenRef[T]) Find(id uint64) (Ref[T], bool) {
	n, ok := c.lookup(id)
	if !ok {
		return Ref[T]{}, false
	}
	return Ref[T]{
		ID:        id,
		Item:      n.item,
		Children:  ChildrenRef[T]{arena: c.arena, owner: id, hasOwner: true},
		parent:    n.parent,
		hasParent: n.hasParent,
	}, true
}

func (c ChildrenRef[T]) lookup(id uint64) (*node[T], bool) {
	if c.arena == nil {
		return nil, false
	}
	n, ok := c.arena.nodes[id]
	if !ok {
		return nil, false
	}
	if !c.hasOwner {
		return n, true
	}
	// Walk up from id; it belongs to this subtree if the owner is a proper ancestor.
	cur := n
	for cur.hasParent {
		if cur.parent == c.owner {
			return n, true
		}
		cur = c.arena.nodes[cur.parent]
	}
	return nil, false
}

// ChildrenMut is a mutable handle onto the children of one node, or onto the
// roots of the arena when obtained from RootsMut.
type ChildrenMut[T any] struct {
	ChildrenRef[T]
}

// AsRef returns a read-only handle with the same scope.
func (c ChildrenMut[T]) AsRef() ChildrenRef[T] {
	return c.ChildrenRef
}

// FindMut returns a mutable view of a descendant of the handle's owner.
func (c ChildrenMut[T]) FindMut(id uint64) (Mut[T], bool) {
	n, ok := c.lookup(id)
	if !ok {
		return Mut[T]{}, false
	}
	return Mut[T]{
		ID:        id,
		Item:      &n.item,
		Children:  ChildrenMut[T]{ChildrenRef[T]{arena: c.arena, owner: id, hasOwner: true}},
		parent:    n.parent,
		hasParent: n.hasParent,
	}, true
}

// Insert appends a new direct child with the given key and value.
// It panics if the key is already present anywhere in the arena.
func (c ChildrenMut[T]) Insert(id uint64, value T) Mut[T] {
	a := c.arena
	if a == nil {
		panic("treearena: Insert on zero ChildrenMut")
	}
	if _, exists := a.nodes[id]; exists {
		panic(fmt.Sprintf("treearena: key %d already present", id))
	}
	n := &node[T]{item: value, parent: c.owner, hasParent: c.hasOwner}
	if c.hasOwner {
		owner, ok := a.nodes[c.owner]
		if !ok {
			panic(fmt.Sprintf("treearena: owner %d was removed", c.owner))
		}
		owner.children = append(owner.children, id)
	} else {
		a.roots = append(a.roots, id)
	}
	a.nodes[id] = n
	return Mut[T]{
		ID:        id,
		Item:      &n.item,
		Children:  ChildrenMut[T]{ChildrenRef[T]{arena: a, owner: id, hasOwner: true}},
		parent:    n.parent,
		hasParent: n.hasParent,
	}
}

// Remove detaches a direct child and deletes it with its whole subtree.
// It returns the child's value, or false if id is not a direct child.
func (c ChildrenMut[T]) Remove(id uint64) (T, bool) {
	var zero T
	a := c.arena
	if a == nil {
		return zero, false
	}
	n, ok := a.nodes[id]
	if !ok || n.hasParent != c.hasOwner || (c.hasOwner && n.parent != c.owner) {
		return zero, false
	}
	if c.hasOwner {
		owner := a.nodes[c.owner]
		owner.children = removeID(owner.children, id)
	} else {
		a.roots = removeID(a.roots, id)
	}
	a.deleteSubtree(id)
	return n.item, true
}

func (a *TreeArena[T]) deleteSubtree(id uint64) {
	n, ok := a.nodes[id]
	if !ok {
		return
	}
	for _, child := range n.children {
		a.deleteSubtree(child)
	}
	delete(a.nodes, id)
}

func removeID(ids []uint64, id uint64) []uint64 {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
