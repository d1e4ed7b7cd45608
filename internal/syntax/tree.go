package syntax

import (
	"fmt"

	m "github.com/mouse-blink/cooplint/internal/model"
)

// NodeID indexes a node inside its Tree arena.
type NodeID int32

// NoNode is the id used for absent parents and failed lookups.
const NoNode NodeID = -1

// Tree is the arena holding every node of one compilation unit.
// Parent and children links are id arrays so ancestry queries are
// O(depth) with O(1) parent lookup. A Tree is immutable once built.
type Tree struct {
	file     string
	kinds    []Kind
	roles    []Role
	names    []string
	flags    []Flag
	parents  []NodeID
	children [][]NodeID
	spans    []m.Span
}

// File returns the path of the compilation unit this tree was built from.
func (t *Tree) File() string { return t.file }

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.kinds) }

// Root returns the root node. The zero Node is returned for an empty tree.
func (t *Tree) Root() Node {
	if t.Len() == 0 {
		return Node{}
	}

	return Node{tree: t, id: 0}
}

// NodeAt returns the node with the given id, or an invalid Node.
func (t *Tree) NodeAt(id NodeID) Node {
	if id < 0 || int(id) >= t.Len() {
		return Node{}
	}

	return Node{tree: t, id: id}
}

// Walk visits every node in document order (preorder), starting at root.
// The visitor returns false to prune the subtree below the current node.
func (t *Tree) Walk(fn func(Node) bool) {
	t.walkFrom(t.Root(), fn)
}

func (t *Tree) walkFrom(n Node, fn func(Node) bool) {
	if !n.Valid() {
		return
	}

	if !fn(n) {
		return
	}

	for _, c := range t.children[n.id] {
		t.walkFrom(Node{tree: t, id: c}, fn)
	}
}

// Validate checks the structural invariants the engine relies on:
// a single root, in-range parent links, parent/children agreement and
// acyclic ancestry. A tree failing validation is rejected as a whole;
// the failure is an engine-level error, never a finding.
func (t *Tree) Validate() error {
	if t.Len() == 0 {
		return fmt.Errorf("empty tree for %q", t.file)
	}

	if t.parents[0] != NoNode {
		return fmt.Errorf("root node has a parent")
	}

	for id := 1; id < t.Len(); id++ {
		p := t.parents[id]
		if p < 0 || int(p) >= t.Len() {
			return fmt.Errorf("node %d: parent %d out of range", id, p)
		}

		if p == NodeID(id) {
			return fmt.Errorf("node %d: is its own parent", id)
		}
	}

	// A parent chain longer than the arena means a cycle.
	for id := 0; id < t.Len(); id++ {
		steps := 0

		for p := t.parents[id]; p != NoNode; p = t.parents[p] {
			steps++
			if steps > t.Len() {
				return fmt.Errorf("node %d: cyclic parent chain", id)
			}
		}
	}

	for id := 0; id < t.Len(); id++ {
		for _, c := range t.children[id] {
			if c < 0 || int(c) >= t.Len() {
				return fmt.Errorf("node %d: child %d out of range", id, c)
			}

			if t.parents[c] != NodeID(id) {
				return fmt.Errorf("node %d: child %d does not point back", id, c)
			}
		}
	}

	return nil
}

// Node is a lightweight handle over one arena entry. The zero Node is
// invalid; every accessor on it returns a zero value.
type Node struct {
	tree *Tree
	id   NodeID
}

// Valid reports whether the node refers to an existing arena entry.
func (n Node) Valid() bool {
	return n.tree != nil && n.id >= 0 && int(n.id) < n.tree.Len()
}

// ID returns the arena id of the node.
func (n Node) ID() NodeID {
	if !n.Valid() {
		return NoNode
	}

	return n.id
}

// Tree returns the owning tree.
func (n Node) Tree() *Tree { return n.tree }

// Kind returns the node kind.
func (n Node) Kind() Kind {
	if !n.Valid() {
		return KindOther
	}

	return n.tree.kinds[n.id]
}

// Role returns the node's position inside its parent.
func (n Node) Role() Role {
	if !n.Valid() {
		return RoleNone
	}

	return n.tree.roles[n.id]
}

// Name returns the payload name: identifier text, callee name for calls,
// declared name for functions, classes and properties.
func (n Node) Name() string {
	if !n.Valid() {
		return ""
	}

	return n.tree.names[n.id]
}

// Span returns the source region of the node.
func (n Node) Span() m.Span {
	if !n.Valid() {
		return m.Span{}
	}

	return n.tree.spans[n.id]
}

// HasFlag reports whether the node carries the given flag.
func (n Node) HasFlag(f Flag) bool {
	if !n.Valid() {
		return false
	}

	return n.tree.flags[n.id]&f != 0
}

// Parent returns the parent node. The back-reference is non-owning and
// exists only for ancestry walks.
func (n Node) Parent() Node {
	if !n.Valid() {
		return Node{}
	}

	p := n.tree.parents[n.id]
	if p == NoNode {
		return Node{}
	}

	return Node{tree: n.tree, id: p}
}

// Children returns the ordered child nodes.
func (n Node) Children() []Node {
	if !n.Valid() {
		return nil
	}

	ids := n.tree.children[n.id]
	out := make([]Node, len(ids))

	for i, c := range ids {
		out[i] = Node{tree: n.tree, id: c}
	}

	return out
}

// ChildByRole returns the first child with the given role.
func (n Node) ChildByRole(role Role) (Node, bool) {
	if !n.Valid() {
		return Node{}, false
	}

	for _, c := range n.tree.children[n.id] {
		if n.tree.roles[c] == role {
			return Node{tree: n.tree, id: c}, true
		}
	}

	return Node{}, false
}

// ChildrenByRole returns every direct child with the given role.
func (n Node) ChildrenByRole(role Role) []Node {
	var out []Node

	if !n.Valid() {
		return out
	}

	for _, c := range n.tree.children[n.id] {
		if n.tree.roles[c] == role {
			out = append(out, Node{tree: n.tree, id: c})
		}
	}

	return out
}

// Contains reports whether other lies in the subtree rooted at n.
func (n Node) Contains(other Node) bool {
	if !n.Valid() || !other.Valid() || n.tree != other.tree {
		return false
	}

	for cur := other; cur.Valid(); cur = cur.Parent() {
		if cur.id == n.id {
			return true
		}
	}

	return false
}
