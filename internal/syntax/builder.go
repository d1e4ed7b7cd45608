package syntax

import m "github.com/mouse-blink/cooplint/internal/model"

// Builder assembles a Tree one node at a time. Hosts lower their own
// concrete syntax tree through it; tests construct fixtures with it.
type Builder struct {
	tree *Tree
}

// NewBuilder starts a tree for the given compilation unit.
func NewBuilder(file string) *Builder {
	return &Builder{tree: &Tree{file: file}}
}

// Add appends a node under parent (NoNode for the root) and returns its id.
// Children keep insertion order, which must match document order.
func (b *Builder) Add(kind Kind, parent NodeID, role Role, span m.Span) NodeID {
	id := NodeID(len(b.tree.kinds))

	if span.File == "" {
		span.File = b.tree.file
	}

	b.tree.kinds = append(b.tree.kinds, kind)
	b.tree.roles = append(b.tree.roles, role)
	b.tree.names = append(b.tree.names, "")
	b.tree.flags = append(b.tree.flags, 0)
	b.tree.parents = append(b.tree.parents, parent)
	b.tree.children = append(b.tree.children, nil)
	b.tree.spans = append(b.tree.spans, span)

	if parent != NoNode && int(parent) < len(b.tree.children) {
		b.tree.children[parent] = append(b.tree.children[parent], id)
	}

	return id
}

// SetName attaches the payload name to a node.
func (b *Builder) SetName(id NodeID, name string) {
	if int(id) < len(b.tree.names) {
		b.tree.names[id] = name
	}
}

// SetFlags sets the flag bits of a node.
func (b *Builder) SetFlags(id NodeID, flags Flag) {
	if int(id) < len(b.tree.flags) {
		b.tree.flags[id] = flags
	}
}

// Build finalizes the tree. The builder must not be reused afterwards.
func (b *Builder) Build() *Tree {
	t := b.tree
	b.tree = nil

	return t
}
