// Package syntaxtest builds syntax trees declaratively for tests.
// Fixtures written with it read roughly like the analyzed source:
//
//	tree := syntaxtest.File("a.kt",
//		syntaxtest.Fun("main",
//			syntaxtest.Call("launch", syntaxtest.Recv(syntaxtest.Ident("GlobalScope")),
//				syntaxtest.TrailingLambda()),
//		),
//	)
package syntaxtest

import (
	m "github.com/mouse-blink/cooplint/internal/model"
	"github.com/mouse-blink/cooplint/internal/syntax"
)

// NodeSpec describes one node of a fixture tree.
type NodeSpec struct {
	Kind     syntax.Kind
	Role     syntax.Role
	Name     string
	Flags    syntax.Flag
	Children []NodeSpec
}

// File builds a tree rooted at a source-file node. Spans are assigned in
// document order, one line per node, so position-based ordering in tests
// matches the order fixtures are written in.
func File(path string, decls ...NodeSpec) *syntax.Tree {
	b := syntax.NewBuilder(path)
	line := 1
	root := addNode(b, NodeSpec{Kind: syntax.KindSourceFile}, syntax.NoNode, &line)

	for _, d := range decls {
		if d.Role == syntax.RoleNone {
			d.Role = syntax.RoleDeclaration
		}

		addNode(b, d, root, &line)
	}

	return b.Build()
}

func addNode(b *syntax.Builder, spec NodeSpec, parent syntax.NodeID, line *int) syntax.NodeID {
	span := m.Span{StartLine: *line, StartCol: 1, EndLine: *line, EndCol: 80}
	*line++

	id := b.Add(spec.Kind, parent, spec.Role, span)
	b.SetName(id, spec.Name)
	b.SetFlags(id, spec.Flags)

	for _, c := range spec.Children {
		if c.Role == syntax.RoleNone {
			c.Role = syntax.RoleStatement
		}

		addNode(b, c, id, line)
	}

	return id
}

// Fun declares a named function whose direct children form its body.
func Fun(name string, body ...NodeSpec) NodeSpec {
	return NodeSpec{
		Kind:     syntax.KindFunction,
		Name:     name,
		Children: []NodeSpec{bodyBlock(body)},
	}
}

// SuspendFun declares a function carrying the suspend marker.
func SuspendFun(name string, body ...NodeSpec) NodeSpec {
	spec := Fun(name, body...)
	spec.Flags |= syntax.FlagSuspend

	return spec
}

// AnnotatedFun declares a function with the given annotations.
func AnnotatedFun(name string, annotations []string, body ...NodeSpec) NodeSpec {
	spec := Fun(name, body...)

	annotated := make([]NodeSpec, 0, len(annotations)+len(spec.Children))
	for _, a := range annotations {
		annotated = append(annotated, NodeSpec{Kind: syntax.KindAnnotation, Role: syntax.RoleAnnotation, Name: a})
	}

	spec.Children = append(annotated, spec.Children...)

	return spec
}

// Call builds a call expression. Children are receivers, arguments and
// trailing lambdas produced by Recv, Arg and TrailingLambda; bare child
// specs are kept as given.
func Call(callee string, parts ...NodeSpec) NodeSpec {
	return NodeSpec{Kind: syntax.KindCall, Name: callee, Children: parts}
}

// Ident builds an identifier. Dotted names (e.g. "Dispatchers.IO")
// stand for navigation chains of plain identifiers.
func Ident(name string) NodeSpec {
	return NodeSpec{Kind: syntax.KindIdentifier, Name: name}
}

// Recv marks a node as the call receiver.
func Recv(spec NodeSpec) NodeSpec {
	spec.Role = syntax.RoleReceiver

	return spec
}

// Arg marks a node as a call argument.
func Arg(spec NodeSpec) NodeSpec {
	spec.Role = syntax.RoleArgument

	return spec
}

// TrailingLambda builds a trailing-lambda argument with the given body.
func TrailingLambda(body ...NodeSpec) NodeSpec {
	return NodeSpec{
		Kind:     syntax.KindLambda,
		Role:     syntax.RoleTrailingLambda,
		Children: []NodeSpec{bodyBlock(body)},
	}
}

// SuspendLambda builds a trailing lambda carrying its own suspend marker.
func SuspendLambda(body ...NodeSpec) NodeSpec {
	spec := TrailingLambda(body...)
	spec.Flags |= syntax.FlagSuspend

	return spec
}

// Prop declares a property with an optional initializer (use Init).
func Prop(name string, parts ...NodeSpec) NodeSpec {
	return NodeSpec{Kind: syntax.KindProperty, Name: name, Children: parts}
}

// Init marks a node as a property initializer.
func Init(spec NodeSpec) NodeSpec {
	spec.Role = syntax.RoleInitializer

	return spec
}

// Annotated attaches annotations to an existing spec.
func Annotated(spec NodeSpec, annotations ...string) NodeSpec {
	nodes := make([]NodeSpec, 0, len(annotations))
	for _, a := range annotations {
		nodes = append(nodes, NodeSpec{Kind: syntax.KindAnnotation, Role: syntax.RoleAnnotation, Name: a})
	}

	spec.Children = append(nodes, spec.Children...)

	return spec
}

// Class declares a class with the given supertype names.
func Class(name string, supertypes ...string) NodeSpec {
	children := make([]NodeSpec, 0, len(supertypes))
	for _, s := range supertypes {
		children = append(children, NodeSpec{Kind: syntax.KindSupertype, Role: syntax.RoleSupertype, Name: s})
	}

	return NodeSpec{Kind: syntax.KindClass, Name: name, Children: children}
}

// Try builds a try expression from TryBlock, Catch and Finally parts.
func Try(parts ...NodeSpec) NodeSpec {
	return NodeSpec{Kind: syntax.KindTry, Children: parts}
}

// TryBlock builds the guarded block of a Try.
func TryBlock(body ...NodeSpec) NodeSpec {
	return NodeSpec{Kind: syntax.KindBlock, Role: syntax.RoleTryBlock, Children: body}
}

// Catch builds a catch clause for the named exception type.
func Catch(typeName string, body ...NodeSpec) NodeSpec {
	return NodeSpec{Kind: syntax.KindCatch, Role: syntax.RoleCatchClause, Name: typeName, Children: body}
}

// Finally builds a finally clause.
func Finally(body ...NodeSpec) NodeSpec {
	return NodeSpec{Kind: syntax.KindFinally, Role: syntax.RoleFinallyBlock, Children: body}
}

// Throw builds a throw statement; parts are the thrown expression.
func Throw(parts ...NodeSpec) NodeSpec {
	return NodeSpec{Kind: syntax.KindThrow, Children: parts}
}

// Loop builds a loop statement with the given body.
func Loop(body ...NodeSpec) NodeSpec {
	return NodeSpec{Kind: syntax.KindLoop, Children: []NodeSpec{bodyBlock(body)}}
}

// Block builds a bare statement block.
func Block(body ...NodeSpec) NodeSpec {
	return NodeSpec{Kind: syntax.KindBlock, Children: body}
}

func bodyBlock(body []NodeSpec) NodeSpec {
	return NodeSpec{Kind: syntax.KindBlock, Role: syntax.RoleBody, Children: body}
}
