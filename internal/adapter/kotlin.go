//go:build cgo

package adapter

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/kotlin"

	m "github.com/mouse-blink/cooplint/internal/model"
	"github.com/mouse-blink/cooplint/internal/syntax"
)

// KotlinParser parses Kotlin source with tree-sitter and lowers the
// concrete syntax tree into the analyzer's tree. Lowering is name-based
// only; there is no type resolution.
type KotlinParser struct {
	parser *sitter.Parser
}

// NewKotlinParser constructs a parser for Kotlin sources.
func NewKotlinParser() *KotlinParser {
	p := sitter.NewParser()
	p.SetLanguage(kotlin.GetLanguage())

	return &KotlinParser{parser: p}
}

// ParserAvailable reports whether a real Kotlin parser is compiled in.
func ParserAvailable() bool { return true }

// Parse lowers one compilation unit. Partial trees from recoverable
// syntax errors are lowered as far as they go; rules degrade to missed
// detections on the broken regions.
func (p *KotlinParser) Parse(ctx context.Context, file string, source []byte) (*syntax.Tree, error) {
	cst, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}

	root := cst.RootNode()
	if root == nil {
		return nil, fmt.Errorf("no syntax tree produced for %s", file)
	}

	lo := &lowering{b: syntax.NewBuilder(file), src: source, file: file}
	rootID := lo.b.Add(syntax.KindSourceFile, syntax.NoNode, syntax.RoleNone, lo.span(root))

	for i := 0; i < int(root.NamedChildCount()); i++ {
		lo.lower(root.NamedChild(i), rootID, syntax.RoleDeclaration)
	}

	tree := lo.b.Build()
	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("lowering produced a malformed tree for %s: %w", file, err)
	}

	return tree, nil
}

type lowering struct {
	b    *syntax.Builder
	src  []byte
	file string
}

func (lo *lowering) span(n *sitter.Node) m.Span {
	start, end := n.StartPoint(), n.EndPoint()

	return m.Span{
		File:      lo.file,
		StartLine: int(start.Row) + 1,
		StartCol:  int(start.Column) + 1,
		EndLine:   int(end.Row) + 1,
		EndCol:    int(end.Column) + 1,
	}
}

func (lo *lowering) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	return n.Content(lo.src)
}

// lower maps one CST node onto the analyzer tree. Unknown node types
// become structural nodes so nothing below them is lost.
func (lo *lowering) lower(n *sitter.Node, parent syntax.NodeID, role syntax.Role) {
	if n == nil {
		return
	}

	switch n.Type() {
	case "function_declaration":
		lo.lowerFunction(n, parent, role)
	case "class_declaration", "object_declaration":
		lo.lowerClass(n, parent, role)
	case "property_declaration":
		lo.lowerProperty(n, parent, role)
	case "call_expression":
		lo.lowerCall(n, parent, role)
	case "lambda_literal":
		lo.lowerLambda(n, parent, role)
	case "annotated_lambda":
		// The annotation wrapper around a trailing lambda is transparent.
		lo.lower(lastNamedChild(n), parent, role)
	case "try_expression":
		lo.lowerTry(n, parent, role)
	case "for_statement", "while_statement", "do_while_statement":
		lo.lowerLoop(n, parent, role)
	case "jump_expression":
		// The grammar folds throw, return, break and continue into one
		// node type; only throw gets its own kind.
		kind := syntax.KindOther
		if strings.HasPrefix(lo.text(n), "throw") {
			kind = syntax.KindThrow
		}

		id := lo.b.Add(kind, parent, role, lo.span(n))
		lo.lowerChildren(n, id)
	case "annotation":
		id := lo.b.Add(syntax.KindAnnotation, parent, syntax.RoleAnnotation, lo.span(n))
		lo.b.SetName(id, strings.TrimPrefix(lo.text(n), "@"))
	case "simple_identifier", "navigation_expression":
		id := lo.b.Add(syntax.KindIdentifier, parent, role, lo.span(n))
		lo.b.SetName(id, lo.text(n))
	default:
		id := lo.b.Add(syntax.KindOther, parent, role, lo.span(n))
		lo.lowerChildren(n, id)
	}
}

func (lo *lowering) lowerChildren(n *sitter.Node, parent syntax.NodeID) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		lo.lower(n.NamedChild(i), parent, syntax.RoleStatement)
	}
}

func (lo *lowering) lowerFunction(n *sitter.Node, parent syntax.NodeID, role syntax.Role) {
	id := lo.b.Add(syntax.KindFunction, parent, role, lo.span(n))
	lo.b.SetName(id, lo.text(namedChildOfType(n, "simple_identifier")))

	if modifiersContain(n, lo.src, "suspend") {
		lo.b.SetFlags(id, syntax.FlagSuspend)
	}

	lo.lowerAnnotations(n, id)
	lo.lowerParameters(n, id)

	if body := namedChildOfType(n, "function_body"); body != nil {
		block := lo.b.Add(syntax.KindBlock, id, syntax.RoleBody, lo.span(body))
		lo.lowerStatements(body, block)
	}
}

func (lo *lowering) lowerClass(n *sitter.Node, parent syntax.NodeID, role syntax.Role) {
	id := lo.b.Add(syntax.KindClass, parent, role, lo.span(n))
	lo.b.SetName(id, lo.text(namedChildOfType(n, "type_identifier")))
	lo.lowerAnnotations(n, id)

	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "delegation_specifier", "constructor_invocation", "user_type":
			sup := lo.b.Add(syntax.KindSupertype, id, syntax.RoleSupertype, lo.span(c))
			lo.b.SetName(sup, supertypeName(lo.text(c)))
		case "class_body":
			lo.lowerStatements(c, id)
		}
	}
}

func (lo *lowering) lowerProperty(n *sitter.Node, parent syntax.NodeID, role syntax.Role) {
	id := lo.b.Add(syntax.KindProperty, parent, role, lo.span(n))

	if decl := namedChildOfType(n, "variable_declaration"); decl != nil {
		lo.b.SetName(id, lo.text(namedChildOfType(decl, "simple_identifier")))
	}

	lo.lowerAnnotations(n, id)

	// The initializer is the last expression child, after the
	// declaration and any modifiers.
	if init := lastExpressionChild(n); init != nil {
		lo.lower(init, id, syntax.RoleInitializer)
	}
}

func (lo *lowering) lowerCall(n *sitter.Node, parent syntax.NodeID, role syntax.Role) {
	id := lo.b.Add(syntax.KindCall, parent, role, lo.span(n))

	callee := n.NamedChild(0)
	if callee != nil && callee.Type() == "navigation_expression" {
		// a.b.c(...) splits into receiver a.b and callee name c.
		receiver, name := splitNavigation(callee, lo.src)
		lo.b.SetName(id, name)

		if receiver != nil {
			lo.lower(receiver, id, syntax.RoleReceiver)
		}
	} else {
		lo.b.SetName(id, lo.text(callee))
	}

	if suffix := namedChildOfType(n, "call_suffix"); suffix != nil {
		lo.lowerCallSuffix(suffix, id)
	}
}

func (lo *lowering) lowerCallSuffix(suffix *sitter.Node, call syntax.NodeID) {
	for i := 0; i < int(suffix.NamedChildCount()); i++ {
		c := suffix.NamedChild(i)
		switch c.Type() {
		case "value_arguments":
			for j := 0; j < int(c.NamedChildCount()); j++ {
				arg := c.NamedChild(j)
				if arg.Type() == "value_argument" && arg.NamedChildCount() > 0 {
					arg = arg.NamedChild(int(arg.NamedChildCount()) - 1)
				}

				lo.lower(arg, call, syntax.RoleArgument)
			}
		case "annotated_lambda", "lambda_literal":
			lo.lowerTrailingLambda(c, call)
		}
	}
}

func (lo *lowering) lowerTrailingLambda(n *sitter.Node, call syntax.NodeID) {
	lambda := n
	if lambda.Type() == "annotated_lambda" {
		if inner := namedChildOfType(lambda, "lambda_literal"); inner != nil {
			lambda = inner
		}
	}

	id := lo.b.Add(syntax.KindLambda, call, syntax.RoleTrailingLambda, lo.span(lambda))
	block := lo.b.Add(syntax.KindBlock, id, syntax.RoleBody, lo.span(lambda))
	lo.lowerStatements(lambda, block)
}

func (lo *lowering) lowerLambda(n *sitter.Node, parent syntax.NodeID, role syntax.Role) {
	id := lo.b.Add(syntax.KindLambda, parent, role, lo.span(n))
	block := lo.b.Add(syntax.KindBlock, id, syntax.RoleBody, lo.span(n))
	lo.lowerStatements(n, block)
}

func (lo *lowering) lowerTry(n *sitter.Node, parent syntax.NodeID, role syntax.Role) {
	id := lo.b.Add(syntax.KindTry, parent, role, lo.span(n))

	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "catch_block":
			catch := lo.b.Add(syntax.KindCatch, id, syntax.RoleCatchClause, lo.span(c))
			lo.b.SetName(catch, lo.text(namedChildOfType(c, "user_type")))
			lo.lowerStatements(c, catch)
		case "finally_block":
			fin := lo.b.Add(syntax.KindFinally, id, syntax.RoleFinallyBlock, lo.span(c))
			lo.lowerStatements(c, fin)
		default:
			block := lo.b.Add(syntax.KindBlock, id, syntax.RoleTryBlock, lo.span(c))
			lo.lowerStatements(c, block)
		}
	}
}

func (lo *lowering) lowerLoop(n *sitter.Node, parent syntax.NodeID, role syntax.Role) {
	id := lo.b.Add(syntax.KindLoop, parent, role, lo.span(n))
	block := lo.b.Add(syntax.KindBlock, id, syntax.RoleBody, lo.span(n))

	if body := namedChildOfType(n, "control_structure_body"); body != nil {
		lo.lowerStatements(body, block)

		return
	}

	lo.lowerStatements(n, block)
}

func (lo *lowering) lowerAnnotations(n *sitter.Node, parent syntax.NodeID) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == "modifiers" {
			lo.lowerAnnotations(c, parent)

			continue
		}

		if c.Type() == "annotation" {
			id := lo.b.Add(syntax.KindAnnotation, parent, syntax.RoleAnnotation, lo.span(c))
			lo.b.SetName(id, strings.TrimPrefix(lo.text(c), "@"))
		}
	}
}

func (lo *lowering) lowerParameters(n *sitter.Node, fn syntax.NodeID) {
	params := namedChildOfType(n, "function_value_parameters")
	if params == nil {
		return
	}

	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		if p.Type() != "parameter" {
			continue
		}

		id := lo.b.Add(syntax.KindParameter, fn, syntax.RoleParameter, lo.span(p))
		lo.b.SetName(id, lo.text(namedChildOfType(p, "simple_identifier")))
	}
}

func (lo *lowering) lowerStatements(n *sitter.Node, parent syntax.NodeID) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == "statements" {
			lo.lowerStatements(c, parent)

			continue
		}

		lo.lower(c, parent, syntax.RoleStatement)
	}
}

func namedChildOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == typ {
			return c
		}
	}

	return nil
}

func lastNamedChild(n *sitter.Node) *sitter.Node {
	count := int(n.NamedChildCount())
	if count == 0 {
		return nil
	}

	return n.NamedChild(count - 1)
}

// lastExpressionChild returns the final named child of a property
// declaration that is not its declaration head or modifiers, which is
// where the grammar puts the initializer.
func lastExpressionChild(n *sitter.Node) *sitter.Node {
	last := lastNamedChild(n)
	if last == nil {
		return nil
	}

	switch last.Type() {
	case "variable_declaration", "modifiers", "annotation":
		return nil
	}

	return last
}

// splitNavigation divides a.b.c into the receiver expression a.b and
// the member name c.
func splitNavigation(nav *sitter.Node, src []byte) (*sitter.Node, string) {
	receiver := nav.NamedChild(0)

	name := ""
	if suffix := namedChildOfType(nav, "navigation_suffix"); suffix != nil {
		if ident := namedChildOfType(suffix, "simple_identifier"); ident != nil {
			name = ident.Content(src)
		}
	}

	if name == "" {
		// Fall back to the last dotted segment of the raw text.
		parts := strings.Split(nav.Content(src), ".")
		name = strings.TrimSpace(parts[len(parts)-1])
	}

	return receiver, name
}

func supertypeName(text string) string {
	// Strip constructor arguments: "CancellationException()" names the
	// type only.
	if i := strings.IndexByte(text, '('); i >= 0 {
		text = text[:i]
	}

	return strings.TrimSpace(text)
}

func modifiersContain(n *sitter.Node, src []byte, keyword string) bool {
	mods := namedChildOfType(n, "modifiers")
	if mods == nil {
		return false
	}

	for _, field := range strings.Fields(mods.Content(src)) {
		if field == keyword {
			return true
		}
	}

	return false
}
