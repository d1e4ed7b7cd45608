package rules

import "github.com/mouse-blink/cooplint/internal/syntax"

// enclosingFunctionID returns the arena id of the nearest enclosing
// function declaration, or NoNode for file-level code.
func enclosingFunctionID(n syntax.Node) syntax.NodeID {
	fn, ok := n.EnclosingFunction()
	if !ok {
		return syntax.NoNode
	}

	return fn.ID()
}

// sameFunction reports whether both nodes sit in the same enclosing
// function (or both at file level).
func sameFunction(a, b syntax.Node) bool {
	return enclosingFunctionID(a) == enclosingFunctionID(b)
}

// receiverName returns the plain-identifier receiver of a call, if any.
func receiverName(call syntax.Call) (string, bool) {
	recv, ok := call.Receiver()
	if !ok || recv.Kind() != syntax.KindIdentifier {
		return "", false
	}

	return recv.Name(), true
}

// nearestLauncherSite returns the arena id of the closest ancestor
// task-launch call whose trailing lambda contains n.
func nearestLauncherSite(ctx *Context, n syntax.Node) (syntax.NodeID, bool) {
	for cur := n.Parent(); cur.Valid(); cur = cur.Parent() {
		if cur.Kind() != syntax.KindLambda || cur.Role() != syntax.RoleTrailingLambda {
			continue
		}

		call, ok := cur.Parent().AsCall()
		if !ok {
			continue
		}

		if ctx.Classifier.IsTaskLauncher(call) {
			return call.ID(), true
		}
	}

	return syntax.NoNode, false
}

// looksSuspending reports whether a call plausibly suspends: it is a
// recognized cooperation point, an await, a structured builder, the
// context-switch call, or a call to a same-file function declared with
// the suspend marker. Unknown names are treated as non-suspending so
// unresolved code degrades to a missed detection, not a false report.
func looksSuspending(ctx *Context, call syntax.Call) bool {
	reg := ctx.Classifier.Registry()
	name := call.Callee()

	if ctx.Classifier.IsCooperationPoint(call) {
		return true
	}

	if reg.AwaitCalls.Has(name) || reg.Builders.Has(name) || name == reg.ContextSwitchCall {
		return true
	}

	for _, fn := range ctx.Functions() {
		if fn.Name() == name && fn.IsSuspendable() {
			return true
		}
	}

	return false
}

// statementsOf returns the direct statement children of a block-like node.
func statementsOf(n syntax.Node) []syntax.Node {
	var out []syntax.Node

	for _, c := range n.Children() {
		if c.Role() == syntax.RoleStatement {
			out = append(out, c)
		}
	}

	return out
}

// walkPruningNestedFunctions visits the direct subtree of n, skipping
// the bodies of nested lambdas and function declarations.
func walkPruningNestedFunctions(n syntax.Node, fn func(syntax.Node) bool) {
	var visit func(syntax.Node)

	visit = func(cur syntax.Node) {
		if !fn(cur) {
			return
		}

		for _, c := range cur.Children() {
			if c.Kind() == syntax.KindLambda || c.Kind() == syntax.KindFunction {
				continue
			}

			visit(c)
		}
	}

	for _, c := range n.Children() {
		if c.Kind() == syntax.KindLambda || c.Kind() == syntax.KindFunction {
			continue
		}

		visit(c)
	}
}
