package syntax

// Typed views give rules ergonomic access to the handful of node shapes
// they reason about. A view is just a Node with shape-specific accessors;
// construction checks the kind and nothing else.

// Call is a call expression: optional receiver, callee name, ordered
// arguments and an optional trailing lambda.
type Call struct{ Node }

// AsCall converts the node into a Call view.
func (n Node) AsCall() (Call, bool) {
	if n.Kind() != KindCall {
		return Call{}, false
	}

	return Call{n}, true
}

// Callee returns the called name.
func (c Call) Callee() string { return c.Name() }

// Receiver returns the receiver expression, if any.
func (c Call) Receiver() (Node, bool) { return c.ChildByRole(RoleReceiver) }

// Arguments returns the ordered argument list, excluding a trailing lambda.
func (c Call) Arguments() []Node { return c.ChildrenByRole(RoleArgument) }

// TrailingLambda returns the trailing lambda argument, if present.
func (c Call) TrailingLambda() (Lambda, bool) {
	n, ok := c.ChildByRole(RoleTrailingLambda)
	if !ok {
		return Lambda{}, false
	}

	return Lambda{n}, true
}

// Lambda is an anonymous function body.
type Lambda struct{ Node }

// AsLambda converts the node into a Lambda view.
func (n Node) AsLambda() (Lambda, bool) {
	if n.Kind() != KindLambda {
		return Lambda{}, false
	}

	return Lambda{n}, true
}

// Body returns the lambda body block when present, else the lambda itself.
func (l Lambda) Body() Node {
	if body, ok := l.ChildByRole(RoleBody); ok {
		return body
	}

	return l.Node
}

// Function is a named function declaration.
type Function struct{ Node }

// AsFunction converts the node into a Function view.
func (n Node) AsFunction() (Function, bool) {
	if n.Kind() != KindFunction {
		return Function{}, false
	}

	return Function{n}, true
}

// IsSuspendable reports whether the declaration carries the suspend marker.
func (f Function) IsSuspendable() bool { return f.HasFlag(FlagSuspend) }

// Body returns the function body block, if any.
func (f Function) Body() (Node, bool) { return f.ChildByRole(RoleBody) }

// Parameters returns the declared parameters.
func (f Function) Parameters() []Node { return f.ChildrenByRole(RoleParameter) }

// Annotations returns the annotations on the declaration.
func (f Function) Annotations() []Node { return f.ChildrenByRole(RoleAnnotation) }

// Class is a class declaration.
type Class struct{ Node }

// AsClass converts the node into a Class view.
func (n Node) AsClass() (Class, bool) {
	if n.Kind() != KindClass {
		return Class{}, false
	}

	return Class{n}, true
}

// SupertypeNames returns the names in the supertype list.
func (c Class) SupertypeNames() []string {
	supers := c.ChildrenByRole(RoleSupertype)
	out := make([]string, 0, len(supers))

	for _, s := range supers {
		out = append(out, s.Name())
	}

	return out
}

// Property is a property or local binding declaration.
type Property struct{ Node }

// AsProperty converts the node into a Property view.
func (n Node) AsProperty() (Property, bool) {
	if n.Kind() != KindProperty {
		return Property{}, false
	}

	return Property{n}, true
}

// Initializer returns the initializing expression, if any.
func (p Property) Initializer() (Node, bool) { return p.ChildByRole(RoleInitializer) }

// Annotations returns the annotations on the declaration.
func (p Property) Annotations() []Node { return p.ChildrenByRole(RoleAnnotation) }

// Try is a try expression with optional catch and finally clauses.
type Try struct{ Node }

// AsTry converts the node into a Try view.
func (n Node) AsTry() (Try, bool) {
	if n.Kind() != KindTry {
		return Try{}, false
	}

	return Try{n}, true
}

// TryBlock returns the guarded block.
func (t Try) TryBlock() (Node, bool) { return t.ChildByRole(RoleTryBlock) }

// CatchClauses returns the catch clauses in declaration order. Each clause
// node's Name is the caught exception type.
func (t Try) CatchClauses() []Node { return t.ChildrenByRole(RoleCatchClause) }

// FinallyBlock returns the finally clause, if any.
func (t Try) FinallyBlock() (Node, bool) { return t.ChildByRole(RoleFinallyBlock) }

// Loop is any of the loop statements.
type Loop struct{ Node }

// AsLoop converts the node into a Loop view.
func (n Node) AsLoop() (Loop, bool) {
	if n.Kind() != KindLoop {
		return Loop{}, false
	}

	return Loop{n}, true
}

// Body returns the loop body when present, else the loop itself.
func (l Loop) Body() Node {
	if body, ok := l.ChildByRole(RoleBody); ok {
		return body
	}

	return l.Node
}

// EnclosingFunction returns the nearest ancestor function declaration,
// walking through any intermediate lambdas and blocks.
func (n Node) EnclosingFunction() (Function, bool) {
	for cur := n.Parent(); cur.Valid(); cur = cur.Parent() {
		if fn, ok := cur.AsFunction(); ok {
			return fn, true
		}
	}

	return Function{}, false
}
