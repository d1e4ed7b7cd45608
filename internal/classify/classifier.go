package classify

import "github.com/mouse-blink/cooplint/internal/syntax"

// Classifier answers the classification questions rules depend on.
// All methods are pure, total and side-effect free: an unresolvable
// node yields the conservative answer (false), never an error.
type Classifier struct {
	reg Registry
}

// New builds a Classifier over the given registry.
func New(reg Registry) *Classifier {
	return &Classifier{reg: reg}
}

// Registry exposes the underlying registry to rules that match names
// directly (channel constructors, cancel/close calls and the like).
func (c *Classifier) Registry() Registry { return c.reg }

// IsTaskLauncher reports whether the call starts a new task.
func (c *Classifier) IsTaskLauncher(call syntax.Call) bool {
	return c.reg.Launchers.Has(call.Callee())
}

// IsValueLauncher reports whether the call is a value-returning launch.
func (c *Classifier) IsValueLauncher(call syntax.Call) bool {
	return c.reg.ValueLaunchers.Has(call.Callee())
}

// IsStructuredBuilder reports whether the call opens a nested structured scope.
func (c *Classifier) IsStructuredBuilder(call syntax.Call) bool {
	return c.reg.Builders.Has(call.Callee())
}

// IsCooperationPoint reports whether the callee is in the recognized
// cooperation-point set. Name-based, not type-resolved: a shadowed name
// is a documented precision trade-off.
func (c *Classifier) IsCooperationPoint(call syntax.Call) bool {
	return c.reg.CooperationPoints.Has(call.Callee())
}

// IsBlockingCall reports whether the callee is in the blocking-call registry.
func (c *Classifier) IsBlockingCall(call syntax.Call) bool {
	return c.reg.BlockingCalls.Has(call.Callee()) || c.reg.BlockingCalls.Has(qualifiedCallee(call))
}

// IsBlockingBridge reports whether the call is the run-to-completion
// bridge into suspendable code.
func (c *Classifier) IsBlockingBridge(call syntax.Call) bool {
	return call.Callee() == c.reg.BlockingBridge
}

// InSuspendContext reports whether code at n executes in suspend context:
// the enclosing declaration carries the suspend marker, or every
// enclosing anonymous function up to one is the trailing lambda of a
// task-launcher or structured-builder call. Unknown lambdas break the
// chain conservatively.
func (c *Classifier) InSuspendContext(n syntax.Node) bool {
	for cur := n.Parent(); cur.Valid(); cur = cur.Parent() {
		switch cur.Kind() {
		case syntax.KindLambda:
			if cur.HasFlag(syntax.FlagSuspend) {
				return true
			}

			if !c.lambdaRunsInSuspendContext(cur) {
				return false
			}

			return true

		case syntax.KindFunction:
			return cur.HasFlag(syntax.FlagSuspend)
		}
	}

	return false
}

// lambdaRunsInSuspendContext reports whether the lambda is the
// trailing-lambda argument of a launcher or structured builder.
func (c *Classifier) lambdaRunsInSuspendContext(lambda syntax.Node) bool {
	if lambda.Role() != syntax.RoleTrailingLambda {
		return false
	}

	call, ok := lambda.Parent().AsCall()
	if !ok {
		return false
	}

	name := call.Callee()

	return c.reg.Launchers.Has(name) || c.reg.Builders.Has(name) || name == c.reg.ContextSwitchCall
}

// IsWithinFinally reports whether some ancestor try construct contains n
// inside its finally clause, not its try or catch clause.
func (c *Classifier) IsWithinFinally(n syntax.Node) bool {
	for cur := n; cur.Valid(); cur = cur.Parent() {
		if cur.Role() == syntax.RoleFinallyBlock || cur.Kind() == syntax.KindFinally {
			return true
		}
	}

	return false
}

// IsWrappedInNonCancellableContext reports whether an ancestor
// context-switch call passes the non-cancellable marker as its first
// argument.
func (c *Classifier) IsWrappedInNonCancellableContext(n syntax.Node) bool {
	for cur := n.Parent(); cur.Valid(); cur = cur.Parent() {
		call, ok := cur.AsCall()
		if !ok || call.Callee() != c.reg.ContextSwitchCall {
			continue
		}

		args := call.Arguments()
		if len(args) == 0 {
			continue
		}

		if c.IsNonCancellableMarker(args[0].Name()) {
			return true
		}
	}

	return false
}

// IsNonCancellableMarker reports whether the argument denotes the
// non-cancellable context element, qualified or not.
func (c *Classifier) IsNonCancellableMarker(name string) bool {
	return lastSegment(name) == c.reg.NonCancellableMarker
}

// IsInsideTaskLauncherLambda reports whether an ancestor lambda is the
// trailing-lambda argument of a launcher, structured builder or
// context-switch call.
func (c *Classifier) IsInsideTaskLauncherLambda(n syntax.Node) bool {
	for cur := n.Parent(); cur.Valid(); cur = cur.Parent() {
		if cur.Kind() != syntax.KindLambda {
			continue
		}

		if c.lambdaRunsInSuspendContext(cur) {
			return true
		}
	}

	return false
}

// IsCancellationType reports whether the name denotes the
// cancellation-signal exception type.
func (c *Classifier) IsCancellationType(name string) bool {
	return c.reg.CancellationTypes.Has(lastSegment(name))
}

// IsBroadCatchType reports whether the caught type is wide enough to
// swallow the cancellation signal.
func (c *Classifier) IsBroadCatchType(name string) bool {
	return c.reg.BroadCatchTypes.Has(lastSegment(name))
}

// IsUnconfinedSelector reports whether the argument denotes the
// caller-thread executor constant.
func (c *Classifier) IsUnconfinedSelector(name string) bool {
	return c.reg.UnconfinedNames.Has(name) || c.reg.UnconfinedNames.Has(lastSegment(name))
}

// IsHardcodedDispatcher reports whether the argument is a dispatcher
// constant that should be injected instead.
func (c *Classifier) IsHardcodedDispatcher(name string) bool {
	return c.reg.HardcodedDispatchers.Has(name)
}

// IsEntryPoint reports whether the function is the program entry point
// or a test entry.
func (c *Classifier) IsEntryPoint(fn syntax.Function) bool {
	if c.reg.EntryPoints.Has(fn.Name()) {
		return true
	}

	for _, a := range fn.Annotations() {
		if c.reg.TestAnnotations.Has(a.Name()) {
			return true
		}
	}

	return false
}

// HasOptInAnnotation reports whether the enclosing declaration opted in
// to unstructured launching.
func (c *Classifier) HasOptInAnnotation(n syntax.Node) bool {
	for cur := n; cur.Valid(); cur = cur.Parent() {
		for _, a := range cur.ChildrenByRole(syntax.RoleAnnotation) {
			if c.reg.OptInAnnotations.Has(lastSegment(a.Name())) {
				return true
			}
		}
	}

	return false
}

// qualifiedCallee joins a plain identifier receiver with the callee so
// dotted registry entries like "Thread.sleep" match.
func qualifiedCallee(call syntax.Call) string {
	recv, ok := call.Receiver()
	if !ok || recv.Kind() != syntax.KindIdentifier {
		return call.Callee()
	}

	return recv.Name() + "." + call.Callee()
}
