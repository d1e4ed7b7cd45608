package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
	"github.com/mouse-blink/cooplint/internal/syntax"
)

// DeferredNeverAwaited flags value-returning launches whose result is
// never consumed. An unread result silently swallows the task's outcome,
// including any failure.
var DeferredNeverAwaited = Rule{
	ID:        "ASYNC_001",
	Name:      "deferred-never-awaited",
	Severity:  m.SeverityWarning,
	Summary:   "value-returning launch whose result is never awaited",
	DocAnchor: "rules#async_001",
	run:       runDeferredNeverAwaited,
}

func runDeferredNeverAwaited(ctx *Context, rep *reporter) {
	for _, call := range ctx.Calls() {
		if !ctx.Classifier.IsValueLauncher(call) {
			continue
		}

		// The chained form `async { ... }.await()` is consumed by
		// construction (and covered by ASYNC_002 when redundant).
		if isAwaitReceiver(ctx, call.Node) {
			continue
		}

		switch call.Role() {
		case syntax.RoleInitializer:
			binding := call.Parent().Name()
			if binding == "" || bindingIsConsumed(ctx, call.Node, binding) {
				continue
			}

			rep.reportf(call.Span(), "result of %s bound to %q is never awaited", call.Callee(), binding)

		case syntax.RoleStatement:
			rep.reportf(call.Span(), "result of %s is discarded; await it or use a non-value launch", call.Callee())
		}
	}
}

// isAwaitReceiver reports whether n is the receiver of an await call.
func isAwaitReceiver(ctx *Context, n syntax.Node) bool {
	if n.Role() != syntax.RoleReceiver {
		return false
	}

	parent, ok := n.Parent().AsCall()
	if !ok {
		return false
	}

	return ctx.Classifier.Registry().AwaitCalls.Has(parent.Callee())
}

// bindingIsConsumed reports whether the named binding reaches an await
// or await-all call within the same enclosing function: either as the
// receiver of an await or as an argument to an await-all.
func bindingIsConsumed(ctx *Context, origin syntax.Node, binding string) bool {
	reg := ctx.Classifier.Registry()

	for _, call := range ctx.Calls() {
		if !reg.AwaitCalls.Has(call.Callee()) {
			continue
		}

		if !sameFunction(origin, call.Node) {
			continue
		}

		if name, ok := receiverName(call); ok && name == binding {
			return true
		}

		for _, arg := range call.Arguments() {
			if arg.Kind() == syntax.KindIdentifier && arg.Name() == binding {
				return true
			}
		}
	}

	return false
}
