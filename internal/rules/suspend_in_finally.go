package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
)

// SuspendInFinally flags suspending calls inside a finally clause that
// are not wrapped in the non-cancellable context. After cancellation the
// first suspension point in cleanup rethrows, so the rest of the clause
// never runs.
var SuspendInFinally = Rule{
	ID:        "CANCEL_003",
	Name:      "suspend-in-finally",
	Severity:  m.SeverityWarning,
	Summary:   "unprotected suspending call in a finally clause",
	DocAnchor: "rules#cancel_003",
	run:       runSuspendInFinally,
}

func runSuspendInFinally(ctx *Context, rep *reporter) {
	reg := ctx.Classifier.Registry()

	for _, call := range ctx.Calls() {
		if !looksSuspending(ctx, call) {
			continue
		}

		// The protective wrapper itself is fine.
		if call.Callee() == reg.ContextSwitchCall {
			if args := call.Arguments(); len(args) > 0 && ctx.Classifier.IsNonCancellableMarker(args[0].Name()) {
				continue
			}
		}

		if !ctx.Classifier.IsWithinFinally(call.Node) {
			continue
		}

		if !ctx.Classifier.InSuspendContext(call.Node) {
			continue
		}

		if ctx.Classifier.IsWrappedInNonCancellableContext(call.Node) {
			continue
		}

		rep.reportf(call.Span(), "suspending call %q in finally aborts on cancellation; wrap the cleanup in the non-cancellable context", call.Callee())
	}
}
