package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
)

// BlockingBridgeInSuspend flags the run-to-completion bridge inside a
// suspendable function. The bridge parks the carrier thread, defeating
// the point of suspending and inviting deadlocks. Program and test
// entry points are exempt: they are where the bridge belongs.
var BlockingBridgeInSuspend = Rule{
	ID:        "BRIDGE_001",
	Name:      "blocking-bridge-in-suspend",
	Severity:  m.SeverityError,
	Summary:   "run-to-completion bridge called from a suspendable function",
	DocAnchor: "rules#bridge_001",
	run:       runBlockingBridgeInSuspend,
}

func runBlockingBridgeInSuspend(ctx *Context, rep *reporter) {
	for _, call := range ctx.Calls() {
		if !ctx.Classifier.IsBlockingBridge(call) {
			continue
		}

		fn, ok := call.Node.EnclosingFunction()
		if !ok || !fn.IsSuspendable() {
			continue
		}

		if ctx.Classifier.IsEntryPoint(fn) {
			continue
		}

		rep.reportf(call.Span(), "%s inside suspendable function %q blocks the carrier thread; suspend directly instead", call.Callee(), fn.Name())
	}
}
