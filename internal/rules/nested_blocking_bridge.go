package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
)

// NestedBlockingBridge flags the run-to-completion bridge inside a
// task-launcher lambda. The task's thread is parked until the nested
// bridge finishes, which can deadlock a bounded executor.
var NestedBlockingBridge = Rule{
	ID:        "BRIDGE_002",
	Name:      "nested-blocking-bridge",
	Severity:  m.SeverityError,
	Summary:   "run-to-completion bridge nested inside a launched task",
	DocAnchor: "rules#bridge_002",
	run:       runNestedBlockingBridge,
}

func runNestedBlockingBridge(ctx *Context, rep *reporter) {
	for _, call := range ctx.Calls() {
		if !ctx.Classifier.IsBlockingBridge(call) {
			continue
		}

		if !ctx.Classifier.IsInsideTaskLauncherLambda(call.Node) {
			continue
		}

		rep.reportf(call.Span(), "%s inside a launched task parks its thread; restructure to suspend instead", call.Callee())
	}
}
