package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
)

// BlockingCallInCoroutine flags calls from the blocking-call registry
// made inside a task-launcher lambda or a suspendable function.
var BlockingCallInCoroutine = Rule{
	ID:        "BRIDGE_003",
	Name:      "blocking-call-in-coroutine",
	Severity:  m.SeverityWarning,
	Summary:   "known blocking call made in suspend context",
	DocAnchor: "rules#bridge_003",
	run:       runBlockingCallInCoroutine,
}

func runBlockingCallInCoroutine(ctx *Context, rep *reporter) {
	for _, call := range ctx.Calls() {
		if !ctx.Classifier.IsBlockingCall(call) {
			continue
		}

		if !ctx.Classifier.InSuspendContext(call.Node) && !ctx.Classifier.IsInsideTaskLauncherLambda(call.Node) {
			continue
		}

		rep.reportf(call.Span(), "blocking call %q in suspend context; use a suspending equivalent or shift it to a blocking-friendly executor", call.Callee())
	}
}
