package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
)

// RedundantAsyncAwait flags a value-returning launch that is awaited
// immediately. The wrap adds a task switch for nothing; the body could
// simply be called in place.
var RedundantAsyncAwait = Rule{
	ID:        "ASYNC_002",
	Name:      "redundant-async-await",
	Severity:  m.SeverityWarning,
	Summary:   "value-returning launch awaited immediately at the launch site",
	DocAnchor: "rules#async_002",
	run:       runRedundantAsyncAwait,
}

func runRedundantAsyncAwait(ctx *Context, rep *reporter) {
	for _, call := range ctx.Calls() {
		if !ctx.Classifier.Registry().AwaitCalls.Has(call.Callee()) {
			continue
		}

		recv, ok := call.Receiver()
		if !ok {
			continue
		}

		inner, ok := recv.AsCall()
		if !ok || !ctx.Classifier.IsValueLauncher(inner) {
			continue
		}

		if _, ok := inner.TrailingLambda(); !ok {
			continue
		}

		rep.reportf(call.Span(), "%s { ... }.%s() runs sequentially; call the body directly", inner.Callee(), call.Callee())
	}
}
