package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
)

// RedundantScopeWrap flags a structured-builder body holding exactly one
// top-level task launch and nothing else. The wrapper waits for a single
// child it did not need to create.
var RedundantScopeWrap = Rule{
	ID:        "BUILD_001",
	Name:      "redundant-scope-wrap",
	Severity:  m.SeverityWarning,
	Summary:   "structured scope wrapping a single task launch",
	DocAnchor: "rules#build_001",
	run:       runRedundantScopeWrap,
}

func runRedundantScopeWrap(ctx *Context, rep *reporter) {
	reg := ctx.Classifier.Registry()

	for _, call := range ctx.Calls() {
		if !ctx.Classifier.IsStructuredBuilder(call) {
			continue
		}

		// The context-switch, bridge and timeout forms change execution
		// semantics, so wrapping a single launch in them is meaningful.
		name := call.Callee()
		if name == reg.ContextSwitchCall || name == reg.BlockingBridge || reg.CooperationPoints.Has(name) {
			continue
		}

		lambda, ok := call.TrailingLambda()
		if !ok {
			continue
		}

		stmts := statementsOf(lambda.Body())
		if len(stmts) != 1 {
			continue
		}

		only, ok := stmts[0].AsCall()
		if !ok || !ctx.Classifier.IsTaskLauncher(only) {
			continue
		}

		rep.reportf(call.Span(), "%s wraps a single %s and nothing else; drop the wrapper or launch more than one child", call.Callee(), only.Callee())
	}
}
