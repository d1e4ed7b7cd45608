package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
)

// TokenInBuilderContext flags a fresh cancellation-token constructor
// passed as the context argument of a launch or builder. The new token
// severs the parent-child link, so cancellation no longer propagates.
var TokenInBuilderContext = Rule{
	ID:        "BUILD_002",
	Name:      "token-in-builder-context",
	Severity:  m.SeverityError,
	Summary:   "fresh cancellation token passed as a builder context",
	DocAnchor: "rules#build_002",
	run:       runTokenInBuilderContext,
}

func runTokenInBuilderContext(ctx *Context, rep *reporter) {
	reg := ctx.Classifier.Registry()

	for _, call := range ctx.Calls() {
		if !ctx.Classifier.IsTaskLauncher(call) && !ctx.Classifier.IsStructuredBuilder(call) {
			continue
		}

		for _, arg := range call.Arguments() {
			token, ok := arg.AsCall()
			if !ok || !reg.TokenConstructors.Has(token.Callee()) {
				continue
			}

			rep.reportf(arg.Span(), "%s() passed to %s breaks structured cancellation; the task no longer follows its parent", token.Callee(), call.Callee())
		}
	}
}
