package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
	"github.com/mouse-blink/cooplint/internal/syntax"
)

// HardcodedDispatcher flags executor-selector constants referenced
// directly at a launch or context switch. Injecting the selector keeps
// the code schedulable in tests.
var HardcodedDispatcher = Rule{
	ID:        "DISPATCH_002",
	Name:      "hardcoded-dispatcher",
	Severity:  m.SeverityWarning,
	Summary:   "executor selector hardcoded at the use site",
	DocAnchor: "rules#dispatch_002",
	run:       runHardcodedDispatcher,
}

func runHardcodedDispatcher(ctx *Context, rep *reporter) {
	for _, call := range ctx.Calls() {
		if !takesExecutorSelector(ctx, call) {
			continue
		}

		for _, arg := range call.Arguments() {
			if arg.Kind() != syntax.KindIdentifier {
				continue
			}

			if ctx.Classifier.IsHardcodedDispatcher(arg.Name()) {
				rep.reportf(arg.Span(), "%s is hardcoded; inject the executor selector so tests can substitute it", arg.Name())
			}
		}
	}
}
