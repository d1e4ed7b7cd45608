package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
	"github.com/mouse-blink/cooplint/internal/syntax"
)

// UnconfinedDispatcher flags executor-selector arguments that pin a task
// to whichever thread resumes it. Resumption order becomes unpredictable
// and thread-confinement assumptions silently break.
var UnconfinedDispatcher = Rule{
	ID:        "DISPATCH_001",
	Name:      "unconfined-dispatcher",
	Severity:  m.SeverityWarning,
	Summary:   "caller-thread executor selected for a task",
	DocAnchor: "rules#dispatch_001",
	run:       runUnconfinedDispatcher,
}

func runUnconfinedDispatcher(ctx *Context, rep *reporter) {
	for _, call := range ctx.Calls() {
		if !takesExecutorSelector(ctx, call) {
			continue
		}

		for _, arg := range call.Arguments() {
			if arg.Kind() != syntax.KindIdentifier {
				continue
			}

			if ctx.Classifier.IsUnconfinedSelector(arg.Name()) {
				rep.reportf(arg.Span(), "%s runs the task on whichever thread resumes it; pick an explicit executor", arg.Name())
			}
		}
	}
}

// takesExecutorSelector reports whether the call accepts an
// executor-selector argument: launchers, structured builders and the
// context-switch call do.
func takesExecutorSelector(ctx *Context, call syntax.Call) bool {
	return ctx.Classifier.IsTaskLauncher(call) ||
		ctx.Classifier.IsStructuredBuilder(call) ||
		call.Callee() == ctx.Classifier.Registry().ContextSwitchCall
}
