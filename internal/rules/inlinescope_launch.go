package rules

import (
	"github.com/mouse-blink/cooplint/internal/classify"
	m "github.com/mouse-blink/cooplint/internal/model"
)

// InlineScopeLaunch flags launch sites whose receiver constructs a fresh
// scope inline. Such a scope has no owner, so nothing ever cancels it.
var InlineScopeLaunch = Rule{
	ID:        "SCOPE_002",
	Name:      "inlinescope-launch",
	Severity:  m.SeverityWarning,
	Summary:   "task launched on a scope constructed at the launch site",
	DocAnchor: "rules#scope_002",
	run:       runInlineScopeLaunch,
}

func runInlineScopeLaunch(ctx *Context, rep *reporter) {
	for _, call := range ctx.Calls() {
		if !ctx.Classifier.IsTaskLauncher(call) && !ctx.Classifier.IsStructuredBuilder(call) {
			continue
		}

		recv, ok := call.Receiver()
		if !ok {
			continue
		}

		ref := ctx.Classifier.ClassifyScopeReceiver(recv)
		if ref.Kind != classify.ScopeInline {
			continue
		}

		rep.reportf(call.Span(), "%s on an inline %s(...) leaves the new scope without an owner to cancel it", call.Callee(), ref.Name)
	}
}
