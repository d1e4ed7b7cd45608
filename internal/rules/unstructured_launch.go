package rules

import (
	"github.com/mouse-blink/cooplint/internal/classify"
	m "github.com/mouse-blink/cooplint/internal/model"
)

// UnstructuredLaunch flags launches on receivers that classify as
// neither global, framework, annotated nor inline. The caller can opt
// in with an accepted annotation when the scope is managed elsewhere.
var UnstructuredLaunch = Rule{
	ID:        "SCOPE_003",
	Name:      "unstructured-launch",
	Severity:  m.SeverityWarning,
	Summary:   "task launched on a scope with no recognizable lifecycle",
	DocAnchor: "rules#scope_003",
	run:       runUnstructuredLaunch,
}

func runUnstructuredLaunch(ctx *Context, rep *reporter) {
	for _, call := range ctx.Calls() {
		if !ctx.Classifier.IsTaskLauncher(call) {
			continue
		}

		recv, ok := call.Receiver()
		if !ok {
			continue
		}

		if ctx.Classifier.ClassifyScopeReceiver(recv).Kind != classify.ScopeUnclassified {
			continue
		}

		if ctx.Classifier.HasOptInAnnotation(call.Node) {
			continue
		}

		rep.reportf(call.Span(), "%s on %q: the scope's lifecycle cannot be verified; bind it to a managed lifetime or opt in explicitly", call.Callee(), recv.Name())
	}
}
