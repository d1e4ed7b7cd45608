package rules

import (
	"github.com/mouse-blink/cooplint/internal/classify"
	m "github.com/mouse-blink/cooplint/internal/model"
)

// GlobalScopeLaunch flags task launches on the unscoped global launcher.
// Tasks started there outlive every enclosing scope and are never
// cancelled with it.
var GlobalScopeLaunch = Rule{
	ID:        "SCOPE_001",
	Name:      "globalscope-launch",
	Severity:  m.SeverityError,
	Summary:   "task launched on the unscoped global launcher",
	DocAnchor: "rules#scope_001",
	run:       runGlobalScopeLaunch,
}

func runGlobalScopeLaunch(ctx *Context, rep *reporter) {
	for _, call := range ctx.Calls() {
		if !ctx.Classifier.IsTaskLauncher(call) {
			continue
		}

		recv, ok := call.Receiver()
		if !ok {
			continue
		}

		ref := ctx.Classifier.ClassifyScopeReceiver(recv)
		if ref.Kind != classify.ScopeGlobal {
			continue
		}

		rep.reportf(call.Span(), "%s on %s starts a task outside any structured scope; use a lifecycle-bound scope instead", call.Callee(), ref.Name)
	}
}
