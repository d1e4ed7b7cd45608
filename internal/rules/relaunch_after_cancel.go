package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
)

// RelaunchAfterCancel flags a launch on a receiver that was cancelled
// earlier in the same function. A cancelled scope's token is completed;
// tasks launched on it are dropped silently.
//
// Matching is purely syntactic: same function, same identifier, no
// alias or branch analysis.
var RelaunchAfterCancel = Rule{
	ID:        "SCOPE_004",
	Name:      "relaunch-after-cancel",
	Severity:  m.SeverityWarning,
	Summary:   "task launched on a scope cancelled earlier in the same function",
	DocAnchor: "rules#scope_004",
	run:       runRelaunchAfterCancel,
}

func runRelaunchAfterCancel(ctx *Context, rep *reporter) {
	reg := ctx.Classifier.Registry()

	for _, launch := range ctx.Calls() {
		if !ctx.Classifier.IsTaskLauncher(launch) {
			continue
		}

		target, ok := receiverName(launch)
		if !ok {
			continue
		}

		for _, cancel := range ctx.Calls() {
			if !reg.CancelNames.Has(cancel.Callee()) {
				continue
			}

			cancelled, ok := receiverName(cancel)
			if !ok || cancelled != target {
				continue
			}

			if !sameFunction(cancel.Node, launch.Node) {
				continue
			}

			if !cancel.Span().Before(launch.Span()) {
				continue
			}

			rep.reportf(launch.Span(), "%s on %q after it was cancelled; the new task will never run", launch.Callee(), target)

			break
		}
	}
}
