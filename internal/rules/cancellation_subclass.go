package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
)

// CancellationSubclass flags class declarations extending the
// cancellation-signal type. Throwing such a subclass is indistinguishable
// from real cancellation and corrupts lifecycle bookkeeping.
var CancellationSubclass = Rule{
	ID:        "CANCEL_002",
	Name:      "cancellation-subclass",
	Severity:  m.SeverityError,
	Summary:   "class derives from the cancellation-signal exception",
	DocAnchor: "rules#cancel_002",
	run:       runCancellationSubclass,
}

func runCancellationSubclass(ctx *Context, rep *reporter) {
	for _, cls := range ctx.Classes() {
		for _, super := range cls.SupertypeNames() {
			if !ctx.Classifier.IsCancellationType(super) {
				continue
			}

			rep.reportf(cls.Span(), "%q extends %s; cancellation must stay a distinct signal, derive from a plain exception instead", cls.Name(), super)
		}
	}
}
