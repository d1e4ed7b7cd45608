package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
	"github.com/mouse-blink/cooplint/internal/syntax"
)

// RedundantSuspend flags suspendable functions that provably contain no
// suspension point. The check is deliberately narrow: only bodies with
// zero call expressions qualify, since any unresolved call could
// suspend. Narrowness trades recall for zero false positives.
var RedundantSuspend = Rule{
	ID:        "SUSP_001",
	Name:      "redundant-suspend",
	Severity:  m.SeverityWarning,
	Summary:   "suspendable function with no suspension point",
	DocAnchor: "rules#susp_001",
	run:       runRedundantSuspend,
}

func runRedundantSuspend(ctx *Context, rep *reporter) {
	for _, fn := range ctx.Functions() {
		if !fn.IsSuspendable() {
			continue
		}

		body, ok := fn.Body()
		if !ok {
			continue
		}

		hasCall := false

		walk(body, func(n syntax.Node) bool {
			if n.Kind() == syntax.KindCall {
				hasCall = true

				return false
			}

			return true
		})

		if hasCall {
			continue
		}

		rep.reportf(fn.Span(), "suspendable function %q never suspends; drop the suspend marker", fn.Name())
	}
}

// walk visits the subtree rooted at n in document order.
func walk(n syntax.Node, fn func(syntax.Node) bool) {
	if !fn(n) {
		return
	}

	for _, c := range n.Children() {
		walk(c, fn)
	}
}
