package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
	"github.com/mouse-blink/cooplint/internal/syntax"
)

// LoopWithoutCooperation flags suspend-context loops whose direct body
// contains no cooperation point. Such a loop never observes pending
// cancellation and can spin forever after its scope is gone.
//
// Only the loop's own subtree counts: calls inside nested lambdas or
// local functions run elsewhere.
var LoopWithoutCooperation = Rule{
	ID:        "LOOP_001",
	Name:      "loop-without-cooperation",
	Severity:  m.SeverityWarning,
	Summary:   "suspend-context loop body without a cooperation point",
	DocAnchor: "rules#loop_001",
	run:       runLoopWithoutCooperation,
}

func runLoopWithoutCooperation(ctx *Context, rep *reporter) {
	for _, loop := range ctx.Loops() {
		if !ctx.Classifier.InSuspendContext(loop.Node) {
			continue
		}

		cooperates := false

		walkPruningNestedFunctions(loop.Body(), func(n syntax.Node) bool {
			if cooperates {
				return false
			}

			if call, ok := n.AsCall(); ok && ctx.Classifier.IsCooperationPoint(call) {
				cooperates = true

				return false
			}

			return true
		})

		if cooperates {
			continue
		}

		rep.reportf(loop.Span(), "loop in suspend context never yields or checks cancellation; add a cooperation point to its body")
	}
}
