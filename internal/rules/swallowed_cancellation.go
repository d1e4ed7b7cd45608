package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
	"github.com/mouse-blink/cooplint/internal/syntax"
)

// SwallowedCancellation flags a broadly typed catch clause in suspend
// context with no earlier sibling clause targeting the cancellation
// signal. A broad catch that eats the signal keeps the task running
// after its scope was cancelled.
var SwallowedCancellation = Rule{
	ID:        "CANCEL_001",
	Name:      "swallowed-cancellation",
	Severity:  m.SeverityError,
	Summary:   "broad catch swallows the cancellation signal in suspend context",
	DocAnchor: "rules#cancel_001",
	run:       runSwallowedCancellation,
}

func runSwallowedCancellation(ctx *Context, rep *reporter) {
	ctx.Tree.Walk(func(n syntax.Node) bool {
		tryNode, ok := n.AsTry()
		if !ok {
			return true
		}

		if !ctx.Classifier.InSuspendContext(tryNode.Node) {
			return true
		}

		for _, clause := range tryNode.CatchClauses() {
			if !ctx.Classifier.IsBroadCatchType(clause.Name()) {
				continue
			}

			if hasEarlierRethrowingCancellationCatch(ctx, tryNode, clause) {
				continue
			}

			rep.reportf(clause.Span(), "catch of %s in suspend context swallows the cancellation signal; catch and rethrow it first", clause.Name())
		}

		return true
	})
}

// hasEarlierRethrowingCancellationCatch reports whether a sibling
// clause before broad targets the cancellation-signal type and passes
// the signal on. A clause that catches the type but only logs still
// eats the signal, so it does not clear the broad catch.
func hasEarlierRethrowingCancellationCatch(ctx *Context, tryNode syntax.Try, broad syntax.Node) bool {
	for _, clause := range tryNode.CatchClauses() {
		if clause.ID() == broad.ID() {
			return false
		}

		if ctx.Classifier.IsCancellationType(clause.Name()) && clauseRethrows(clause) {
			return true
		}
	}

	return false
}

// clauseRethrows reports whether the clause body contains a throw
// statement. Throws inside nested lambdas or local functions escape a
// different frame and do not count.
func clauseRethrows(clause syntax.Node) bool {
	found := false

	walkPruningNestedFunctions(clause, func(n syntax.Node) bool {
		if n.Kind() == syntax.KindThrow {
			found = true

			return false
		}

		return true
	})

	return found
}
