// Package rules holds the detection rule catalog. Every rule is a pure
// function from a read-only RuleContext to a list of findings; no rule
// depends on another rule's output, which is what makes running them in
// parallel safe.
package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
)

// Rule is one independent detector in the catalog.
type Rule struct {
	// ID is the stable rule code embedded in every message, e.g. "SCOPE_001".
	ID string
	// Name is the short slug used for configuration and file naming.
	Name string
	// Severity is the default severity of the rule's findings.
	Severity m.Severity
	// Summary is a one-line description shown by the rules command.
	Summary string
	// DocAnchor points into the rule documentation.
	DocAnchor string

	run func(*Context, *reporter)
}

// NewRule builds a rule from a plain findings function. Hosts that
// embed the engine use it to run detectors beyond the built-in catalog.
func NewRule(id, name string, severity m.Severity, summary, docAnchor string, run func(*Context) []m.Finding) Rule {
	return Rule{
		ID:        id,
		Name:      name,
		Severity:  severity,
		Summary:   summary,
		DocAnchor: docAnchor,
		run: func(ctx *Context, rep *reporter) {
			rep.findings = append(rep.findings, run(ctx)...)
		},
	}
}

// Run applies the rule to one context and returns its findings.
func (r Rule) Run(ctx *Context) []m.Finding {
	rep := &reporter{rule: r}
	r.run(ctx, rep)

	return rep.findings
}

// reporter collects findings for a single rule invocation.
type reporter struct {
	rule     Rule
	findings []m.Finding
}

func (r *reporter) reportf(span m.Span, format string, args ...any) {
	r.findings = append(r.findings, m.NewFinding(r.rule.ID, r.rule.Severity, span, r.rule.DocAnchor, format, args...))
}

// All returns the full catalog in rule-id order.
func All() []Rule {
	return []Rule{
		GlobalScopeLaunch,
		InlineScopeLaunch,
		UnstructuredLaunch,
		RelaunchAfterCancel,
		DeferredNeverAwaited,
		RedundantAsyncAwait,
		BlockingBridgeInSuspend,
		NestedBlockingBridge,
		BlockingCallInCoroutine,
		UnconfinedDispatcher,
		HardcodedDispatcher,
		RedundantScopeWrap,
		TokenInBuilderContext,
		SwallowedCancellation,
		CancellationSubclass,
		SuspendInFinally,
		LoopWithoutCooperation,
		RedundantSuspend,
		ChannelNeverClosed,
		SharedExclusiveConsumer,
	}
}

// ByID returns the rule with the given id.
func ByID(id string) (Rule, bool) {
	for _, r := range All() {
		if r.ID == id {
			return r, true
		}
	}

	return Rule{}, false
}
