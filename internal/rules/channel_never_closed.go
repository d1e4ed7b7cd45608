package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
	"github.com/mouse-blink/cooplint/internal/syntax"
)

// ChannelNeverClosed flags channel bindings that are never closed in the
// function that created them. Receivers iterating the channel then
// suspend forever. Channels produced by an auto-closing builder manage
// their own lifecycle and are exempt.
var ChannelNeverClosed = Rule{
	ID:        "CHAN_001",
	Name:      "channel-never-closed",
	Severity:  m.SeverityWarning,
	Summary:   "channel constructed but never closed in its function",
	DocAnchor: "rules#chan_001",
	run:       runChannelNeverClosed,
}

func runChannelNeverClosed(ctx *Context, rep *reporter) {
	reg := ctx.Classifier.Registry()

	for _, prop := range ctx.Properties() {
		init, ok := prop.Initializer()
		if !ok {
			continue
		}

		ctor, ok := init.AsCall()
		if !ok {
			continue
		}

		if reg.AutoClosingProducers.Has(ctor.Callee()) {
			continue
		}

		if !reg.ChannelConstructors.Has(ctor.Callee()) {
			continue
		}

		if channelClosed(ctx, prop.Node, prop.Name()) {
			continue
		}

		rep.reportf(prop.Span(), "channel %q is never closed here; close it or build it with an auto-closing producer", prop.Name())
	}
}

// channelClosed reports whether a close call on the binding's identifier
// exists anywhere in the same function, regardless of intervening
// control flow.
func channelClosed(ctx *Context, binding syntax.Node, name string) bool {
	reg := ctx.Classifier.Registry()

	for _, call := range ctx.Calls() {
		if !reg.CloseNames.Has(call.Callee()) {
			continue
		}

		recv, ok := receiverName(call)
		if !ok || recv != name {
			continue
		}

		if sameFunction(binding, call.Node) {
			return true
		}
	}

	return false
}
