package rules

import (
	m "github.com/mouse-blink/cooplint/internal/model"
	"github.com/mouse-blink/cooplint/internal/syntax"
)

// SharedExclusiveConsumer flags two or more launch sites in the same
// function taking exclusive-consumer ownership of the same channel
// binding. Exclusive consumption cancels the channel when one consumer
// finishes, starving the others.
//
// Matching is syntactic: same function, same identifier, no alias
// analysis.
var SharedExclusiveConsumer = Rule{
	ID:        "CHAN_002",
	Name:      "shared-exclusive-consumer",
	Severity:  m.SeverityError,
	Summary:   "same channel consumed exclusively from several launch sites",
	DocAnchor: "rules#chan_002",
	run:       runSharedExclusiveConsumer,
}

type consumerSite struct {
	call     syntax.Call   // the exclusive-consume call
	launch   syntax.NodeID // the launch site owning it
	function syntax.NodeID
}

func runSharedExclusiveConsumer(ctx *Context, rep *reporter) {
	for _, binding := range ctx.ConsumedChannels() {
		var list []consumerSite

		for _, call := range ctx.ChannelConsumers(binding) {
			launch, ok := nearestLauncherSite(ctx, call.Node)
			if !ok {
				continue
			}

			list = append(list, consumerSite{
				call:     call,
				launch:   launch,
				function: enclosingFunctionID(ctx.Tree.NodeAt(launch)),
			})
		}

		for _, site := range list {
			if countDistinctLaunches(list, site.function) < 2 {
				continue
			}

			rep.reportf(site.call.Span(), "channel %q is consumed exclusively by more than one launched task; give each task its own channel", binding)
		}
	}
}

// countDistinctLaunches counts distinct launch sites within one function.
func countDistinctLaunches(list []consumerSite, function syntax.NodeID) int {
	seen := make(map[syntax.NodeID]struct{})

	for _, site := range list {
		if site.function == function {
			seen[site.launch] = struct{}{}
		}
	}

	return len(seen)
}
