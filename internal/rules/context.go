package rules

import (
	"sort"

	"github.com/mouse-blink/cooplint/internal/classify"
	"github.com/mouse-blink/cooplint/internal/syntax"
)

// Context is the read-only facade over one file's tree plus the indices
// every rule shares. It is built once per file in a single traversal,
// never mutated afterwards and never reused across files.
type Context struct {
	Tree       *syntax.Tree
	Classifier *classify.Classifier

	calls      []syntax.Call
	functions  []syntax.Function
	classes    []syntax.Class
	properties []syntax.Property
	loops      []syntax.Loop

	// channelConsumers maps a channel binding name to the exclusive-consume
	// call sites referencing it, in document order.
	channelConsumers map[string][]syntax.Call
}

// NewContext builds the context for one tree.
func NewContext(tree *syntax.Tree, classifier *classify.Classifier) *Context {
	ctx := &Context{
		Tree:             tree,
		Classifier:       classifier,
		channelConsumers: make(map[string][]syntax.Call),
	}

	tree.Walk(func(n syntax.Node) bool {
		switch n.Kind() {
		case syntax.KindCall:
			call, _ := n.AsCall()
			ctx.calls = append(ctx.calls, call)
			ctx.indexConsumer(call)

		case syntax.KindFunction:
			fn, _ := n.AsFunction()
			ctx.functions = append(ctx.functions, fn)

		case syntax.KindClass:
			cls, _ := n.AsClass()
			ctx.classes = append(ctx.classes, cls)

		case syntax.KindProperty:
			prop, _ := n.AsProperty()
			ctx.properties = append(ctx.properties, prop)

		case syntax.KindLoop:
			loop, _ := n.AsLoop()
			ctx.loops = append(ctx.loops, loop)
		}

		return true
	})

	return ctx
}

func (c *Context) indexConsumer(call syntax.Call) {
	if !c.Classifier.Registry().ExclusiveConsumers.Has(call.Callee()) {
		return
	}

	recv, ok := call.Receiver()
	if !ok || recv.Kind() != syntax.KindIdentifier {
		return
	}

	name := recv.Name()
	c.channelConsumers[name] = append(c.channelConsumers[name], call)
}

// Calls returns every call expression in document order.
func (c *Context) Calls() []syntax.Call { return c.calls }

// Functions returns every function declaration in document order.
func (c *Context) Functions() []syntax.Function { return c.functions }

// Classes returns every class declaration in document order.
func (c *Context) Classes() []syntax.Class { return c.classes }

// Properties returns every property declaration in document order.
func (c *Context) Properties() []syntax.Property { return c.properties }

// Loops returns every loop statement in document order.
func (c *Context) Loops() []syntax.Loop { return c.loops }

// ChannelConsumers returns the exclusive-consume call sites for a
// channel binding name.
func (c *Context) ChannelConsumers(binding string) []syntax.Call {
	return c.channelConsumers[binding]
}

// ConsumedChannels returns the channel binding names that have at least
// one exclusive-consume call site, in sorted order.
func (c *Context) ConsumedChannels() []string {
	out := make([]string, 0, len(c.channelConsumers))
	for name := range c.channelConsumers {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}
