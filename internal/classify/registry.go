// Package classify implements the shared classification primitives the
// rule catalog is built on: scope classification, suspend-context
// detection, cooperation-point detection and control-flow ancestry
// checks. Everything is name-based; no type resolution is performed.
package classify

// NameSet is an immutable membership set of callee or identifier names.
type NameSet map[string]struct{}

// NewNameSet builds a set from the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

// Has reports membership.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]

	return ok
}

// With returns a copy of the set extended with more names.
func (s NameSet) With(names ...string) NameSet {
	out := make(NameSet, len(s)+len(names))

	for n := range s {
		out[n] = struct{}{}
	}

	for _, n := range names {
		out[n] = struct{}{}
	}

	return out
}

// Registry holds every name set classification relies on. It is an
// explicit immutable configuration value threaded into RuleContext
// construction; hosts extend it, they never mutate it.
type Registry struct {
	// GlobalScopeName is the well-known unscoped-global launcher literal.
	GlobalScopeName string

	// FrameworkScopeProperties are scope properties provided by a framework
	// and tied to a managed lifetime.
	FrameworkScopeProperties NameSet

	// FrameworkScopeFactories are factory functions returning a framework
	// managed scope.
	FrameworkScopeFactories NameSet

	// ScopeAnnotations mark a parameter or property as an injected,
	// lifecycle-managed scope.
	ScopeAnnotations NameSet

	// ScopeConstructors create a fresh scope inline.
	ScopeConstructors NameSet

	// Launchers start a new concurrently scheduled unit of work.
	Launchers NameSet

	// ValueLaunchers are launchers whose result must be consumed.
	ValueLaunchers NameSet

	// Builders open a nested structured scope and suspend until it completes.
	Builders NameSet

	// CooperationPoints let a suspendable function observe cancellation.
	CooperationPoints NameSet

	// BlockingCalls is the fixed registry of run-to-completion blocking names.
	BlockingCalls NameSet

	// AwaitCalls consume the result of a value-returning launch.
	AwaitCalls NameSet

	// ExclusiveConsumers take single-consumer ownership of a channel.
	ExclusiveConsumers NameSet

	// ChannelConstructors create a message channel with an explicit lifecycle.
	ChannelConstructors NameSet

	// AutoClosingProducers create channels closed by the builder itself.
	AutoClosingProducers NameSet

	// TokenConstructors create fresh cancellation tokens.
	TokenConstructors NameSet

	// CancelNames and CloseNames are the lifecycle calls on scopes and channels.
	CancelNames NameSet
	CloseNames  NameSet

	// BlockingBridge is the run-to-completion bridge into suspendable code.
	BlockingBridge string

	// ContextSwitchCall re-parents execution onto another context.
	ContextSwitchCall string

	// NonCancellableMarker is the context element disabling cancellation.
	NonCancellableMarker string

	// CancellationTypes name the cancellation-signal exception.
	CancellationTypes NameSet

	// BroadCatchTypes are catch targets wide enough to swallow cancellation.
	BroadCatchTypes NameSet

	// UnconfinedNames denote the caller-thread executor constant.
	UnconfinedNames NameSet

	// HardcodedDispatchers are executor-selector constants that should be
	// injected rather than referenced directly.
	HardcodedDispatchers NameSet

	// OptInAnnotations suppress the unstructured-launch rule at the caller.
	OptInAnnotations NameSet

	// EntryPoints are function names exempt from the blocking-bridge rule.
	EntryPoints NameSet

	// TestAnnotations mark test entry points, also exempt from the
	// blocking-bridge rule.
	TestAnnotations NameSet
}

// Default returns the built-in registry seeded with the
// kotlinx.coroutines vocabulary.
func Default() Registry {
	return Registry{
		GlobalScopeName:          "GlobalScope",
		FrameworkScopeProperties: NewNameSet("viewModelScope", "lifecycleScope"),
		FrameworkScopeFactories:  NewNameSet("MainScope", "rememberCoroutineScope"),
		ScopeAnnotations:         NewNameSet("ApplicationScope", "ManagedScope"),
		ScopeConstructors:        NewNameSet("CoroutineScope"),
		Launchers:                NewNameSet("launch", "async", "actor"),
		ValueLaunchers:           NewNameSet("async"),
		Builders:                 NewNameSet("coroutineScope", "supervisorScope", "withContext", "runBlocking", "withTimeout", "withTimeoutOrNull"),
		CooperationPoints:        NewNameSet("yield", "ensureActive", "delay", "withTimeout", "withTimeoutOrNull", "awaitCancellation", "suspendCancellableCoroutine"),
		BlockingCalls:            NewNameSet("sleep", "readLine", "readBytes", "readText", "writeText", "awaitTermination"),
		AwaitCalls:               NewNameSet("await", "awaitAll"),
		ExclusiveConsumers:       NewNameSet("consume", "consumeEach"),
		ChannelConstructors:      NewNameSet("Channel"),
		AutoClosingProducers:     NewNameSet("produce"),
		TokenConstructors:        NewNameSet("Job", "SupervisorJob"),
		CancelNames:              NewNameSet("cancel"),
		CloseNames:               NewNameSet("close"),
		BlockingBridge:           "runBlocking",
		ContextSwitchCall:        "withContext",
		NonCancellableMarker:     "NonCancellable",
		CancellationTypes:        NewNameSet("CancellationException"),
		BroadCatchTypes:          NewNameSet("Exception", "Throwable"),
		UnconfinedNames:          NewNameSet("Dispatchers.Unconfined", "Unconfined"),
		HardcodedDispatchers:     NewNameSet("Dispatchers.IO", "Dispatchers.Default", "Dispatchers.Main"),
		OptInAnnotations:         NewNameSet("OptIn", "DelicateCoroutinesApi"),
		EntryPoints:              NewNameSet("main"),
		TestAnnotations:          NewNameSet("Test"),
	}
}

// Extensions is the allow-list surface a host supplies at
// RuleContext-construction time. Entries extend the built-in registries;
// nothing is ever replaced or removed.
type Extensions struct {
	FrameworkScopes   []string `mapstructure:"frameworkScopes" json:"frameworkScopes"`
	ScopeAnnotations  []string `mapstructure:"scopeAnnotations" json:"scopeAnnotations"`
	CooperationPoints []string `mapstructure:"cooperationPoints" json:"cooperationPoints"`
	BlockingCalls     []string `mapstructure:"blockingCalls" json:"blockingCalls"`
	OptInAnnotations  []string `mapstructure:"optInAnnotations" json:"optInAnnotations"`
}

// Extend returns a new registry with the allow-lists merged in.
func (r Registry) Extend(ext Extensions) Registry {
	out := r
	out.FrameworkScopeProperties = r.FrameworkScopeProperties.With(ext.FrameworkScopes...)
	out.ScopeAnnotations = r.ScopeAnnotations.With(ext.ScopeAnnotations...)
	out.CooperationPoints = r.CooperationPoints.With(ext.CooperationPoints...)
	out.BlockingCalls = r.BlockingCalls.With(ext.BlockingCalls...)
	out.OptInAnnotations = r.OptInAnnotations.With(ext.OptInAnnotations...)

	return out
}
