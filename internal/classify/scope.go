package classify

import "github.com/mouse-blink/cooplint/internal/syntax"

// ScopeKind tags the variant of a classified scope receiver.
type ScopeKind uint8

const (
	// ScopeUnclassified is the conservative fallback; rules treat it as
	// "do not report" unless a rule exists specifically for it.
	ScopeUnclassified ScopeKind = iota
	// ScopeGlobal is the well-known unscoped-global launcher.
	ScopeGlobal
	// ScopeFramework is a framework-provided, lifecycle-bound scope.
	ScopeFramework
	// ScopeAnnotated is a binding opted in via a scope annotation.
	ScopeAnnotated
	// ScopeInline is a scope constructed inline at the launch site.
	ScopeInline
)

// String implements fmt.Stringer for diagnostics and tests.
func (k ScopeKind) String() string {
	switch k {
	case ScopeGlobal:
		return "global"
	case ScopeFramework:
		return "framework"
	case ScopeAnnotated:
		return "annotated"
	case ScopeInline:
		return "inline"
	default:
		return "unclassified"
	}
}

// ScopeReference is the classification result for one launch receiver.
// Exactly one variant applies per analyzed receiver.
type ScopeReference struct {
	Kind ScopeKind
	// Name is the matched scope name for the framework and inline variants.
	Name string
}

// ClassifyScopeReceiver classifies the receiver of a task-launch call.
// Tie-break order: unscoped-global literal, framework name, annotation,
// inline construction; first match wins. Anything unresolvable degrades
// to ScopeUnclassified; classification never errors.
func (c *Classifier) ClassifyScopeReceiver(n syntax.Node) ScopeReference {
	if !n.Valid() {
		return ScopeReference{Kind: ScopeUnclassified}
	}

	switch n.Kind() {
	case syntax.KindIdentifier:
		name := n.Name()

		if name == c.reg.GlobalScopeName {
			return ScopeReference{Kind: ScopeGlobal, Name: name}
		}

		if c.reg.FrameworkScopeProperties.Has(name) || c.reg.FrameworkScopeProperties.Has(lastSegment(name)) {
			return ScopeReference{Kind: ScopeFramework, Name: lastSegment(name)}
		}

		if c.bindingHasScopeAnnotation(n, name) {
			return ScopeReference{Kind: ScopeAnnotated, Name: name}
		}

	case syntax.KindCall:
		call, _ := n.AsCall()

		if c.reg.FrameworkScopeFactories.Has(call.Callee()) {
			return ScopeReference{Kind: ScopeFramework, Name: call.Callee()}
		}

		if c.reg.ScopeConstructors.Has(call.Callee()) {
			return ScopeReference{Kind: ScopeInline, Name: call.Callee()}
		}
	}

	return ScopeReference{Kind: ScopeUnclassified}
}

// bindingHasScopeAnnotation looks for a same-file property or parameter
// declaration with the receiver's name carrying a scope annotation.
// Name-based fallback; shadowed names may produce a false negative,
// never a false positive for other rules.
func (c *Classifier) bindingHasScopeAnnotation(n syntax.Node, name string) bool {
	tree := n.Tree()
	if tree == nil {
		return false
	}

	found := false

	tree.Walk(func(decl syntax.Node) bool {
		if found {
			return false
		}

		kind := decl.Kind()
		if kind != syntax.KindProperty && kind != syntax.KindParameter {
			return true
		}

		if decl.Name() != name {
			return true
		}

		for _, a := range decl.ChildrenByRole(syntax.RoleAnnotation) {
			if c.reg.ScopeAnnotations.Has(a.Name()) {
				found = true

				return false
			}
		}

		return true
	})

	return found
}

func lastSegment(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i+1:]
		}
	}

	return name
}
