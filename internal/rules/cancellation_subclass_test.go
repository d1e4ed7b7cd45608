package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/rules"
	st "github.com/mouse-blink/cooplint/internal/syntax/syntaxtest"
)

func TestCancellationSubclass(t *testing.T) {
	t.Run("fires on a cancellation-derived class", func(t *testing.T) {
		tree := st.File("a.kt",
			st.Class("ShutdownSignal", "CancellationException"),
		)

		got := run(t, rules.CancellationSubclass, tree)
		require.Len(t, got, 1)
		require.Contains(t, got[0].Message, `"ShutdownSignal"`)
	})

	t.Run("matches through a qualified supertype name", func(t *testing.T) {
		tree := st.File("a.kt",
			st.Class("ShutdownSignal", "kotlinx.coroutines.CancellationException"),
		)

		require.Len(t, run(t, rules.CancellationSubclass, tree), 1)
	})

	t.Run("silent on ordinary exception hierarchies", func(t *testing.T) {
		tree := st.File("a.kt",
			st.Class("ParseError", "Exception"),
			st.Class("Widget"),
		)

		require.Empty(t, run(t, rules.CancellationSubclass, tree))
	})
}
