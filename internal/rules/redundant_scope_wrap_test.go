package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/rules"
	st "github.com/mouse-blink/cooplint/internal/syntax/syntaxtest"
)

func TestRedundantScopeWrap(t *testing.T) {
	t.Run("fires on a builder wrapping exactly one launch", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Call("coroutineScope", st.TrailingLambda(
				st.Call("launch", st.TrailingLambda(st.Call("work"))),
			)),
		))

		got := run(t, rules.RedundantScopeWrap, tree)
		require.Len(t, got, 1)
		require.Contains(t, got[0].Message, "coroutineScope")
	})

	t.Run("silent with more than one child", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Call("coroutineScope", st.TrailingLambda(
				st.Call("launch", st.TrailingLambda()),
				st.Call("launch", st.TrailingLambda()),
			)),
		))

		require.Empty(t, run(t, rules.RedundantScopeWrap, tree))
	})

	t.Run("silent when the single statement is not a launch", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Call("supervisorScope", st.TrailingLambda(
				st.Call("work"),
			)),
		))

		require.Empty(t, run(t, rules.RedundantScopeWrap, tree))
	})

	t.Run("semantics-changing wrappers are exempt", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Call("withContext", st.Arg(st.Ident("ioDispatcher")), st.TrailingLambda(
				st.Call("launch", st.TrailingLambda()),
			)),
			st.Call("withTimeout", st.TrailingLambda(
				st.Call("launch", st.TrailingLambda()),
			)),
		))

		require.Empty(t, run(t, rules.RedundantScopeWrap, tree))
	})
}
