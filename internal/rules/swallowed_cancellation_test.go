package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/cooplint/internal/model"
	"github.com/mouse-blink/cooplint/internal/rules"
	st "github.com/mouse-blink/cooplint/internal/syntax/syntaxtest"
)

func TestSwallowedCancellation(t *testing.T) {
	t.Run("fires on a broad catch in suspend context", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Try(
				st.TryBlock(st.Call("fetch")),
				st.Catch("Exception", st.Call("log")),
			),
		))

		got := run(t, rules.SwallowedCancellation, tree)
		require.Len(t, got, 1)
		require.Equal(t, m.SeverityError, got[0].Severity)
		require.Contains(t, got[0].Message, "Exception")
	})

	t.Run("an earlier rethrowing cancellation clause clears the broad catch", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Try(
				st.TryBlock(st.Call("fetch")),
				st.Catch("CancellationException", st.Throw(st.Ident("e"))),
				st.Catch("Exception", st.Call("log")),
			),
		))

		require.Empty(t, run(t, rules.SwallowedCancellation, tree))
	})

	t.Run("an earlier cancellation clause that only logs does not clear it", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Try(
				st.TryBlock(st.Call("work")),
				st.Catch("CancellationException", st.Call("log")),
				st.Catch("Exception", st.Call("log")),
			),
		))

		got := run(t, rules.SwallowedCancellation, tree)
		require.Len(t, got, 1)
		require.Contains(t, got[0].Message, "Exception")
	})

	t.Run("a throw inside a nested lambda does not count as rethrowing", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Try(
				st.TryBlock(st.Call("work")),
				st.Catch("CancellationException",
					st.Call("runLater", st.TrailingLambda(st.Throw(st.Ident("e")))),
				),
				st.Catch("Exception", st.Call("log")),
			),
		))

		require.Len(t, run(t, rules.SwallowedCancellation, tree), 1)
	})

	t.Run("clause order matters", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Try(
				st.TryBlock(st.Call("fetch")),
				st.Catch("Throwable", st.Call("log")),
				st.Catch("CancellationException", st.Call("rethrow")),
			),
		))

		require.Len(t, run(t, rules.SwallowedCancellation, tree), 1)
	})

	t.Run("silent outside suspend context", func(t *testing.T) {
		tree := st.File("a.kt", st.Fun("f",
			st.Try(
				st.TryBlock(st.Call("parse")),
				st.Catch("Exception", st.Call("log")),
			),
		))

		require.Empty(t, run(t, rules.SwallowedCancellation, tree))
	})

	t.Run("narrow catches never match", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Try(
				st.TryBlock(st.Call("fetch")),
				st.Catch("IOException", st.Call("retry")),
			),
		))

		require.Empty(t, run(t, rules.SwallowedCancellation, tree))
	})
}
