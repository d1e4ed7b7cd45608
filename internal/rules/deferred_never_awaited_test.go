package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/rules"
	st "github.com/mouse-blink/cooplint/internal/syntax/syntaxtest"
)

func TestDeferredNeverAwaited(t *testing.T) {
	t.Run("fires on a binding that is never awaited", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Prop("result", st.Init(st.Call("async", st.TrailingLambda()))),
		))

		got := run(t, rules.DeferredNeverAwaited, tree)
		require.Len(t, got, 1)
		require.Contains(t, got[0].Message, `"result"`)
	})

	t.Run("fires on a discarded statement launch", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Call("async", st.Recv(st.Ident("viewModelScope")), st.TrailingLambda()),
		))

		got := run(t, rules.DeferredNeverAwaited, tree)
		require.Len(t, got, 1)
		require.Contains(t, got[0].Message, "discarded")
	})

	t.Run("silent when the binding is awaited", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Prop("result", st.Init(st.Call("async", st.TrailingLambda()))),
			st.Call("await", st.Recv(st.Ident("result"))),
		))

		require.Empty(t, run(t, rules.DeferredNeverAwaited, tree))
	})

	t.Run("silent when consumed by await-all", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Prop("first", st.Init(st.Call("async", st.TrailingLambda()))),
			st.Prop("second", st.Init(st.Call("async", st.TrailingLambda()))),
			st.Call("awaitAll", st.Arg(st.Ident("first")), st.Arg(st.Ident("second"))),
		))

		require.Empty(t, run(t, rules.DeferredNeverAwaited, tree))
	})

	t.Run("silent on the chained launch-await form", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Call("await", st.Recv(st.Call("async", st.TrailingLambda()))),
		))

		require.Empty(t, run(t, rules.DeferredNeverAwaited, tree))
	})

	t.Run("await in a different function does not consume", func(t *testing.T) {
		tree := st.File("a.kt",
			st.SuspendFun("f",
				st.Prop("result", st.Init(st.Call("async", st.TrailingLambda()))),
			),
			st.SuspendFun("g",
				st.Call("await", st.Recv(st.Ident("result"))),
			),
		)

		require.Len(t, run(t, rules.DeferredNeverAwaited, tree), 1)
	})
}
