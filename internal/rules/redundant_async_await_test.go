package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/rules"
	st "github.com/mouse-blink/cooplint/internal/syntax/syntaxtest"
)

func TestRedundantAsyncAwait(t *testing.T) {
	t.Run("fires on an immediately awaited launch", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Call("await", st.Recv(st.Call("async", st.TrailingLambda()))),
		))

		got := run(t, rules.RedundantAsyncAwait, tree)
		require.Len(t, got, 1)
		require.Contains(t, got[0].Message, "async")
	})

	t.Run("silent on awaiting a stored binding", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Call("await", st.Recv(st.Ident("deferred"))),
		))

		require.Empty(t, run(t, rules.RedundantAsyncAwait, tree))
	})

	t.Run("silent when the receiver launch has no lambda body", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Call("await", st.Recv(st.Call("async"))),
		))

		require.Empty(t, run(t, rules.RedundantAsyncAwait, tree))
	})
}
