package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/rules"
	st "github.com/mouse-blink/cooplint/internal/syntax/syntaxtest"
)

func TestNestedBlockingBridge(t *testing.T) {
	t.Run("fires inside a launched task", func(t *testing.T) {
		tree := st.File("a.kt", st.Fun("f",
			st.Call("launch", st.Recv(st.Ident("viewModelScope")), st.TrailingLambda(
				st.Call("runBlocking", st.TrailingLambda(st.Call("fetch"))),
			)),
		))

		got := run(t, rules.NestedBlockingBridge, tree)
		require.Len(t, got, 1)
	})

	t.Run("fires through intermediate structured scopes", func(t *testing.T) {
		tree := st.File("a.kt", st.Fun("f",
			st.Call("launch", st.Recv(st.Ident("viewModelScope")), st.TrailingLambda(
				st.Call("coroutineScope", st.TrailingLambda(
					st.Call("runBlocking", st.TrailingLambda()),
				)),
			)),
		))

		require.Len(t, run(t, rules.NestedBlockingBridge, tree), 1)
	})

	t.Run("silent at top level", func(t *testing.T) {
		tree := st.File("a.kt", st.Fun("main",
			st.Call("runBlocking", st.TrailingLambda(st.Call("fetch"))),
		))

		require.Empty(t, run(t, rules.NestedBlockingBridge, tree))
	})
}
