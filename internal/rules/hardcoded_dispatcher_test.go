package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/rules"
	st "github.com/mouse-blink/cooplint/internal/syntax/syntaxtest"
)

func TestHardcodedDispatcher(t *testing.T) {
	t.Run("fires on a hardcoded selector at a context switch", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Call("withContext", st.Arg(st.Ident("Dispatchers.IO")), st.TrailingLambda()),
		))

		got := run(t, rules.HardcodedDispatcher, tree)
		require.Len(t, got, 1)
		require.Contains(t, got[0].Message, "Dispatchers.IO")
	})

	t.Run("fires on a launch argument", func(t *testing.T) {
		tree := st.File("a.kt", st.Fun("f",
			st.Call("launch",
				st.Recv(st.Ident("viewModelScope")),
				st.Arg(st.Ident("Dispatchers.Default")),
				st.TrailingLambda()),
		))

		require.Len(t, run(t, rules.HardcodedDispatcher, tree), 1)
	})

	t.Run("silent on an injected selector", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Call("withContext", st.Arg(st.Ident("ioDispatcher")), st.TrailingLambda()),
		))

		require.Empty(t, run(t, rules.HardcodedDispatcher, tree))
	})
}
