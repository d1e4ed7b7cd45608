package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/cooplint/internal/model"
	"github.com/mouse-blink/cooplint/internal/rules"
	"github.com/mouse-blink/cooplint/internal/syntax"
	st "github.com/mouse-blink/cooplint/internal/syntax/syntaxtest"
)

func TestBlockingBridgeInSuspend(t *testing.T) {
	t.Run("fires inside a suspendable function", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("load",
			st.Call("runBlocking", st.TrailingLambda(st.Call("fetch"))),
		))

		got := run(t, rules.BlockingBridgeInSuspend, tree)
		require.Len(t, got, 1)
		require.Equal(t, m.SeverityError, got[0].Severity)
		require.Contains(t, got[0].Message, `"load"`)
	})

	t.Run("program entry points are exempt", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("main",
			st.Call("runBlocking", st.TrailingLambda(st.Call("fetch"))),
		))

		require.Empty(t, run(t, rules.BlockingBridgeInSuspend, tree))
	})

	t.Run("test entry points are exempt", func(t *testing.T) {
		fn := st.AnnotatedFun("loadsData", []string{"Test"},
			st.Call("runBlocking", st.TrailingLambda(st.Call("fetch"))),
		)
		fn.Flags |= syntax.FlagSuspend
		tree := st.File("a.kt", fn)

		require.Empty(t, run(t, rules.BlockingBridgeInSuspend, tree))
	})

	t.Run("silent in a plain function", func(t *testing.T) {
		tree := st.File("a.kt", st.Fun("load",
			st.Call("runBlocking", st.TrailingLambda(st.Call("fetch"))),
		))

		require.Empty(t, run(t, rules.BlockingBridgeInSuspend, tree))
	})
}
