package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/rules"
	st "github.com/mouse-blink/cooplint/internal/syntax/syntaxtest"
)

func TestChannelNeverClosed(t *testing.T) {
	t.Run("fires on a channel without a close", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Prop("events", st.Init(st.Call("Channel"))),
			st.Call("send", st.Recv(st.Ident("events"))),
		))

		got := run(t, rules.ChannelNeverClosed, tree)
		require.Len(t, got, 1)
		require.Contains(t, got[0].Message, `"events"`)
	})

	t.Run("a close in the same function clears it", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Prop("events", st.Init(st.Call("Channel"))),
			st.Call("send", st.Recv(st.Ident("events"))),
			st.Call("close", st.Recv(st.Ident("events"))),
		))

		require.Empty(t, run(t, rules.ChannelNeverClosed, tree))
	})

	t.Run("a close in another function does not clear it", func(t *testing.T) {
		tree := st.File("a.kt",
			st.SuspendFun("f",
				st.Prop("events", st.Init(st.Call("Channel"))),
			),
			st.SuspendFun("g",
				st.Call("close", st.Recv(st.Ident("events"))),
			),
		)

		require.Len(t, run(t, rules.ChannelNeverClosed, tree), 1)
	})

	t.Run("auto-closing producers are exempt", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Prop("events", st.Init(st.Call("produce", st.TrailingLambda()))),
		))

		require.Empty(t, run(t, rules.ChannelNeverClosed, tree))
	})

	t.Run("non-channel initializers never match", func(t *testing.T) {
		tree := st.File("a.kt", st.SuspendFun("f",
			st.Prop("items", st.Init(st.Call("listOf"))),
		))

		require.Empty(t, run(t, rules.ChannelNeverClosed, tree))
	})
}
