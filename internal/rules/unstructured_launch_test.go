package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/rules"
	st "github.com/mouse-blink/cooplint/internal/syntax/syntaxtest"
)

func TestUnstructuredLaunch(t *testing.T) {
	t.Run("fires on an unrecognized receiver", func(t *testing.T) {
		tree := st.File("a.kt", st.Fun("f",
			st.Call("launch", st.Recv(st.Ident("someScope")), st.TrailingLambda()),
		))

		got := run(t, rules.UnstructuredLaunch, tree)
		require.Len(t, got, 1)
		require.Contains(t, got[0].Message, "someScope")
	})

	t.Run("suppressed by an opt-in annotation on the enclosing declaration", func(t *testing.T) {
		tree := st.File("a.kt", st.AnnotatedFun("f", []string{"OptIn"},
			st.Call("launch", st.Recv(st.Ident("someScope")), st.TrailingLambda()),
		))

		require.Empty(t, run(t, rules.UnstructuredLaunch, tree))
	})

	t.Run("silent when another classification applies", func(t *testing.T) {
		tree := st.File("a.kt",
			st.Annotated(st.Prop("appScope"), "ApplicationScope"),
			st.Fun("f",
				st.Call("launch", st.Recv(st.Ident("GlobalScope")), st.TrailingLambda()),
				st.Call("launch", st.Recv(st.Ident("appScope")), st.TrailingLambda()),
			),
		)

		require.Empty(t, run(t, rules.UnstructuredLaunch, tree))
	})
}
