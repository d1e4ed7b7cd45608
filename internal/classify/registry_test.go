package classify_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/classify"
)

func TestDefaultRegistryKnowsCoreVocabulary(t *testing.T) {
	reg := classify.Default()

	require.Equal(t, "GlobalScope", reg.GlobalScopeName)
	require.True(t, reg.Launchers.Has("launch"))
	require.True(t, reg.ValueLaunchers.Has("async"))
	require.True(t, reg.CooperationPoints.Has("yield"))
	require.True(t, reg.CooperationPoints.Has("ensureActive"))
	require.Equal(t, "runBlocking", reg.BlockingBridge)
	require.Equal(t, "withContext", reg.ContextSwitchCall)
	require.Equal(t, "NonCancellable", reg.NonCancellableMarker)
	require.True(t, reg.CancellationTypes.Has("CancellationException"))
}

func TestExtendOnlyAddsNames(t *testing.T) {
	base := classify.Default()

	ext := base.Extend(classify.Extensions{
		FrameworkScopes:   []string{"serviceScope"},
		CooperationPoints: []string{"checkCancelled"},
		BlockingCalls:     []string{"fetchBlocking"},
	})

	require.True(t, ext.FrameworkScopeProperties.Has("serviceScope"))
	require.True(t, ext.FrameworkScopeProperties.Has("viewModelScope"))
	require.True(t, ext.CooperationPoints.Has("checkCancelled"))
	require.True(t, ext.BlockingCalls.Has("fetchBlocking"))

	// The base registry is left untouched.
	require.False(t, base.FrameworkScopeProperties.Has("serviceScope"))
	require.False(t, base.CooperationPoints.Has("checkCancelled"))
}

func TestNameSetWithCopies(t *testing.T) {
	s := classify.NewNameSet("a")
	s2 := s.With("b")

	require.True(t, s2.Has("a"))
	require.True(t, s2.Has("b"))
	require.False(t, s.Has("b"))
}
