package adapter_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/adapter"
)

func TestIsTTY(t *testing.T) {
	require.False(t, adapter.IsTTY(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)

	defer func() { _ = f.Close() }()

	require.False(t, adapter.IsTTY(f))
}
