package adapter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/adapter"
	m "github.com/mouse-blink/cooplint/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func origins(sources []m.Source) []string {
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		out = append(out, filepath.Base(string(s.Origin)))
	}

	return out
}

func TestGetCollectsKotlinFilesOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.kt", "fun main() {}")
	writeFile(t, dir, "b.kts", "println(1)")
	writeFile(t, dir, "notes.txt", "ignore me")
	writeFile(t, dir, "c.go", "package c")

	fs := adapter.NewLocalSourceFSAdapter()
	sources, err := fs.Get([]m.Path{m.Path(dir)})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a.kt", "b.kts"}, origins(sources))
}

func TestGetRecursiveSuffix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.kt", "fun main() {}")
	writeFile(t, dir, filepath.Join("nested", "deep.kt"), "fun f() {}")

	fs := adapter.NewLocalSourceFSAdapter()

	flat, err := fs.Get([]m.Path{m.Path(dir)})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"top.kt"}, origins(flat))

	recursive, err := fs.Get([]m.Path{m.Path(dir + "/...")})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"top.kt", "deep.kt"}, origins(recursive))
}

func TestGetSkipsHiddenAndBuildDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.kt", "fun f() {}")
	writeFile(t, dir, filepath.Join(".git", "skip.kt"), "fun g() {}")
	writeFile(t, dir, filepath.Join("build", "skip.kt"), "fun h() {}")

	fs := adapter.NewLocalSourceFSAdapter()
	sources, err := fs.Get([]m.Path{m.Path(dir + "/...")})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"keep.kt"}, origins(sources))
}

func TestGetDeduplicatesAcrossRoots(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.kt", "fun f() {}")

	fs := adapter.NewLocalSourceFSAdapter()
	sources, err := fs.Get([]m.Path{m.Path(dir), m.Path(path)})
	require.NoError(t, err)
	require.Len(t, sources, 1)
}

func TestGetFailsOnMissingRoot(t *testing.T) {
	fs := adapter.NewLocalSourceFSAdapter()
	_, err := fs.Get([]m.Path{m.Path(filepath.Join(t.TempDir(), "nope"))})
	require.Error(t, err)
}

func TestHashFileIsStable(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.kt", "fun f() {}")

	fs := adapter.NewLocalSourceFSAdapter()

	first, err := fs.HashFile(m.Path(path))
	require.NoError(t, err)

	second, err := fs.HashFile(m.Path(path))
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Len(t, first, 64)

	other := writeFile(t, dir, "b.kt", "fun g() {}")
	otherHash, err := fs.HashFile(m.Path(other))
	require.NoError(t, err)
	require.NotEqual(t, first, otherHash)
}
