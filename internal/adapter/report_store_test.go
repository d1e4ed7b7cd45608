package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cooplint/internal/adapter"
	m "github.com/mouse-blink/cooplint/internal/model"
)

func sampleReport() m.Report {
	return m.Report{
		Files: 2,
		Findings: []m.Finding{
			{
				RuleID:    "SCOPE_001",
				Severity:  m.SeverityError,
				Span:      m.Span{File: "a.kt", StartLine: 3, StartCol: 5, EndLine: 3, EndCol: 40},
				Message:   "[SCOPE_001] launch on GlobalScope starts a task outside any structured scope",
				DocAnchor: "rules#scope_001",
			},
		},
		Errors: []m.FileError{{File: "broken.kt", Message: "parse failed"}},
	}
}

func TestReportStoreRoundTrip(t *testing.T) {
	store := adapter.NewReportStore(t.TempDir())

	path, err := store.Save(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, path)

	loaded, err := store.Load(path)
	require.NoError(t, err)
	require.Equal(t, sampleReport(), loaded)
}

func TestReportStoreLatestPicksNewest(t *testing.T) {
	store := adapter.NewReportStore(t.TempDir())

	_, err := store.Save(m.Report{Files: 1})
	require.NoError(t, err)

	newest := sampleReport()
	newestPath, err := store.Save(newest)
	require.NoError(t, err)

	got, gotPath, err := store.Latest()
	require.NoError(t, err)
	require.Equal(t, newestPath, gotPath)
	require.Equal(t, newest, got)
}

func TestReportStoreLatestFailsWhenEmpty(t *testing.T) {
	store := adapter.NewReportStore(t.TempDir())

	_, _, err := store.Latest()
	require.Error(t, err)
}

func TestReportStoreLoadRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	store := adapter.NewReportStore(dir)

	path := writeFile(t, dir, "cooplint-garbage.json", "{not json")

	_, err := store.Load(m.Path(path))
	require.ErrorContains(t, err, "decode")
}
