package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/cooplint/internal/model"
)

func sampleReport() m.Report {
	return m.Report{
		Files: 2,
		Findings: []m.Finding{
			{
				RuleID:   "SCOPE_001",
				Severity: m.SeverityError,
				Span:     m.Span{File: "a.kt", StartLine: 3, StartCol: 1},
				Message:  "[SCOPE_001] launch on GlobalScope",
			},
			{
				RuleID:   "SUSP_003",
				Severity: m.SeverityWarning,
				Span:     m.Span{File: "b.kt", StartLine: 8, StartCol: 5},
				Message:  "[SUSP_003] suspend modifier is unused",
			},
		},
	}
}

func TestFindingItemFilterValue(t *testing.T) {
	item := findingItem{finding: sampleReport().Findings[0]}
	require.Equal(t, "a.kt SCOPE_001", item.FilterValue())
}

func TestTruncateToWidth(t *testing.T) {
	require.Equal(t, "short", truncateToWidth("short", 10))
	require.Equal(t, "long me…", truncateToWidth("long message here", 8))
	require.Equal(t, "…", truncateToWidth("anything", 1))
	require.Equal(t, "", truncateToWidth("anything", 0))
}

func TestAnimateScroll(t *testing.T) {
	text := "0123456789"

	// Fits, no scrolling.
	require.Equal(t, text, animateScroll(text, 20, 7))

	// Within the pause the head is shown truncated.
	require.Equal(t, "0123…", animateScroll(text, 5, 0))

	// Past the pause the window slides one rune per tick.
	require.Equal(t, "12345", animateScroll(text, 5, 6))

	// The gap wraps the tail back to the head.
	require.Equal(t, "9   0", animateScroll(text, 5, 14))
}

func TestNewFindingsModelListsAllFindings(t *testing.T) {
	fm := newFindingsModel(sampleReport())
	require.Len(t, fm.findingList.Items(), 2)
	require.Equal(t, -1, fm.lastSelected)
}

func TestFindingsModelQuitKeys(t *testing.T) {
	fm := newFindingsModel(sampleReport())

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := fm.Update(msg)
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestFindingsModelTracksWindowSize(t *testing.T) {
	fm := newFindingsModel(sampleReport())

	updated, _ := fm.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	resized, ok := updated.(findingsModel)
	require.True(t, ok)
	require.Equal(t, 120, resized.width)
	require.Equal(t, 40, resized.height)
}

func TestFindingsModelViewContainsSummary(t *testing.T) {
	fm := newFindingsModel(sampleReport())

	updated, _ := fm.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := updated.(findingsModel).View()
	require.Contains(t, view, "cooplint findings")
	require.Contains(t, view, "Errors:")
	require.Contains(t, view, "q quit")
}
