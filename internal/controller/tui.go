package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/cooplint/internal/model"
)

// TUI renders an interactive findings browser built on Bubble Tea.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Render runs the browser until the user quits.
func (t *TUI) Render(report m.Report) error {
	program := tea.NewProgram(newFindingsModel(report), tea.WithOutput(t.output))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("findings browser failed: %w", err)
	}

	return nil
}
