// Package controller renders analysis reports to the user.
package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/cooplint/internal/model"
)

// UI renders one analysis report. Implementations differ in output
// medium: plain table, JSON, or an interactive browser.
type UI interface {
	Render(report m.Report) error
}

// NewUI selects a renderer for the requested format. The tui format
// degrades to the plain table when output is not a terminal, so piping
// cooplint into a file always produces readable text.
func NewUI(cmd *cobra.Command, format string, isTTY bool) (UI, error) {
	switch format {
	case "table":
		return NewSimpleUI(cmd), nil
	case "json":
		return NewJSONUI(cmd.OutOrStdout()), nil
	case "tui":
		if !isTTY {
			return NewSimpleUI(cmd), nil
		}

		return NewTUI(cmd.OutOrStdout()), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
