package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/cooplint/internal/model"
)

// SimpleUI renders the findings table through the cobra command's
// writer, which is what makes it capturable in tests.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Render prints findings as a table followed by a severity summary and
// any per-file errors.
func (s *SimpleUI) Render(report m.Report) error {
	if len(report.Findings) == 0 {
		s.printf("No findings in %d file(s).\n", report.Files)
	} else {
		s.renderTable(report)
	}

	for _, fe := range report.Errors {
		s.printf("error: %s: %s\n", fe.File, fe.Message)
	}

	return nil
}

func (s *SimpleUI) renderTable(report m.Report) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Severity", "Rule", "Location", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, f := range report.Findings {
		table.Append([]string{
			string(f.Severity),
			f.RuleID,
			formatLocation(f.Span),
			f.Message,
		})
	}

	counts := report.CountBySeverity()
	table.SetFooter([]string{
		fmt.Sprintf("%d error(s)", counts[m.SeverityError]),
		fmt.Sprintf("%d warning(s)", counts[m.SeverityWarning]),
		fmt.Sprintf("%d file(s)", report.Files),
		fmt.Sprintf("%d finding(s)", len(report.Findings)),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func formatLocation(span m.Span) string {
	return fmt.Sprintf("%s:%d:%d", span.File, span.StartLine, span.StartCol)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
