package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/cooplint/internal/adapter"
	"github.com/mouse-blink/cooplint/internal/controller"
	m "github.com/mouse-blink/cooplint/internal/model"
)

var viewFormatFlag string
var viewReportsDirFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View a previously generated report",
		Long:  "View a saved report. Without an argument the most recent report in the reports directory is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := adapter.NewReportStore(viewReportsDirFlag)

			var report m.Report

			var err error

			if len(args) == 1 {
				report, err = store.Load(m.Path(args[0]))
			} else {
				report, _, err = store.Latest()
			}

			if err != nil {
				return err
			}

			ui, err := controller.NewUI(cmd, viewFormatFlag, adapter.IsTTY(os.Stdout))
			if err != nil {
				return err
			}

			return ui.Render(report)
		},
	}
	cmd.Flags().StringVarP(&viewFormatFlag, "format", "f", "table", "output format: table, json or tui")
	cmd.Flags().StringVar(&viewReportsDirFlag, "reports", adapter.DefaultReportsDir, "directory reports are read from")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
