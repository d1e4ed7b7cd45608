package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/cooplint/internal/rules"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List all rules in the catalog",
		Long:  "List every rule with its id, name, default severity and a one-line summary.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Name", "Severity", "Summary"})
			table.SetBorder(false)
			table.SetCenterSeparator("")
			table.SetAutoWrapText(false)

			for _, rule := range rules.All() {
				table.Append([]string{
					rule.ID,
					rule.Name,
					string(rule.Severity),
					rule.Summary,
				})
			}

			table.Render()

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
