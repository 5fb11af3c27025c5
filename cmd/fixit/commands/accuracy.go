package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newAccuracyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accuracy",
		Short: "Show the share of passing verdicts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Accuracy(cmd.Context())
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).accuracy(report)
			return nil
		},
	}
}
