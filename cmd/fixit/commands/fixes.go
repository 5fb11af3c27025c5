package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFixesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixes <key>",
		Short: "List the candidate fixes of a challenge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := c.app.Fixes(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).fixSet(set)
			return nil
		},
	}
}
