package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Scan the snippet directory and list every challenge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sets, err := c.app.Index(cmd.Context())
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).index(sets)
			return nil
		},
	}
}
