package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/fixit/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <key> <index>",
		Short: "Check whether the fix at a 0-based index is the correct one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := strconv.Atoi(args[1])
			if err != nil {
				return zerr.With(zerr.Wrap(err, "invalid fix index"), "index", args[1])
			}
			locale, _ := cmd.Flags().GetString("locale")

			outcome, err := c.app.Check(cmd.Context(), args[0], selected, locale)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).outcome(outcome)
			if !outcome.Verdict {
				return domain.ErrIncorrectFix
			}
			return nil
		},
	}
	cmd.Flags().StringP("locale", "l", "", "Locale for the explanation (defaults to the configured locale)")
	return cmd
}
