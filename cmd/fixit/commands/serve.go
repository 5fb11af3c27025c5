package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fixit/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the snippet routes over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listen, _ := cmd.Flags().GetString("listen")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Serve(cmd.Context(), app.ServeOptions{
				Listen: listen,
				Watch:  watch,
			})
		},
	}
	cmd.Flags().String("listen", "", "Address to listen on (defaults to the configured address)")
	cmd.Flags().BoolP("watch", "w", false, "Invalidate cached fixes when snippet files change")
	return cmd
}
