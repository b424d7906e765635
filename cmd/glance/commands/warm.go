package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWarmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "warm [image-or-folder]",
		Short: "Decode every image of a folder and report cache usage",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Warm(cmd.Context(), pathArg(args), cmd.OutOrStdout(), options(cmd))
		},
	}
}
