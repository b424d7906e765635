package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls [image-or-folder]",
		Aliases: []string{"list"},
		Short:   "List the images of a folder in browsing order",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.List(cmd.Context(), pathArg(args), cmd.OutOrStdout(), options(cmd))
		},
	}
}
