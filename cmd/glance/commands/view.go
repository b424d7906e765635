package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/glance/internal/app"
)

func (c *CLI) newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [image-or-folder]",
		Short: "Show an image and browse its folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// --ci wins over --output-mode.
			if ci {
				outputMode = "linear"
			}

			return c.app.View(cmd.Context(), pathArg(args), cmd.OutOrStdout(), app.ViewOptions{
				Options:    options(cmd),
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}
