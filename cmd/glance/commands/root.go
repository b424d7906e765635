// Package commands implements the CLI commands for the glance image viewer.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/glance/internal/app"
	"go.trai.ch/glance/internal/build"
)

// CLI represents the command line interface for glance.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	View(ctx context.Context, path string, w io.Writer, opts app.ViewOptions) error
	List(ctx context.Context, path string, w io.Writer, opts app.Options) error
	Warm(ctx context.Context, path string, w io.Writer, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "glance",
		Short:         "A fast terminal image viewer",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON lines")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newViewCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newWarmCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options reads the persistent flags shared by every command.
func options(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
	return app.Options{
		ConfigPath:  configPath,
		LogJSON:     logJSON,
		MetricsAddr: metricsAddr,
	}
}

// pathArg returns the single positional argument, defaulting to the current folder.
func pathArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
