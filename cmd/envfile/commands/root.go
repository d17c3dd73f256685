// Package commands implements the CLI commands for the envfile tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/Daisey666/envfile/internal/app"
	"github.com/Daisey666/envfile/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for envfile.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Validate(ctx context.Context, paths []string, opts app.ValidateOptions) error
	Format(ctx context.Context, path string, opts app.FormatOptions) error
	Show(ctx context.Context, path string, opts app.ShowOptions) error
	Diff(ctx context.Context, oldPath, newPath string, opts app.DiffOptions) error
	Lock(ctx context.Context, path string, opts app.LockOptions) error
	Watch(ctx context.Context, path string) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "envfile",
		Short:         "Validate, format, and diff conda-style environment manifests",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newFmtCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newDiffCmd())
	rootCmd.AddCommand(c.newLockCmd())
	rootCmd.AddCommand(c.newWatchCmd())
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

// optionalPathArg returns the single optional manifest path argument.
func optionalPathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
