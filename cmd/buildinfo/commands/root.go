// Package commands implements the CLI commands for buildinfo.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/buildinfo/internal/app"
	"go.trai.ch/buildinfo/internal/build"
)

// CLI represents the command line interface for buildinfo.
type CLI struct {
	app       Application
	rootCmd   *cobra.Command
	globals   Globals
	onGlobals func(Globals)
}

// Application represents the application logic interface.
type Application interface {
	Start(name, number string) error
	Stop() error
	Create(ctx context.Context, opts app.CreateOptions) error
	Update(ctx context.Context, opts app.UpdateOptions) error
	Publish(ctx context.Context, opts app.PublishOptions) error
}

// Globals are the flags shared by every command.
type Globals struct {
	JSON    bool
	Verbose bool
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "buildinfo",
		Short:         "Create, merge and publish build-info documents from lockfiles",
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

	rootCmd.PersistentFlags().BoolVar(&c.globals.JSON, "json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&c.globals.Verbose, "verbose", "v", false, "Report the duration of each step")
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		if c.onGlobals != nil {
			c.onGlobals(c.globals)
		}
	}

	rootCmd.AddCommand(c.newStartCmd())
	rootCmd.AddCommand(c.newStopCmd())
	rootCmd.AddCommand(c.newCreateCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newPublishCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// OnGlobals registers fn to receive the global flags before a command runs.
func (c *CLI) OnGlobals(fn func(Globals)) {
	c.onGlobals = fn
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
