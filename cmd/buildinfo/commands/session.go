package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <build-name> <build-number>",
		Short: "Start a build session",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.Start(args[0], args[1])
		},
	}
}

func (c *CLI) newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the build session",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return c.app.Stop()
		},
	}
}
