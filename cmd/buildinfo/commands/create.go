package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/buildinfo/internal/app"
)

func (c *CLI) newCreateCmd() *cobra.Command {
	var opts app.CreateOptions

	cmd := &cobra.Command{
		Use:   "create <build-info-file>",
		Short: "Create a build-info document from a lockfile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Output = args[0]
			return c.app.Create(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Lockfile, "lockfile", "", "Lockfile to read")
	_ = cmd.MarkFlagRequired("lockfile")
	cmd.Flags().BoolVar(&opts.MultiModule, "multi-module", true, "Record each package as its own module")
	cmd.Flags().BoolVar(&opts.SkipEnv, "skip-env", true, "Do not capture environment variables")
	addCredentialFlags(cmd, &opts.Credentials)

	return cmd
}
