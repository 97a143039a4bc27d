package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/buildinfo/internal/app"
)

func (c *CLI) newPublishCmd() *cobra.Command {
	var opts app.PublishOptions

	cmd := &cobra.Command{
		Use:   "publish <build-info-file>",
		Short: "Upload a build-info document to the artifact repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			return c.app.Publish(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.URL, "url", "", "Artifact repository URL (defaults to BUILDINFO_URL)")
	addCredentialFlags(cmd, &opts.Credentials)

	return cmd
}
