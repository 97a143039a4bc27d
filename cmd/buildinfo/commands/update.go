package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/buildinfo/internal/app"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	var opts app.UpdateOptions

	cmd := &cobra.Command{
		Use:   "update <build-info-file>...",
		Short: "Merge build-info documents into one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Inputs = args
			return c.app.Update(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Output, "output-file", "", "File the merged document is written to")
	_ = cmd.MarkFlagRequired("output-file")

	return cmd
}
