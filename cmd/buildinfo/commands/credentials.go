package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/buildinfo/internal/core/domain"
)

func addCredentialFlags(cmd *cobra.Command, creds *domain.Credentials) {
	cmd.Flags().StringVar(&creds.User, "user", "", "User name for the artifact repository (replaces configured credentials)")
	cmd.Flags().StringVar(&creds.Password, "password", "", "Password for the artifact repository (replaces configured credentials)")
	cmd.Flags().StringVar(&creds.APIKey, "apikey", "", "API key for the artifact repository (replaces configured credentials)")
}
