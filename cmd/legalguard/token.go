package main

import (
	"fmt"
	"time"

	"github.com/NeuralTrust/LegalGuard/pkg/infra/auth/jwt"
	infraLogger "github.com/NeuralTrust/LegalGuard/pkg/infra/logger"
	"github.com/spf13/cobra"
)

var tokenTTL time.Duration

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an admin bearer token signed with server.secret_key",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig("token", infraLogger.WithoutFile(), infraLogger.WithConsole(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	token, err := jwt.NewJwtManager(&cfg.Server).CreateToken(tokenTTL)
	if err != nil {
		logger.WithError(err).Error("failed to create admin token")
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
