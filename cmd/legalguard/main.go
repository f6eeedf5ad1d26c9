package main

import (
	"fmt"
	"log"
	"os"

	"github.com/NeuralTrust/LegalGuard/pkg/config"
	infraLogger "github.com/NeuralTrust/LegalGuard/pkg/infra/logger"
	"github.com/NeuralTrust/LegalGuard/pkg/version"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:           "legalguard",
	Short:         "Safety monitoring and compliance rewriting for legal AI outputs",
	Version:       version.GetInfo().String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(envFile); err != nil {
			log.Println("no .env file found, using system environment variables")
		}
	},
}

func init() {
	defaultEnv := os.Getenv("ENV_FILE")
	if defaultEnv == "" {
		defaultEnv = ".env"
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config", "directory containing config.yaml")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", defaultEnv, "dotenv file loaded before configuration")
}

//go:generate swag init --generalInfo main.go --dir ./,../../pkg/handlers/http,../../pkg/handlers/http/request,../../pkg/handlers/http/response --output ../../docs

// @title LegalGuard Admin API
// @version 0.4.0
// @description Safety monitoring and compliance rewriting for legal AI outputs
// @host localhost:8080
// @BasePath /
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads configuration and builds a logger at the configured level.
// A missing config file is reported on the logger and is not fatal.
func loadConfig(name string, opts ...infraLogger.Option) (*config.Config, *logrus.Logger, error) {
	if err := config.Load(configPath); err != nil {
		log.Println(err)
	}
	cfg := config.GetConfig()

	opts = append([]infraLogger.Option{infraLogger.WithLevel(cfg.Logging.Level)}, opts...)
	logger, err := infraLogger.NewLogger(name, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
