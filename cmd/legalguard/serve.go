package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/NeuralTrust/LegalGuard/pkg/dependency_container"
	infraLogger "github.com/NeuralTrust/LegalGuard/pkg/infra/logger"
	"github.com/NeuralTrust/LegalGuard/pkg/infra/prometheus"
	"github.com/NeuralTrust/LegalGuard/pkg/server"
	"github.com/NeuralTrust/LegalGuard/pkg/server/router"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the admin HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig("admin")
	if err != nil {
		return err
	}
	defer infraLogger.Close(logger)

	prometheus.Initialize(prometheus.MetricsConfig{
		EnableViolationDetail: cfg.Metrics.EnableViolationDetail,
		EnableValidation:      cfg.Metrics.EnableValidation,
	})

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:    cfg,
		Logger: logger,
	})
	if err != nil {
		logger.WithError(err).Error("failed to initialize dependencies")
		return err
	}
	defer container.Close(logger)

	srv := server.NewAdminServer(server.AdminServerDI{
		Config: cfg,
		Logger: logger,
		Routers: []router.ServerRouter{
			router.NewAdminRouter(
				container.MiddlewareTransport,
				container.AdminAuthTransport,
				container.HandlerTransport,
			),
		},
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.WithError(err).Error("server failed")
		return err
	case <-quit:
	}

	logger.Info("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
