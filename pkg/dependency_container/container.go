package dependency_container

import (
	"fmt"

	"github.com/NeuralTrust/LegalGuard/pkg/app/review"
	"github.com/NeuralTrust/LegalGuard/pkg/app/telemetry"
	"github.com/NeuralTrust/LegalGuard/pkg/compliance"
	"github.com/NeuralTrust/LegalGuard/pkg/config"
	domainCompliance "github.com/NeuralTrust/LegalGuard/pkg/domain/compliance"
	handlers "github.com/NeuralTrust/LegalGuard/pkg/handlers/http"
	"github.com/NeuralTrust/LegalGuard/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/LegalGuard/pkg/infra/cache"
	"github.com/NeuralTrust/LegalGuard/pkg/infra/metrics"
	infraTelemetry "github.com/NeuralTrust/LegalGuard/pkg/infra/telemetry"
	"github.com/NeuralTrust/LegalGuard/pkg/infra/telemetry/kafka"
	redisExporter "github.com/NeuralTrust/LegalGuard/pkg/infra/telemetry/redis"
	"github.com/NeuralTrust/LegalGuard/pkg/middleware"
	"github.com/NeuralTrust/LegalGuard/pkg/patterns"
	"github.com/NeuralTrust/LegalGuard/pkg/safety"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Library                    *patterns.Library
	Monitor                    *safety.Monitor
	Rewriter                   *compliance.Rewriter
	Analyzer                   domainCompliance.Analyzer
	Reviewer                   review.Reviewer
	RedisClient                *redis.Client
	MetricsWorker              metrics.Worker
	JWTManager                 jwt.Manager
	TelemetryExporterLocator   *infraTelemetry.ExporterLocator
	TelemetryExporterValidator telemetry.ExportersValidator
	HandlerTransport           handlers.HandlerTransport
	MiddlewareTransport        *middleware.Transport
	AdminAuthTransport         *middleware.Transport
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	// WithoutExporters skips the redis connection and the alert exporters,
	// for one-shot commands that only classify.
	WithoutExporters bool
}

func NewContainer(di ContainerDI) (*Container, error) {
	// patterns
	customRules, err := patterns.DecodeRules(di.Cfg.Patterns.CustomRules)
	if err != nil {
		return nil, err
	}
	library, err := patterns.NewDefaultLibrary(customRules...)
	if err != nil {
		return nil, fmt.Errorf("failed to build pattern library: %w", err)
	}
	di.Logger.WithField("rules", library.Len()).Info("pattern library loaded")

	// telemetry
	var redisClient *redis.Client
	locatorOpts := []infraTelemetry.ExporterLocatorOption{
		infraTelemetry.WithExporter(kafka.ExporterName, kafka.NewKafkaExporter()),
	}
	if !di.WithoutExporters && di.Cfg.Redis.Host != "" {
		redisClient, err = cache.NewClient(cache.Config{
			Host:     di.Cfg.Redis.Host,
			Port:     di.Cfg.Redis.Port,
			Password: di.Cfg.Redis.Password,
			DB:       di.Cfg.Redis.DB,
			TLS:      di.Cfg.Redis.TLS,
		}, di.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %v", err)
		}
		locatorOpts = append(locatorOpts,
			infraTelemetry.WithExporter(redisExporter.ExporterName, redisExporter.NewRedisExporter(redisClient)),
		)
	}
	exporterLocator := infraTelemetry.NewExporterLocator(locatorOpts...)
	exportersValidator := telemetry.NewExportersValidator(exporterLocator)
	exportersBuilder := telemetry.NewExportersBuilder(di.Logger, exporterLocator, telemetry.BreakerSettings{
		Timeout:     di.Cfg.Telemetry.BreakerTimeout,
		MaxFailures: di.Cfg.Telemetry.MaxFailures,
	})

	exporterConfigs := di.Cfg.Telemetry.Exporters
	if di.WithoutExporters {
		exporterConfigs = nil
	}
	if err := exportersValidator.Validate(exporterConfigs); err != nil {
		closeRedis(redisClient, di.Logger)
		return nil, fmt.Errorf("invalid telemetry configuration: %w", err)
	}
	exporters, err := exportersBuilder.Build(exporterConfigs)
	if err != nil {
		closeRedis(redisClient, di.Logger)
		return nil, err
	}

	metricsWorker := metrics.NewWorker(
		di.Logger,
		exporters,
		metrics.WithQueueSize(di.Cfg.Telemetry.QueueSize),
		metrics.WithExportTimeout(di.Cfg.Telemetry.ExportTimeout),
	)
	metricsWorker.StartWorkers(di.Cfg.Telemetry.Workers)

	// safety
	monitor := safety.NewMonitor(
		di.Logger,
		library,
		safety.WithRecorder(metricsWorker),
		safety.WithAlertCapacity(di.Cfg.Monitoring.AlertCapacity),
		safety.WithExcerptLimit(di.Cfg.Monitoring.ExcerptLimit),
		safety.WithMonitoringEnabled(di.Cfg.Monitoring.Enabled),
	)

	// compliance
	defaultMode, ok := domainCompliance.ParseMode(di.Cfg.Compliance.DefaultMode)
	if !ok {
		di.Logger.WithField("mode", di.Cfg.Compliance.DefaultMode).
			Warn("unknown default presentation mode, using summary")
	}
	rewriter := compliance.NewRewriter(
		di.Logger,
		compliance.WithRecorder(metricsWorker),
		compliance.WithDefaultMode(defaultMode),
	)
	analyzer, err := compliance.NewAnalyzer(di.Cfg.Compliance.Analyzer, di.Logger, library)
	if err != nil {
		metricsWorker.Shutdown()
		closeRedis(redisClient, di.Logger)
		return nil, err
	}
	reviewer := review.NewReviewer(di.Logger, monitor, analyzer, rewriter, di.Cfg.Compliance.AutoRewrite)

	jwtManager := jwt.NewJwtManager(&di.Cfg.Server)

	middlewareTransport := middleware.NewTransport(
		middleware.NewPanicRecoverMiddleware(di.Logger),
		middleware.NewTraceMiddleware(),
	)
	adminAuthTransport := middleware.NewTransport(
		middleware.NewAdminAuthMiddleware(di.Logger, jwtManager),
	)

	handlerTransport := handlers.HandlerTransport{
		GetVersionHandler: handlers.NewGetVersionHandler(di.Logger),
		// Safety
		AnalyzeOutputHandler:     handlers.NewAnalyzeOutputHandler(di.Logger, monitor),
		GetSafetyStatusHandler:   handlers.NewGetSafetyStatusHandler(di.Logger, monitor),
		GetSafetyReportHandler:   handlers.NewGetSafetyReportHandler(di.Logger, monitor),
		ListAlertsHandler:        handlers.NewListAlertsHandler(di.Logger, monitor),
		ResolveAlertHandler:      handlers.NewResolveAlertHandler(di.Logger, monitor),
		EnableMonitoringHandler:  handlers.NewEnableMonitoringHandler(di.Logger, monitor),
		DisableMonitoringHandler: handlers.NewDisableMonitoringHandler(di.Logger, monitor),
		// Compliance
		TransformContentHandler: handlers.NewTransformContentHandler(di.Logger, rewriter),
		FormatContentHandler:    handlers.NewFormatContentHandler(di.Logger, rewriter),
		ReviewContentHandler:    handlers.NewReviewContentHandler(di.Logger, reviewer),
	}

	container := &Container{
		Library:                    library,
		Monitor:                    monitor,
		Rewriter:                   rewriter,
		Analyzer:                   analyzer,
		Reviewer:                   reviewer,
		RedisClient:                redisClient,
		MetricsWorker:              metricsWorker,
		JWTManager:                 jwtManager,
		TelemetryExporterLocator:   exporterLocator,
		TelemetryExporterValidator: exportersValidator,
		HandlerTransport:           handlerTransport,
		MiddlewareTransport:        middlewareTransport,
		AdminAuthTransport:         adminAuthTransport,
	}
	return container, nil
}

// Close drains the alert workers and releases the redis connection.
func (c *Container) Close(logger *logrus.Logger) {
	c.MetricsWorker.Shutdown()
	closeRedis(c.RedisClient, logger)
}

func closeRedis(client *redis.Client, logger *logrus.Logger) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.WithError(err).Warn("failed to close redis client")
	}
}
