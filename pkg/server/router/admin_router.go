package router

import (
	"errors"

	_ "github.com/NeuralTrust/LegalGuard/docs"
	handlers "github.com/NeuralTrust/LegalGuard/pkg/handlers/http"
	"github.com/NeuralTrust/LegalGuard/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/swaggo/swag"
)

const (
	SwaggerPath = "/swagger.json"
	DocsPath    = "/docs/*"
)

var (
	ErrInvalidHandlerTransport = errors.New("invalid handler transport")
)

type adminRouter struct {
	middlewareTransport *middleware.Transport
	authTransport       *middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

// NewAdminRouter registers the API. middlewareTransport applies to every
// /api/v1 route, authTransport only to the admin operations.
func NewAdminRouter(
	middlewareTransport *middleware.Transport,
	authTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &adminRouter{
		middlewareTransport: middlewareTransport,
		authTransport:       authTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *adminRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h.AnalyzeOutputHandler == nil || h.ReviewContentHandler == nil {
		return ErrInvalidHandlerTransport
	}

	router.Get(SwaggerPath, serveSwaggerDoc)
	router.Get(DocsPath, swagger.New(swagger.Config{
		URL: SwaggerPath,
	}))

	if h.GetVersionHandler != nil {
		router.Get("/version", h.GetVersionHandler.Handle)
	}

	v1 := router.Group("/api/v1")
	{
		if r.middlewareTransport != nil && r.middlewareTransport.GetMiddlewares() != nil {
			v1.Use(r.middlewareTransport.GetMiddlewares()...)
		}

		var admin []fiber.Handler
		if r.authTransport != nil {
			for _, m := range r.authTransport.Middlewares {
				admin = append(admin, m.Middleware())
			}
		}

		safety := v1.Group("/safety")
		{
			safety.Post("/analyze", h.AnalyzeOutputHandler.Handle)
			safety.Get("/status", h.GetSafetyStatusHandler.Handle)
			safety.Get("/report", h.GetSafetyReportHandler.Handle)
			safety.Get("/alerts", h.ListAlertsHandler.Handle)
			safety.Post("/alerts/:alert_id/resolve", append(admin, h.ResolveAlertHandler.Handle)...)

			monitoring := safety.Group("/monitoring", admin...)
			{
				monitoring.Post("/enable", h.EnableMonitoringHandler.Handle)
				monitoring.Post("/disable", h.DisableMonitoringHandler.Handle)
			}
		}

		compliance := v1.Group("/compliance")
		{
			compliance.Post("/transform", h.TransformContentHandler.Handle)
			compliance.Post("/format", h.FormatContentHandler.Handle)
			compliance.Post("/review", h.ReviewContentHandler.Handle)
		}
	}
	return nil
}

func serveSwaggerDoc(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Type("json")
	return c.SendString(doc)
}
