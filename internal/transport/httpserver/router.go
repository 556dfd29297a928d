// Package httpserver provides HTTP server and routing.
package httpserver

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"catalog-search-service/internal/app/service"
	"catalog-search-service/internal/transport/httpserver/dto"
	"catalog-search-service/internal/transport/httpserver/handler"
	"catalog-search-service/internal/transport/httpserver/middleware"
	"catalog-search-service/internal/validator"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Name        string
	Port        int
	BodyLimit   int
	AllowOrigin string
}

// Server wraps Fiber app with handlers.
type Server struct {
	App    *fiber.App
	Logger *zap.Logger
}

// NewServer creates a new HTTP server with all routes configured.
// Readiness reports healthy only while every pinger answers.
func NewServer(
	cfg ServerConfig,
	searchSvc *service.CatalogService,
	v *validator.Validator,
	logger *zap.Logger,
	pingers ...middleware.Pinger,
) *Server {
	name := cfg.Name
	if name == "" {
		name = "catalog-search-service"
	}

	app := fiber.New(fiber.Config{
		AppName:               name,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          errorHandler(logger),
		DisableStartupMessage: true,
	})

	// Health check middleware MUST be registered BEFORE other middleware
	// for Kubernetes probes to work even during high load
	app.Use(middleware.NewHealthCheck(pingers...))

	app.Use(requestid.New())
	app.Use(middleware.Recover(logger))
	app.Use(middleware.Logger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins(cfg.AllowOrigin),
		AllowMethods: "GET,HEAD,OPTIONS",
	}))
	app.Use(compress.New())

	searchHandler := handler.NewSearchHandler(searchSvc, v, logger)
	catalogHandler := handler.NewCatalogHandler()

	registerRoutes(app, searchHandler, catalogHandler)

	return &Server{
		App:    app,
		Logger: logger,
	}
}

func allowOrigins(origin string) string {
	if origin == "" {
		return "*"
	}

	return origin
}

// registerRoutes sets up all API routes.
func registerRoutes(
	app *fiber.App,
	searchHandler *handler.SearchHandler,
	catalogHandler *handler.CatalogHandler,
) {
	// Health checks are handled by middleware (/livez, /readyz)

	v1 := app.Group("/api/v1")

	v1.Get("/search", searchHandler.Search)
	v1.Get("/media", catalogHandler.Media)
	v1.Get("/kinds", catalogHandler.Kinds)
}

// errorHandler returns a custom error handler that logs based on HTTP status code.
// 404s are logged at DEBUG level, 4xx at WARN, 5xx at ERROR.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		fields := []zap.Field{
			zap.Int("status", code),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		}

		switch {
		case code == fiber.StatusNotFound:
			logger.Debug("resource not found", fields...)
		case code >= fiber.StatusInternalServerError:
			logger.Error("server error", append(fields, zap.Error(err))...)
		default:
			logger.Warn("client error", append(fields, zap.Error(err))...)
		}

		return c.Status(code).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  errorCode(code),
		})
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	default:
		return "UNHANDLED_ERROR"
	}
}

// Start starts the HTTP server.
func (s *Server) Start(port int) error {
	s.Logger.Info("starting HTTP server", zap.Int("port", port))

	return s.App.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	s.Logger.Info("shutting down HTTP server")

	return s.App.Shutdown()
}
