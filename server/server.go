// Package server exposes the HTTP gateway: the three AI operations
// (validate-token, generate-text, translate-word), the vocabulary CRUD
// routes and the middleware around them. It owns input validation and
// envelope shaping; generation itself is delegated to the façade service.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lexiread/lexiread"
	"github.com/lexiread/lexiread/config"
	"github.com/lexiread/lexiread/dictionary"
	"github.com/lexiread/lexiread/logging"
	"github.com/lexiread/lexiread/provider"
)

// TextService is the slice of the façade the gateway needs. Tests provide
// fakes; production wiring passes *lexiread.Service.
type TextService interface {
	GenerateText(ctx context.Context, p lexiread.GenerateParams) provider.Result
	TranslateWord(ctx context.Context, p lexiread.TranslateParams) provider.Result
}

// Server is the HTTP gateway.
type Server struct {
	app  *fiber.App
	cfg  *config.Config
	log  *logging.AppLogger
	svc  TextService
	dict *dictionary.Store
}

// New assembles the fiber app with middleware and routes.
func New(cfg *config.Config, log *logging.AppLogger, svc TextService, dict *dictionary.Store) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "lexiread",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           cfg.Server.IdleTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          newErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: cfg.CORS.AllowedHeaders,
	}))
	app.Use(requestID())
	app.Use(requestLogger(log))

	s := &Server{app: app, cfg: cfg, log: log, svc: svc, dict: dict}

	app.Get("/healthz", s.handleHealth)

	api := app.Group("/api")
	api.Post("/validate-token", s.handleValidateToken)
	api.Post("/generate-text", s.handleGenerateText)
	api.Post("/translate-word", s.handleTranslateWord)
	api.Get("/dictionary", s.handleListEntries)
	api.Post("/dictionary", s.handleAddEntry)
	api.Put("/dictionary/:id", s.handleUpdateEntry)
	api.Delete("/dictionary/:id", s.handleDeleteEntry)

	return s
}

// Listen starts serving on the configured address and blocks.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Server.Addr())
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

// newErrorHandler is the single fallback boundary: anything escaping a
// handler (including panics converted by the recover middleware) becomes
// an HTTP 500 with a generic message. The cause is logged, never echoed.
func newErrorHandler(log *logging.AppLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < http.StatusInternalServerError {
			return fail(c, fe.Code, fe.Message)
		}
		boundLogger(log, c).Error("unexpected error",
			"method", c.Method(),
			"path", c.Path(),
			"error", err.Error(),
		)
		return fail(c, fiber.StatusInternalServerError, "An unexpected error occurred. Please try again.")
	}
}
