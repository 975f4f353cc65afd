// Package server assembles the Fiber application: middleware, ambient routes,
// and the job routes.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "jobservice/api/docs" // registers the swagger spec

	"jobservice/api/config"
	"jobservice/api/handlers"
	"jobservice/api/metrics"
	"jobservice/api/middleware"
	"jobservice/api/store"
	"jobservice/api/utils"
)

// Dependencies are the collaborators the application is built from.
type Dependencies struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Store   store.JobStore
	Metrics *metrics.Collector // nil disables the metrics endpoint
}

// New builds the Fiber app with all routes mounted.
func New(deps Dependencies) *fiber.App {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	app := fiber.New(fiber.Config{
		AppName:               "job-api",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		ErrorHandler:          ErrorHandler(logger),
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(middleware.RequestLogger(logger))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowHeaders: cfg.CORS.AllowHeaders,
	}))

	collector := deps.Metrics
	if !cfg.Metrics.Enabled {
		collector = nil
	}
	if collector != nil {
		app.Use(middleware.Metrics(collector))
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(collector.Handler()))
	}

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Job API is healthy",
		})
	})

	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	handlers.NewApplicationHandler(deps.Store, logger, collector).RegisterRoutes(app)

	return app
}

// ErrorHandler renders errors returned by handlers as plain text. Codes carried
// by *fiber.Error are kept; anything else becomes a 500 without leaking details.
func ErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			logger.WithError(err).WithField("uri", c.OriginalURL()).Error("Unhandled request error")
		}
		return utils.RespondWithError(c, code, message)
	}
}

// Run serves app on addr until ctx is cancelled, then shuts down within timeout.
func Run(ctx context.Context, app *fiber.App, addr string, timeout time.Duration, logger *logrus.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting Job API on %s", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down Job API")
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	logger.Info("Job API stopped")
	return nil
}
