package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"jobservice/api/metrics"
)

// Metrics records request latency per method, matched route, and status.
func Metrics(collector *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		// The error handler has not run yet, so take the status from the error.
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		// c.Method() aliases the pooled request buffer; labels outlive the request.
		collector.ObserveRequest(utils.CopyString(c.Method()), c.Route().Path, status, time.Since(start))
		return err
	}
}
