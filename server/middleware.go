package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lexiread/lexiread/logging"
)

// HeaderRequestID carries the request identifier; an inbound value is
// reused so frontend traces line up with backend logs.
const HeaderRequestID = "X-Request-ID"

const requestIDKey = "request_id"

func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(requestIDKey, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// boundLogger clones the gateway logger with the request id placed by the
// requestID middleware, if any.
func boundLogger(log *logging.AppLogger, c *fiber.Ctx) *logging.AppLogger {
	if id, ok := c.Locals(requestIDKey).(string); ok && id != "" {
		return log.WithRequest(id)
	}
	return log
}

// requestLogger logs one line per request. Bodies are never logged, so
// API tokens cannot leak here.
func requestLogger(log *logging.AppLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		boundLogger(log, c).Info("request completed",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	}
}
