package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerMiddleware writes one line per request. Server errors are logged at
// Error, client errors at Warn.
func LoggerMiddleware(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		level := zapcore.InfoLevel
		switch {
		case status >= fiber.StatusInternalServerError:
			level = zapcore.ErrorLevel
		case status >= fiber.StatusBadRequest:
			level = zapcore.WarnLevel
		}

		reqID, _ := c.Locals(CtxRequestID).(string)
		if ce := log.Check(level, "request"); ce != nil {
			ce.Write(
				zap.String("request_id", reqID),
				zap.String("method", c.Method()),
				zap.String("route", c.Route().Path),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.String("user_id", GetUserID(c)),
				zap.String("ip", c.IP()),
			)
		}

		return err
	}
}
