package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/printers-api/pkg/logger"
)

// RequestLogger registra cada petición con su ruta plantilla, estado y
// duración. El valor del token nunca se loguea.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Route().Path).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}
