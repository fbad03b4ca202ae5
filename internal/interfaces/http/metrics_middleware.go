package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/lot-allocation-bff/internal/infrastructure/metrics"
)

// MetricsMiddleware registra contador, latencia y peticiones en curso por ruta.
// La etiqueta de ruta es el patrón registrado (/api/lots/:id), no la URL.
func MetricsMiddleware(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		}
		m.RecordHTTPRequest(c.Method(), route, status, time.Since(start))
		return err
	}
}
