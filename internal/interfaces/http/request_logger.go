package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/accounts-api/pkg/logger"
)

// requestObserver lo implementa *metrics.Metrics.
type requestObserver interface {
	ObserveRequest(method, route, status string, elapsed time.Duration)
}

// RequestLogger registra cada petición (método, ruta, estado, duración) y la observa en métricas.
// obs puede ser nil.
func RequestLogger(log *logger.Logger, obs requestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		// c.Method() apunta al buffer que fasthttp reutiliza; la etiqueta de
		// métricas sobrevive a la petición.
		method := utils.CopyString(c.Method())
		route := utils.CopyString(c.Route().Path)

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", method).
			Str("route", route).
			Int("status", status).
			Dur("elapsed", elapsed).
			Msg("request")

		if obs != nil {
			obs.ObserveRequest(method, route, strconv.Itoa(status), elapsed)
		}
		return err
	}
}
