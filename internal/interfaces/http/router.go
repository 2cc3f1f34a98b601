package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/accounts-api/internal/infrastructure/metrics"
	"github.com/jhoicas/accounts-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Schema  graphql.Schema
	Log     *logger.Logger
	Metrics *metrics.Metrics // nil = sin /metrics
	AppName string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log.Component("http")
	if deps.Metrics != nil {
		app.Use(RequestLogger(log, deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	} else {
		app.Use(RequestLogger(log, nil))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// GraphQL (el token se valida por operación)
	gql := NewGraphQLHandler(deps.Schema)
	app.Post("/graphql", AuthorizationContext(), gql.Handle)
	app.Get("/graphql", AuthorizationContext(), gql.Handle)
}
