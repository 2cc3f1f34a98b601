package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/accounts-api/internal/application/access"
)

// AuthorizationContext copia el header Authorization al contexto de la petición.
// No rechaza: register y login son públicos y cada operación decide si exige token.
func AuthorizationContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if header := c.Get(fiber.HeaderAuthorization); header != "" {
			c.SetUserContext(access.WithAuthorization(c.UserContext(), header))
		}
		return c.Next()
	}
}
