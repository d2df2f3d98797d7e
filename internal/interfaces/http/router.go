package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Schema   graphql.Schema
	Verifier TokenVerifier
	AppName  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// GraphQL: el token es opcional; cada resolver exige identidad si la necesita.
	handler := NewGraphQLHandler(deps.Schema)
	api := app.Group("/graphql", AuthMiddleware(deps.Verifier))
	api.Post("/", handler.Post)
	api.Get("/", handler.Get)
}
