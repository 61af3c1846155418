package routes

import (
	"talent-match/internal/delivery/http/handler"
	v1 "talent-match/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	match  *handler.MatchHandler
}

func NewRegistry(match *handler.MatchHandler) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(),
		match:  match,
	}
}

func (r *Registry) Register(app *fiber.App) {
	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.match)
}
