package v1

import (
	"talent-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, match *handler.MatchHandler) {
	if r == nil || match == nil {
		return
	}
	match.RegisterRoutes(r)
}
