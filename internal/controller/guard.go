package controller

import (
	"elibrary-be/internal/pkg/message"
	"elibrary-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// Guard authenticates the caller and then asks the permission gate whether
// their role may use a feature with the request's HTTP method.
type Guard struct {
	authenticate fiber.Handler
	gate         serverutils.Authorizer
	messages     message.Provider
}

func NewGuard(authenticate fiber.Handler, gate serverutils.Authorizer, messages message.Provider) *Guard {
	return &Guard{
		authenticate: authenticate,
		gate:         gate,
		messages:     messages,
	}
}

// Protect mounts the guard on every route of r for the given feature.
func (g *Guard) Protect(r fiber.Router, feature string) {
	r.Use(g.authenticate, serverutils.AuthorizeFeature(g.gate, feature, g.messages))
}
