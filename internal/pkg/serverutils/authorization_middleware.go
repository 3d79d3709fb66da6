package serverutils

import (
	"context"

	"elibrary-be/internal/constant"
	"elibrary-be/internal/dto"
	"elibrary-be/internal/pkg/apperror"
	"elibrary-be/internal/pkg/message"

	"github.com/gofiber/fiber/v2"
)

type Authorizer interface {
	IsAuthorized(ctx context.Context, role, featureName, verb string) (bool, error)
}

// AuthorizeFeature consults the permission gate with the caller's role and the
// request method before the route handler runs. Must be mounted after the JWT
// middleware.
func AuthorizeFeature(gate Authorizer, feature string, messages message.Provider) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals(constant.LocalsRole).(string)

		allowed, err := gate.IsAuthorized(ctx.UserContext(), role, feature, ctx.Method())
		if err != nil {
			return err
		}
		if !allowed {
			return apperror.Forbidden(string(dto.CodeForbidden), messages.Message(ctx.UserContext(), dto.CodeForbidden), nil)
		}
		return ctx.Next()
	}
}
