// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"fmt"
	"strings"

	"elibrary-be/internal/constant"
	"elibrary-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// NewJwtMiddleware verifies the bearer token and exposes its user_id and
// role claims as fiber locals. A token without a role is rejected.
func NewJwtMiddleware(secret string) fiber.Handler {
	key := []byte(secret)
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenStr == "" {
			return apperror.Unauthorized("Missing token")
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			return apperror.Unauthorized("Invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return apperror.Unauthorized("Invalid claims")
		}

		role, _ := claims[constant.LocalsRole].(string)
		if strings.TrimSpace(role) == "" {
			return apperror.Unauthorized("Missing role claim")
		}
		ctx.Locals(constant.LocalsUserId, claims[constant.LocalsUserId])
		ctx.Locals(constant.LocalsRole, role)
		return ctx.Next()
	}
}
