package serverutils

import (
	"elibrary-be/internal/pkg/message"

	"github.com/gofiber/fiber/v2"
)

// LanguageMiddleware puts the caller's language on the request context.
// The "lang" query parameter wins over Accept-Language.
func LanguageMiddleware(fallback message.Language) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		lang := fallback
		if q := ctx.Query("lang"); q != "" {
			lang = message.ParseLanguage(q)
		} else if h := ctx.Get(fiber.HeaderAcceptLanguage); h != "" {
			lang = message.ParseLanguage(h)
		}
		ctx.SetUserContext(message.WithLanguage(ctx.UserContext(), lang))
		return ctx.Next()
	}
}
