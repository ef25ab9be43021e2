package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/road-monitoring-service/internal/pkg/auth"
	"github.com/road-monitoring-service/internal/pkg/errors"
	"github.com/road-monitoring-service/internal/pkg/utils"
)

// Auth - middleware проверки bearer-токена на мутирующих маршрутах.
// Состояние авторизации живет в токене запроса, а не в глобальной
// переменной процесса. При enabled=false запросы проходят без проверки.
func Auth(authorizer *auth.Authorizer, enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Next()
		}

		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}

		// Без register и login токен получить неоткуда
		switch c.Path() {
		case "/api/users/register", "/api/users/login":
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		claims, err := authorizer.ValidateToken(token)
		if err != nil {
			return utils.SendError(c, err)
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("user_email", claims.Email)

		return c.Next()
	}
}
