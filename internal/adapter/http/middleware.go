package http

import (
	"strings"

	"resume-api/internal/auth"
	"resume-api/internal/domain"
	"resume-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const userLocalKey = "current_user"

// Authenticate validates the bearer token and loads the account behind it
// into the request locals.
func Authenticate(tokens *auth.JWTManager, users usecase.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return fail(c, fiber.StatusUnauthorized, "missing bearer token")
		}

		username, _, err := tokens.ValidateAccessToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return fail(c, fiber.StatusUnauthorized, "could not validate credentials")
		}

		u, err := users.FindByUsername(c.UserContext(), username)
		if err != nil {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return fail(c, fiber.StatusUnauthorized, "could not validate credentials")
		}

		c.Locals(userLocalKey, u)
		return c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if u := currentUser(c); u == nil || u.Role != "admin" {
			return fail(c, fiber.StatusForbidden, "admin access required")
		}
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals(userLocalKey).(*domain.User)
	return u
}
