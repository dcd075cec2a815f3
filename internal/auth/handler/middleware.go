package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/koobs97/BonsCore-sub000/internal/auth/service"
	autherror "github.com/koobs97/BonsCore-sub000/internal/errors"
)

const principalKey = "principal"

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// RequireAuth is the per-request filter. It consults the session registry's
// blacklist before the token verifier, so a revoked token is rejected even
// while it would still verify.
func RequireAuth(loginService *service.LoginService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}

		principal, err := loginService.Authenticate(token)
		if err != nil {
			reason := "invalid token"
			switch {
			case errors.Is(err, autherror.ErrTokenRevoked):
				reason = "token revoked"
			case errors.Is(err, autherror.ErrTokenExpired):
				reason = "token expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": reason})
		}

		c.Locals(principalKey, principal)

		return c.Next()
	}
}
