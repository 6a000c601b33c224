package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

// RequireUser ensures the caller has a user document and an active account.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("account required")
		}
		if !principal.User.IsActive {
			return apperrors.NewForbidden("account deactivated")
		}
		return c.Next()
	}
}

// RequireAdmin ensures the caller is an active administrator.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !principal.IsAdmin() {
			return apperrors.NewForbidden("administrator access required")
		}
		return c.Next()
	}
}
