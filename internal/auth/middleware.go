package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/smallbizniz/support-portal/internal/domain"
	"github.com/smallbizniz/support-portal/internal/repository"
	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. User is nil when the token
// verified but no user document exists yet.
type Principal struct {
	UserID string
	Email  string
	User   *domain.User
}

// IsAdmin re-derives admin capability from the loaded user document, not the
// token claims, so a deactivation takes effect on the next request.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.User.IsAdmin()
}

// Middleware validates bearer tokens and loads the caller's user document.
type Middleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository) *Middleware {
	return &Middleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	principal := &Principal{UserID: claims.UserID, Email: claims.Email}

	user, err := m.users.GetByID(c.Context(), claims.UserID)
	switch {
	case err == nil:
		principal.User = user
		principal.Email = user.Email
	case errors.Is(err, pgx.ErrNoRows):
		// Authenticated but no local profile yet; not an error.
	default:
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
