package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smallbizniz/support-portal/internal/auth"
	"github.com/smallbizniz/support-portal/internal/domain"
	"github.com/smallbizniz/support-portal/internal/repository"
	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

// AdminStatus is the answer to a check-admin call: the caller's identity
// plus the derived isAdmin flag every authorization decision trusts.
type AdminStatus struct {
	UserID      string
	Email       string
	IsAdmin     bool
	Role        domain.UserRole
	IsActive    bool
	DisplayName string
}

// IdentityService translates bearer credentials into user identity and owns
// direct account administration.
type IdentityService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
	now        func() time.Time
}

// IdentityDependencies bundles requirements for the identity service.
type IdentityDependencies struct {
	UserRepo   repository.UserRepository
	Tokens     *auth.TokenManager
	BcryptCost int
}

// NewIdentityService constructs the service.
func NewIdentityService(deps IdentityDependencies) *IdentityService {
	return &IdentityService{
		users:      deps.UserRepo,
		tokens:     deps.Tokens,
		bcryptCost: deps.BcryptCost,
		now:        time.Now,
	}
}

// Login verifies credentials, stamps lastLoginAt, and issues a token whose
// claims mirror the user document.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if !user.IsActive {
		return nil, "", time.Time{}, apperrors.NewForbidden("account deactivated")
	}

	now := s.now()
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// CheckAdmin verifies the bearer token and loads the user document. A
// verified token without a document is authenticated but not admin. isAdmin
// holds only when role is admin AND the account is active.
func (s *IdentityService) CheckAdmin(ctx context.Context, bearerToken string) (*AdminStatus, error) {
	claims, err := s.tokens.ParseToken(bearerToken)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid token")
	}

	status := &AdminStatus{UserID: claims.UserID, Email: claims.Email}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return status, nil
		}
		return nil, apperrors.MapError(err)
	}

	status.Email = user.Email
	status.Role = user.Role
	status.IsActive = user.IsActive
	status.DisplayName = user.DisplayName
	status.IsAdmin = user.IsAdmin()
	return status, nil
}

// CreateUser provisions an account directly (admin action).
func (s *IdentityService) CreateUser(ctx context.Context, email, password string, role domain.UserRole, displayName string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password required", nil)
	}
	if role == "" {
		role = domain.RoleClient
	}
	if !role.Valid() {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": string(role)})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("an account with this email already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Role:         role,
		DisplayName:  strings.TrimSpace(displayName),
		IsActive:     true,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UpdateRole changes a user's role. The change takes effect on the user's
// next request; outstanding tokens carry stale advisory claims only.
func (s *IdentityService) UpdateRole(ctx context.Context, userID string, role domain.UserRole) (*domain.User, error) {
	if !role.Valid() {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": string(role)})
	}
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// SetActive toggles the account flag. Deactivating an admin strips admin
// capability immediately: authorization re-reads the document per request.
func (s *IdentityService) SetActive(ctx context.Context, userID string, active bool) (*domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.IsActive = active
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// ListUsers returns every identity record.
func (s *IdentityService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

func (s *IdentityService) getUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": userID})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}
