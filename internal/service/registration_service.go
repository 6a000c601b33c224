package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/smallbizniz/support-portal/internal/auth"
	"github.com/smallbizniz/support-portal/internal/domain"
	"github.com/smallbizniz/support-portal/internal/events"
	"github.com/smallbizniz/support-portal/internal/repository"
	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

// RegistrationService gates self-service signup behind admin review. The
// chosen password survives the waiting period encrypted, never in clear text.
type RegistrationService struct {
	registrations repository.RegistrationRepository
	users         repository.UserRepository
	cipher        *auth.PasswordCipher
	dispatcher    events.Dispatcher
	bcryptCost    int
	now           func() time.Time
}

// RegistrationDependencies bundles requirements for the registration service.
type RegistrationDependencies struct {
	RegistrationRepo repository.RegistrationRepository
	UserRepo         repository.UserRepository
	Cipher           *auth.PasswordCipher
	Dispatcher       events.Dispatcher
	BcryptCost       int
}

// NewRegistrationService constructs the service.
func NewRegistrationService(deps RegistrationDependencies) *RegistrationService {
	return &RegistrationService{
		registrations: deps.RegistrationRepo,
		users:         deps.UserRepo,
		cipher:        deps.Cipher,
		dispatcher:    deps.Dispatcher,
		bcryptCost:    deps.BcryptCost,
		now:           time.Now,
	}
}

// Submit stores a pending request with the password encrypted under the
// process-wide key and alerts active admins. Conflicts with an existing
// account or pending request fail before anything is written; a concurrent
// duplicate is caught by the store's uniqueness constraint.
func (s *RegistrationService) Submit(ctx context.Context, email, password, displayName string) (*domain.RegistrationRequest, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password required", nil)
	}

	pending, err := s.registrations.HasPendingForEmail(ctx, email)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if pending {
		return nil, apperrors.NewConflict("a registration request with this email is already pending approval", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("an account with this email already exists", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	encrypted, err := s.cipher.Encrypt(password)
	if err != nil {
		return nil, err
	}

	request := &domain.RegistrationRequest{
		ID:                uuid.NewString(),
		Email:             email,
		EncryptedPassword: encrypted,
		DisplayName:       strings.TrimSpace(displayName),
		Status:            domain.RegistrationPending,
		CreatedAt:         s.now(),
	}
	if err := s.registrations.CreatePending(ctx, request); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type: events.EventRegistrationSubmitted,
		Payload: events.RegistrationSubmittedPayload{
			RequestID:   request.ID,
			Email:       request.Email,
			DisplayName: request.DisplayName,
			CreatedAt:   request.CreatedAt,
		},
	})
	return request, nil
}

// Approve decrypts the stored password, provisions the account with role
// client, and marks the request approved. The user insert and the status
// flip land in one transaction; a second approval fails with an
// invalid-state error once the first has committed.
func (s *RegistrationService) Approve(ctx context.Context, requestID string) (*domain.User, error) {
	request, err := s.getRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.RegistrationPending {
		return nil, apperrors.NewInvalidState("registration request has already been processed")
	}

	password, err := s.cipher.Decrypt(request.EncryptedPassword)
	if err != nil {
		if errors.Is(err, auth.ErrDecrypt) {
			return nil, apperrors.NewDomainError("DECRYPT_FAILED",
				"failed to decrypt password: REGISTRATION_ENCRYPTION_KEY changed or is missing; restore the key used when the registration was created",
				http.StatusUnprocessableEntity, nil)
		}
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        request.Email,
		Role:         domain.RoleClient,
		DisplayName:  request.DisplayName,
		IsActive:     true,
		PasswordHash: hash,
		CreatedAt:    now,
	}

	request.Status = domain.RegistrationApproved
	request.ApprovedAt = &now
	request.UserID = user.ID

	if err := s.registrations.Approve(ctx, request, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Reject flips a pending request to rejected with a timestamp. No side
// effects beyond the state change.
func (s *RegistrationService) Reject(ctx context.Context, requestID string) error {
	request, err := s.getRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request.Status != domain.RegistrationPending {
		return apperrors.NewInvalidState("registration request has already been processed")
	}

	now := s.now()
	request.Status = domain.RegistrationRejected
	request.RejectedAt = &now

	if err := s.registrations.Update(ctx, request); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// ListAll returns every request, newest first.
func (s *RegistrationService) ListAll(ctx context.Context) ([]domain.RegistrationRequest, error) {
	requests, err := s.registrations.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return requests, nil
}

// ListPending returns requests awaiting review, newest first.
func (s *RegistrationService) ListPending(ctx context.Context) ([]domain.RegistrationRequest, error) {
	requests, err := s.registrations.ListPending(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return requests, nil
}

func (s *RegistrationService) getRequest(ctx context.Context, requestID string) (*domain.RegistrationRequest, error) {
	request, err := s.registrations.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("registration request", map[string]any{"id": requestID})
		}
		return nil, apperrors.MapError(err)
	}
	return request, nil
}

func (s *RegistrationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
