package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/smallbizniz/support-portal/internal/auth"
	"github.com/smallbizniz/support-portal/internal/domain"
	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

func newIdentityServiceForTest(t *testing.T) (*IdentityService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	svc := NewIdentityService(IdentityDependencies{
		UserRepo:   users,
		Tokens:     auth.NewTokenManager("unit-test-secret", 30),
		BcryptCost: bcrypt.MinCost,
	})
	svc.now = fixedClock(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	return svc, users
}

func seedUser(t *testing.T, users *fakeUserRepo, id, email, password string, role domain.UserRole, active bool) {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	_ = users.Create(context.Background(), &domain.User{
		ID:           id,
		Email:        email,
		Role:         role,
		IsActive:     active,
		PasswordHash: hash,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
}

func TestLogin(t *testing.T) {
	svc, users := newIdentityServiceForTest(t)
	seedUser(t, users, "u1", "client@example.com", "correct-password", domain.RoleClient, true)

	user, token, exp, err := svc.Login(context.Background(), "client@example.com", "correct-password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || exp.IsZero() {
		t.Error("no token issued")
	}
	if user.LastLoginAt == nil {
		t.Error("LastLoginAt not stamped")
	}
	stored, _ := users.GetByID(context.Background(), "u1")
	if stored.LastLoginAt == nil {
		t.Error("LastLoginAt not persisted")
	}
}

func TestLoginFailures(t *testing.T) {
	svc, users := newIdentityServiceForTest(t)
	seedUser(t, users, "u1", "client@example.com", "correct-password", domain.RoleClient, true)
	seedUser(t, users, "u2", "gone@example.com", "pw", domain.RoleClient, false)

	// Unknown email and wrong password must be indistinguishable.
	if _, _, _, err := svc.Login(context.Background(), "nobody@example.com", "pw"); !apperrors.IsCode(err, "UNAUTHORIZED") {
		t.Errorf("unknown email: got %v", err)
	}
	if _, _, _, err := svc.Login(context.Background(), "client@example.com", "wrong"); !apperrors.IsCode(err, "UNAUTHORIZED") {
		t.Errorf("wrong password: got %v", err)
	}
	if _, _, _, err := svc.Login(context.Background(), "gone@example.com", "pw"); !apperrors.IsCode(err, "FORBIDDEN") {
		t.Errorf("deactivated account: got %v", err)
	}
}

func TestCheckAdmin(t *testing.T) {
	svc, users := newIdentityServiceForTest(t)
	seedUser(t, users, "admin-1", "admin@example.com", "pw", domain.RoleAdmin, true)
	seedUser(t, users, "client-1", "client@example.com", "pw", domain.RoleClient, true)
	seedUser(t, users, "former-1", "former@example.com", "pw", domain.RoleAdmin, false)

	tokenFor := func(id string) string {
		user, _ := users.GetByID(context.Background(), id)
		token, _, err := svc.tokens.GenerateToken(user)
		if err != nil {
			t.Fatal(err)
		}
		return token
	}

	status, err := svc.CheckAdmin(context.Background(), tokenFor("admin-1"))
	if err != nil {
		t.Fatal(err)
	}
	if !status.IsAdmin {
		t.Error("active admin reported as non-admin")
	}

	status, err = svc.CheckAdmin(context.Background(), tokenFor("client-1"))
	if err != nil {
		t.Fatal(err)
	}
	if status.IsAdmin {
		t.Error("client reported as admin")
	}

	// isAdmin is re-derived from the document: a token minted while the
	// account was an active admin does not survive deactivation.
	status, err = svc.CheckAdmin(context.Background(), tokenFor("former-1"))
	if err != nil {
		t.Fatal(err)
	}
	if status.IsAdmin {
		t.Error("deactivated admin retained capability")
	}

	if _, err := svc.CheckAdmin(context.Background(), "garbage"); !apperrors.IsCode(err, "UNAUTHORIZED") {
		t.Errorf("invalid token: got %v", err)
	}
}

func TestCheckAdminWithoutProfile(t *testing.T) {
	svc, _ := newIdentityServiceForTest(t)
	token, _, err := svc.tokens.GenerateToken(&domain.User{ID: "ghost", Email: "ghost@example.com", Role: domain.RoleAdmin, IsActive: true})
	if err != nil {
		t.Fatal(err)
	}

	status, err := svc.CheckAdmin(context.Background(), token)
	if err != nil {
		t.Fatalf("verified token without document should not error: %v", err)
	}
	if status.IsAdmin {
		t.Error("token claims alone granted admin")
	}
	if status.UserID != "ghost" {
		t.Errorf("UserID = %q", status.UserID)
	}
}

func TestCreateUser(t *testing.T) {
	svc, users := newIdentityServiceForTest(t)

	user, err := svc.CreateUser(context.Background(), "staff@example.com", "pw", domain.RoleAdmin, "Staff Member")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Role != domain.RoleAdmin || !user.IsActive {
		t.Errorf("created user: %+v", user)
	}

	// Role defaults to client when omitted.
	user, err = svc.CreateUser(context.Background(), "client@example.com", "pw", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if user.Role != domain.RoleClient {
		t.Errorf("default role = %q", user.Role)
	}

	if _, err := svc.CreateUser(context.Background(), "staff@example.com", "pw", domain.RoleClient, ""); !apperrors.IsCode(err, "CONFLICT") {
		t.Errorf("duplicate email: got %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), "x@example.com", "pw", "superuser", ""); !apperrors.IsCode(err, "VALIDATION_FAILED") {
		t.Errorf("unknown role: got %v", err)
	}

	if list, _ := users.List(context.Background()); len(list) != 2 {
		t.Errorf("stored %d users, want 2", len(list))
	}
}

func TestUpdateRoleAndSetActive(t *testing.T) {
	svc, users := newIdentityServiceForTest(t)
	seedUser(t, users, "u1", "client@example.com", "pw", domain.RoleClient, true)

	user, err := svc.UpdateRole(context.Background(), "u1", domain.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}
	if !user.IsAdmin() {
		t.Error("promotion did not take effect")
	}

	user, err = svc.SetActive(context.Background(), "u1", false)
	if err != nil {
		t.Fatal(err)
	}
	if user.IsAdmin() {
		t.Error("deactivated admin still reports admin capability")
	}

	if _, err := svc.UpdateRole(context.Background(), "missing", domain.RoleAdmin); !apperrors.IsCode(err, "NOT_FOUND") {
		t.Errorf("missing user: got %v", err)
	}
}
