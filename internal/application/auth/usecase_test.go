package auth_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ics-security/hrm-chat-gateway/internal/application/auth"
	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/ports"
	"github.com/ics-security/hrm-chat-gateway/internal/application/session"
	"github.com/ics-security/hrm-chat-gateway/internal/domain"
	"github.com/ics-security/hrm-chat-gateway/internal/infrastructure/sqlite"
	pkgjwt "github.com/ics-security/hrm-chat-gateway/pkg/jwt"
	"github.com/ics-security/hrm-chat-gateway/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "hrm-chat-gateway-test"
	demoPassword = "icss2026"
)

// fakeBackend answers Login from a function.
type fakeBackend struct {
	ports.HRMBackend
	loginFn func(username, password string) (*dto.UserDTO, error)
}

func (f *fakeBackend) Login(_ context.Context, username, password string) (*dto.UserDTO, error) {
	return f.loginFn(username, password)
}

func newFixture(t *testing.T, backend ports.HRMBackend, demoEnabled bool) (*auth.AuthUseCase, *session.Store) {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	repo, err := sqlite.New(filepath.Join(t.TempDir(), "s.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	store, err := session.NewStore(repo, log)
	require.NoError(t, err)

	uc := auth.NewAuthUseCase(backend, store,
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer},
		auth.DemoConfig{Enabled: demoEnabled, Password: demoPassword},
		log)
	return uc, store
}

func backendUser() *dto.UserDTO {
	dept := 1
	return &dto.UserDTO{
		ID: 2, FullName: "Trần Thị Bình", Email: "binh.tran@icss.com.vn",
		Title: "Trưởng phòng Kỹ thuật", Role: "manager", DepartmentID: &dept,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Backend login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_BackendSuccessCreatesSessionAndToken(t *testing.T) {
	backend := &fakeBackend{loginFn: func(username, password string) (*dto.UserDTO, error) {
		require.Equal(t, "binh", username)
		return backendUser(), nil
	}}
	uc, store := newFixture(t, backend, true)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "binh", Password: "secret"})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.False(t, out.DemoMode)
	assert.Equal(t, "/manager", out.DefaultView)
	assert.Equal(t, "Trần Thị Bình", out.User.FullName)

	sessionID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "manager", role)

	sess := store.Get(sessionID)
	require.NotNil(t, sess, "the session must be live in the store")
	assert.Equal(t, 2, sess.UserID)
}

func TestLogin_BadCredentialsAreNeverRetriedAgainstTheDemoDirectory(t *testing.T) {
	backend := &fakeBackend{loginFn: func(string, string) (*dto.UserDTO, error) {
		return nil, domain.ErrInvalidCredentials
	}}
	uc, _ := newFixture(t, backend, true)

	// Even with demo mode on and the demo password, a backend rejection is
	// a rejection.
	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "an", Password: demoPassword})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownRoleFromBackendIsRejected(t *testing.T) {
	backend := &fakeBackend{loginFn: func(string, string) (*dto.UserDTO, error) {
		u := backendUser()
		u.Role = "superuser"
		return u, nil
	}}
	uc, _ := newFixture(t, backend, true)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "binh", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestLogin_MissingFieldsAreRejected(t *testing.T) {
	uc, _ := newFixture(t, &fakeBackend{}, true)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "an"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Demo-mode fallback
// ──────────────────────────────────────────────────────────────────────────────

func unreachableBackend() *fakeBackend {
	return &fakeBackend{loginFn: func(string, string) (*dto.UserDTO, error) {
		return nil, errors.New("dial tcp 127.0.0.1:8000: connection refused")
	}}
}

func TestLogin_UnreachableBackendFallsBackToDemoDirectory(t *testing.T) {
	uc, store := newFixture(t, unreachableBackend(), true)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "an", Password: demoPassword})
	require.NoError(t, err)

	assert.True(t, out.DemoMode)
	assert.Equal(t, "Nguyễn Văn An", out.User.FullName)
	assert.Equal(t, "admin", out.User.Role)
	assert.Equal(t, "/admin", out.DefaultView)

	sessionID, _, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.NotNil(t, store.Get(sessionID))
}

func TestLogin_DemoDirectoryMatchesEmailToo(t *testing.T) {
	uc, _ := newFixture(t, unreachableBackend(), true)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "cuong.le@icss.com.vn", Password: demoPassword})
	require.NoError(t, err)
	assert.Equal(t, "employee", out.User.Role)
}

func TestLogin_DemoFallbackRejectsWrongPassword(t *testing.T) {
	uc, _ := newFixture(t, unreachableBackend(), true)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "an", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_DemoDisabledSurfacesBackendOutage(t *testing.T) {
	uc, _ := newFixture(t, unreachableBackend(), false)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "an", Password: demoPassword})
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_RemovesTheSession(t *testing.T) {
	uc, store := newFixture(t, unreachableBackend(), true)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "binh", Password: demoPassword})
	require.NoError(t, err)
	sessionID, _, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(sessionID))
	assert.Nil(t, store.Get(sessionID))
}
