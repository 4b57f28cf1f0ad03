package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/ports"
	"github.com/ics-security/hrm-chat-gateway/internal/application/session"
	"github.com/ics-security/hrm-chat-gateway/internal/domain"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
	"github.com/ics-security/hrm-chat-gateway/pkg/jwt"
	"github.com/ics-security/hrm-chat-gateway/pkg/logger"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// DemoConfig offline fallback settings. When enabled, a backend connection
// failure during login falls through to the built-in demo directory instead
// of surfacing an error.
type DemoConfig struct {
	Enabled  bool
	Password string
}

// demoUser is an entry of the built-in demo directory.
type demoUser struct {
	id       int
	username string
	fullName string
	email    string
	title    string
	role     entity.Role
	deptID   *int
}

var engineeringDept = 1

// demoDirectory mirrors the three demo accounts shipped with the product.
var demoDirectory = []demoUser{
	{id: 1, username: "an", fullName: "Nguyễn Văn An", email: "an.nguyen@icss.com.vn", title: "Giám đốc", role: entity.RoleAdmin, deptID: nil},
	{id: 2, username: "binh", fullName: "Trần Thị Bình", email: "binh.tran@icss.com.vn", title: "Trưởng phòng Kỹ thuật", role: entity.RoleManager, deptID: &engineeringDept},
	{id: 3, username: "cuong", fullName: "Lê Văn Cường", email: "cuong.le@icss.com.vn", title: "Developer", role: entity.RoleEmployee, deptID: &engineeringDept},
}

// AuthUseCase login and logout against the HRM backend, with session
// issuance and the demo-mode fallback.
type AuthUseCase struct {
	backend      ports.HRMBackend
	store        *session.Store
	jwtCfg       JWTConfig
	demo         DemoConfig
	demoPassHash []byte
	log          *logger.Logger
}

// NewAuthUseCase builds the use case. The demo password is bcrypt-hashed
// once here so login attempts always pay a constant-time compare.
func NewAuthUseCase(backend ports.HRMBackend, store *session.Store, jwtCfg JWTConfig, demo DemoConfig, log *logger.Logger) *AuthUseCase {
	uc := &AuthUseCase{
		backend: backend,
		store:   store,
		jwtCfg:  jwtCfg,
		demo:    demo,
		log:     log,
	}
	if demo.Enabled {
		hash, err := bcrypt.GenerateFromPassword([]byte(demo.Password), bcrypt.DefaultCost)
		if err == nil {
			uc.demoPassHash = hash
		}
	}
	return uc
}

// Login verifies credentials against the backend, creates the session and
// issues the token. A transport failure with demo mode enabled falls back to
// the demo directory; bad credentials always return ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	demoMode := false
	user, err := uc.backend.Login(ctx, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, err
		}
		if !uc.demo.Enabled {
			return nil, domain.ErrBackendUnavailable
		}
		uc.log.Warn().Err(err).Msg("backend login unreachable, trying demo directory")
		user = uc.demoLogin(in.Username, in.Password)
		if user == nil {
			return nil, domain.ErrInvalidCredentials
		}
		demoMode = true
	}

	role := entity.Role(user.Role)
	if !role.Valid() {
		// The backend returned a role outside the closed enumeration; never
		// create a session for it.
		return nil, domain.ErrInvalidSession
	}

	sess := &entity.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		Title:        user.Title,
		Role:         role,
		DepartmentID: user.DepartmentID,
		CreatedAt:    time.Now(),
	}
	if err := uc.store.Login(sess); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, sess.ID, string(sess.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		_ = uc.store.Logout(sess.ID)
		return nil, err
	}

	return &dto.LoginResponse{
		Success:     true,
		Token:       token,
		User:        *user,
		DefaultView: sess.Role.DefaultView(),
		DemoMode:    demoMode,
	}, nil
}

// Logout removes the session from memory and durable storage.
func (uc *AuthUseCase) Logout(sessionID string) error {
	return uc.store.Logout(sessionID)
}

func (uc *AuthUseCase) demoLogin(username, password string) *dto.UserDTO {
	if uc.demoPassHash == nil {
		return nil
	}
	if bcrypt.CompareHashAndPassword(uc.demoPassHash, []byte(password)) != nil {
		return nil
	}
	needle := strings.ToLower(strings.TrimSpace(username))
	for _, u := range demoDirectory {
		if needle == u.username || needle == strings.ToLower(u.email) {
			return &dto.UserDTO{
				ID:           u.id,
				FullName:     u.fullName,
				Email:        u.email,
				Title:        u.title,
				Role:         string(u.role),
				DepartmentID: u.deptID,
			}
		}
	}
	return nil
}
