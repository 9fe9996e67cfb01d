package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/basratech/hr-suite-go/internal/domain/auth"
	"github.com/basratech/hr-suite-go/internal/domain/user"
	"github.com/basratech/hr-suite-go/internal/pkg/apperror"
	"github.com/basratech/hr-suite-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	now func() time.Time
}

type Option func(*AuthServiceImpl)

// WithClock overrides the time source used for last-login stamps.
func WithClock(now func() time.Time) Option {
	return func(a *AuthServiceImpl) {
		if now != nil {
			a.now = now
		}
	}
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, opts ...Option) auth.AuthService {
	a := &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.UserResponse{}, apperror.Wrap(apperror.KindInternal, "failed to hash password", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		ID:           id.String(),
		Email:        req.Email,
		PasswordHash: hashed,
		Name:         req.Name,
		Role:         user.RoleUser,
		MFAEnabled:   req.EnableMFA,
		IsActive:     true,
	})
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("create user: %w", err)
	}

	slog.InfoContext(ctx, "User registered", "user_id", created.ID)
	return newUserResponse(created), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("get user by email: %w", err)
	}

	if !userData.IsActive || userData.PasswordHash == "" {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	// MFA verification happens elsewhere, so no token is issued here.
	if userData.MFAEnabled {
		slog.InfoContext(ctx, "Login requires MFA", "user_id", userData.ID)
		return auth.LoginResponse{
			MFARequired: true,
			UserID:      userData.ID,
			Email:       userData.Email,
			Name:        userData.Name,
		}, nil
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(jwt.Identity{
		UserID: userData.ID,
		Email:  userData.Email,
		Name:   userData.Name,
		Role:   string(userData.Role),
	})
	if err != nil {
		return auth.LoginResponse{}, apperror.Wrap(apperror.KindInternal, "failed to generate access token", err)
	}

	if err := a.UserRepository.UpdateLastLogin(ctx, userData.ID, a.now().UTC()); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("update last login: %w", err)
	}

	slog.InfoContext(ctx, "User logged in", "user_id", userData.ID)
	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    userData.ID,
		Email:     userData.Email,
		Name:      userData.Name,
		Role:      string(userData.Role),
	}, nil
}

func newUserResponse(u user.User) auth.UserResponse {
	return auth.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		MFAEnabled: u.MFAEnabled,
	}
}
