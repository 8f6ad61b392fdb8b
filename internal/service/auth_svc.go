package service

import (
	"context"
	"errors"

	"github.com/amrenderatomar-prog/Task-Management-API/internal/domain"
	"github.com/amrenderatomar-prog/Task-Management-API/pkg/auth"
)

type AuthSvc struct {
	users  UserStore
	tokens RefreshTokenStore
	jwt    *auth.TokenService
}

func NewAuthSvc(users UserStore, tokens RefreshTokenStore, jwt *auth.TokenService) *AuthSvc {
	return &AuthSvc{users: users, tokens: tokens, jwt: jwt}
}

// Register creates an account; requested roles are ignored, everyone starts
// as a plain user.
func (s *AuthSvc) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if existing, err := s.users.ByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{Name: name, Email: email, Password: hash, Role: domain.RoleUser}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login deliberately reports the same error for an unknown email and a wrong
// password. The refresh token is persisted so logout can revoke it.
func (s *AuthSvc) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", "", domain.ErrInvalidCredentials
		}
		return nil, "", "", err
	}
	if !auth.CheckPassword(password, u.Password) {
		return nil, "", "", domain.ErrInvalidCredentials
	}

	access, err := s.jwt.CreateAccessToken(u.ID, u.Role)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := s.jwt.CreateRefreshToken(u.ID, u.Role)
	if err != nil {
		return nil, "", "", err
	}
	if err := s.tokens.Create(ctx, &domain.RefreshToken{UserID: u.ID, Token: refresh}); err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}

// Refresh exchanges a stored, still-valid refresh token for a new access
// token. The token must both exist server-side and carry a good signature.
func (s *AuthSvc) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if _, err := s.tokens.ByToken(ctx, refreshToken); err != nil {
		if errors.Is(err, domain.ErrInvalidRefreshToken) {
			return "", domain.ErrInvalidRefreshToken
		}
		return "", err
	}
	claims, err := s.jwt.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidRefreshToken
	}
	return s.jwt.CreateAccessToken(claims.Sub, claims.Role)
}

// Logout drops every refresh token the user has, revoking all sessions.
func (s *AuthSvc) Logout(ctx context.Context, userID string) error {
	return s.tokens.DeleteByUser(ctx, userID)
}

func (s *AuthSvc) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.ByID(ctx, userID)
}
