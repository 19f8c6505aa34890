package auth

import (
	"context"
	"log/slog"

	"github.com/staffhub-hr/hr-backend-go/internal/config"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/auth"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService checks role credentials against configured bcrypt hashes
// and issues access tokens. There is no user table; the application
// authenticates the two operator roles of the approval chain.
type AuthService struct {
	cfg        config.AuthConfig
	jwtService jwt.Service
}

func NewAuthService(cfg config.AuthConfig, jwtService jwt.Service) *AuthService {
	return &AuthService{cfg: cfg, jwtService: jwtService}
}

func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	hash, err := s.hashForRole(req.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		slog.Warn("login rejected", "role", req.Role)
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateAccessToken(req.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		Role:        req.Role,
	}, nil
}

func (s *AuthService) hashForRole(role string) (string, error) {
	var hash string
	switch role {
	case auth.RoleAdmin:
		hash = s.cfg.AdminPasswordHash
	case auth.RoleApprover:
		hash = s.cfg.ApproverPasswordHash
	}
	if hash == "" {
		return "", auth.ErrRoleNotConfigured
	}
	return hash, nil
}
