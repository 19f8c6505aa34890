package auth

import (
	"context"
	"testing"

	"github.com/staffhub-hr/hr-backend-go/internal/config"
	"github.com/staffhub-hr/hr-backend-go/internal/domain/auth"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

func testService(t *testing.T, adminPassword, approverPassword string) *AuthService {
	t.Helper()

	cfg := config.AuthConfig{}
	if adminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
		require.NoError(t, err)
		cfg.AdminPasswordHash = string(hash)
	}
	if approverPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(approverPassword), bcrypt.MinCost)
		require.NoError(t, err)
		cfg.ApproverPasswordHash = string(hash)
	}

	return NewAuthService(cfg, jwt.NewJWTService(testSecret, "1h"))
}

func TestLoginSuccess(t *testing.T) {
	svc := testService(t, "admin-pass", "approver-pass")

	result, err := svc.Login(context.Background(), auth.LoginRequest{
		Role:     auth.RoleAdmin,
		Password: "admin-pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, auth.RoleAdmin, result.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := testService(t, "admin-pass", "")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Role:     auth.RoleAdmin,
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownRole(t *testing.T) {
	svc := testService(t, "admin-pass", "")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Role:     "superuser",
		Password: "admin-pass",
	})
	assert.Error(t, err)
}

func TestLoginRoleNotConfigured(t *testing.T) {
	svc := testService(t, "admin-pass", "")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Role:     auth.RoleApprover,
		Password: "anything",
	})
	assert.ErrorIs(t, err, auth.ErrRoleNotConfigured)
}

func TestLoginMissingPassword(t *testing.T) {
	svc := testService(t, "admin-pass", "")

	_, err := svc.Login(context.Background(), auth.LoginRequest{Role: auth.RoleAdmin})
	assert.Error(t, err)
}
