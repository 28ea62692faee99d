// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selltrack/selltrack-backend/internal/config"
	"github.com/selltrack/selltrack-backend/internal/models"
	"github.com/selltrack/selltrack-backend/internal/utils"
)

func authFixture(t *testing.T) *AuthService {
	t.Helper()

	utils.SetJWTSecret("test-secret")
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.AccessTokenTTL = 1
	cfg.JWT.RefreshTokenTTL = 24

	return NewAuthService(setupTestDB(t), cfg)
}

func TestRegisterIssuesTokens(t *testing.T) {
	svc := authFixture(t)

	resp, err := svc.Register(&RegisterRequest{
		Username: "maker",
		Email:    "maker@example.com",
		Password: "Str0ngPassword",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, models.UserRoleUser, resp.User.Role)

	claims, err := utils.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims.UserID)
	assert.Equal(t, "maker", claims.Username)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc := authFixture(t)

	_, err := svc.Register(&RegisterRequest{
		Username: "maker",
		Email:    "maker@example.com",
		Password: "password",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterDuplicate(t *testing.T) {
	svc := authFixture(t)

	req := &RegisterRequest{
		Username: "maker",
		Email:    "maker@example.com",
		Password: "Str0ngPassword",
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrConflict)

	// Same username under a different email still collides.
	_, err = svc.Register(&RegisterRequest{
		Username: "maker",
		Email:    "other@example.com",
		Password: "Str0ngPassword",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin(t *testing.T) {
	svc := authFixture(t)

	_, err := svc.Register(&RegisterRequest{
		Username: "maker",
		Email:    "maker@example.com",
		Password: "Str0ngPassword",
	})
	require.NoError(t, err)

	resp, err := svc.Login(&LoginRequest{Email: "maker@example.com", Password: "Str0ngPassword"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotNil(t, resp.User.LastLoginAt)

	// Wrong password and unknown email read identically.
	_, err = svc.Login(&LoginRequest{Email: "maker@example.com", Password: "WrongPassw0rd"})
	require.Error(t, err)
	wrongPassword := err.Error()

	_, err = svc.Login(&LoginRequest{Email: "ghost@example.com", Password: "Str0ngPassword"})
	require.Error(t, err)
	assert.Equal(t, wrongPassword, err.Error())
}

func TestLoginSuspendedAccount(t *testing.T) {
	svc := authFixture(t)

	resp, err := svc.Register(&RegisterRequest{
		Username: "maker",
		Email:    "maker@example.com",
		Password: "Str0ngPassword",
	})
	require.NoError(t, err)

	require.NoError(t, svc.db.Model(resp.User).
		Update("status", models.UserStatusSuspended).Error)

	_, err = svc.Login(&LoginRequest{Email: "maker@example.com", Password: "Str0ngPassword"})
	assert.EqualError(t, err, "account is suspended")
}

func TestRefreshToken(t *testing.T) {
	svc := authFixture(t)

	registered, err := svc.Register(&RegisterRequest{
		Username: "maker",
		Email:    "maker@example.com",
		Password: "Str0ngPassword",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(registered.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken("not-a-token")
	assert.EqualError(t, err, "invalid refresh token")
}
