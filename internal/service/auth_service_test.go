package service

import (
	"context"
	"testing"

	"kinovzor/internal/api/dto"
	"kinovzor/internal/repository"
	"kinovzor/internal/testutil"
	"kinovzor/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository, *repository.TokenBlacklistRepository) {
	t.Helper()
	testutil.InitLogger(t)
	testutil.LoadConfig(t)

	userRepo := repository.NewUserRepository(testutil.NewTestDB(t))
	blacklist := repository.NewTokenBlacklistRepository(testutil.NewTestRedis(t))
	return NewAuthService(userRepo, blacklist), userRepo, blacklist
}

func registerViewer(t *testing.T, svc *AuthService) *dto.UserInfo {
	t.Helper()
	info, err := svc.Register(&dto.RegisterRequest{
		Email:    "ivanov@mail.ru",
		Username: "ivanov",
		Password: "viewer123",
	})
	require.NoError(t, err)
	return info
}

func TestAuthService_Register(t *testing.T) {
	svc, userRepo, _ := newAuthService(t)

	info := registerViewer(t, svc)
	assert.Equal(t, "ivanov@mail.ru", info.Email)
	assert.True(t, info.IsUser)
	assert.False(t, info.IsModerator)
	assert.False(t, info.IsAdmin)

	// The stored password is a hash, never the plaintext.
	stored, err := userRepo.GetByID(info.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "viewer123", stored.Password)
	assert.True(t, utils.VerifyPassword("viewer123", stored.Password))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService(t)
	registerViewer(t, svc)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "ivanov@mail.ru",
		Username: "someone-else",
		Password: "viewer123",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthService(t)
	registerViewer(t, svc)

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "another@mail.ru",
		Username: "ivanov",
		Password: "viewer123",
	})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _ := newAuthService(t)
	info := registerViewer(t, svc)

	tokenData, err := svc.Login(&dto.LoginRequest{Username: "ivanov", Password: "viewer123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tokenData.TokenType)
	assert.Equal(t, info.ID, tokenData.User.ID)
	assert.Positive(t, tokenData.ExpiresIn)

	claims, err := utils.ParseToken(tokenData.Token)
	require.NoError(t, err)
	assert.Equal(t, info.ID, claims.UserID)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	svc, _, _ := newAuthService(t)
	registerViewer(t, svc)

	_, err := svc.Login(&dto.LoginRequest{Username: "ivanov", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	// An unknown username gets the same error as a wrong password.
	_, err = svc.Login(&dto.LoginRequest{Username: "nobody", Password: "viewer123"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, _, blacklist := newAuthService(t)
	registerViewer(t, svc)

	tokenData, err := svc.Login(&dto.LoginRequest{Username: "ivanov", Password: "viewer123"})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, svc.Logout(ctx, tokenData.Token))

	revoked, err := blacklist.Contains(ctx, utils.TokenHash(tokenData.Token))
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	svc, userRepo, _ := newAuthService(t)
	info := registerViewer(t, svc)

	got, err := svc.GetCurrentUser(info.ID)
	require.NoError(t, err)
	assert.Equal(t, "ivanov", got.Username)

	_, err = svc.GetCurrentUser(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// A moderator flag set in the store shows up in the profile.
	_, err = userRepo.Update(info.ID, map[string]interface{}{"is_moderator": true})
	require.NoError(t, err)
	got, err = svc.GetCurrentUser(info.ID)
	require.NoError(t, err)
	assert.True(t, got.IsModerator)
}
