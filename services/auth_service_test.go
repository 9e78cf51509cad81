package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-backend/config"
	"travel-backend/models"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	config.SeedDatabase(db)
	return NewAuthService(db, []byte("test-secret"))
}

func TestLoginOwner(t *testing.T) {
	auth := newAuthService(t)

	result, err := auth.Login("owner", "owner123")
	require.NoError(t, err)
	assert.Equal(t, "/owner/dashboard", result.RedirectPath)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, models.RoleOwner, result.User.Role)

	claims, err := auth.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, claims.Role)
}

func TestLoginStaff(t *testing.T) {
	auth := newAuthService(t)

	result, err := auth.Login("staff", "staff123")
	require.NoError(t, err)
	assert.Equal(t, "/staff/dashboard", result.RedirectPath)
	assert.Equal(t, models.RoleStaff, result.User.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	auth := newAuthService(t)

	cases := []struct{ identifier, password string }{
		{"owner", "wrong"},
		{"nobody", "owner123"},
		{"", "owner123"},
		{"owner", ""},
	}
	for _, tc := range cases {
		result, err := auth.Login(tc.identifier, tc.password)
		require.Error(t, err)
		// Always the same generic error, never a field hint.
		assert.EqualError(t, err, "invalid_credentials")
		assert.Nil(t, result)
	}
}

func TestLoginByEmailIdentifier(t *testing.T) {
	auth := newAuthService(t)
	auth.IdentifierField = IdentifierEmail

	result, err := auth.Login("Owner@Travel.Local", "owner123")
	require.NoError(t, err)
	assert.Equal(t, "/owner/dashboard", result.RedirectPath)

	_, err = auth.Login("owner", "owner123")
	require.Error(t, err, "username is not accepted in email mode")
}

func TestLoginUpgradesLegacyPlaintext(t *testing.T) {
	auth := newAuthService(t)

	legacy := models.User{
		FullName: "Legacy Staff",
		Username: "legacy",
		Email:    "legacy@travel.local",
		Password: "legacy123",
		Role:     models.RoleStaff,
	}
	require.NoError(t, auth.DB.Create(&legacy).Error)

	_, err := auth.Login("legacy", "legacy123")
	require.NoError(t, err)

	var reloaded models.User
	require.NoError(t, auth.DB.Where("username = ?", "legacy").First(&reloaded).Error)
	assert.True(t, isBcryptHash(reloaded.Password), "plaintext row is upgraded to a hash on first login")

	_, err = auth.Login("legacy", "legacy123")
	require.NoError(t, err, "login still works after the upgrade")
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.VerifyToken("not-a-token")
	require.Error(t, err)

	other := NewAuthService(auth.DB, []byte("other-secret"))
	result, err := other.Login("owner", "owner123")
	require.NoError(t, err)

	_, err = auth.VerifyToken(result.Token)
	require.Error(t, err, "token signed with a different secret is rejected")
}

func TestResetPasswordValidation(t *testing.T) {
	auth := newAuthService(t)

	err := auth.ResetPassword("", "longenough")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")

	err = auth.ResetPassword("some-token", "short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "6 characters")

	err = auth.ResetPassword("unknown-token", "longenough")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_or_expired_token")
}

func TestResetPasswordExpiredToken(t *testing.T) {
	auth := newAuthService(t)

	token := "expired-token"
	expired := time.Now().Add(-time.Minute)
	require.NoError(t, auth.DB.Model(&models.User{}).
		Where("username = ?", "staff").
		Updates(map[string]any{"reset_token": token, "reset_token_expires": expired}).Error)

	err := auth.ResetPassword(token, "longenough")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_or_expired_token")
}

func TestResetPasswordSuccess(t *testing.T) {
	auth := newAuthService(t)

	token := "valid-token"
	expiry := time.Now().Add(time.Hour)
	require.NoError(t, auth.DB.Model(&models.User{}).
		Where("username = ?", "staff").
		Updates(map[string]any{"reset_token": token, "reset_token_expires": expiry}).Error)

	require.NoError(t, auth.ResetPassword(token, "newpass99"))

	_, err := auth.Login("staff", "staff123")
	require.Error(t, err, "old password no longer works")

	result, err := auth.Login("staff", "newpass99")
	require.NoError(t, err)
	assert.Equal(t, "/staff/dashboard", result.RedirectPath)

	err = auth.ResetPassword(token, "anotherpass")
	require.Error(t, err, "token is cleared after use")
}
