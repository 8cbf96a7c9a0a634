package usecases

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryuk2345/raffussclietos/internal/entities"
)

func TestAdminLogin(t *testing.T) {
	uc := NewAuthUsecase(nil, nil, "test-secret", "")

	t.Run("hardcoded password with empty email", func(t *testing.T) {
		result, err := uc.Login("", "admin123")
		require.NoError(t, err)
		assert.Equal(t, "/dashboard", result.RedirectTo)
		assert.Equal(t, "admin", result.Session.ID)
		assert.Equal(t, "Administrador", result.Session.Role)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("hardcoded password with admin email", func(t *testing.T) {
		result, err := uc.Login("admin@admin.com", "admin123")
		require.NoError(t, err)
		assert.Equal(t, entities.SessionAdmin, result.Session.Type)
	})

	t.Run("env override replaces the default", func(t *testing.T) {
		custom := NewAuthUsecase(nil, nil, "test-secret", "s3cret")
		result, err := custom.Login("", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "admin", result.Session.ID)
	})
}

func TestResolve(t *testing.T) {
	uc := NewAuthUsecase(nil, nil, "test-secret", "")

	t.Run("round-trips the admin session", func(t *testing.T) {
		result, err := uc.Login("", "admin123")
		require.NoError(t, err)

		session, err := uc.Resolve(result.Token)
		require.NoError(t, err)
		assert.Equal(t, entities.Session{ID: "admin", Name: "Admin", Role: "Administrador", Type: entities.SessionAdmin}, *session)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := uc.Resolve("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "admin",
			"typ": entities.SessionAdmin,
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		token, err := expired.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = uc.Resolve(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "admin",
			"typ": entities.SessionAdmin,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		token, err := forged.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = uc.Resolve(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("rejects an unknown session type", func(t *testing.T) {
		odd := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "x",
			"typ": "robot",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		token, err := odd.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = uc.Resolve(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}

func TestCredentialMatches(t *testing.T) {
	t.Run("bcrypt hashes compare with bcrypt", func(t *testing.T) {
		hashed, err := HashPassword("hunter2")
		require.NoError(t, err)
		assert.True(t, credentialMatches(hashed, "hunter2"))
		assert.False(t, credentialMatches(hashed, "hunter3"))
	})

	t.Run("legacy plaintext records compare directly", func(t *testing.T) {
		assert.True(t, credentialMatches("123456", "123456"))
		assert.False(t, credentialMatches("123456", "654321"))
	})
}
