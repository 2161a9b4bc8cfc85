package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3nha-forte")
	require.NoError(t, err)
	require.NotEqual(t, "s3nha-forte", hash)

	require.NoError(t, CheckPassword(hash, "s3nha-forte"))
	require.ErrorIs(t, CheckPassword(hash, "senha-errada"), ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, expiresAt, err := GenerateToken(42, "ana@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, expiresAt.IsZero())

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "ana@example.com", claims.Email)
	require.Equal(t, "user", claims.Role)
}

func TestTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, _, err := GenerateToken(1, "a@b.c", "user")
	require.ErrorIs(t, err, ErrMissingSecret)

	_, err = ValidateToken("anything")
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateToken("not-a-jwt")
	require.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, _, err := GenerateToken(7, "x@y.z", "admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ValidateToken(token)
	require.Error(t, err)
}
