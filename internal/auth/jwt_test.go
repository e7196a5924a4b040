package auth

import (
	"testing"
	"time"

	"github.com/pedalmarket/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.NewToken(model.User{ID: 42, Email: "a@example.com"})
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).NewToken(model.User{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Expired(t *testing.T) {
	token, err := NewTokenService("secret", -time.Minute).NewToken(model.User{ID: 1})
	require.NoError(t, err)

	_, err = NewTokenService("secret", -time.Minute).ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Garbage(t *testing.T) {
	_, err := NewTokenService("secret", time.Hour).ParseToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
