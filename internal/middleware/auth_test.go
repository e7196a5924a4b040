package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pedalmarket/backend/internal/auth"
	"github.com/pedalmarket/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(auth.NewTokenService("secret", time.Hour))
	called := false
	h := mw.RequireAuth(func(c echo.Context) error {
		called = true
		return nil
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(auth.NewTokenService("secret", time.Hour))
	h := mw.RequireAuth(func(c echo.Context) error { return nil })

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_SetsIdentity(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	token, err := tokens.NewToken(model.User{ID: 42, Email: "a@example.com"})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(tokens)
	h := mw.RequireAuth(func(c echo.Context) error {
		uid, _ := c.Get("uid").(uint64)
		assert.Equal(t, uint64(42), uid)
		email, _ := c.Get("email").(string)
		assert.Equal(t, "a@example.com", email)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
