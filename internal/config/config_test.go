package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "bikes")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	os.Unsetenv("JWT_SECRET") // t.Setenv above restores it afterwards

	_, err := Load()
	require.Error(t, err)
}
