package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/expohub/expohub/internal/shared/config"
)

func TestLoad_DefaultsAndEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("EXPOHUB_DATABASE_DRIVER", "sqlite")
	t.Setenv("EXPOHUB_DATABASE_DATABASE", ":memory:")
	t.Setenv("EXPOHUB_SERVER_PORT", "9090")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.GetDSN())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.Token.VerificationTTL())
	assert.Equal(t, 2*time.Hour, cfg.Auth.Token.ResetTTL())
	assert.Equal(t, 30*time.Minute, cfg.Moderation.ViewDedupWindow)
	assert.Same(t, cfg, Get())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("EXPOHUB_DATABASE_DRIVER", "oracle")

	_, err := Load("")

	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestLoad_ProductionNeedsSecret(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("production")

	assert.ErrorContains(t, err, "auth.jwt.secret")
}
