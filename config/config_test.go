package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FRONTEND_URL", "https://board.example.com/")
	t.Setenv("SMTP_USERNAME", "mailer@example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://board.example.com", cfg.FrontendURL)
	assert.Equal(t, "mailer@example.com", cfg.SMTPFromEmail)
	assert.Equal(t, 30*time.Minute, cfg.ResetCodeTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
}

func TestLoadConfigInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_GLOBAL_THRESHOLD", "lots")
	t.Setenv("AUTO_MIGRATE", "maybe")
	t.Setenv("JOB_CACHE_TTL_SECONDS", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.RateLimitGlobalThreshold)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 5*time.Second, cfg.JobCacheTTL)
}
