package config_test

import (
	"testing"
	"time"

	"ats-resume-scorer/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("FRONTEND_URL", "")
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		t.Setenv("DATABASE_ENABLED", "false")
		t.Setenv("AI_TIMEOUT_SECONDS", "")
		t.Setenv("UPLOAD_MAX_BYTES", "")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 20*time.Second, cfg.AITimeout)
		assert.EqualValues(t, 5<<20, cfg.UploadMaxBytes)
		assert.Empty(t, cfg.CORSAllowedOrigins)
	})

	t.Run("Origins merge frontend URL", func(t *testing.T) {
		t.Setenv("FRONTEND_URL", "https://app.example.com/")
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com/, ,https://app.example.com")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example.com", "https://app.example.com"}, cfg.CORSAllowedOrigins)
	})

	t.Run("Database enabled without URL", func(t *testing.T) {
		t.Setenv("DATABASE_ENABLED", "true")
		t.Setenv("DATABASE_URL", "")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("Invalid numbers fall back", func(t *testing.T) {
		t.Setenv("DATABASE_ENABLED", "false")
		t.Setenv("AI_TIMEOUT_SECONDS", "soon")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 20*time.Second, cfg.AITimeout)
	})
}
