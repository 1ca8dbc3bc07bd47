package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("ELASTICSEARCH_URL", "")

	cfg := Load()

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)

	// Empty addresses disable the optional components.
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Elasticsearch.URL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("PAYMENT_REMINDER_AGE_HOURS", "24")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, float64(24), cfg.PaymentReminderAge.Hours())
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
}
