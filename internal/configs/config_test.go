package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Путь к несуществующему .env, чтобы тесты не зависели от окружения разработчика
func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/listings")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "listing-service", cfg.AppName)
	assert.Equal(t, "3001", cfg.Rest.PORT)
	assert.Equal(t, 1000, cfg.Rest.MaxPageSize)
	assert.Equal(t, 30*time.Second, cfg.Rest.RequestTimeout)
	assert.Equal(t, TextLimitsConfig{Code: 10, Short: 50, Medium: 255}, cfg.TextLimits)
	assert.False(t, cfg.Ingest.ReportsEnabled)
	assert.False(t, cfg.FluentBit.Enabled)
}

func TestLoadConfig_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig(missingEnvFile(t))
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadConfig_ReportsNeedBroker(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/listings")
	t.Setenv("INGEST_REPORTS_ENABLED", "true")
	t.Setenv("RABBITMQ_URL", "")

	_, err := LoadConfig(missingEnvFile(t))
	assert.ErrorContains(t, err, "RABBITMQ_URL")
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "DATABASE_URL=postgres://file/listings\nTEXT_LIMIT_SHORT=80\nHTTP_REQUEST_TIMEOUT=2m\nDB_CONNECT_TIMEOUT=7\nMAX_PAGE_SIZE=oops\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv.Load не перезаписывает уже заданные переменные
	for _, key := range []string{"DATABASE_URL", "TEXT_LIMIT_SHORT", "HTTP_REQUEST_TIMEOUT", "DB_CONNECT_TIMEOUT", "MAX_PAGE_SIZE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://file/listings", cfg.Database.URL)
	assert.Equal(t, 80, cfg.TextLimits.Short)
	assert.Equal(t, 2*time.Minute, cfg.Rest.RequestTimeout)
	assert.Equal(t, 7*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, 1000, cfg.Rest.MaxPageSize)
}

func TestLoadConfig_FluentWithoutHostIsDisabled(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/listings")
	t.Setenv("FLUENTBIT_ENABLED", "true")
	t.Setenv("FLUENTBIT_HOST", "")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)
	assert.False(t, cfg.FluentBit.Enabled)
}

func TestLoadConfig_AllowedOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/listings")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://localhost:5173, ,https://app.example.com")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:5173", "https://app.example.com"}, cfg.Rest.AllowedOrigins)
}
