package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Creates a temporary YAML config file in a temporary directory.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err, "Failed to write temporary config file")

	return configPath
}

const validYAML = `
env: "test"
http_server:
  address: ":8081"
  read_timeout: "3s"
backend:
  BASE_URL: "http://backend:8081/api"
  TIMEOUT: "4s"
storage:
  driver: "redis"
  ttl: "24h"
database:
  PG_HOST: "dbhost"
  PG_USER: "testuser"
  PG_PASSWORD: "testpassword"
  PG_DBNAME: "testdb"
  PG_SSLMODE: "disable"
redis:
  REDIS_HOST: "redishost"
  REDIS_USER: "redisuser"
  REDIS_PASSWORD: "redispassword"
  REDIS_DB: 1
  REDIS_PORT: "6380"
rateConfig:
  MAX_ATTEMPTS: 10
  WINDOW_SIZE: "30s"
security:
  JWT_KEY: "testjwtkey"
  JWT_EXPIRY_HOURS: 48
identity:
  GUEST_EMAIL: "guest@test.local"
  FALLBACK_USER_ID: 7
catalog:
  LOCALE: "en"
  FEATURED_LIMIT: 4
sendgrid:
  API_KEY: "sg_test_123"
  FROM_EMAIL: "test@example.com"
  FROM_NAME: "Test Service"
otel:
  SERVICE_NAME: "test-service"
  EXPORTER_ENDPOINT: "otel:4318"
  SAMPLER_RATIO: 0.5
cors:
  allow_origins: ["http://localhost:5173"]
`

func TestLoadConfigFromPath(t *testing.T) {

	t.Run("Load values from YAML", func(t *testing.T) {
		configPath := createTempConfigFile(t, validYAML)

		cfg, err := LoadConfigFromPath(configPath)

		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "test", cfg.Env)
		assert.Equal(t, ":8081", cfg.HTTPServer.Addr)
		assert.Equal(t, 3*time.Second, cfg.HTTPServer.ReadTimeout)
		assert.Equal(t, "http://backend:8081/api", cfg.Backend.BaseURL)
		assert.Equal(t, 4*time.Second, cfg.Backend.Timeout)
		assert.Equal(t, StorageRedis, cfg.Storage.Driver)
		assert.Equal(t, 24*time.Hour, cfg.Storage.TTL)
		assert.Equal(t, "redisuser", cfg.RedisConnect.Username)
		assert.Equal(t, int64(10), cfg.RateConfig.MaxAttempts)
		assert.Equal(t, 30*time.Second, cfg.RateConfig.WindowSize)
		assert.Equal(t, 48, cfg.Security.JWTExpiryHours)
		assert.Equal(t, "guest@test.local", cfg.Identity.GuestEmail)
		assert.Equal(t, int64(7), cfg.Identity.FallbackUserID)
		assert.Equal(t, "en", cfg.Catalog.Locale)
		assert.Equal(t, 4, cfg.Catalog.FeaturedLimit)
		assert.Equal(t, "sg_test_123", cfg.SendGrid.APIKey)
		assert.Equal(t, 0.5, cfg.OTel.SamplerRatio)
		assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowOrigins)
	})

	t.Run("Defaults applied", func(t *testing.T) {
		configPath := createTempConfigFile(t, `
env: "dev"
security:
  JWT_KEY: "k"
`)

		cfg, err := LoadConfigFromPath(configPath)

		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.HTTPServer.Addr)
		assert.Equal(t, "http://localhost:8081/api", cfg.Backend.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
		assert.Equal(t, StorageMemory, cfg.Storage.Driver)
		assert.Equal(t, "invitado@storefront.local", cfg.Identity.GuestEmail)
		assert.Equal(t, "invitado123", cfg.Identity.GuestPassword)
		assert.Equal(t, int64(1), cfg.Identity.FallbackUserID)
		assert.Equal(t, "es", cfg.Catalog.Locale)
		assert.Equal(t, 6, cfg.Catalog.FeaturedLimit)
		assert.Equal(t, "sf_profile", cfg.Security.CookieName)
	})

	t.Run("Environment variable override", func(t *testing.T) {
		configPath := createTempConfigFile(t, validYAML)
		t.Setenv("BACKEND_BASE_URL", "http://override:9000/api")
		t.Setenv("STORAGE_DRIVER", "memory")

		cfg, err := LoadConfigFromPath(configPath)

		require.NoError(t, err)
		assert.Equal(t, "http://override:9000/api", cfg.Backend.BaseURL)
		assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	})

	t.Run("Missing file", func(t *testing.T) {
		cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("Missing required JWT key", func(t *testing.T) {
		configPath := createTempConfigFile(t, `env: "dev"`)

		cfg, err := LoadConfigFromPath(configPath)

		require.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("Unknown storage driver", func(t *testing.T) {
		configPath := createTempConfigFile(t, `
env: "dev"
storage:
  driver: "etcd"
security:
  JWT_KEY: "k"
`)

		cfg, err := LoadConfigFromPath(configPath)

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "unknown storage driver")
	})

	t.Run("Negative featured limit", func(t *testing.T) {
		configPath := createTempConfigFile(t, `
env: "dev"
security:
  JWT_KEY: "k"
catalog:
  FEATURED_LIMIT: -1
`)

		cfg, err := LoadConfigFromPath(configPath)

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "CATALOG_FEATURED_LIMIT")
	})

	t.Run("Postgres driver needs credentials", func(t *testing.T) {
		configPath := createTempConfigFile(t, `
env: "dev"
storage:
  driver: "postgres"
security:
  JWT_KEY: "k"
`)

		_, err := LoadConfigFromPath(configPath)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires PG_USER")
	})
}

func TestGetDSN(t *testing.T) {
	db := Database{Host: "h", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", db.GetDSN())

	r := RedisConnect{Host: "h", Port: "6379", Username: "u", Password: "p", DB: 2}
	assert.Equal(t, "redis://u:p@h:6379/2", r.GetDSN())
}
