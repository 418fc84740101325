package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		ConfigFileEnv, "ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD", "HOUSEKEEPING_INTERVAL",
		"CAMPUS_DB_DRIVER", "CAMPUS_DATABASE_FILE", "CAMPUS_DATABASE_DSN", "CAMPUS_EMAIL_DOMAIN",
		"CAMPUS_BCRYPT_COST", "CAMPUS_BROADCAST_CONCURRENCY", "CAMPUS_SESSION_STORE", "CAMPUS_SESSION_TTL",
		"CAMPUS_SESSION_COOKIE", "CAMPUS_COOKIE_SECURE", "CAMPUS_CORS_ORIGINS", "CAMPUS_BLOB_BACKEND",
		"CAMPUS_UPLOAD_DIR", "CAMPUS_UPLOAD_PREFIX", "CAMPUS_MAX_UPLOAD_BYTES", "CAMPUS_S3_BUCKET",
		"CAMPUS_S3_REGION", "CAMPUS_S3_ENDPOINT", "CAMPUS_S3_ACCESS_KEY", "CAMPUS_S3_SECRET_KEY",
		"CAMPUS_STATIC_DIR", "CAMPUS_LOGIN_PAGE", "CAMPUS_PROFILE_PAGE", "CAMPUS_HOME_PAGE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, "@karunya.edu.in", cfg.EmailDomain)
	require.Equal(t, "memory", cfg.SessionStore)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, "campus_session", cfg.SessionCookie)
	require.Equal(t, "disk", cfg.BlobBackend)
	require.Equal(t, "/uploads/", cfg.UploadPrefix)
	require.EqualValues(t, 10<<20, cfg.MaxUploadBytes)
	require.Equal(t, "/login.html", cfg.LoginPage)
}

func TestLoadConfigEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CAMPUS_SESSION_TTL", "90") // bare minutes
	t.Setenv("CAMPUS_COOKIE_SECURE", "true")
	t.Setenv("CAMPUS_CORS_ORIGINS", "https://a.example, https://b.example/")
	t.Setenv("CAMPUS_BLOB_BACKEND", "s3")
	t.Setenv("CAMPUS_S3_BUCKET", "pics")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 90*time.Minute, cfg.SessionTTL)
	require.True(t, cfg.CookieSecure)
	require.Equal(t, []string{"https://a.example", "https://b.example/"}, cfg.CORSOrigins)
	require.Equal(t, "s3", cfg.BlobBackend)
	require.Equal(t, "pics", cfg.S3.Bucket)
}

func TestLoadConfigFileOverlay(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "campus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 4000
session_store: database
session_ttl: 2h
email_domain: "@uni.example"
cors_origins:
  - https://app.example
s3:
  region: ap-southeast-2
`), 0o600))

	t.Setenv(ConfigFileEnv, path)
	t.Setenv("PORT", "5000") // environment wins over the file

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, "database", cfg.SessionStore)
	require.Equal(t, 2*time.Hour, cfg.SessionTTL)
	require.Equal(t, "@uni.example", cfg.EmailDomain)
	require.Equal(t, []string{"https://app.example"}, cfg.CORSOrigins)
	require.Equal(t, "ap-southeast-2", cfg.S3.Region)
	require.Equal(t, "sqlite", cfg.DBDriver)
}

func TestLoadConfigFileErrors(t *testing.T) {
	clearEnv(t)

	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := LoadConfig()
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [not a number"), 0o600))
	t.Setenv(ConfigFileEnv, path)
	_, err = LoadConfig()
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.DBDriver = "mysql" }},
		{"postgres without dsn", func(c *Config) { c.DBDriver = "postgres" }},
		{"unknown session store", func(c *Config) { c.SessionStore = "redis" }},
		{"s3 without bucket", func(c *Config) { c.BlobBackend = "s3" }},
		{"weak bcrypt", func(c *Config) { c.BcryptCost = 4 }},
		{"bad upload prefix", func(c *Config) { c.UploadPrefix = "uploads" }},
		{"bad email domain", func(c *Config) { c.EmailDomain = "karunya.edu.in" }},
	}

	require.NoError(t, defaultConfig().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
