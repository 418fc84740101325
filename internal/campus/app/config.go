package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	httpapi "github.com/aussiebroadwan/campus/internal/campus/http"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/internal/campus/session"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// ConfigFileEnv names the variable pointing at an optional YAML config file.
// Values from the file sit between the built-in defaults and the environment.
const ConfigFileEnv = "CAMPUS_CONFIG_FILE"

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`   // Optional: S3-compatible endpoint (MinIO, LocalStack)
	AccessKey string `yaml:"access_key"` // Optional: falls back to the default AWS credential chain
	SecretKey string `yaml:"secret_key"`
}

type Config struct {
	Env                  string        `yaml:"env"`                   // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        `yaml:"log_level"`             // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        `yaml:"log_format"`            // Log format (json, text) (default: json)
	Port                 int           `yaml:"port"`                  // HTTP server port (default: 3000)
	ShutdownGracePeriod  time.Duration `yaml:"shutdown_grace_period"` // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration `yaml:"housekeeping_interval"` // Expired session sweep interval (default: 1h)

	DBDriver     string `yaml:"db_driver"`     // sqlite or postgres (default: sqlite)
	DatabaseFile string `yaml:"database_file"` // SQLite database file (default: ./campus.db)
	DatabaseDSN  string `yaml:"database_dsn"`  // Postgres connection string, required for postgres

	EmailDomain          string `yaml:"email_domain"`          // Institutional email suffix (default: @karunya.edu.in)
	BcryptCost           int    `yaml:"bcrypt_cost"`           // Password hashing cost (default: 10)
	BroadcastConcurrency int    `yaml:"broadcast_concurrency"` // In-flight inserts per broadcast (default: 8)

	SessionStore  string        `yaml:"session_store"`  // memory or database (default: memory)
	SessionTTL    time.Duration `yaml:"session_ttl"`    // Session lifetime (default: 24h)
	SessionCookie string        `yaml:"session_cookie"` // Cookie name (default: campus_session)
	CookieSecure  bool          `yaml:"cookie_secure"`  // Mark the cookie Secure (default: false)
	CORSOrigins   []string      `yaml:"cors_origins"`   // Origins allowed to call with credentials

	BlobBackend    string   `yaml:"blob_backend"`     // disk or s3 (default: disk)
	UploadDir      string   `yaml:"upload_dir"`       // Disk backend directory (default: ./uploads)
	UploadPrefix   string   `yaml:"upload_prefix"`    // Public path of uploads (default: /uploads/)
	MaxUploadBytes int64    `yaml:"max_upload_bytes"` // Request body cap for uploads (default: 10 MiB)
	S3             S3Config `yaml:"s3"`

	StaticDir   string `yaml:"static_dir"`   // Optional: directory of HTML pages served at /
	LoginPage   string `yaml:"login_page"`   // default: /login.html
	ProfilePage string `yaml:"profile_page"` // default: /profile.html
	HomePage    string `yaml:"home_page"`    // default: /index.html
}

func defaultConfig() Config {
	return Config{
		Env:                  "dev",
		LogLevel:             "info",
		LogFormat:            "json",
		Port:                 3000,
		ShutdownGracePeriod:  10 * time.Second,
		HousekeepingInterval: 1 * time.Hour,
		DBDriver:             "sqlite",
		DatabaseFile:         "campus.db",
		EmailDomain:          service.DefaultEmailDomain,
		BcryptCost:           cryptox.MinCost,
		BroadcastConcurrency: service.DefaultBroadcastConcurrency,
		SessionStore:         "memory",
		SessionTTL:           session.DefaultTTL,
		SessionCookie:        session.DefaultCookieName,
		BlobBackend:          "disk",
		UploadDir:            "uploads",
		UploadPrefix:         service.DefaultUploadPrefix,
		MaxUploadBytes:       httpapi.DefaultMaxUploadBytes,
		LoginPage:            httpapi.DefaultPages.Login,
		ProfilePage:          httpapi.DefaultPages.Profile,
		HomePage:             httpapi.DefaultPages.Home,
	}
}

// LoadConfig builds the configuration from defaults, the optional YAML file
// named by CAMPUS_CONFIG_FILE, and finally the environment.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)
	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)
	cfg.HousekeepingInterval = getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", cfg.HousekeepingInterval)

	cfg.DBDriver = getEnvOrDefault("CAMPUS_DB_DRIVER", cfg.DBDriver)
	cfg.DatabaseFile = getEnvOrDefault("CAMPUS_DATABASE_FILE", cfg.DatabaseFile)
	cfg.DatabaseDSN = getEnvOrDefault("CAMPUS_DATABASE_DSN", cfg.DatabaseDSN)

	cfg.EmailDomain = getEnvOrDefault("CAMPUS_EMAIL_DOMAIN", cfg.EmailDomain)
	cfg.BcryptCost = getEnvIntOrDefault("CAMPUS_BCRYPT_COST", cfg.BcryptCost)
	cfg.BroadcastConcurrency = getEnvIntOrDefault("CAMPUS_BROADCAST_CONCURRENCY", cfg.BroadcastConcurrency)

	cfg.SessionStore = getEnvOrDefault("CAMPUS_SESSION_STORE", cfg.SessionStore)
	cfg.SessionTTL = getEnvDurationOrDefault("CAMPUS_SESSION_TTL", cfg.SessionTTL)
	cfg.SessionCookie = getEnvOrDefault("CAMPUS_SESSION_COOKIE", cfg.SessionCookie)
	cfg.CookieSecure = getEnvBoolOrDefault("CAMPUS_COOKIE_SECURE", cfg.CookieSecure)
	if origins := os.Getenv("CAMPUS_CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = httpx.SplitCommaList(origins)
	}

	cfg.BlobBackend = getEnvOrDefault("CAMPUS_BLOB_BACKEND", cfg.BlobBackend)
	cfg.UploadDir = getEnvOrDefault("CAMPUS_UPLOAD_DIR", cfg.UploadDir)
	cfg.UploadPrefix = getEnvOrDefault("CAMPUS_UPLOAD_PREFIX", cfg.UploadPrefix)
	cfg.MaxUploadBytes = int64(getEnvIntOrDefault("CAMPUS_MAX_UPLOAD_BYTES", int(cfg.MaxUploadBytes)))
	cfg.S3.Bucket = getEnvOrDefault("CAMPUS_S3_BUCKET", cfg.S3.Bucket)
	cfg.S3.Region = getEnvOrDefault("CAMPUS_S3_REGION", cfg.S3.Region)
	cfg.S3.Endpoint = getEnvOrDefault("CAMPUS_S3_ENDPOINT", cfg.S3.Endpoint)
	cfg.S3.AccessKey = getEnvOrDefault("CAMPUS_S3_ACCESS_KEY", cfg.S3.AccessKey)
	cfg.S3.SecretKey = getEnvOrDefault("CAMPUS_S3_SECRET_KEY", cfg.S3.SecretKey)

	cfg.StaticDir = getEnvOrDefault("CAMPUS_STATIC_DIR", cfg.StaticDir)
	cfg.LoginPage = getEnvOrDefault("CAMPUS_LOGIN_PAGE", cfg.LoginPage)
	cfg.ProfilePage = getEnvOrDefault("CAMPUS_PROFILE_PAGE", cfg.ProfilePage)
	cfg.HomePage = getEnvOrDefault("CAMPUS_HOME_PAGE", cfg.HomePage)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects combinations the application cannot start with.
func (c Config) Validate() error {
	var errs []error

	switch c.DBDriver {
	case "sqlite":
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("CAMPUS_DATABASE_FILE is required for the sqlite driver"))
		}
	case "postgres":
		if c.DatabaseDSN == "" {
			errs = append(errs, errors.New("CAMPUS_DATABASE_DSN is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown database driver %q", c.DBDriver))
	}

	switch c.SessionStore {
	case "memory", "database":
	default:
		errs = append(errs, fmt.Errorf("unknown session store %q", c.SessionStore))
	}

	switch c.BlobBackend {
	case "disk":
		if c.UploadDir == "" {
			errs = append(errs, errors.New("CAMPUS_UPLOAD_DIR is required for the disk backend"))
		}
	case "s3":
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("CAMPUS_S3_BUCKET is required for the s3 backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown blob backend %q", c.BlobBackend))
	}

	if c.BcryptCost < cryptox.MinCost {
		errs = append(errs, fmt.Errorf("bcrypt cost %d is below the minimum %d", c.BcryptCost, cryptox.MinCost))
	}
	if !strings.HasPrefix(c.UploadPrefix, "/") || !strings.HasSuffix(c.UploadPrefix, "/") {
		errs = append(errs, fmt.Errorf("upload prefix %q must start and end with /", c.UploadPrefix))
	}
	if !strings.HasPrefix(c.EmailDomain, "@") {
		errs = append(errs, fmt.Errorf("email domain %q must start with @", c.EmailDomain))
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
