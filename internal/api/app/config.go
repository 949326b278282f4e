package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/myvehicles/pkg/cryptox"
	"github.com/aussiebroadwan/myvehicles/pkg/httpx"
	"github.com/aussiebroadwan/myvehicles/pkg/jwtx"
)

type Config struct {
	DatabaseURI     string        // Required: MONGODB_URI or DATABASE_URI (mongodb://, mongodb+srv://, sqlite://path, sqlite::memory:)
	DatabaseName    string        // Required for MongoDB: MONGODB_DB
	DatabaseTimeout time.Duration // Dial and ping timeout (default: 10s)

	SecretKey string // Required: HS256 signing secret
	ExpiresIn string // Token lifetime: Go duration, Nd/Nw or integer seconds (default: 1h)
	Issuer    string // Token issuer (default: myvehicles)

	BcryptCost     int      // Password hash cost (default: 10)
	StaticDir      string   // Served at / when present (default: public)
	AllowedOrigins []string // CORS origins (default: *)
	MaxBodyBytes   int64    // Request body cap (default: 1 MiB)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 4000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the environment, after loading a .env file from the
// working directory when there is one. Existing variables win over .env.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		DatabaseURI:     getEnvOrDefault("MONGODB_URI", os.Getenv("DATABASE_URI")),
		DatabaseName:    os.Getenv("MONGODB_DB"),
		DatabaseTimeout: getEnvDurationOrDefault("DATABASE_TIMEOUT", 10*time.Second),

		SecretKey: os.Getenv("SECRET_KEY"),
		ExpiresIn: getEnvOrDefault("EXPIRES_IN", "1h"),
		Issuer:    getEnvOrDefault("TOKEN_ISSUER", "myvehicles"),

		BcryptCost:     getEnvIntOrDefault("BCRYPT_COST", cryptox.DefaultCost),
		StaticDir:      getEnvOrDefault("STATIC_DIR", "public"),
		AllowedOrigins: httpx.ParseOrigins(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		MaxBodyBytes:   int64(getEnvIntOrDefault("MAX_BODY_BYTES", int(httpx.DefaultMaxBodyBytes))),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 4000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// TokenTTL parses ExpiresIn.
func (c Config) TokenTTL() (time.Duration, error) {
	if c.ExpiresIn == "" {
		return jwtx.DefaultAccessTokenTTL, nil
	}
	return jwtx.ParseTTL(c.ExpiresIn)
}

// Validate reports every missing or malformed setting at once.
func (c Config) Validate() error {
	var errs []error

	switch driver := driverOf(c.DatabaseURI); {
	case c.DatabaseURI == "":
		errs = append(errs, errors.New("MONGODB_URI is required"))
	case driver == "":
		errs = append(errs, fmt.Errorf("MONGODB_URI: unsupported scheme in %q", redactURI(c.DatabaseURI)))
	case driver == driverMongo && c.DatabaseName == "":
		errs = append(errs, errors.New("MONGODB_DB is required for mongodb"))
	}

	if c.SecretKey == "" {
		errs = append(errs, errors.New("SECRET_KEY is required"))
	} else if len(c.SecretKey) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("SECRET_KEY must be at least %d bytes", jwtx.MinSecretLength))
	}

	if _, err := c.TokenTTL(); err != nil {
		errs = append(errs, fmt.Errorf("EXPIRES_IN: %w", err))
	}
	if _, err := cryptox.NewHasher(c.BcryptCost); err != nil {
		errs = append(errs, fmt.Errorf("BCRYPT_COST: %w", err))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.DatabaseTimeout <= 0 {
		errs = append(errs, errors.New("DATABASE_TIMEOUT must be positive"))
	}

	return errors.Join(errs...)
}

// redactURI drops credentials from a connection URI for error messages.
func redactURI(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest = "***@" + rest[at+1:]
	}
	return scheme + "://" + rest
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
