package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the console.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Session SessionConfig
	Console ConsoleConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// SessionConfig defines how console sessions are identified and expired.
type SessionConfig struct {
	Secret               string
	CookieName           string
	TTLMinutes           int
	SweepIntervalSeconds int
}

// ConsoleConfig tunes the simulated UI behavior.
type ConsoleConfig struct {
	LoginDelayMillis int
	SeedFixtures     bool
	Timezone         string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "offerly-console"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Session: SessionConfig{
			Secret:               getEnv("SESSION_SECRET", "dev-secret"),
			CookieName:           getEnv("SESSION_COOKIE_NAME", "offerly_session"),
			TTLMinutes:           getEnvAsInt("SESSION_TTL_MINUTES", 120),
			SweepIntervalSeconds: getEnvAsInt("SESSION_SWEEP_INTERVAL_SECONDS", 60),
		},
		Console: ConsoleConfig{
			LoginDelayMillis: getEnvAsInt("CONSOLE_LOGIN_DELAY_MS", 2000),
			SeedFixtures:     getEnvAsBool("CONSOLE_SEED_FIXTURES", true),
			Timezone:         os.Getenv("CONSOLE_TIMEZONE"),
		},
	}

	if _, err := cfg.Console.Location(); err != nil {
		return nil, fmt.Errorf("invalid CONSOLE_TIMEZONE: %w", err)
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// TTL returns the idle lifetime of a session.
func (s SessionConfig) TTL() time.Duration {
	if s.TTLMinutes <= 0 {
		return 0
	}
	return time.Duration(s.TTLMinutes) * time.Minute
}

// SweepInterval returns how often idle sessions are evicted.
func (s SessionConfig) SweepInterval() time.Duration {
	if s.SweepIntervalSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(s.SweepIntervalSeconds) * time.Second
}

// LoginDelay returns the simulated login round-trip.
func (c ConsoleConfig) LoginDelay() time.Duration {
	if c.LoginDelayMillis < 0 {
		return 0
	}
	return time.Duration(c.LoginDelayMillis) * time.Millisecond
}

// Location resolves the calendar used for "today". Empty means the host's local zone.
func (c ConsoleConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
