package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Environment struct {
	IsDevelopment bool
	Domain        string
	CookieSecure  bool
}

// CookieDomain is the Domain attribute for session cookies. Development
// cookies are host-only.
func (e Environment) CookieDomain() string {
	if e.IsDevelopment {
		return ""
	}
	return e.Domain
}

type Config struct {
	Env            Environment
	Port           int
	DatabaseURL    string
	MongoDatabase  string
	JWTSecret      string
	SessionTTL     time.Duration
	AllowedOrigins []string
	LogLevel       slog.Level
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Env:            loadEnvironment(getenv),
		DatabaseURL:    getenv("DB_URL"),
		MongoDatabase:  getenv("MONGO_DATABASE"),
		JWTSecret:      getenv("JWT_SECRET_KEY"),
		Port:           8080,
		SessionTTL:     24 * time.Hour,
		AllowedOrigins: []string{"http://localhost:3000"},
		LogLevel:       slog.LevelInfo,
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DB_URL required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET_KEY required")
	}

	if portStr := getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", portStr)
		}
		cfg.Port = port
	}

	if ttl := getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid SESSION_TTL %q", ttl)
		}
		cfg.SessionTTL = d
	}

	if origins := getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if level := getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q", level)
		}
	}

	return cfg, nil
}

func loadEnvironment(getenv func(string) string) Environment {
	// Get domain from environment variable
	domain := getenv("COOKIE_DOMAIN")

	// If no domain is set, we're in development
	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	return Environment{
		IsDevelopment: isDev,
		Domain:        domain,
		CookieSecure:  !isDev,
	}
}
