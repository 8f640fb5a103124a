package config

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/andrewpaige1/essaydraft-api/store"
	"github.com/andrewpaige1/essaydraft-api/store/mongostore"
	"github.com/andrewpaige1/essaydraft-api/store/sqlstore"
)

const defaultMongoDatabase = "essaydraft"

type DatabaseKind string

const (
	Postgres DatabaseKind = "postgres"
	MongoDB  DatabaseKind = "mongodb"
	SQLite   DatabaseKind = "sqlite"
)

// ParseDatabaseURL picks the backend from the URL scheme and returns the
// DSN to hand to its driver.
func ParseDatabaseURL(raw string) (DatabaseKind, string, error) {
	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return Postgres, raw, nil
	case strings.HasPrefix(raw, "mongodb://"), strings.HasPrefix(raw, "mongodb+srv://"):
		return MongoDB, raw, nil
	case strings.HasPrefix(raw, "sqlite:"):
		dsn := strings.TrimPrefix(strings.TrimPrefix(raw, "sqlite:"), "//")
		if dsn == "" {
			return "", "", fmt.Errorf("sqlite URL %q has no path", raw)
		}
		return SQLite, dsn, nil
	case strings.HasPrefix(raw, "file:"):
		return SQLite, raw, nil
	}
	return "", "", fmt.Errorf("unsupported DB_URL scheme in %q", redact(raw))
}

// MongoDatabaseName prefers an explicit name, then the URI path.
func MongoDatabaseName(uri, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if u, err := url.Parse(uri); err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultMongoDatabase
}

// Connect opens the store selected by cfg.DatabaseURL. The caller owns the
// returned store and must Close it.
func Connect(ctx context.Context, cfg Config) (store.Store, error) {
	kind, dsn, err := ParseDatabaseURL(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	slog.Info("connecting to database", "kind", kind, "url", redact(cfg.DatabaseURL))

	// typed nil stores must not leak out as non-nil interfaces
	switch kind {
	case MongoDB:
		s, err := mongostore.Open(ctx, dsn, MongoDatabaseName(dsn, cfg.MongoDatabase))
		if err != nil {
			return nil, err
		}
		return s, nil
	case SQLite:
		s, err := sqlstore.OpenSQLite(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		s, err := sqlstore.OpenPostgres(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// redact hides the password of URLs that carry credentials.
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	return u.Redacted()
}
