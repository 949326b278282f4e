package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/myvehicles/internal/api/store"
	"github.com/aussiebroadwan/myvehicles/internal/api/store/drivers/mongodb"
	"github.com/aussiebroadwan/myvehicles/internal/api/store/drivers/sqlite"
)

const (
	driverMongo  = "mongodb"
	driverSQLite = "sqlite"

	sqliteMemoryURI = "sqlite::memory:"
	sqlitePrefix    = "sqlite://"
)

func driverOf(uri string) string {
	switch {
	case strings.HasPrefix(uri, "mongodb://"), strings.HasPrefix(uri, "mongodb+srv://"):
		return driverMongo
	case uri == sqliteMemoryURI, strings.HasPrefix(uri, sqlitePrefix):
		return driverSQLite
	default:
		return ""
	}
}

// sqliteDSN maps a sqlite:// URI to a driver DSN.
func sqliteDSN(uri string) string {
	if uri == sqliteMemoryURI {
		return sqlite.MemoryDSN
	}
	return sqlite.FileDSN(strings.TrimPrefix(uri, sqlitePrefix))
}

// DialURI returns the dial function for the driver selected by the URI
// scheme. The dialed store has its migrations applied.
func DialURI(cfg Config) (store.DialFunc, error) {
	timeout := cfg.DatabaseTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	switch driverOf(cfg.DatabaseURI) {
	case driverMongo:
		return func(ctx context.Context) (store.Store, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			st, err := mongodb.NewStore(ctx, mongodb.Config{
				URI:      cfg.DatabaseURI,
				Database: cfg.DatabaseName,
				Timeout:  timeout,
			})
			if err != nil {
				return nil, err
			}
			return prepare(ctx, st)
		}, nil

	case driverSQLite:
		dsn := sqliteDSN(cfg.DatabaseURI)
		return func(ctx context.Context) (store.Store, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			st, err := sqlite.NewStore(dsn)
			if err != nil {
				return nil, fmt.Errorf("sqlite: open: %w", err)
			}
			return prepare(ctx, st)
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database uri %q", redactURI(cfg.DatabaseURI))
	}
}

func prepare(ctx context.Context, st store.Store) (store.Store, error) {
	if err := st.ApplyMigrations(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return st, nil
}
