package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/aussiebroadwan/myvehicles/internal/api/store"
	"github.com/aussiebroadwan/myvehicles/pkg/idx"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

type Store struct {
	db  *sql.DB
	dsn string
}

// NewStore opens the database at dsn. Callers run ApplyMigrations before use.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One connection: sqlite serialises writers anyway and an in-memory
	// database only lives as long as its connection.
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(0)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

// FileDSN builds a DSN for a database file with a busy timeout and WAL.
func FileDSN(path string) string {
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ParseID accepts ULIDs, the identifiers this driver generates.
func (s *Store) ParseID(raw string) (string, error) {
	id, err := idx.Parse(raw)
	if err != nil {
		return "", store.ErrInvalidID
	}
	return id.String(), nil
}

func (s *Store) Users() store.Users       { return &usersRepo{db: s.db, parse: s.ParseID} }
func (s *Store) Vehicles() store.Vehicles { return &vehiclesRepo{db: s.db, parse: s.ParseID} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapWriteError(err error) error {
	var se *sqlitedrv.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrDuplicate
		}
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching filter anywhere. LIKE is
// case-insensitive for ASCII letters only.
func containsPattern(filter string) string {
	return "%" + likeEscaper.Replace(filter) + "%"
}

type scanner interface {
	Scan(dest ...any) error
}

// withTx runs fn in a transaction, rolling back when it fails.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
