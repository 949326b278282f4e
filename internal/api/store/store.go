package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/myvehicles/internal/api/domain"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrInvalidID = errors.New("store: invalid id")
	ErrDuplicate = errors.New("store: duplicate key")
)

// Store is the root data access interface. Concrete drivers (mongodb,
// sqlite) implement this and expose one sub-repository per collection.
type Store interface {
	Users() Users
	Vehicles() Vehicles

	// ParseID validates a raw identifier and returns it in the driver's
	// canonical form, or ErrInvalidID.
	ParseID(raw string) (string, error)

	// ApplyMigrations prepares the schema: indexes for mongodb, migrations
	// for sqlite. It is safe to call on every start.
	ApplyMigrations(ctx context.Context) error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}

// Users is the "usuarios" collection. Reads other than GetByEmail leave
// PasswordHash empty.
type Users interface {
	// List returns every user ordered by name.
	List(ctx context.Context) ([]domain.User, error)

	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByEmail is used by login and includes the password hash.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Search matches filter case-insensitively against name or email,
	// ordered by name and capped at limit.
	Search(ctx context.Context, filter string, limit int) ([]domain.User, error)

	// Create inserts u and returns the generated id. A second user with the
	// same email fails with ErrDuplicate.
	Create(ctx context.Context, u domain.User) (string, error)

	// Update replaces the stored fields of the user with id.
	Update(ctx context.Context, id string, u domain.User) (domain.UpdateResult, error)

	// SetPasswordHash swaps the stored hash without touching other fields.
	// A missing user is ErrNotFound.
	SetPasswordHash(ctx context.Context, id, hash string) error

	// Delete removes the user and reports how many documents went away.
	Delete(ctx context.Context, id string) (int64, error)
}

// Vehicles is the "veiculos" collection.
type Vehicles interface {
	// List returns every vehicle ordered by brand then model.
	List(ctx context.Context) ([]domain.Vehicle, error)

	GetByID(ctx context.Context, id string) (domain.Vehicle, error)

	// SearchByBusinessName matches filter case-insensitively against the
	// business name, ordered by brand then model.
	SearchByBusinessName(ctx context.Context, filter string) ([]domain.Vehicle, error)

	Create(ctx context.Context, v domain.Vehicle) (string, error)

	// Update replaces the stored fields of the vehicle with id. An empty
	// BusinessName keeps the stored one.
	Update(ctx context.Context, id string, v domain.Vehicle) (domain.UpdateResult, error)

	Delete(ctx context.Context, id string) (int64, error)
}
