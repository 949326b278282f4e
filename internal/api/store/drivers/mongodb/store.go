// Package mongodb stores users and vehicles in MongoDB collections.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/aussiebroadwan/myvehicles/internal/api/store"
)

const (
	UsersCollection    = "usuarios"
	VehiclesCollection = "veiculos"
)

// Config holds the connection parameters.
type Config struct {
	URI      string
	Database string

	// Timeout bounds connecting, server selection and the initial ping.
	Timeout time.Duration
}

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to MongoDB and pings the primary.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" || cfg.Database == "" {
		return nil, errors.New("mongodb: uri and database are required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetRetryReads(true).
		SetConnectTimeout(cfg.Timeout).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ping verifies the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// ParseID accepts 24 character hex ObjectIDs.
func (s *Store) ParseID(raw string) (string, error) {
	oid, err := objectID(raw)
	if err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

// ApplyMigrations creates the indexes the repositories rely on. The unique
// email index is what finally rejects concurrent registrations of one email.
func (s *Store) ApplyMigrations(ctx context.Context) error {
	_, err := s.db.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		},
		{
			Keys:    bson.D{{Key: "nome", Value: 1}},
			Options: options.Index().SetName("nome"),
		},
	})
	if err != nil {
		return fmt.Errorf("mongodb: %s indexes: %w", UsersCollection, err)
	}

	_, err = s.db.Collection(VehiclesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "marca", Value: 1}, {Key: "modelo", Value: 1}},
		Options: options.Index().SetName("marca_modelo"),
	})
	if err != nil {
		return fmt.Errorf("mongodb: %s indexes: %w", VehiclesCollection, err)
	}
	return nil
}

func (s *Store) Users() store.Users {
	return &usersRepo{coll: s.db.Collection(UsersCollection)}
}

func (s *Store) Vehicles() store.Vehicles {
	return &vehiclesRepo{coll: s.db.Collection(VehiclesCollection)}
}

func objectID(raw string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, store.ErrInvalidID
	}
	return oid, nil
}

func byID(oid primitive.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: bson.D{{Key: "$eq", Value: oid}}}}
}

// contains matches filter as a literal, case-insensitive substring.
func contains(filter string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(filter), Options: "i"}
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func mapWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicate
	}
	return err
}

func insertedHex(res *mongo.InsertOneResult) (string, error) {
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("mongodb: unexpected inserted id %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
