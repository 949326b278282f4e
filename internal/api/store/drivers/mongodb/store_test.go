package mongodb_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aussiebroadwan/myvehicles/internal/api/domain"
	"github.com/aussiebroadwan/myvehicles/internal/api/store"
	"github.com/aussiebroadwan/myvehicles/internal/api/store/drivers/mongodb"
)

// startMongo runs a throwaway mongo:7 container and returns its URI.
func startMongo(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor: wait.ForListeningPort("27017/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

func newTestStore(t *testing.T, uri string) *mongodb.Store {
	t.Helper()
	ctx := context.Background()

	st, err := mongodb.NewStore(ctx, mongodb.Config{
		URI:      uri,
		Database: fmt.Sprintf("myvehicles_%d", time.Now().UnixNano()),
		Timeout:  10 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations(ctx))
	require.NoError(t, st.ApplyMigrations(ctx), "index creation is idempotent")
	return st
}

func TestNewStore_RequiresConfig(t *testing.T) {
	_, err := mongodb.NewStore(context.Background(), mongodb.Config{URI: "mongodb://localhost:27017"})
	require.Error(t, err)
}

func TestParseID(t *testing.T) {
	st := &mongodb.Store{}

	id, err := st.ParseID("507F1F77BCF86CD799439011")
	require.NoError(t, err)
	require.Equal(t, "507f1f77bcf86cd799439011", id)

	_, err = st.ParseID("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV")
	require.ErrorIs(t, err, store.ErrInvalidID)
}

func TestMongo(t *testing.T) {
	uri := startMongo(t)

	t.Run("users", func(t *testing.T) {
		ctx := context.Background()
		users := newTestStore(t, uri).Users()

		mk := func(name, email string) domain.User {
			return domain.User{
				Name: name, Email: email, PasswordHash: "$2a$04$x",
				Active: true, Role: domain.RoleCliente, Avatar: domain.AvatarURL(name),
			}
		}

		id, err := users.Create(ctx, mk("Maria", "maria@example.com"))
		require.NoError(t, err)
		_, err = users.Create(ctx, mk("Ana", "ana@example.com"))
		require.NoError(t, err)
		_, err = users.Create(ctx, mk("Zeca", "zeca.ana@example.com"))
		require.NoError(t, err)

		_, err = users.Create(ctx, mk("Maria Dois", "maria@example.com"))
		require.ErrorIs(t, err, store.ErrDuplicate)

		got, err := users.GetByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Maria", got.Name)
		require.Empty(t, got.PasswordHash)

		withHash, err := users.GetByEmail(ctx, "maria@example.com")
		require.NoError(t, err)
		require.Equal(t, "$2a$04$x", withHash.PasswordHash)

		all, err := users.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		require.Equal(t, "Ana", all[0].Name)

		found, err := users.Search(ctx, "ANA", 10)
		require.NoError(t, err)
		require.Len(t, found, 2)
		require.Equal(t, "Ana", found[0].Name)
		require.Equal(t, "Zeca", found[1].Name)

		capped, err := users.Search(ctx, "", 1)
		require.NoError(t, err)
		require.Len(t, capped, 1)

		none, err := users.Search(ctx, ".*", 10)
		require.NoError(t, err)
		require.Empty(t, none, "filters are matched literally")

		res, err := users.Update(ctx, id, mk("Maria Souza", "maria@example.com"))
		require.NoError(t, err)
		require.Equal(t, domain.UpdateResult{Matched: 1, Modified: 1}, res)

		_, err = users.Update(ctx, id, mk("Maria Souza", "ana@example.com"))
		require.ErrorIs(t, err, store.ErrDuplicate)

		require.NoError(t, users.SetPasswordHash(ctx, id, "$2a$05$rehashed"))
		withHash, err = users.GetByEmail(ctx, "maria@example.com")
		require.NoError(t, err)
		require.Equal(t, "$2a$05$rehashed", withHash.PasswordHash)
		require.ErrorIs(t, users.SetPasswordHash(ctx, primitive.NewObjectID().Hex(), "x"), store.ErrNotFound)

		n, err := users.Delete(ctx, id)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		n, err = users.Delete(ctx, id)
		require.NoError(t, err)
		require.EqualValues(t, 0, n)

		_, err = users.GetByID(ctx, id)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("vehicles", func(t *testing.T) {
		ctx := context.Background()
		vehicles := newTestStore(t, uri).Vehicles()

		mk := func(brand, model, business string) domain.Vehicle {
			return domain.Vehicle{
				Brand: brand, Model: model, Color: "Preto", Plate: "ABC1D23",
				Renavam: "123456789", BusinessName: business,
			}
		}

		id, err := vehicles.Create(ctx, mk("Volkswagen", "Gol", "Transportes Silva"))
		require.NoError(t, err)
		_, err = vehicles.Create(ctx, mk("Fiat", "Uno", "Logistica Souza"))
		require.NoError(t, err)

		all, err := vehicles.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, "Fiat", all[0].Brand)

		found, err := vehicles.SearchByBusinessName(ctx, "silva")
		require.NoError(t, err)
		require.Len(t, found, 1)
		require.Equal(t, id, found[0].ID)

		res, err := vehicles.Update(ctx, id, mk("Volkswagen", "Polo", ""))
		require.NoError(t, err)
		require.Equal(t, domain.UpdateResult{Matched: 1, Modified: 1}, res)

		got, err := vehicles.GetByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Polo", got.Model)
		require.Equal(t, "Transportes Silva", got.BusinessName)

		n, err := vehicles.Delete(ctx, id)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})
}
