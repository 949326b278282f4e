package sqlite_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/aussiebroadwan/myvehicles/internal/api/domain"
	"github.com/aussiebroadwan/myvehicles/internal/api/store"
	"github.com/aussiebroadwan/myvehicles/internal/api/store/drivers/sqlite"
	"github.com/aussiebroadwan/myvehicles/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations(context.Background()))
	return st
}

func testUser(name, email string) domain.User {
	return domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$04$hash-" + email,
		Active:       true,
		Role:         domain.RoleCliente,
		Avatar:       domain.AvatarURL(name),
	}
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations(context.Background()))
	require.NoError(t, st.Ping(context.Background()))

	version, dirty, err := st.SchemaVersion()
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(1), version)
}

func TestParseID(t *testing.T) {
	st := newTestStore(t)

	id := idx.New().String()
	got, err := st.ParseID(id)
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = st.ParseID("507f1f77bcf86cd799439011")
	require.ErrorIs(t, err, store.ErrInvalidID)
}

func TestUsers_CRUD(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	id, err := users.Create(ctx, testUser("Maria", "maria@example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, got.ID)
	require.Equal(t, "Maria", got.Name)
	require.Equal(t, domain.RoleCliente, got.Role)
	require.True(t, got.Active)
	require.Empty(t, got.PasswordHash, "reads by id never expose the hash")

	byEmail, err := users.GetByEmail(ctx, "maria@example.com")
	require.NoError(t, err)
	require.Equal(t, id, byEmail.ID)
	require.Equal(t, "$2a$04$hash-maria@example.com", byEmail.PasswordHash)

	upd := testUser("Maria Souza", "maria@example.com")
	upd.Active = false
	upd.Role = domain.RoleAdmin
	res, err := users.Update(ctx, id, upd)
	require.NoError(t, err)
	require.Equal(t, domain.UpdateResult{Matched: 1, Modified: 1}, res)

	res, err = users.Update(ctx, id, upd)
	require.NoError(t, err)
	require.Equal(t, domain.UpdateResult{Matched: 1, Modified: 0}, res, "identical update changes nothing")

	got, err = users.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Maria Souza", got.Name)
	require.False(t, got.Active)
	require.Equal(t, domain.RoleAdmin, got.Role)

	n, err := users.Delete(ctx, id)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = users.GetByID(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)

	n, err = users.Delete(ctx, id)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)
}

func TestUsers_UnknownAndInvalidIDs(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	missing := idx.New().String()
	_, err := users.GetByEmail(ctx, "ninguem@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	res, err := users.Update(ctx, missing, testUser("Maria", "maria@example.com"))
	require.NoError(t, err)
	require.Equal(t, domain.UpdateResult{}, res)

	_, err = users.GetByID(ctx, "nope")
	require.ErrorIs(t, err, store.ErrInvalidID)
	_, err = users.Update(ctx, "nope", domain.User{})
	require.ErrorIs(t, err, store.ErrInvalidID)
	_, err = users.Delete(ctx, "nope")
	require.ErrorIs(t, err, store.ErrInvalidID)
}

func TestUsers_SetPasswordHash(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	id, err := users.Create(ctx, testUser("Maria", "maria@example.com"))
	require.NoError(t, err)

	require.NoError(t, users.SetPasswordHash(ctx, id, "$2a$05$rehashed"))

	u, err := users.GetByEmail(ctx, "maria@example.com")
	require.NoError(t, err)
	require.Equal(t, "$2a$05$rehashed", u.PasswordHash)
	require.Equal(t, "Maria", u.Name)

	err = users.SetPasswordHash(ctx, idx.New().String(), "$2a$05$x")
	require.ErrorIs(t, err, store.ErrNotFound)
	err = users.SetPasswordHash(ctx, "nope", "$2a$05$x")
	require.ErrorIs(t, err, store.ErrInvalidID)
}

func TestUsers_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	_, err := users.Create(ctx, testUser("Maria", "maria@example.com"))
	require.NoError(t, err)

	_, err = users.Create(ctx, testUser("Outra Maria", "maria@example.com"))
	require.ErrorIs(t, err, store.ErrDuplicate)

	otherID, err := users.Create(ctx, testUser("Joao", "joao@example.com"))
	require.NoError(t, err)

	_, err = users.Update(ctx, otherID, testUser("Joao", "maria@example.com"))
	require.ErrorIs(t, err, store.ErrDuplicate)
}

func TestUsers_ListAndSearch(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	for _, name := range []string{"Carla", "Ana", "Bruno", "Ana Paula"} {
		email := strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@example.com"
		_, err := users.Create(ctx, testUser(name, email))
		require.NoError(t, err)
	}
	_, err := users.Create(ctx, testUser("Zeca", "ana.z@example.com"))
	require.NoError(t, err)

	all, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.Equal(t, []string{"Ana", "Ana Paula", "Bruno", "Carla", "Zeca"}, names(all))
	for _, u := range all {
		require.Empty(t, u.PasswordHash)
	}

	found, err := users.Search(ctx, "ANA", 10)
	require.NoError(t, err)
	require.Equal(t, []string{"Ana", "Ana Paula", "Zeca"}, names(found), "name or email, any case")

	capped, err := users.Search(ctx, "", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"Ana", "Ana Paula"}, names(capped))

	none, err := users.Search(ctx, "%", 10)
	require.NoError(t, err)
	require.Empty(t, none, "LIKE wildcards are matched literally")
	require.NotNil(t, none)
}

func TestUsers_SearchLimit(t *testing.T) {
	ctx := context.Background()
	users := newTestStore(t).Users()

	for i := range 15 {
		_, err := users.Create(ctx, testUser(fmt.Sprintf("Usuario %c", 'A'+i), fmt.Sprintf("u%d@example.com", i)))
		require.NoError(t, err)
	}

	found, err := users.Search(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, found, 10)
	require.Equal(t, "Usuario A", found[0].Name)
	require.Equal(t, "Usuario J", found[9].Name)
}

func names(users []domain.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Name)
	}
	return out
}

func testVehicle(brand, model, business string) domain.Vehicle {
	return domain.Vehicle{
		Brand:        brand,
		Model:        model,
		Color:        "Prata",
		Plate:        "ABC1D23",
		Renavam:      "123456789",
		BusinessName: business,
	}
}

func TestVehicles_CRUD(t *testing.T) {
	ctx := context.Background()
	vehicles := newTestStore(t).Vehicles()

	id, err := vehicles.Create(ctx, testVehicle("Fiat", "Uno", "Transportes Silva LTDA"))
	require.NoError(t, err)

	got, err := vehicles.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Fiat", got.Brand)
	require.Equal(t, "Transportes Silva LTDA", got.BusinessName)

	upd := testVehicle("Fiat", "Uno Mille", "")
	res, err := vehicles.Update(ctx, id, upd)
	require.NoError(t, err)
	require.Equal(t, domain.UpdateResult{Matched: 1, Modified: 1}, res)

	got, err = vehicles.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Uno Mille", got.Model)
	require.Equal(t, "Transportes Silva LTDA", got.BusinessName, "empty business name keeps the stored one")

	res, err = vehicles.Update(ctx, id, upd)
	require.NoError(t, err)
	require.Equal(t, domain.UpdateResult{Matched: 1}, res)

	n, err := vehicles.Delete(ctx, id)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = vehicles.GetByID(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestVehicles_ListAndSearch(t *testing.T) {
	ctx := context.Background()
	vehicles := newTestStore(t).Vehicles()

	for _, v := range []domain.Vehicle{
		testVehicle("Volkswagen", "Gol", "Transportes Silva"),
		testVehicle("Fiat", "Uno", "Logistica Souza"),
		testVehicle("Fiat", "Argo", "transportes silva"),
		testVehicle("Chevrolet", "Onix", ""),
	} {
		_, err := vehicles.Create(ctx, v)
		require.NoError(t, err)
	}

	all, err := vehicles.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Chevrolet Onix", "Fiat Argo", "Fiat Uno", "Volkswagen Gol"}, models(all))

	found, err := vehicles.SearchByBusinessName(ctx, "SILVA")
	require.NoError(t, err)
	require.Equal(t, []string{"Fiat Argo", "Volkswagen Gol"}, models(found))

	none, err := vehicles.SearchByBusinessName(ctx, "Inexistente")
	require.NoError(t, err)
	require.Empty(t, none)
}

func models(vs []domain.Vehicle) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Brand+" "+v.Model)
	}
	return out
}
