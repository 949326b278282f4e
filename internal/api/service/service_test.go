package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/myvehicles/internal/api/service"
	"github.com/aussiebroadwan/myvehicles/internal/api/store"
	"github.com/aussiebroadwan/myvehicles/internal/api/store/drivers/sqlite"
	"github.com/aussiebroadwan/myvehicles/internal/api/validation"
	"github.com/aussiebroadwan/myvehicles/pkg/cryptox"
	"github.com/aussiebroadwan/myvehicles/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type fixture struct {
	store    *sqlite.Store
	users    *service.UserService
	vehicles *service.VehicleService
	tokens   *service.TokenService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.MemoryDSN)
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations(context.Background()))

	gw := store.NewGateway(func(context.Context) (store.Store, error) { return st, nil })
	t.Cleanup(func() { _ = gw.Close() })

	hasher, err := cryptox.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	return fixture{
		store:    st,
		users:    &service.UserService{Gateway: gw, Hasher: hasher},
		vehicles: &service.VehicleService{Gateway: gw},
		tokens: &service.TokenService{
			Gateway: gw,
			Hasher:  hasher,
			Signer:  signer,
			Issuer:  "myvehicles",
			TTL:     time.Hour,
		},
	}
}

func userInput(name, email string) validation.Input {
	return validation.Input{
		"nome":  name,
		"email": email,
		"senha": "Segr3d@",
	}
}

func validationParams(t *testing.T, err error) []string {
	t.Helper()

	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)

	out := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		out = append(out, fe.Param)
	}
	return out
}
