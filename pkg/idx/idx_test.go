package idx_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/myvehicles/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.Len(t, id.String(), 26)

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParse_Normalises(t *testing.T) {
	id := idx.New()
	parsed, err := idx.Parse("  " + strings.ToLower(id.String()) + " ")
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "   ", "abc", "507f1f77bcf86cd799439011", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3Z!"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, s)
	}
}

func TestNew_SortsInCreationOrder(t *testing.T) {
	prev := idx.New()
	for range 200 {
		next := idx.New()
		require.Less(t, prev.String(), next.String())
		prev = next
	}
}
