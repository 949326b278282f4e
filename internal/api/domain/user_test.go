package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/myvehicles/internal/api/domain"
	"github.com/stretchr/testify/require"
)

func TestAvatarURL(t *testing.T) {
	require.Equal(t,
		"https://ui-avatars.com/api/?background=3700B3&color=FFFFFF&name=Maria+da+Silva",
		domain.AvatarURL("Maria da Silva"))

	require.Equal(t,
		"https://ui-avatars.com/api/?background=3700B3&color=FFFFFF&name=Jos%C3%A9",
		domain.AvatarURL("José"))

	require.Equal(t,
		"https://ui-avatars.com/api/?background=3700B3&color=FFFFFF&name=Mind",
		domain.AvatarURL("  "))
}

func TestRoles(t *testing.T) {
	require.Equal(t, []domain.Role{domain.RoleAdmin, domain.RoleCliente}, domain.Roles())
	require.Equal(t, domain.RoleCliente, domain.DefaultRole)
}
