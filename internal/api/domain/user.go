package domain

import (
	"net/url"
	"strings"
)

// Role is the access profile of a user ("tipo" on the wire).
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleCliente Role = "Cliente"
)

// DefaultRole is assigned when a registration does not name one.
const DefaultRole = RoleCliente

// Roles lists every accepted role, in display order.
func Roles() []Role { return []Role{RoleAdmin, RoleCliente} }

// User is a registered account. PasswordHash is never rendered.
type User struct {
	ID           string `json:"_id"`
	Name         string `json:"nome"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Active       bool   `json:"ativo"`
	Role         Role   `json:"tipo"`
	Avatar       string `json:"avatar"`
}

const avatarBaseURL = "https://ui-avatars.com/api/?background=3700B3&color=FFFFFF&name="

// AvatarURL returns the generated avatar for a display name.
func AvatarURL(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Mind"
	}
	return avatarBaseURL + url.QueryEscape(name)
}
