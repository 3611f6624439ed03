package model

import "time"

// Role is one of the fixed permission groups seeded at schema creation.
type Role string

const (
	RoleReader Role = "Reader"
	RoleWriter Role = "Writer"
)

// ParseRole maps a role name onto the fixed set. The second return is false
// for anything outside it.
func ParseRole(name string) (Role, bool) {
	switch Role(name) {
	case RoleReader:
		return RoleReader, true
	case RoleWriter:
		return RoleWriter, true
	}
	return "", false
}

type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	Roles        []Role    `db:"-"`
}

// HasRole reports whether the user holds any of the given roles.
func (u *User) HasRole(roles ...Role) bool {
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
