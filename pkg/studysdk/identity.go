package studysdk

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles known to the platform. The backend
// stores roles as strings; parsing through Role keeps authorization checks
// exhaustive instead of comparing free-form text.
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"
)

// ParseRole validates a raw role string against the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleTutor, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Identity is the in-memory projection of a decoded bearer credential. It is
// never persisted; it is re-derived from the stored credential on every
// login, refresh and session bootstrap.
type Identity struct {
	// Subject is the user id the backend issues in the token payload.
	Subject string

	Email string
	Name  string
	Role  Role

	// ExpiresAt is informational only. Expiry is discovered through a 401,
	// not checked locally.
	ExpiresAt time.Time
}

// Usable reports whether the identity carries a subject id. A credential that
// decodes without a subject needs a refresh before the session is considered
// authenticated.
func (id *Identity) Usable() bool {
	return id != nil && id.Subject != ""
}
