package studysdk

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// credentialClaims mirrors the payload the StudyHub backend issues. The user
// id travels in a custom "id" claim rather than the registered subject.
type credentialClaims struct {
	jwt.RegisteredClaims

	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// DecodeIdentity structurally parses a bearer credential into an Identity.
// The signature is NOT verified; verification authority is the backend, and
// a tampered token simply fails its first request. Decoding is pure: the
// same credential always yields the same record.
//
// A malformed credential fails with ErrMalformedCredential. A credential
// that decodes but carries no subject id is returned as-is; callers must
// treat it as "needs refresh" (see Identity.Usable).
func DecodeIdentity(credential string) (*Identity, error) {
	var claims credentialClaims

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCredential, err)
	}

	id := &Identity{
		Subject: claims.ID,
		Email:   claims.Email,
		Name:    claims.Name,
	}

	// Fall back to the registered subject when the custom claim is absent.
	if id.Subject == "" {
		id.Subject = claims.Subject
	}

	if role, err := ParseRole(claims.Role); err == nil {
		id.Role = role
	}

	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}

	return id, nil
}

// expiresIn is a debugging helper used in refresh logs.
func expiresIn(id *Identity) time.Duration {
	if id == nil || id.ExpiresAt.IsZero() {
		return 0
	}
	return time.Until(id.ExpiresAt)
}
