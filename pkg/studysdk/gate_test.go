package studysdk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGateAuthorize(t *testing.T) {
	t.Parallel()

	gate := Gate{}

	t.Run("matching role is allowed", func(t *testing.T) {
		id := &Identity{Subject: "user-1", Role: RoleTutor}
		decision := gate.Authorize(id, RoleTutor)
		require.True(t, decision.Allowed)
		require.Empty(t, decision.RedirectTo)
	})

	t.Run("any of the allowed roles passes", func(t *testing.T) {
		id := &Identity{Subject: "user-1", Role: RoleAdmin}
		decision := gate.Authorize(id, RoleTutor, RoleAdmin)
		require.True(t, decision.Allowed)
	})

	t.Run("wrong role is denied with redirect", func(t *testing.T) {
		id := &Identity{Subject: "user-1", Role: RoleStudent}
		decision := gate.Authorize(id, RoleAdmin)
		require.False(t, decision.Allowed)
		require.Equal(t, DefaultLoginPath, decision.RedirectTo)
	})

	t.Run("nil identity is denied", func(t *testing.T) {
		decision := gate.Authorize(nil, RoleStudent)
		require.False(t, decision.Allowed)
		require.Equal(t, DefaultLoginPath, decision.RedirectTo)
	})

	t.Run("unusable identity is denied", func(t *testing.T) {
		decision := gate.Authorize(&Identity{Role: RoleStudent}, RoleStudent)
		require.False(t, decision.Allowed)
	})

	t.Run("empty allowed set denies everyone", func(t *testing.T) {
		id := &Identity{Subject: "user-1", Role: RoleAdmin}
		decision := gate.Authorize(id)
		require.False(t, decision.Allowed)
	})

	t.Run("custom login path", func(t *testing.T) {
		custom := Gate{LoginPath: "/signin"}
		decision := custom.Authorize(nil, RoleStudent)
		require.Equal(t, "/signin", decision.RedirectTo)
	})
}
