package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "credentials.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	return store
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	t.Run("empty store reads empty", func(t *testing.T) {
		credential, err := store.Read()
		require.NoError(t, err)
		require.Empty(t, credential)
	})

	t.Run("save and read", func(t *testing.T) {
		require.NoError(t, store.Save("token-1"))

		credential, err := store.Read()
		require.NoError(t, err)
		require.Equal(t, "token-1", credential)
	})

	t.Run("save replaces", func(t *testing.T) {
		require.NoError(t, store.Save("token-2"))

		credential, err := store.Read()
		require.NoError(t, err)
		require.Equal(t, "token-2", credential)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, store.Clear())

		credential, err := store.Read()
		require.NoError(t, err)
		require.Empty(t, credential)

		// Clearing again is not an error.
		require.NoError(t, store.Clear())
	})
}

func TestStoreSurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("persisted-token"))
	require.NoError(t, store.Close())

	// Reopening runs migrations again; they must be a no-op on an
	// up-to-date database.
	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	credential, err := reopened.Read()
	require.NoError(t, err)
	require.Equal(t, "persisted-token", credential)
}
