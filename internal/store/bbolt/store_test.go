package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := NewStore(filepath.Join(t.TempDir(), "credentials.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	credential, err := store.Read()
	require.NoError(t, err)
	require.Empty(t, credential)

	require.NoError(t, store.Save("token-1"))
	credential, err = store.Read()
	require.NoError(t, err)
	require.Equal(t, "token-1", credential)

	require.NoError(t, store.Save("token-2"))
	credential, err = store.Read()
	require.NoError(t, err)
	require.Equal(t, "token-2", credential)

	require.NoError(t, store.Clear())
	credential, err = store.Read()
	require.NoError(t, err)
	require.Empty(t, credential)

	require.NoError(t, store.Clear())
}

func TestStoreSurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("persisted-token"))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	credential, err := reopened.Read()
	require.NoError(t, err)
	require.Equal(t, "persisted-token", credential)
}
