package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempSessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestFileStore_MissingFileMeansLoggedOut(t *testing.T) {
	fs, err := NewFileStore(tempSessionPath(t))
	require.NoError(t, err)

	assert.False(t, fs.Current().IsAuthenticated())
}

func TestFileStore_SaveAndReload(t *testing.T) {
	path := tempSessionPath(t)

	fs, err := NewFileStore(path)
	require.NoError(t, err)

	s := Session{AccessToken: "at", RefreshToken: "rt", Email: "u@example.com"}
	require.NoError(t, fs.Save(s))
	assert.Equal(t, s, fs.Current())

	// a second store sees the persisted session
	fs2, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, s, fs2.Current())
}

func TestFileStore_Clear(t *testing.T) {
	path := tempSessionPath(t)

	fs, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, fs.Save(Session{AccessToken: "at", Email: "u@example.com"}))

	require.NoError(t, fs.Clear())
	assert.False(t, fs.Current().IsAuthenticated())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// clearing an already-clear store is fine
	require.NoError(t, fs.Clear())
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := tempSessionPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}
