// Package session persists the authenticated user's credentials (access
// token, refresh token, email) across CLI runs. It is the client-side
// counterpart of the web app's local storage, made explicit so the data
// layer never reads ambient state.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Session is the credential set attached to outgoing requests.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Email        string `json:"email"`
}

// IsAuthenticated reports whether an access token is present.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}

// Store gives read/write access to the persisted session. Current is
// called by the gateway on every request so a token refresh takes effect
// on the next call without reconstructing anything.
type Store interface {
	Current() Session
	Save(s Session) error
	Clear() error
}

// FileStore persists the session as a JSON file. Writes go through a
// temp file and rename so a crash never leaves a half-written session.
type FileStore struct {
	path string

	mu      sync.RWMutex
	current Session
}

// NewFileStore loads the session at path if one exists. A missing file
// means a logged-out state, not an error.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fs, nil
		}
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	if err := json.Unmarshal(data, &fs.current); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}
	return fs, nil
}

func (f *FileStore) Current() Session {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

func (f *FileStore) Save(s Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.write(s); err != nil {
		return err
	}
	f.current = s
	return nil
}

// Clear wipes the in-memory session and removes the file. Used by logout;
// requests still in flight see an empty token and may fail unauthorized,
// which callers handle like any other request failure.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.current = Session{}
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}

func (f *FileStore) write(s Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("creating temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
