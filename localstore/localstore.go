// Package localstore persists the small amount of workspace state that
// survives restarts: the bearer token and user, the active agency id and
// the UI theme preference. It is the Go-side replacement for what the
// dashboard previously kept in browser storage.
package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/agencydesk/go-dealer-admin/agencies"
	"github.com/agencydesk/go-dealer-admin/session"
)

// SchemaVersion is bumped whenever the persisted layout changes in an
// incompatible way; a mismatch on load wipes all local state.
const SchemaVersion = 2

const stateFileName = "workspace.json"

type state struct {
	Version        int           `json:"version"`
	Token          string        `json:"token,omitempty"`
	User           *session.User `json:"user,omitempty"`
	ActiveAgencyID string        `json:"active_agency_id,omitempty"`
	Theme          string        `json:"theme,omitempty"`
}

var (
	_ session.StateStore      = (*File)(nil)
	_ agencies.SelectionStore = (*File)(nil)
)

// File is a JSON file-backed store. Writes are write-through.
type File struct {
	path string

	lock  sync.Mutex
	state state
}

// Open loads (or initializes) the store under the given folder. A schema
// version mismatch resets the state to empty.
func Open(folder string) (*File, error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, errors.Wrap(err, "[Open] create data folder")
	}

	f := &File{
		path:  filepath.Join(folder, stateFileName),
		state: state{Version: SchemaVersion},
	}

	raw, err := os.ReadFile(f.path)
	switch {
	case os.IsNotExist(err):
		return f, nil
	case err != nil:
		return nil, errors.Wrap(err, "[Open] read state file")
	}

	var loaded state
	if err := json.Unmarshal(raw, &loaded); err != nil || loaded.Version != SchemaVersion {
		// Corrupt or from an older layout: wipe and start over.
		if err := f.saveLocked(); err != nil {
			return nil, err
		}
		return f, nil
	}

	f.state = loaded
	return f, nil
}

func (f *File) saveLocked() error {
	raw, err := json.MarshalIndent(f.state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[save] marshal state")
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "[save] write state file")
	}
	return nil
}

// SavedSession implements session.StateStore.
func (f *File) SavedSession() (string, session.User, bool) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.state.Token == "" || f.state.User == nil {
		return "", session.User{}, false
	}
	return f.state.Token, *f.state.User, true
}

func (f *File) SaveSession(token string, user session.User) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.state.Token = token
	f.state.User = &user
	return f.saveLocked()
}

func (f *File) ClearSession() error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.state.Token = ""
	f.state.User = nil
	return f.saveLocked()
}

// ActiveAgencyID implements agencies.SelectionStore. The persisted
// selection is deliberately not cleared on logout.
func (f *File) ActiveAgencyID() (string, bool) {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.state.ActiveAgencyID, f.state.ActiveAgencyID != ""
}

func (f *File) SaveActiveAgencyID(id string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.state.ActiveAgencyID = id
	return f.saveLocked()
}

func (f *File) ClearActiveAgencyID() error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.state.ActiveAgencyID = ""
	return f.saveLocked()
}

// ThemePreference returns the persisted UI theme ("light"/"dark"), if any.
func (f *File) ThemePreference() (string, bool) {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.state.Theme, f.state.Theme != ""
}

func (f *File) SaveThemePreference(theme string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.state.Theme = theme
	return f.saveLocked()
}
