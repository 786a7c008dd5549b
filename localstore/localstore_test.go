package localstore_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agencydesk/go-dealer-admin/localstore"
	"github.com/agencydesk/go-dealer-admin/session"
)

func TestFile_SessionRoundtrip(t *testing.T) {
	folder := t.TempDir()
	user := session.User{ID: "u1", Email: "owner@example.com", Name: "Owner"}

	store, err := localstore.Open(folder)
	require.NoError(t, err)

	_, _, ok := store.SavedSession()
	require.False(t, ok)

	require.NoError(t, store.SaveSession("jwt-token", user))
	require.NoError(t, store.SaveActiveAgencyID("a1"))
	require.NoError(t, store.SaveThemePreference("dark"))

	// A fresh open reads everything back from disk.
	reopened, err := localstore.Open(folder)
	require.NoError(t, err)

	token, savedUser, ok := reopened.SavedSession()
	require.True(t, ok)
	require.Equal(t, "jwt-token", token)
	require.Equal(t, user, savedUser)

	agencyID, ok := reopened.ActiveAgencyID()
	require.True(t, ok)
	require.Equal(t, "a1", agencyID)

	theme, ok := reopened.ThemePreference()
	require.True(t, ok)
	require.Equal(t, "dark", theme)
}

func TestFile_ClearSessionKeepsSelection(t *testing.T) {
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SaveSession("jwt-token", session.User{ID: "u1"}))
	require.NoError(t, store.SaveActiveAgencyID("a1"))
	require.NoError(t, store.ClearSession())

	_, _, ok := store.SavedSession()
	require.False(t, ok)

	// The agency selection survives a logout.
	agencyID, ok := store.ActiveAgencyID()
	require.True(t, ok)
	require.Equal(t, "a1", agencyID)
}

func TestFile_SchemaVersionMismatchWipes(t *testing.T) {
	folder := t.TempDir()
	path := filepath.Join(folder, "workspace.json")

	old := map[string]any{"version": 1, "token": "stale-token"}
	raw, err := json.Marshal(old)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	store, err := localstore.Open(folder)
	require.NoError(t, err)

	_, _, ok := store.SavedSession()
	require.False(t, ok)
}

func TestFile_CorruptFileWipes(t *testing.T) {
	folder := t.TempDir()
	path := filepath.Join(folder, "workspace.json")
	require.NoError(t, os.WriteFile(path, []byte("not json{"), 0o600))

	store, err := localstore.Open(folder)
	require.NoError(t, err)

	_, _, ok := store.SavedSession()
	require.False(t, ok)

	// The file was rewritten with the current schema.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var state map[string]any
	require.NoError(t, json.Unmarshal(raw, &state))
	require.EqualValues(t, localstore.SchemaVersion, state["version"])
}
