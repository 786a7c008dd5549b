package agencies_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/go-dealer-admin/agencies"
	"github.com/agencydesk/go-dealer-admin/agencies/agenciesfakes"
	apperrors "github.com/agencydesk/go-dealer-admin/internal/errors"
)

func newTestRegistry(t *testing.T, seed ...agencies.Agency) (*agencies.Registry, *agenciesfakes.FakeAPI, *agenciesfakes.FakeSelectionStore) {
	t.Helper()
	api := agenciesfakes.NewFakeAPI(seed...)
	store := agenciesfakes.NewFakeSelectionStore()
	tokens := &agenciesfakes.FakeTokenSource{BearerToken: "test-token"}
	return agencies.NewRegistry(api, store, tokens, zerolog.Nop()), api, store
}

func TestRegistry_Refresh(t *testing.T) {
	a1 := agencies.Agency{ID: "a1", Name: "Downtown Motors", IsActive: false}
	a2 := agencies.Agency{ID: "a2", Name: "Riverside Cars", IsActive: true}

	t.Run("requires a token", func(t *testing.T) {
		api := agenciesfakes.NewFakeAPI(a1)
		store := agenciesfakes.NewFakeSelectionStore()
		tokens := &agenciesfakes.FakeTokenSource{}
		registry := agencies.NewRegistry(api, store, tokens, zerolog.Nop())

		err := registry.Refresh(context.Background())
		require.ErrorIs(t, err, apperrors.ErrUnauthenticated)
		require.Zero(t, api.ListCalls)
	})

	t.Run("persisted selection wins over default-active flag", func(t *testing.T) {
		registry, _, store := newTestRegistry(t, a1, a2)
		require.NoError(t, store.SaveActiveAgencyID("a1"))

		require.NoError(t, registry.Refresh(context.Background()))

		active, ok := registry.Active()
		require.True(t, ok)
		require.Equal(t, "a1", active.ID)
	})

	t.Run("falls back to first enabled agency", func(t *testing.T) {
		registry, _, _ := newTestRegistry(t, a1, a2)

		require.NoError(t, registry.Refresh(context.Background()))

		active, ok := registry.Active()
		require.True(t, ok)
		require.Equal(t, "a2", active.ID)
	})

	t.Run("stale persisted id falls back to first enabled", func(t *testing.T) {
		registry, _, store := newTestRegistry(t, a1, a2)
		require.NoError(t, store.SaveActiveAgencyID("gone"))

		require.NoError(t, registry.Refresh(context.Background()))

		active, ok := registry.Active()
		require.True(t, ok)
		require.Equal(t, "a2", active.ID)
	})

	t.Run("no enabled agencies leaves nothing selected", func(t *testing.T) {
		registry, _, _ := newTestRegistry(t, a1)

		require.NoError(t, registry.Refresh(context.Background()))

		_, ok := registry.Active()
		require.False(t, ok)
	})

	t.Run("list failure keeps the previous list", func(t *testing.T) {
		registry, api, _ := newTestRegistry(t, a1, a2)
		require.NoError(t, registry.Refresh(context.Background()))

		api.ListErr = errors.New("backend down")
		err := registry.Refresh(context.Background())
		require.Error(t, err)
		require.Len(t, registry.Agencies(), 2)
	})
}

func TestRegistry_Select(t *testing.T) {
	a1 := agencies.Agency{ID: "a1", Name: "Downtown Motors", IsActive: true}
	a2 := agencies.Agency{ID: "a2", Name: "Riverside Cars", IsActive: true}

	registry, _, store := newTestRegistry(t, a1, a2)
	require.NoError(t, registry.Refresh(context.Background()))

	var notified []string
	registry.Subscribe(func(activeID string) {
		notified = append(notified, activeID)
	})

	registry.Select(a2)

	active, ok := registry.Active()
	require.True(t, ok)
	require.Equal(t, "a2", active.ID)

	saved, ok := store.ActiveAgencyID()
	require.True(t, ok)
	require.Equal(t, "a2", saved)

	require.Equal(t, []string{"a2"}, notified)

	// Re-selecting the same agency does not notify again.
	registry.Select(a2)
	require.Equal(t, []string{"a2"}, notified)
}

func TestRegistry_Update(t *testing.T) {
	a1 := agencies.Agency{ID: "a1", Name: "Downtown Motors", IsActive: true}

	registry, _, _ := newTestRegistry(t, a1)
	require.NoError(t, registry.Refresh(context.Background()))

	input := agencies.AgencyInput{Name: "Downtown Motors & Co", Phone: "123"}
	require.NoError(t, registry.Update(context.Background(), "a1", input))

	active, ok := registry.Active()
	require.True(t, ok)
	require.Equal(t, "Downtown Motors & Co", active.Name)
}

func TestRegistry_Delete(t *testing.T) {
	a1 := agencies.Agency{ID: "a1", Name: "Downtown Motors", IsActive: true}
	a2 := agencies.Agency{ID: "a2", Name: "Riverside Cars", IsActive: true}

	t.Run("deleting the active agency clears the selection", func(t *testing.T) {
		registry, _, store := newTestRegistry(t, a1, a2)
		require.NoError(t, registry.Refresh(context.Background()))
		registry.Select(a1)

		var notified []string
		registry.Subscribe(func(activeID string) {
			notified = append(notified, activeID)
		})

		require.NoError(t, registry.Delete(context.Background(), "a1"))

		_, ok := registry.Active()
		require.False(t, ok)
		_, ok = store.ActiveAgencyID()
		require.False(t, ok)
		require.Equal(t, []string{""}, notified)

		// The next explicit refresh re-derives a default selection.
		require.NoError(t, registry.Refresh(context.Background()))
		active, ok := registry.Active()
		require.True(t, ok)
		require.Equal(t, "a2", active.ID)
	})

	t.Run("deleting another agency keeps the selection", func(t *testing.T) {
		registry, _, _ := newTestRegistry(t, a1, a2)
		require.NoError(t, registry.Refresh(context.Background()))
		registry.Select(a1)

		require.NoError(t, registry.Delete(context.Background(), "a2"))

		active, ok := registry.Active()
		require.True(t, ok)
		require.Equal(t, "a1", active.ID)
		require.Len(t, registry.Agencies(), 1)
	})
}

func TestRegistry_Create(t *testing.T) {
	registry, api, _ := newTestRegistry(t)
	require.NoError(t, registry.Refresh(context.Background()))

	require.NoError(t, registry.Create(context.Background(), agencies.AgencyInput{Name: "New Agency"}))
	require.Len(t, registry.Agencies(), 1)

	api.CreateErr = errors.New("duplicate name")
	err := registry.Create(context.Background(), agencies.AgencyInput{Name: "New Agency"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate name")
}

func TestRegistry_SubscribeUnsubscribe(t *testing.T) {
	a1 := agencies.Agency{ID: "a1", Name: "Downtown Motors", IsActive: true}
	a2 := agencies.Agency{ID: "a2", Name: "Riverside Cars", IsActive: true}

	registry, _, _ := newTestRegistry(t, a1, a2)
	require.NoError(t, registry.Refresh(context.Background()))

	calls := 0
	unsubscribe := registry.Subscribe(func(string) { calls++ })

	registry.Select(a2)
	require.Equal(t, 1, calls)

	unsubscribe()
	registry.Select(a1)
	require.Equal(t, 1, calls)
}
