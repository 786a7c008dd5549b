// Package listview provides the tenant-scoped list cache every entity
// screen is built on. A view re-fetches whenever the active agency changes
// or after any mutation against its entity type; there is no incremental
// patching of a held list.
package listview

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// FetchFunc loads the list for one agency.
type FetchFunc[T any] func(ctx context.Context, agencyID string) ([]T, error)

// ActiveSource reports the currently selected agency.
type ActiveSource interface {
	ActiveAgencyID() (string, bool)
}

// View caches one entity list for the active agency. Fetch errors are
// logged and leave the previous items in place so a transient failure does
// not blank a working screen. Each fetch is tagged with a generation; a
// result that lands after the active agency moved is discarded instead of
// overwriting the display with stale-tenant data.
type View[T any] struct {
	name   string
	active ActiveSource
	fetch  FetchFunc[T]
	log    zerolog.Logger

	generation atomic.Uint64

	lock  sync.RWMutex
	items []T
}

func New[T any](name string, active ActiveSource, fetch FetchFunc[T], log zerolog.Logger) *View[T] {
	return &View[T]{
		name:   name,
		active: active,
		fetch:  fetch,
		log:    log.With().Str("view", name).Logger(),
	}
}

// OnActiveAgencyChanged is meant to be registered with the agency registry.
func (v *View[T]) OnActiveAgencyChanged(string) {
	v.Reload(context.Background())
}

// Reload fetches the list for the current active agency. With no agency
// selected the view empties.
func (v *View[T]) Reload(ctx context.Context) {
	agencyID, ok := v.active.ActiveAgencyID()
	if !ok {
		v.generation.Add(1)
		v.lock.Lock()
		v.items = nil
		v.lock.Unlock()
		return
	}

	gen := v.generation.Add(1)
	items, err := v.fetch(ctx, agencyID)
	if err != nil {
		v.log.Err(err).Str("agency_id", agencyID).Msg("list fetch failed")
		return
	}
	if v.generation.Load() != gen {
		v.log.Debug().Str("agency_id", agencyID).Msg("discarding stale list fetch")
		return
	}

	v.lock.Lock()
	v.items = items
	v.lock.Unlock()
}

// Items returns the cached list.
func (v *View[T]) Items() []T {
	v.lock.RLock()
	defer v.lock.RUnlock()
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// Len returns the cached list length.
func (v *View[T]) Len() int {
	v.lock.RLock()
	defer v.lock.RUnlock()
	return len(v.items)
}
