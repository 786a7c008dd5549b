package agencies

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	apperrors "github.com/agencydesk/go-dealer-admin/internal/errors"
)

// Registry tracks the agencies visible to the logged-in user and which one
// is currently selected. It is the single writer for the active selection;
// every other component observes it through Subscribe or reads Active.
//
// Selection derivation on refresh: the persisted id wins when it still
// matches a listed agency, otherwise the first agency flagged is_active,
// otherwise no selection.
type Registry struct {
	api    API
	store  SelectionStore
	tokens TokenSource
	log    zerolog.Logger

	lock     sync.RWMutex
	agencies []Agency
	active   *Agency
	subs     map[int]func(activeID string)
	nextSub  int
}

func NewRegistry(api API, store SelectionStore, tokens TokenSource, log zerolog.Logger) *Registry {
	return &Registry{
		api:    api,
		store:  store,
		tokens: tokens,
		log:    log.With().Str("component", "agencies").Logger(),
		subs:   make(map[int]func(string)),
	}
}

// Refresh replaces the agency list and re-derives the active selection.
// Requires a token; list fetch failures leave the previous list in place.
func (r *Registry) Refresh(ctx context.Context) error {
	return r.reload(ctx, true)
}

func (r *Registry) reload(ctx context.Context, derive bool) error {
	if r.tokens.Token() == "" {
		return apperrors.ErrUnauthenticated
	}

	list, err := r.api.ListAgencies(ctx)
	if err != nil {
		r.log.Err(err).Msg("failed to fetch agencies")
		return errors.Wrap(err, "[Refresh] list agencies")
	}

	r.lock.Lock()
	r.agencies = list
	prevID := r.activeIDLocked()
	if derive {
		r.deriveActiveLocked()
	} else if r.active != nil {
		// Keep the selection only while it still exists in the list.
		r.active = r.findLocked(r.active.ID)
	}
	newID := r.activeIDLocked()
	r.lock.Unlock()

	if newID != prevID {
		r.notify(newID)
	}
	return nil
}

func (r *Registry) findLocked(id string) *Agency {
	for i := range r.agencies {
		if r.agencies[i].ID == id {
			a := r.agencies[i]
			return &a
		}
	}
	return nil
}

func (r *Registry) deriveActiveLocked() {
	if saved, ok := r.store.ActiveAgencyID(); ok {
		if match := r.findLocked(saved); match != nil {
			r.active = match
			return
		}
	}
	for i := range r.agencies {
		if r.agencies[i].IsActive {
			a := r.agencies[i]
			r.active = &a
			return
		}
	}
	r.active = nil
}

func (r *Registry) activeIDLocked() string {
	if r.active == nil {
		return ""
	}
	return r.active.ID
}

// Select makes exactly the given agency active and persists its id. The
// caller is responsible for passing one of the currently loaded agencies.
func (r *Registry) Select(agency Agency) {
	r.lock.Lock()
	prevID := r.activeIDLocked()
	a := agency
	r.active = &a
	r.lock.Unlock()

	if err := r.store.SaveActiveAgencyID(agency.ID); err != nil {
		r.log.Err(err).Str("agency_id", agency.ID).Msg("failed to persist active agency")
	}
	if agency.ID != prevID {
		r.notify(agency.ID)
	}
}

// Active returns the currently selected agency.
func (r *Registry) Active() (Agency, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if r.active == nil {
		return Agency{}, false
	}
	return *r.active, true
}

// ActiveAgencyID returns the selected agency id, or "" when none.
func (r *Registry) ActiveAgencyID() (string, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if r.active == nil {
		return "", false
	}
	return r.active.ID, true
}

// Agencies returns the last fetched list.
func (r *Registry) Agencies() []Agency {
	r.lock.RLock()
	defer r.lock.RUnlock()
	out := make([]Agency, len(r.agencies))
	copy(out, r.agencies)
	return out
}

// Create adds an agency and refreshes the list. The backend's error message
// is surfaced verbatim; there is no retry.
func (r *Registry) Create(ctx context.Context, input AgencyInput) error {
	if _, err := r.api.CreateAgency(ctx, input); err != nil {
		return err
	}
	if err := r.Refresh(ctx); err != nil {
		r.log.Err(err).Msg("refresh after create failed")
	}
	return nil
}

// Update edits an agency and refreshes the list. When the edited agency is
// the active one, the in-memory selection is patched with the backend's
// response immediately so reads reflect the edit before the refresh lands.
func (r *Registry) Update(ctx context.Context, id string, input AgencyInput) error {
	updated, err := r.api.UpdateAgency(ctx, id, input)
	if err != nil {
		return err
	}

	r.lock.Lock()
	if r.active != nil && r.active.ID == id {
		a := updated
		r.active = &a
	}
	r.lock.Unlock()

	if err := r.Refresh(ctx); err != nil {
		r.log.Err(err).Msg("refresh after update failed")
	}
	return nil
}

// Delete removes an agency. Deleting the active agency clears the selection
// without auto-selecting another; the default-active fallback applies again
// on the next Refresh.
func (r *Registry) Delete(ctx context.Context, id string) error {
	if err := r.api.DeleteAgency(ctx, id); err != nil {
		return err
	}

	r.lock.Lock()
	wasActive := r.active != nil && r.active.ID == id
	if wasActive {
		r.active = nil
	}
	r.lock.Unlock()

	if wasActive {
		if err := r.store.ClearActiveAgencyID(); err != nil {
			r.log.Err(err).Msg("failed to clear persisted active agency")
		}
		r.notify("")
	}
	if err := r.reload(ctx, false); err != nil {
		r.log.Err(err).Msg("refresh after delete failed")
	}
	return nil
}

// Subscribe registers an observer for active-agency changes and returns an
// unsubscribe function. Observers receive the new active id ("" for none).
func (r *Registry) Subscribe(fn func(activeID string)) func() {
	r.lock.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.lock.Unlock()

	return func() {
		r.lock.Lock()
		delete(r.subs, id)
		r.lock.Unlock()
	}
}

func (r *Registry) notify(activeID string) {
	r.lock.RLock()
	fns := make([]func(string), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.lock.RUnlock()
	for _, fn := range fns {
		fn(activeID)
	}
}
