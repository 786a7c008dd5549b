package appconfig

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	apperrors "github.com/agencydesk/go-dealer-admin/internal/errors"
)

// Cache holds the configuration of the active agency. It re-fetches when
// the active agency changes and replaces (never merges) its copy with the
// backend's full response after an update.
type Cache struct {
	api    API
	themes ThemeApplier
	tokens TokenSource
	active ActiveSource
	log    zerolog.Logger

	generation atomic.Uint64

	lock    sync.RWMutex
	current *Config
}

func NewCache(api API, themes ThemeApplier, tokens TokenSource, active ActiveSource, log zerolog.Logger) *Cache {
	return &Cache{
		api:    api,
		themes: themes,
		tokens: tokens,
		active: active,
		log:    log.With().Str("component", "appconfig").Logger(),
	}
}

// OnActiveAgencyChanged is meant to be registered with the agency registry.
// A change invalidates in-flight fetches for the previous agency.
func (c *Cache) OnActiveAgencyChanged(activeID string) {
	if activeID == "" {
		// Nothing selected; keep the previous configuration on screen.
		c.generation.Add(1)
		return
	}
	c.Reload(context.Background())
}

// Reload fetches the configuration for the active agency. Fetch failures
// are logged and leave the previous configuration in place; configuration
// is defaultable, so a broken fetch must not blank a working screen.
func (c *Cache) Reload(ctx context.Context) {
	if c.tokens.Token() == "" {
		return
	}
	agencyID, ok := c.active.ActiveAgencyID()
	if !ok {
		return
	}

	gen := c.generation.Add(1)
	cfg, err := c.api.GetConfig(ctx, agencyID)
	if err != nil {
		c.log.Err(err).Str("agency_id", agencyID).Msg("failed to fetch configuration")
		return
	}
	if c.generation.Load() != gen {
		// The active agency moved while this fetch was in flight.
		c.log.Debug().Str("agency_id", agencyID).Msg("discarding stale configuration fetch")
		return
	}

	c.lock.Lock()
	c.current = &cfg
	c.lock.Unlock()
	c.themes.ApplyTheme(cfg)
}

// Current returns the cached configuration.
func (c *Cache) Current() (Config, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	if c.current == nil {
		return Config{}, false
	}
	return *c.current, true
}

// Update sends a partial update for the active agency. It fails fast with
// ErrNoActiveAgency before issuing any request when nothing is selected.
// On success the in-memory configuration is replaced with the backend's
// full response; on failure it is left untouched and the error propagates.
func (c *Cache) Update(ctx context.Context, update ConfigUpdate) (Config, error) {
	agencyID, ok := c.active.ActiveAgencyID()
	if !ok {
		return Config{}, apperrors.ErrNoActiveAgency
	}

	cfg, err := c.api.UpdateConfig(ctx, agencyID, update)
	if err != nil {
		return Config{}, errors.Wrap(err, "[Update] backend config update")
	}

	c.generation.Add(1)
	c.lock.Lock()
	c.current = &cfg
	c.lock.Unlock()
	c.themes.ApplyTheme(cfg)
	return cfg, nil
}
