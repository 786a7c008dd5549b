package appconfigfakes

import (
	"context"
	"sync"

	"github.com/agencydesk/go-dealer-admin/appconfig"
	apperrors "github.com/agencydesk/go-dealer-admin/internal/errors"
)

var _ appconfig.API = (*FakeAPI)(nil)

// FakeAPI stores one configuration per agency id and applies partial
// updates server-side, the way the real backend does.
type FakeAPI struct {
	lock    sync.Mutex
	configs map[string]appconfig.Config

	GetErr    error
	UpdateErr error

	GetCalls    int
	UpdateCalls int
}

func NewFakeAPI() *FakeAPI {
	return &FakeAPI{configs: make(map[string]appconfig.Config)}
}

func (f *FakeAPI) Seed(agencyID string, cfg appconfig.Config) {
	f.lock.Lock()
	defer f.lock.Unlock()
	cfg.AgencyID = agencyID
	f.configs[agencyID] = cfg
}

func (f *FakeAPI) GetConfig(ctx context.Context, agencyID string) (appconfig.Config, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.GetCalls++
	if f.GetErr != nil {
		return appconfig.Config{}, f.GetErr
	}
	cfg, ok := f.configs[agencyID]
	if !ok {
		return appconfig.Config{}, apperrors.ErrNotFound
	}
	return cfg, nil
}

func (f *FakeAPI) UpdateConfig(ctx context.Context, agencyID string, update appconfig.ConfigUpdate) (appconfig.Config, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.UpdateCalls++
	if f.UpdateErr != nil {
		return appconfig.Config{}, f.UpdateErr
	}

	cfg := f.configs[agencyID]
	cfg.AgencyID = agencyID
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&cfg.WhatsappAccessToken, update.WhatsappAccessToken)
	apply(&cfg.WhatsappPhoneNumberID, update.WhatsappPhoneNumberID)
	apply(&cfg.WhatsappBusinessAccountID, update.WhatsappBusinessAccountID)
	apply(&cfg.WhatsappVerifyToken, update.WhatsappVerifyToken)
	apply(&cfg.GeminiAPIKey, update.GeminiAPIKey)
	apply(&cfg.AISystemPrompt, update.AISystemPrompt)
	apply(&cfg.PrimaryColor, update.PrimaryColor)
	apply(&cfg.SecondaryColor, update.SecondaryColor)
	apply(&cfg.ButtonColor, update.ButtonColor)
	apply(&cfg.TextColor, update.TextColor)
	apply(&cfg.BrandName, update.BrandName)
	apply(&cfg.BrandDescription, update.BrandDescription)
	apply(&cfg.PromotionalLinkMessage, update.PromotionalLinkMessage)

	f.configs[agencyID] = cfg
	return cfg, nil
}

var _ appconfig.ThemeApplier = (*FakeThemeApplier)(nil)

// FakeThemeApplier records every configuration it was asked to apply.
type FakeThemeApplier struct {
	lock    sync.Mutex
	Applied []appconfig.Config
}

func (f *FakeThemeApplier) ApplyTheme(cfg appconfig.Config) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.Applied = append(f.Applied, cfg)
}

func (f *FakeThemeApplier) Count() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.Applied)
}
