package appconfig

import "context"

// API is the slice of the backend the configuration cache depends on.
type API interface {
	GetConfig(ctx context.Context, agencyID string) (Config, error)
	UpdateConfig(ctx context.Context, agencyID string, update ConfigUpdate) (Config, error)
}

// ThemeApplier receives the configuration whenever it changes so the
// presentation layer can map color fields onto its variables. Empty fields
// must be left unmodified by implementations.
type ThemeApplier interface {
	ApplyTheme(cfg Config)
}

// TokenSource reports whether a bearer token is available.
type TokenSource interface {
	Token() string
}

// ActiveSource reports the currently selected agency. Implemented by the
// agency registry.
type ActiveSource interface {
	ActiveAgencyID() (string, bool)
}
