package agencies

import "context"

// API is the slice of the backend the registry depends on.
type API interface {
	ListAgencies(ctx context.Context) ([]Agency, error)
	CreateAgency(ctx context.Context, input AgencyInput) (Agency, error)
	UpdateAgency(ctx context.Context, id string, input AgencyInput) (Agency, error)
	DeleteAgency(ctx context.Context, id string) error
}

// SelectionStore persists the active agency id across restarts. The
// persisted selection outlives the login session on purpose.
type SelectionStore interface {
	ActiveAgencyID() (string, bool)
	SaveActiveAgencyID(id string) error
	ClearActiveAgencyID() error
}

// TokenSource reports whether a bearer token is available. Implemented by
// the session store.
type TokenSource interface {
	Token() string
}
