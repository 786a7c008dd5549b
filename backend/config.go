package backend

import (
	"context"
	"net/http"

	"github.com/agencydesk/go-dealer-admin/appconfig"
)

var _ appconfig.API = (*Client)(nil)

func (c *Client) GetConfig(ctx context.Context, agencyID string) (appconfig.Config, error) {
	var cfg appconfig.Config
	if err := c.do(ctx, http.MethodGet, "/api/config/"+agencyID, nil, nil, &cfg); err != nil {
		return appconfig.Config{}, err
	}
	return cfg, nil
}

// UpdateConfig sends only the set fields; the backend merges and returns
// the complete resulting configuration.
func (c *Client) UpdateConfig(ctx context.Context, agencyID string, update appconfig.ConfigUpdate) (appconfig.Config, error) {
	var cfg appconfig.Config
	if err := c.do(ctx, http.MethodPut, "/api/config/"+agencyID, nil, update, &cfg); err != nil {
		return appconfig.Config{}, err
	}
	return cfg, nil
}
