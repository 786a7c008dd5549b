package backend

import (
	"context"
	"net/http"

	"github.com/agencydesk/go-dealer-admin/agencies"
)

var _ agencies.API = (*Client)(nil)

func (c *Client) ListAgencies(ctx context.Context) ([]agencies.Agency, error) {
	var list []agencies.Agency
	if err := c.do(ctx, http.MethodGet, "/api/agencies/", nil, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateAgency(ctx context.Context, input agencies.AgencyInput) (agencies.Agency, error) {
	var agency agencies.Agency
	if err := c.do(ctx, http.MethodPost, "/api/agencies/", nil, input, &agency); err != nil {
		return agencies.Agency{}, err
	}
	return agency, nil
}

func (c *Client) UpdateAgency(ctx context.Context, id string, input agencies.AgencyInput) (agencies.Agency, error) {
	var agency agencies.Agency
	if err := c.do(ctx, http.MethodPut, "/api/agencies/"+id, nil, input, &agency); err != nil {
		return agencies.Agency{}, err
	}
	return agency, nil
}

func (c *Client) DeleteAgency(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/agencies/"+id, nil, nil, nil)
}
