package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/agencydesk/go-dealer-admin/customers"
)

var _ customers.API = (*Client)(nil)

func (c *Client) ListCustomers(ctx context.Context, agencyID string) ([]customers.Customer, error) {
	query := url.Values{"agency_id": {agencyID}}
	var list []customers.Customer
	if err := c.do(ctx, http.MethodGet, "/api/customers/", query, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateCustomer(ctx context.Context, input customers.CustomerInput) (customers.Customer, error) {
	var customer customers.Customer
	if err := c.do(ctx, http.MethodPost, "/api/customers/", nil, input, &customer); err != nil {
		return customers.Customer{}, err
	}
	return customer, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, input customers.CustomerInput) (customers.Customer, error) {
	var customer customers.Customer
	if err := c.do(ctx, http.MethodPut, "/api/customers/"+id, nil, input, &customer); err != nil {
		return customers.Customer{}, err
	}
	return customer, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/customers/"+id, nil, nil, nil)
}
