package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/agencydesk/go-dealer-admin/cars"
)

var _ cars.API = (*Client)(nil)

func (c *Client) ListCars(ctx context.Context, agencyID string) ([]cars.Car, error) {
	query := url.Values{"agency_id": {agencyID}}
	var list []cars.Car
	if err := c.do(ctx, http.MethodGet, "/api/cars/", query, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateCar(ctx context.Context, input cars.CarInput) (cars.Car, error) {
	var car cars.Car
	if err := c.do(ctx, http.MethodPost, "/api/cars/", nil, input, &car); err != nil {
		return cars.Car{}, err
	}
	return car, nil
}

func (c *Client) UpdateCar(ctx context.Context, id string, input cars.CarInput) (cars.Car, error) {
	var car cars.Car
	if err := c.do(ctx, http.MethodPut, "/api/cars/"+id, nil, input, &car); err != nil {
		return cars.Car{}, err
	}
	return car, nil
}

func (c *Client) DeleteCar(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/cars/"+id, nil, nil, nil)
}

func (c *Client) SetCarAvailability(ctx context.Context, id string, available bool) (cars.Car, error) {
	query := url.Values{"is_available": {strconv.FormatBool(available)}}
	var car cars.Car
	if err := c.do(ctx, http.MethodPatch, "/api/cars/"+id+"/availability", query, nil, &car); err != nil {
		return cars.Car{}, err
	}
	return car, nil
}
