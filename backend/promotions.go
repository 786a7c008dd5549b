package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/agencydesk/go-dealer-admin/promotions"
)

var _ promotions.API = (*Client)(nil)

func (c *Client) ListPromotions(ctx context.Context, agencyID string) ([]promotions.Promotion, error) {
	query := url.Values{"agency_id": {agencyID}}
	var list []promotions.Promotion
	if err := c.do(ctx, http.MethodGet, "/api/promotions/", query, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreatePromotion(ctx context.Context, input promotions.PromotionInput) (promotions.Promotion, error) {
	var promotion promotions.Promotion
	if err := c.do(ctx, http.MethodPost, "/api/promotions/", nil, input, &promotion); err != nil {
		return promotions.Promotion{}, err
	}
	return promotion, nil
}

func (c *Client) UpdatePromotion(ctx context.Context, id string, input promotions.PromotionInput) (promotions.Promotion, error) {
	var promotion promotions.Promotion
	if err := c.do(ctx, http.MethodPut, "/api/promotions/"+id, nil, input, &promotion); err != nil {
		return promotions.Promotion{}, err
	}
	return promotion, nil
}

func (c *Client) DeletePromotion(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/promotions/"+id, nil, nil, nil)
}
