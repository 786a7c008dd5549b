package backend

import (
	"context"
	"net/http"

	"github.com/agencydesk/go-dealer-admin/metrics"
)

var _ metrics.API = (*Client)(nil)

func (c *Client) DashboardMetrics(ctx context.Context, agencyID string) (metrics.Metrics, error) {
	var m metrics.Metrics
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/metrics/"+agencyID, nil, nil, &m); err != nil {
		return metrics.Metrics{}, err
	}
	return m, nil
}
