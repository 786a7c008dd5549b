package server

import (
	"net/http"

	"github.com/agencydesk/go-dealer-admin/metrics"
)

type DashboardPageData struct {
	HasAgency  bool
	HasMetrics bool
	Metrics    metrics.Metrics
	LoadError  string
}

// DashboardHandler renders the per-agency metrics summary. Metrics are
// fetched live rather than cached; a failed fetch shows the page with an
// inline error instead of blanking it.
func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := DashboardPageData{}

		if agencyID, ok := s.registry.ActiveAgencyID(); ok {
			data.HasAgency = true
			m, err := s.backend.DashboardMetrics(r.Context(), agencyID)
			if err != nil {
				s.log.Err(err).Str("agency_id", agencyID).Msg("failed to fetch dashboard metrics")
				data.LoadError = err.Error()
			} else {
				data.HasMetrics = true
				data.Metrics = m
			}
		}

		s.renderPage(w, r, "dashboard", "Dashboard", "dashboard.html", data)
	}
}
