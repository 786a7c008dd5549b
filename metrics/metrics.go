package metrics

import "context"

// ConsultedCar is one row of the dashboard's most-consulted-cars ranking.
type ConsultedCar struct {
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Year          int    `json:"year"`
	Consultations int    `json:"consultations"`
}

// Metrics is the per-agency dashboard summary.
type Metrics struct {
	AppointmentsToday    int            `json:"appointments_today"`
	TotalLeads           int            `json:"total_leads"`
	MetaAdsLeads         int            `json:"meta_ads_leads"`
	TotalConversations   int            `json:"total_conversations"`
	TopConsultedCars     []ConsultedCar `json:"top_consulted_cars,omitempty"`
	LeadsBySource        map[string]int `json:"leads_by_source,omitempty"`
	AppointmentsByStatus map[string]int `json:"appointments_by_status,omitempty"`
}

type API interface {
	DashboardMetrics(ctx context.Context, agencyID string) (Metrics, error)
}
