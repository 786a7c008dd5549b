package agencies

import "time"

// Agency is one dealership account, the unit of data isolation for nearly
// every other entity. IsActive means "enabled for use", not "currently
// selected". Selection is a purely client-side concept owned by Registry.
type Agency struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	GoogleMapsURL string    `json:"google_maps_url,omitempty"`
	BusinessHours string    `json:"business_hours"`
	WhatsappPhone string    `json:"whatsapp_phone,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
}

// AgencyInput carries the writable fields for create and update calls.
type AgencyInput struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	GoogleMapsURL string `json:"google_maps_url,omitempty"`
	BusinessHours string `json:"business_hours"`
	WhatsappPhone string `json:"whatsapp_phone,omitempty"`
}
