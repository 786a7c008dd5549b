package customers

import (
	"context"
	"time"
)

// Source is where a lead came from.
type Source string

const (
	SourceOrganic      Source = "organic"
	SourceMetaAds      Source = "meta_ads"
	SourceWhatsappLink Source = "whatsapp_link"
)

// Customer is a lead belonging to one agency.
type Customer struct {
	ID        string    `json:"id"`
	AgencyID  string    `json:"agency_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Source    Source    `json:"source"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type CustomerInput struct {
	AgencyID string `json:"agency_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Source   Source `json:"source,omitempty"`
}

type API interface {
	ListCustomers(ctx context.Context, agencyID string) ([]Customer, error)
	CreateCustomer(ctx context.Context, input CustomerInput) (Customer, error)
	UpdateCustomer(ctx context.Context, id string, input CustomerInput) (Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}
