package promotions

import (
	"context"
	"time"
)

// Promotion is a time-boxed campaign for one agency, optionally backed by a
// promotional file and a set of featured cars.
type Promotion struct {
	ID          string    `json:"id"`
	AgencyID    string    `json:"agency_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsActive    bool      `json:"is_active"`
	FileID      string    `json:"file_id,omitempty"`
	CarIDs      []string  `json:"car_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

type PromotionInput struct {
	AgencyID    string    `json:"agency_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CarIDs      []string  `json:"car_ids,omitempty"`
}

type API interface {
	ListPromotions(ctx context.Context, agencyID string) ([]Promotion, error)
	CreatePromotion(ctx context.Context, input PromotionInput) (Promotion, error)
	UpdatePromotion(ctx context.Context, id string, input PromotionInput) (Promotion, error)
	DeletePromotion(ctx context.Context, id string) error
}
