package cars

import (
	"context"
	"time"
)

// Car is one vehicle in an agency's inventory.
type Car struct {
	ID          string    `json:"id"`
	AgencyID    string    `json:"agency_id"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	Price       float64   `json:"price,omitempty"`
	Description string    `json:"description,omitempty"`
	IsAvailable bool      `json:"is_available"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// CarInput carries the writable fields for create and update calls.
type CarInput struct {
	AgencyID    string  `json:"agency_id"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	Price       float64 `json:"price,omitempty"`
	Description string  `json:"description,omitempty"`
	IsAvailable bool    `json:"is_available"`
}

type API interface {
	ListCars(ctx context.Context, agencyID string) ([]Car, error)
	CreateCar(ctx context.Context, input CarInput) (Car, error)
	UpdateCar(ctx context.Context, id string, input CarInput) (Car, error)
	DeleteCar(ctx context.Context, id string) error
	SetCarAvailability(ctx context.Context, id string, available bool) (Car, error)
}
