package appointments

import (
	"context"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Appointment is a scheduled visit for one agency, optionally tied to a car.
type Appointment struct {
	ID              string    `json:"id"`
	AgencyID        string    `json:"agency_id"`
	CustomerID      string    `json:"customer_id"`
	CarID           string    `json:"car_id,omitempty"`
	AppointmentDate time.Time `json:"appointment_date"`
	Status          Status    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
}

type AppointmentInput struct {
	AgencyID        string    `json:"agency_id"`
	CustomerID      string    `json:"customer_id"`
	CarID           string    `json:"car_id,omitempty"`
	AppointmentDate time.Time `json:"appointment_date"`
	Notes           string    `json:"notes,omitempty"`
}

type API interface {
	ListAppointments(ctx context.Context, agencyID string) ([]Appointment, error)
	CreateAppointment(ctx context.Context, input AppointmentInput) (Appointment, error)
	SetAppointmentStatus(ctx context.Context, id string, status Status) (Appointment, error)
}
