package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/agencydesk/go-dealer-admin/appointments"
)

var _ appointments.API = (*Client)(nil)

func (c *Client) ListAppointments(ctx context.Context, agencyID string) ([]appointments.Appointment, error) {
	query := url.Values{"agency_id": {agencyID}}
	var list []appointments.Appointment
	if err := c.do(ctx, http.MethodGet, "/api/appointments/", query, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateAppointment(ctx context.Context, input appointments.AppointmentInput) (appointments.Appointment, error) {
	var appointment appointments.Appointment
	if err := c.do(ctx, http.MethodPost, "/api/appointments/", nil, input, &appointment); err != nil {
		return appointments.Appointment{}, err
	}
	return appointment, nil
}

func (c *Client) SetAppointmentStatus(ctx context.Context, id string, status appointments.Status) (appointments.Appointment, error) {
	query := url.Values{"status": {string(status)}}
	var appointment appointments.Appointment
	if err := c.do(ctx, http.MethodPatch, "/api/appointments/"+id+"/status", query, nil, &appointment); err != nil {
		return appointments.Appointment{}, err
	}
	return appointment, nil
}
