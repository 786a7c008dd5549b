package server

import (
	"net/http"
	"time"

	"github.com/agencydesk/go-dealer-admin/appointments"
	"github.com/agencydesk/go-dealer-admin/cars"
	"github.com/agencydesk/go-dealer-admin/customers"
)

// datetime-local inputs submit without a zone; appointments are interpreted
// in the server's local time.
const appointmentDateFormat = "2006-01-02T15:04"

type AppointmentsPageData struct {
	HasAgency    bool
	Appointments []appointments.Appointment
	Customers    []customers.Customer
	Cars         []cars.Car
	Statuses     []appointments.Status
}

func (s *Server) AppointmentsPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, hasAgency := s.registry.ActiveAgencyID()
		data := AppointmentsPageData{
			HasAgency:    hasAgency,
			Appointments: s.views.Appointments.Items(),
			Customers:    s.views.Customers.Items(),
			Cars:         s.views.Cars.Items(),
			Statuses: []appointments.Status{
				appointments.StatusPending,
				appointments.StatusConfirmed,
				appointments.StatusCancelled,
				appointments.StatusCompleted,
			},
		}
		s.renderPage(w, r, "appointments", "Appointments", "appointments.html", data)
	}
}

func (s *Server) AppointmentCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		agencyID, ok := s.registry.ActiveAgencyID()
		if !ok {
			http.Redirect(w, r, RouteAppointments+"?error=Select+an+agency+first", http.StatusSeeOther)
			return
		}

		customerID := r.FormValue("customer_id")
		if customerID == "" {
			http.Redirect(w, r, RouteAppointments+"?error=A+customer+is+required", http.StatusSeeOther)
			return
		}
		date, err := time.ParseInLocation(appointmentDateFormat, r.FormValue("appointment_date"), time.Local)
		if err != nil {
			http.Redirect(w, r, RouteAppointments+"?error=Invalid+appointment+date", http.StatusSeeOther)
			return
		}

		input := appointments.AppointmentInput{
			AgencyID:        agencyID,
			CustomerID:      customerID,
			CarID:           r.FormValue("car_id"),
			AppointmentDate: date,
			Notes:           r.FormValue("notes"),
		}

		if _, err := s.backend.CreateAppointment(r.Context(), input); err != nil {
			s.redirectError(w, r, RouteAppointments, err)
			return
		}
		s.views.Appointments.Reload(r.Context())
		s.redirectNotice(w, r, RouteAppointments, "Appointment created")
	}
}

func (s *Server) AppointmentStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		id := r.PathValue("id")
		status := appointments.Status(r.FormValue("status"))
		if status == "" {
			http.Redirect(w, r, RouteAppointments+"?error=A+status+is+required", http.StatusSeeOther)
			return
		}

		if _, err := s.backend.SetAppointmentStatus(r.Context(), id, status); err != nil {
			s.redirectError(w, r, RouteAppointments, err)
			return
		}
		s.views.Appointments.Reload(r.Context())
		s.redirectNotice(w, r, RouteAppointments, "Status updated")
	}
}
