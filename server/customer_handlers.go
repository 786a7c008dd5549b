package server

import (
	"net/http"

	"github.com/agencydesk/go-dealer-admin/customers"
)

type CustomersPageData struct {
	HasAgency bool
	Customers []customers.Customer
}

func (s *Server) CustomersPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, hasAgency := s.registry.ActiveAgencyID()
		data := CustomersPageData{
			HasAgency: hasAgency,
			Customers: s.views.Customers.Items(),
		}
		s.renderPage(w, r, "customers", "Customers", "customers.html", data)
	}
}

func customerInputFromForm(r *http.Request, agencyID string) customers.CustomerInput {
	source := customers.Source(r.FormValue("source"))
	if source == "" {
		source = customers.SourceOrganic
	}
	return customers.CustomerInput{
		AgencyID: agencyID,
		Name:     r.FormValue("name"),
		Phone:    r.FormValue("phone"),
		Email:    r.FormValue("email"),
		Source:   source,
	}
}

func (s *Server) CustomerCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		agencyID, ok := s.registry.ActiveAgencyID()
		if !ok {
			http.Redirect(w, r, RouteCustomers+"?error=Select+an+agency+first", http.StatusSeeOther)
			return
		}

		input := customerInputFromForm(r, agencyID)
		if input.Name == "" || input.Phone == "" {
			http.Redirect(w, r, RouteCustomers+"?error=Name+and+phone+are+required", http.StatusSeeOther)
			return
		}

		if _, err := s.backend.CreateCustomer(r.Context(), input); err != nil {
			s.redirectError(w, r, RouteCustomers, err)
			return
		}
		s.views.Customers.Reload(r.Context())
		s.redirectNotice(w, r, RouteCustomers, "Customer created")
	}
}

func (s *Server) CustomerUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		agencyID, ok := s.registry.ActiveAgencyID()
		if !ok {
			http.Redirect(w, r, RouteCustomers+"?error=Select+an+agency+first", http.StatusSeeOther)
			return
		}

		id := r.PathValue("id")
		input := customerInputFromForm(r, agencyID)

		if _, err := s.backend.UpdateCustomer(r.Context(), id, input); err != nil {
			s.redirectError(w, r, RouteCustomers, err)
			return
		}
		s.views.Customers.Reload(r.Context())
		s.redirectNotice(w, r, RouteCustomers, "Customer updated")
	}
}

func (s *Server) CustomerDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		if err := s.backend.DeleteCustomer(r.Context(), id); err != nil {
			s.redirectError(w, r, RouteCustomers, err)
			return
		}
		s.views.Customers.Reload(r.Context())
		s.redirectNotice(w, r, RouteCustomers, "Customer deleted")
	}
}
