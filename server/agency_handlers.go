package server

import (
	"net/http"

	"github.com/agencydesk/go-dealer-admin/agencies"
)

type AgenciesPageData struct {
	Agencies []agencies.Agency
	ActiveID string
}

func (s *Server) AgenciesPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := AgenciesPageData{Agencies: s.registry.Agencies()}
		if id, ok := s.registry.ActiveAgencyID(); ok {
			data.ActiveID = id
		}
		s.renderPage(w, r, "agencies", "Agencies", "agencies.html", data)
	}
}

func agencyInputFromForm(r *http.Request) agencies.AgencyInput {
	return agencies.AgencyInput{
		Name:          r.FormValue("name"),
		Address:       r.FormValue("address"),
		Phone:         r.FormValue("phone"),
		GoogleMapsURL: r.FormValue("google_maps_url"),
		BusinessHours: r.FormValue("business_hours"),
		WhatsappPhone: r.FormValue("whatsapp_phone"),
	}
}

func (s *Server) AgencyCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		input := agencyInputFromForm(r)
		if input.Name == "" {
			http.Redirect(w, r, RouteAgencies+"?error=Agency+name+is+required", http.StatusSeeOther)
			return
		}

		if err := s.registry.Create(r.Context(), input); err != nil {
			s.redirectError(w, r, RouteAgencies, err)
			return
		}
		s.redirectNotice(w, r, RouteAgencies, "Agency created")
	}
}

// AgencySelectHandler switches the active agency. Every agency-scoped
// screen refreshes through the registry subscription; no handler reloads
// anything here.
func (s *Server) AgencySelectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var selected *agencies.Agency
		for _, a := range s.registry.Agencies() {
			if a.ID == id {
				match := a
				selected = &match
				break
			}
		}
		if selected == nil {
			http.Redirect(w, r, RouteAgencies+"?error=Agency+not+found", http.StatusSeeOther)
			return
		}

		s.registry.Select(*selected)
		s.redirectNotice(w, r, RouteAgencies, "Switched to "+selected.Name)
	}
}

func (s *Server) AgencyUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		id := r.PathValue("id")
		input := agencyInputFromForm(r)
		if input.Name == "" {
			http.Redirect(w, r, RouteAgencies+"?error=Agency+name+is+required", http.StatusSeeOther)
			return
		}

		if err := s.registry.Update(r.Context(), id, input); err != nil {
			s.redirectError(w, r, RouteAgencies, err)
			return
		}
		s.redirectNotice(w, r, RouteAgencies, "Agency updated")
	}
}

func (s *Server) AgencyDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		if err := s.registry.Delete(r.Context(), id); err != nil {
			s.redirectError(w, r, RouteAgencies, err)
			return
		}
		s.redirectNotice(w, r, RouteAgencies, "Agency deleted")
	}
}
