package server

import (
	"net/http"
	"strconv"

	"github.com/agencydesk/go-dealer-admin/cars"
)

type CarsPageData struct {
	HasAgency bool
	Cars      []cars.Car
}

func (s *Server) CarsPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, hasAgency := s.registry.ActiveAgencyID()
		data := CarsPageData{
			HasAgency: hasAgency,
			Cars:      s.views.Cars.Items(),
		}
		s.renderPage(w, r, "cars", "Cars", "cars.html", data)
	}
}

// carInputFromForm builds the car payload for the given agency. Year must
// parse; price is optional and defaults to zero.
func carInputFromForm(r *http.Request, agencyID string) (cars.CarInput, error) {
	year, err := strconv.Atoi(r.FormValue("year"))
	if err != nil {
		return cars.CarInput{}, err
	}

	input := cars.CarInput{
		AgencyID:    agencyID,
		Brand:       r.FormValue("brand"),
		Model:       r.FormValue("model"),
		Year:        year,
		Description: r.FormValue("description"),
		IsAvailable: r.FormValue("is_available") != "",
	}
	if price := r.FormValue("price"); price != "" {
		parsed, err := strconv.ParseFloat(price, 64)
		if err != nil {
			return cars.CarInput{}, err
		}
		input.Price = parsed
	}
	return input, nil
}

func (s *Server) CarCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		agencyID, ok := s.registry.ActiveAgencyID()
		if !ok {
			http.Redirect(w, r, RouteCars+"?error=Select+an+agency+first", http.StatusSeeOther)
			return
		}

		input, err := carInputFromForm(r, agencyID)
		if err != nil {
			http.Redirect(w, r, RouteCars+"?error=Year+and+price+must+be+numbers", http.StatusSeeOther)
			return
		}
		if input.Brand == "" || input.Model == "" {
			http.Redirect(w, r, RouteCars+"?error=Brand+and+model+are+required", http.StatusSeeOther)
			return
		}

		if _, err := s.backend.CreateCar(r.Context(), input); err != nil {
			s.redirectError(w, r, RouteCars, err)
			return
		}
		s.views.Cars.Reload(r.Context())
		s.redirectNotice(w, r, RouteCars, "Car created")
	}
}

func (s *Server) CarUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		agencyID, ok := s.registry.ActiveAgencyID()
		if !ok {
			http.Redirect(w, r, RouteCars+"?error=Select+an+agency+first", http.StatusSeeOther)
			return
		}

		id := r.PathValue("id")
		input, err := carInputFromForm(r, agencyID)
		if err != nil {
			http.Redirect(w, r, RouteCars+"?error=Year+and+price+must+be+numbers", http.StatusSeeOther)
			return
		}

		if _, err := s.backend.UpdateCar(r.Context(), id, input); err != nil {
			s.redirectError(w, r, RouteCars, err)
			return
		}
		s.views.Cars.Reload(r.Context())
		s.redirectNotice(w, r, RouteCars, "Car updated")
	}
}

func (s *Server) CarDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		if err := s.backend.DeleteCar(r.Context(), id); err != nil {
			s.redirectError(w, r, RouteCars, err)
			return
		}
		s.views.Cars.Reload(r.Context())
		s.redirectNotice(w, r, RouteCars, "Car deleted")
	}
}

// CarAvailabilityHandler toggles the available flag without a full edit.
func (s *Server) CarAvailabilityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		id := r.PathValue("id")
		available := r.FormValue("available") == "true"

		if _, err := s.backend.SetCarAvailability(r.Context(), id, available); err != nil {
			s.redirectError(w, r, RouteCars, err)
			return
		}
		s.views.Cars.Reload(r.Context())
		s.redirectNotice(w, r, RouteCars, "Availability updated")
	}
}
