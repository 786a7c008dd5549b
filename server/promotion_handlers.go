package server

import (
	"net/http"
	"time"

	"github.com/agencydesk/go-dealer-admin/cars"
	"github.com/agencydesk/go-dealer-admin/promotions"
)

const promotionDateFormat = "2006-01-02"

type PromotionsPageData struct {
	HasAgency  bool
	Promotions []promotions.Promotion
	Cars       []cars.Car
}

func (s *Server) PromotionsPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, hasAgency := s.registry.ActiveAgencyID()
		data := PromotionsPageData{
			HasAgency:  hasAgency,
			Promotions: s.views.Promotions.Items(),
			Cars:       s.views.Cars.Items(),
		}
		s.renderPage(w, r, "promotions", "Promotions", "promotions.html", data)
	}
}

func promotionInputFromForm(r *http.Request, agencyID string) (promotions.PromotionInput, error) {
	start, err := time.ParseInLocation(promotionDateFormat, r.FormValue("start_date"), time.Local)
	if err != nil {
		return promotions.PromotionInput{}, err
	}
	end, err := time.ParseInLocation(promotionDateFormat, r.FormValue("end_date"), time.Local)
	if err != nil {
		return promotions.PromotionInput{}, err
	}

	return promotions.PromotionInput{
		AgencyID:    agencyID,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		StartDate:   start,
		EndDate:     end,
		CarIDs:      r.Form["car_ids"],
	}, nil
}

func (s *Server) PromotionCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		agencyID, ok := s.registry.ActiveAgencyID()
		if !ok {
			http.Redirect(w, r, RoutePromotions+"?error=Select+an+agency+first", http.StatusSeeOther)
			return
		}

		input, err := promotionInputFromForm(r, agencyID)
		if err != nil {
			http.Redirect(w, r, RoutePromotions+"?error=Start+and+end+dates+are+required", http.StatusSeeOther)
			return
		}
		if input.Title == "" {
			http.Redirect(w, r, RoutePromotions+"?error=A+title+is+required", http.StatusSeeOther)
			return
		}

		if _, err := s.backend.CreatePromotion(r.Context(), input); err != nil {
			s.redirectError(w, r, RoutePromotions, err)
			return
		}
		s.views.Promotions.Reload(r.Context())
		s.redirectNotice(w, r, RoutePromotions, "Promotion created")
	}
}

func (s *Server) PromotionUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		agencyID, ok := s.registry.ActiveAgencyID()
		if !ok {
			http.Redirect(w, r, RoutePromotions+"?error=Select+an+agency+first", http.StatusSeeOther)
			return
		}

		id := r.PathValue("id")
		input, err := promotionInputFromForm(r, agencyID)
		if err != nil {
			http.Redirect(w, r, RoutePromotions+"?error=Start+and+end+dates+are+required", http.StatusSeeOther)
			return
		}

		if _, err := s.backend.UpdatePromotion(r.Context(), id, input); err != nil {
			s.redirectError(w, r, RoutePromotions, err)
			return
		}
		s.views.Promotions.Reload(r.Context())
		s.redirectNotice(w, r, RoutePromotions, "Promotion updated")
	}
}

func (s *Server) PromotionDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		if err := s.backend.DeletePromotion(r.Context(), id); err != nil {
			s.redirectError(w, r, RoutePromotions, err)
			return
		}
		s.views.Promotions.Reload(r.Context())
		s.redirectNotice(w, r, RoutePromotions, "Promotion deleted")
	}
}
