package server

import (
	"net/http"

	"github.com/agencydesk/go-dealer-admin/session"
)

type ProfilePageData struct {
	User session.User
}

func (s *Server) ProfilePageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := s.sessions.CurrentUser()
		s.renderPage(w, r, "profile", "Profile", "profile.html", ProfilePageData{User: user})
	}
}

func (s *Server) ProfileUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		name := r.FormValue("name")
		email := r.FormValue("email")
		if name == "" || email == "" {
			http.Redirect(w, r, RouteProfile+"?error=Name+and+email+are+required", http.StatusSeeOther)
			return
		}

		if err := s.sessions.UpdateProfile(r.Context(), name, email); err != nil {
			s.redirectError(w, r, RouteProfile, err)
			return
		}
		s.redirectNotice(w, r, RouteProfile, "Profile updated")
	}
}

func (s *Server) ProfilePasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		current := r.FormValue("current_password")
		newPassword := r.FormValue("new_password")
		confirm := r.FormValue("confirm_password")

		if current == "" || newPassword == "" {
			http.Redirect(w, r, RouteProfile+"?error=Current+and+new+passwords+are+required", http.StatusSeeOther)
			return
		}
		if newPassword != confirm {
			http.Redirect(w, r, RouteProfile+"?error=New+passwords+do+not+match", http.StatusSeeOther)
			return
		}

		if err := s.sessions.ChangePassword(r.Context(), current, newPassword); err != nil {
			s.redirectError(w, r, RouteProfile, err)
			return
		}
		s.redirectNotice(w, r, RouteProfile, "Password changed")
	}
}
