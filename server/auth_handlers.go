package server

import (
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName string
	Error   string
	Notice  string
	Email   string // Preserve email on error
}

// LoginPageHandler displays the login page (GET /login)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	loginTmpl, err := ParseTemplate("login.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse login template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := LoginPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error"),
			Notice:  r.URL.Query().Get("notice"),
			Email:   r.URL.Query().Get("email"),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := loginTmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render login template")
			http.Error(w, "Failed to render login page", http.StatusInternalServerError)
		}
	}
}

// LoginSubmitHandler processes the login form submission
func (s *Server) LoginSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")
		if email == "" || password == "" {
			http.Redirect(w, r, RouteLogin+"?error=Email+and+password+are+required", http.StatusSeeOther)
			return
		}

		if err := s.sessions.Login(r.Context(), email, password); err != nil {
			http.Redirect(w, r,
				RouteLogin+"?error="+url.QueryEscape(err.Error())+"&email="+url.QueryEscape(email),
				http.StatusSeeOther)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    s.webSessions.Create(),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		if err := s.registry.Refresh(r.Context()); err != nil {
			s.log.Err(err).Msg("agency refresh after login failed")
		}
		http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
	}
}

// LogoutHandler ends the browser session and drops the bearer token.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			s.webSessions.Delete(cookie.Value)
		}
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		s.sessions.Logout()
		http.Redirect(w, r, RouteLogin+"?notice=Signed+out", http.StatusSeeOther)
	}
}

func (s *Server) ForgotPasswordPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("forgot_password.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse forgot password template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := LoginPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error"),
			Notice:  r.URL.Query().Get("notice"),
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render forgot password template")
			http.Error(w, "Failed to render page", http.StatusInternalServerError)
		}
	}
}

func (s *Server) ForgotPasswordSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		email := r.FormValue("email")
		if email == "" {
			http.Redirect(w, r, RouteForgotPassword+"?error=Email+is+required", http.StatusSeeOther)
			return
		}

		if err := s.sessions.RequestPasswordReset(r.Context(), email); err != nil {
			s.redirectError(w, r, RouteForgotPassword, err)
			return
		}
		s.redirectNotice(w, r, RouteForgotPassword, "If the account exists, a reset email has been sent")
	}
}

// ResetPasswordPageData carries the reset token through the form.
type ResetPasswordPageData struct {
	AppName string
	Token   string
	Error   string
}

func (s *Server) ResetPasswordPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("reset_password.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse reset password template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := ResetPasswordPageData{
			AppName: s.config.GetAppName(),
			Token:   r.URL.Query().Get("token"),
			Error:   r.URL.Query().Get("error"),
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render reset password template")
			http.Error(w, "Failed to render page", http.StatusInternalServerError)
		}
	}
}

func (s *Server) ResetPasswordSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		token := r.FormValue("token")
		newPassword := r.FormValue("new_password")
		confirm := r.FormValue("confirm_password")
		resetRoute := RouteResetPassword + "?token=" + url.QueryEscape(token)

		if token == "" || newPassword == "" {
			http.Redirect(w, r, resetRoute+"&error=Token+and+new+password+are+required", http.StatusSeeOther)
			return
		}
		if newPassword != confirm {
			http.Redirect(w, r, resetRoute+"&error=Passwords+do+not+match", http.StatusSeeOther)
			return
		}

		if err := s.sessions.ResetPassword(r.Context(), token, newPassword); err != nil {
			http.Redirect(w, r, resetRoute+"&error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, RouteLogin+"?notice=Password+updated%2C+please+sign+in", http.StatusSeeOther)
	}
}
