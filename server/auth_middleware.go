package server

import "net/http"

// RequireSessionAuth validates the browser session cookie and the presence
// of a bearer token; either missing redirects to the login page. Expired
// backend tokens are not detected here; the first failed backend request
// downstream surfaces those.
func (s *Server) RequireSessionAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil || !s.webSessions.Valid(cookie.Value) {
				http.Redirect(w, r, RouteLogin+"?error=Session+expired", http.StatusSeeOther)
				return
			}
			if !s.sessions.Authenticated() {
				http.Redirect(w, r, RouteLogin+"?error=Please+sign+in", http.StatusSeeOther)
				return
			}
			next(w, r)
		}
	}
}
