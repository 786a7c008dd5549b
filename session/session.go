package session

import "time"

// User is the staff profile the backend returns at login. The dashboard
// never stores credentials; it only keeps what the backend hands back.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	AgencyID string `json:"agency_id,omitempty"`
}

// Session pairs the bearer token with the profile it was issued for.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Claims is the unverified view of the bearer token used for display on the
// profile screen. The backend is the only party that validates the token.
type Claims struct {
	Subject   string
	Email     string
	Role      string
	ExpiresAt time.Time
}
