package server

import (
	"net/http"

	"github.com/agencydesk/go-dealer-admin/appconfig"
	apperrors "github.com/agencydesk/go-dealer-admin/internal/errors"
	"github.com/agencydesk/go-dealer-admin/internal/utils"
)

type SettingsPageData struct {
	HasAgency bool
	HasConfig bool
	Config    appconfig.Config
}

func (s *Server) SettingsPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, hasAgency := s.registry.ActiveAgencyID()
		data := SettingsPageData{HasAgency: hasAgency}
		if cfg, ok := s.appConfig.Current(); ok {
			data.HasConfig = true
			data.Config = cfg
		}
		s.renderPage(w, r, "settings", "Settings", "settings.html", data)
	}
}

// SettingsUpdateHandler sends only the fields the form changed. Unchanged
// fields stay out of the payload so the backend merge cannot clobber values
// edited elsewhere.
func (s *Server) SettingsUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		current, _ := s.appConfig.Current()
		changed := func(name, currentValue string) *string {
			if !r.Form.Has(name) {
				return nil
			}
			value := r.FormValue(name)
			if value == currentValue {
				return nil
			}
			return utils.Ptr(value)
		}

		update := appconfig.ConfigUpdate{
			WhatsappAccessToken:       changed("whatsapp_access_token", current.WhatsappAccessToken),
			WhatsappPhoneNumberID:     changed("whatsapp_phone_number_id", current.WhatsappPhoneNumberID),
			WhatsappBusinessAccountID: changed("whatsapp_business_account_id", current.WhatsappBusinessAccountID),
			WhatsappVerifyToken:       changed("whatsapp_verify_token", current.WhatsappVerifyToken),
			GeminiAPIKey:              changed("gemini_api_key", current.GeminiAPIKey),
			AISystemPrompt:            changed("ai_system_prompt", current.AISystemPrompt),
			PrimaryColor:              changed("primary_color", current.PrimaryColor),
			SecondaryColor:            changed("secondary_color", current.SecondaryColor),
			ButtonColor:               changed("button_color", current.ButtonColor),
			TextColor:                 changed("text_color", current.TextColor),
			BrandName:                 changed("brand_name", current.BrandName),
			BrandDescription:          changed("brand_description", current.BrandDescription),
			PromotionalLinkMessage:    changed("promotional_link_message", current.PromotionalLinkMessage),
		}
		if update.Empty() {
			s.redirectNotice(w, r, RouteSettings, "No changes to save")
			return
		}

		if _, err := s.appConfig.Update(r.Context(), update); err != nil {
			if apperrors.Is(err, apperrors.ErrNoActiveAgency) {
				http.Redirect(w, r, RouteSettings+"?error=Select+an+agency+first", http.StatusSeeOther)
				return
			}
			s.redirectError(w, r, RouteSettings, err)
			return
		}
		s.redirectNotice(w, r, RouteSettings, "Settings saved")
	}
}

// WhatsAppGuideHandler serves the static WhatsApp Cloud API setup guide
// linked from the settings screen.
func (s *Server) WhatsAppGuideHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, r, "settings", "WhatsApp Setup Guide", "whatsapp_guide.html", nil)
	}
}

// ThemeToggleHandler flips the persisted light/dark preference and returns
// to the page the toggle was pressed on.
func (s *Server) ThemeToggleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.prefs != nil {
			next := "dark"
			if pref, ok := s.prefs.ThemePreference(); ok && pref == "dark" {
				next = "light"
			}
			if err := s.prefs.SaveThemePreference(next); err != nil {
				s.log.Err(err).Msg("failed to persist theme preference")
			}
		}

		back := r.Referer()
		if back == "" {
			back = RouteDashboard
		}
		http.Redirect(w, r, back, http.StatusSeeOther)
	}
}
