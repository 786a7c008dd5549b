package appconfig

import "time"

// Config is the per-agency branding and integration configuration. One
// configuration exists per agency; the backend owns the merge semantics and
// always returns the complete object.
type Config struct {
	ID       string `json:"id,omitempty"`
	AgencyID string `json:"agency_id,omitempty"`

	WhatsappAccessToken       string `json:"whatsapp_access_token,omitempty"`
	WhatsappPhoneNumberID     string `json:"whatsapp_phone_number_id,omitempty"`
	WhatsappBusinessAccountID string `json:"whatsapp_business_account_id,omitempty"`
	WhatsappVerifyToken       string `json:"whatsapp_verify_token,omitempty"`

	GeminiAPIKey   string `json:"gemini_api_key,omitempty"`
	AISystemPrompt string `json:"ai_system_prompt,omitempty"`

	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	ButtonColor    string `json:"button_color,omitempty"`
	TextColor      string `json:"text_color,omitempty"`

	BrandName              string `json:"brand_name,omitempty"`
	BrandDescription       string `json:"brand_description,omitempty"`
	PromotionalLinkMessage string `json:"promotional_link_message,omitempty"`

	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// ConfigUpdate carries a partial update. Only set (non-nil) fields are sent;
// the backend merges and returns the full resulting Config.
type ConfigUpdate struct {
	WhatsappAccessToken       *string `json:"whatsapp_access_token,omitempty"`
	WhatsappPhoneNumberID     *string `json:"whatsapp_phone_number_id,omitempty"`
	WhatsappBusinessAccountID *string `json:"whatsapp_business_account_id,omitempty"`
	WhatsappVerifyToken       *string `json:"whatsapp_verify_token,omitempty"`

	GeminiAPIKey   *string `json:"gemini_api_key,omitempty"`
	AISystemPrompt *string `json:"ai_system_prompt,omitempty"`

	PrimaryColor   *string `json:"primary_color,omitempty"`
	SecondaryColor *string `json:"secondary_color,omitempty"`
	ButtonColor    *string `json:"button_color,omitempty"`
	TextColor      *string `json:"text_color,omitempty"`

	BrandName              *string `json:"brand_name,omitempty"`
	BrandDescription       *string `json:"brand_description,omitempty"`
	PromotionalLinkMessage *string `json:"promotional_link_message,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u ConfigUpdate) Empty() bool {
	return u == ConfigUpdate{}
}
