package server

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/agencydesk/go-dealer-admin/agencies"
)

const contentTypeHTML = "text/html; charset=utf-8"

// pageData is what the workspace layout template receives. Content is the
// already rendered page body.
type pageData struct {
	AppName    string
	PageTitle  string
	ActivePage string
	UserName   string
	Agencies   []agencies.Agency
	Active     agencies.Agency
	HasActive  bool
	BrandName  string
	ThemeCSS   template.CSS
	DarkMode   bool
	Error      string
	Notice     string
	Content    template.HTML
}

// renderPage renders a content template inside the workspace layout. The
// agency switcher, brand name and theme overrides come from the shared
// state, so every page reflects the current selection without handler code.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, activePage, pageTitle, contentTemplate string, content any) {
	contentTmpl, err := ParseTemplate(contentTemplate)
	if err != nil {
		log.Err(err).Str("template", contentTemplate).Msg("failed to load content template")
		http.Error(w, "Failed to load content template", http.StatusInternalServerError)
		return
	}

	var contentBuf strings.Builder
	if err := contentTmpl.Execute(&contentBuf, content); err != nil {
		log.Err(err).Str("template", contentTemplate).Msg("failed to render content template")
		http.Error(w, "Failed to render content", http.StatusInternalServerError)
		return
	}

	layoutTmpl, err := ParseTemplate("layout.html")
	if err != nil {
		log.Err(err).Msg("failed to load layout template")
		http.Error(w, "Failed to load layout template", http.StatusInternalServerError)
		return
	}

	data := pageData{
		AppName:    s.config.GetAppName(),
		PageTitle:  pageTitle,
		ActivePage: activePage,
		Agencies:   s.registry.Agencies(),
		ThemeCSS:   s.theme.CSSVars(),
		Error:      r.URL.Query().Get("error"),
		Notice:     r.URL.Query().Get("notice"),
		Content:    template.HTML(contentBuf.String()),
	}
	if user, ok := s.sessions.CurrentUser(); ok {
		data.UserName = user.Name
	}
	if active, ok := s.registry.Active(); ok {
		data.Active = active
		data.HasActive = true
	}
	if cfg, ok := s.appConfig.Current(); ok {
		data.BrandName = cfg.BrandName
	}
	if s.prefs != nil {
		if pref, ok := s.prefs.ThemePreference(); ok {
			data.DarkMode = pref == "dark"
		}
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	_ = layoutTmpl.Execute(w, data)
}

func (s *Server) redirectError(w http.ResponseWriter, r *http.Request, route string, err error) {
	http.Redirect(w, r, route+"?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
}

func (s *Server) redirectNotice(w http.ResponseWriter, r *http.Request, route, notice string) {
	http.Redirect(w, r, route+"?notice="+url.QueryEscape(notice), http.StatusSeeOther)
}
