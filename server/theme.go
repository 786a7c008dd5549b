package server

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"sync"

	"github.com/agencydesk/go-dealer-admin/appconfig"
)

var _ appconfig.ThemeApplier = (*Theme)(nil)

// Theme maps configuration color fields onto the CSS variables the layout
// injects. Empty fields are left unmodified, so a color that was set once
// can only be replaced by an explicit overwrite, never unset by omission.
type Theme struct {
	lock sync.RWMutex
	vars map[string]string
}

func NewTheme() *Theme {
	return &Theme{vars: make(map[string]string)}
}

func (t *Theme) ApplyTheme(cfg appconfig.Config) {
	t.lock.Lock()
	defer t.lock.Unlock()
	set := func(name, value string) {
		if value != "" {
			t.vars[name] = value
		}
	}
	set("--primary", cfg.PrimaryColor)
	set("--secondary", cfg.SecondaryColor)
	set("--button", cfg.ButtonColor)
	set("--foreground", cfg.TextColor)
}

// CSSVars renders the current overrides as a :root block for the layout.
func (t *Theme) CSSVars() template.CSS {
	t.lock.RLock()
	defer t.lock.RUnlock()
	if len(t.vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(t.vars))
	for name := range t.vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(":root{")
	for _, name := range names {
		fmt.Fprintf(&b, "%s:%s;", name, t.vars[name])
	}
	b.WriteString("}")
	return template.CSS(b.String())
}
