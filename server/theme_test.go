package server_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agencydesk/go-dealer-admin/appconfig"
	"github.com/agencydesk/go-dealer-admin/server"
)

func TestTheme_ApplyTheme(t *testing.T) {
	theme := server.NewTheme()
	require.Empty(t, string(theme.CSSVars()))

	theme.ApplyTheme(appconfig.Config{
		PrimaryColor: "#112233",
		ButtonColor:  "#445566",
	})

	css := string(theme.CSSVars())
	require.Contains(t, css, "--primary:#112233;")
	require.Contains(t, css, "--button:#445566;")
	require.NotContains(t, css, "--secondary")

	// Empty fields never unset a previously applied color.
	theme.ApplyTheme(appconfig.Config{SecondaryColor: "#778899"})

	css = string(theme.CSSVars())
	require.Contains(t, css, "--primary:#112233;")
	require.Contains(t, css, "--secondary:#778899;")
}

func TestTheme_Overwrite(t *testing.T) {
	theme := server.NewTheme()
	theme.ApplyTheme(appconfig.Config{PrimaryColor: "#111111"})
	theme.ApplyTheme(appconfig.Config{PrimaryColor: "#222222"})

	require.Contains(t, string(theme.CSSVars()), "--primary:#222222;")
}
