package pages_test

import (
	"strings"
	"testing"

	"github.com/stelofinance/connect/web/layouts"
	"github.com/stelofinance/connect/web/pages"
	"github.com/stelofinance/connect/web/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderHome(t *testing.T, p pages.HomeProps) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, pages.Home(p).Render(&b))
	return b.String()
}

func TestHome(t *testing.T) {
	t.Parallel()

	t.Run("contains themed connect link", func(t *testing.T) {
		t.Parallel()
		th := theme.Theme{Bg: "#111"}
		out := renderHome(t, pages.HomeProps{Theme: th})

		assert.True(t, strings.HasPrefix(strings.ToLower(out), "<!doctype html>"))
		assert.Contains(t, out, "<title>Connect an account</title>")
		assert.Contains(t, out, theme.Compute(th).CSS)
		assert.Contains(t, out, `<div class="`+theme.Compute(th).ClassName+`">`)
		assert.Contains(t, out, `<a href="/auth/gumroad">Connect a Gumroad account</a>`)
	})

	t.Run("layout head", func(t *testing.T) {
		t.Parallel()
		out := renderHome(t, pages.HomeProps{Layout: layouts.LayoutProps{
			Title:       "Custom",
			FaviconHref: "/assets/favicon.abc.svg",
			BaseCSS:     "body{margin:0}",
		}})

		assert.Contains(t, out, "<title>Custom</title>")
		assert.Contains(t, out, `<link rel="icon" href="/assets/favicon.abc.svg">`)
		assert.Contains(t, out, "<style>body{margin:0}</style>")
		assert.NotContains(t, out, "datastar")
	})

	t.Run("live reload hook", func(t *testing.T) {
		t.Parallel()
		out := renderHome(t, pages.HomeProps{Layout: layouts.LayoutProps{LiveReload: true}})

		assert.Contains(t, out, "datastar.js")
		assert.Contains(t, out, `data-on-load="@get(&#39;/hotreload&#39;)"`)
	})
}
