package pages

import (
	"github.com/stelofinance/connect/web/components"
	"github.com/stelofinance/connect/web/layouts"
	"github.com/stelofinance/connect/web/theme"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type HomeProps struct {
	Layout layouts.LayoutProps
	Theme  theme.Theme
}

func Home(p HomeProps) Node {
	if p.Layout.Title == "" {
		p.Layout.Title = "Connect an account"
	}

	return layouts.Default(p.Layout,
		Main(
			components.ThemedConnectAccount(p.Theme, components.ConnectAccountProps{}),
		),
	)
}
