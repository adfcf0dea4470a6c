package layouts

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0-beta.11/bundles/datastar.js"

type LayoutProps struct {
	Title       string
	Description string
	FaviconHref string
	BaseCSS     string // Inlined into the head
	LiveReload  bool   // Reconnects to /hotreload and reloads once the server restarts
}

func Default(p LayoutProps, children ...Node) Node {
	return HTML5(HTML5Props{
		Title:       p.Title,
		Description: p.Description,
		Language:    "en",
		Head: []Node{
			Iff(p.FaviconHref != "", func() Node { return Link(Rel("icon"), Href(p.FaviconHref)) }),
			// Inline the base styles, there's only one page
			Iff(p.BaseCSS != "", func() Node { return StyleEl(Raw(p.BaseCSS)) }),
			If(p.LiveReload, Script(Type("module"), Src(datastarScript))),
		},
		Body: []Node{
			If(p.LiveReload, Data("on-load", "@get('/hotreload')")),
			Group(children),
		},
	})
}
