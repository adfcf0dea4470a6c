package components

import (
	"strings"

	"github.com/stelofinance/connect/web/theme"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	ConnectAccountHref    = "/auth/gumroad"
	ConnectAccountLabel   = "Connect a Gumroad account"
	ConnectAccountHeading = "here"
)

type ConnectAccountProps struct {
	// Class is applied verbatim to the container. A nil Class omits the
	// attribute entirely, while an empty string renders class="".
	Class *string
}

// ConnectAccount renders the link a user follows to connect their Gumroad
// account.
func ConnectAccount(p ConnectAccountProps) Node {
	return Div(
		Iff(p.Class != nil, func() Node { return Class(*p.Class) }),
		H2(Text(ConnectAccountHeading)),
		A(Href(ConnectAccountHref), Text(ConnectAccountLabel)),
	)
}

// ThemedConnectAccount renders ConnectAccount with the theme's background
// applied. The generated class comes before any class the caller passes.
// An unset or invalid t.Bg renders with theme.DefaultBg.
func ThemedConnectAccount(t theme.Theme, p ConnectAccountProps) Node {
	style := theme.Compute(t)

	class := style.ClassName
	if p.Class != nil {
		class = MergeClasses(style.ClassName, *p.Class)
	}

	return Group([]Node{
		StyleEl(Text(style.CSS)),
		ConnectAccount(ConnectAccountProps{Class: &class}),
	})
}

// MergeClasses joins the non-empty class tokens with a single space.
func MergeClasses(classes ...string) string {
	var b strings.Builder
	for _, c := range classes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c)
	}
	return b.String()
}
