package theme

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
)

// DefaultBg is used when a theme has no background color set. It matches the
// page body background so an unset theme renders flush with the layout.
const DefaultBg = "#171717"

var ErrInvalidColor = errors.New("theme: invalid color")

type Theme struct {
	Bg string // Background color, any CSS color value
}

// Style is the result of computing a theme. CSS holds a single rule scoped
// to ClassName.
type Style struct {
	ClassName string
	CSS       string
}

// Compute returns the style for t. Equal themes always produce the same
// class name. A Bg that fails Validate is treated as unset, so the rule never
// carries anything but a single declaration.
func Compute(t Theme) Style {
	bg := t.Bg
	if bg == "" || Validate(t) != nil {
		bg = DefaultBg
	}

	decl := "background-color:" + bg + ";"
	sum := sha256.Sum256([]byte(decl))
	className := fmt.Sprintf("sc-%x", sum[:5])

	return Style{
		ClassName: className,
		CSS:       "." + className + "{" + decl + "}",
	}
}

// Validate checks that the background color can be placed in a CSS
// declaration without escaping it. An empty Bg is valid.
func Validate(t Theme) error {
	i := strings.IndexFunc(t.Bg, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		case strings.ContainsRune("#(),.%-/ ", r):
			return false
		}
		return true
	})
	if i >= 0 {
		return fmt.Errorf("%w: %q has disallowed character at %d", ErrInvalidColor, t.Bg, i)
	}
	return nil
}
