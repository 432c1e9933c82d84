package circuit

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/gatexray/pkg/errors"
)

// DefaultFill is used for catalog entries that do not name a fill.
const DefaultFill = "#e5e7eb"

const (
	textDark  = "#1f2937"
	textLight = "#ffffff"

	// lightnessThreshold is the Lab L* above which dark text is used.
	lightnessThreshold = 0.6
)

// ParseColor parses a hex ("#rgb", "#rrggbb") or named CSS color.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor, "color cannot be empty")
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex color %q", s)
		}
		return c, nil
	}

	tc := tcell.GetColor(s)
	if tc == tcell.ColorDefault || !tc.Valid() {
		return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor, "unknown color name %q", s)
	}
	c, err := colorful.Hex(fmt.Sprintf("#%06x", tc.Hex()))
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "color %q", s)
	}
	return c, nil
}

// NormalizeColor resolves s to lowercase "#rrggbb".
func NormalizeColor(s string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	return c.Clamped().Hex(), nil
}

// ContrastText returns a text color readable on top of fill.
// Unparseable fills get dark text.
func ContrastText(fill string) string {
	c, err := ParseColor(fill)
	if err != nil {
		return textDark
	}
	if l, _, _ := c.Lab(); l > lightnessThreshold {
		return textDark
	}
	return textLight
}

// Blend mixes two colors in RGB space, t in [0,1]. Inputs that fail to
// parse leave a unchanged.
func Blend(a, b string, t float64) string {
	ca, err := ParseColor(a)
	if err != nil {
		return a
	}
	cb, err := ParseColor(b)
	if err != nil {
		return ca.Hex()
	}
	return ca.BlendRgb(cb, t).Clamped().Hex()
}
