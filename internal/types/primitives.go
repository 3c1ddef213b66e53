package types

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	dimensionPattern = regexp.MustCompile(`^-?\d+(\.\d+)?(cm|mm|in|pt|em|ex|%)$`)
	hexColorPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbColorPattern  = regexp.MustCompile(`^rgb\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*\)$`)
	hslColorPattern  = regexp.MustCompile(`^hsl\(\s*\d{1,3}\s*,\s*\d{1,3}%\s*,\s*\d{1,3}%\s*\)$`)
)

// namedColors is the set of CSS color keywords accepted in design options.
var namedColors = map[string]bool{
	"black": true, "silver": true, "gray": true, "grey": true, "white": true,
	"maroon": true, "red": true, "purple": true, "fuchsia": true, "green": true,
	"lime": true, "olive": true, "yellow": true, "navy": true, "blue": true,
	"teal": true, "aqua": true, "orange": true, "brown": true, "pink": true,
	"violet": true, "gold": true, "beige": true, "indigo": true, "crimson": true,
}

// ValidateDimension checks a typographic length like "0.5cm" or "12pt".
func ValidateDimension(s string) error {
	if !dimensionPattern.MatchString(s) {
		return fmt.Errorf("%q is not a valid dimension, use a number followed by cm, mm, in, pt, em, ex, or %%", s)
	}
	return nil
}

// ValidateColor checks a CSS color keyword, hex form, rgb(), or hsl().
func ValidateColor(s string) error {
	lower := strings.ToLower(strings.TrimSpace(s))
	if namedColors[lower] || hexColorPattern.MatchString(s) ||
		rgbColorPattern.MatchString(lower) || hslColorPattern.MatchString(lower) {
		return nil
	}
	return fmt.Errorf("%q is not a valid color, use a color name, #RRGGBB, rgb(r,g,b), or hsl(h,s%%,l%%)", s)
}

// ValidateURL checks that s is an absolute http(s) URL.
func ValidateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("%q is not a valid URL", s)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https, got %q", s)
	}
	if u.Host == "" {
		return fmt.Errorf("%q is not a valid URL", s)
	}
	return nil
}

// CleanURL strips the scheme, a leading www., and a trailing slash for
// display purposes.
func CleanURL(s string) string {
	out := strings.TrimPrefix(s, "https://")
	out = strings.TrimPrefix(out, "http://")
	out = strings.TrimPrefix(out, "www.")
	return strings.TrimSuffix(out, "/")
}
