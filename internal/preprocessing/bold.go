package preprocessing

import (
	"regexp"
	"strings"
)

// MakeKeywordsBold wraps whole-word, case-insensitive matches of each
// keyword in markdown bold markers. Matches already inside bold markers are
// left alone.
func MakeKeywordsBold(text string, keywords []string) string {
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
		matches := pattern.FindAllStringIndex(text, -1)
		if matches == nil {
			continue
		}
		var out strings.Builder
		last := 0
		for _, m := range matches {
			start, end := m[0], m[1]
			out.WriteString(text[last:start])
			if strings.HasSuffix(text[:start], "**") && strings.HasPrefix(text[end:], "**") {
				out.WriteString(text[start:end])
			} else {
				out.WriteString("**")
				out.WriteString(text[start:end])
				out.WriteString("**")
			}
			last = end
		}
		out.WriteString(text[last:])
		text = out.String()
	}
	return text
}
