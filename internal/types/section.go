package types

import "strings"

// Section is a titled homogeneous list of entries. Name is the raw source
// key, Title its display form.
type Section struct {
	Name    string
	Title   string
	Kind    EntryKind
	Entries []Entry
}

// lowercaseConnectors are kept lower case when snake_case titles are
// capitalized into Title Case.
var lowercaseConnectors = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "nor": true,
	"but": true, "of": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "with": true, "as": true, "by": true,
}

// TitleCase converts a snake_case section key into a display title,
// preserving connector words and words the user already capitalized.
func TitleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		lower := strings.ToLower(w)
		if i > 0 && lowercaseConnectors[lower] && w == lower {
			words[i] = lower
			continue
		}
		if w == lower {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// SnakeCaseTitle converts a display title back to the lower_snake form used
// by design options such as show_time_spans_in.
func SnakeCaseTitle(title string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "_"))
}
