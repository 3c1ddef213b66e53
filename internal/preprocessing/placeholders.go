package preprocessing

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/rendercv/internal/types"
)

// fields whose values are never escaped for Typst, either because they are
// machine-formatted already or because escaping would break the link markup.
var rawFields = map[string]bool{
	"start_date": true,
	"end_date":   true,
	"date":       true,
	"doi":        true,
	"url":        true,
}

type expander struct {
	model *types.RootModel
	typst bool
}

// placeholderValues builds the UPPER_CASE placeholder table for one entry.
func (x *expander) placeholderValues(entry types.Entry, withTimeSpan bool) map[string]string {
	locale := &x.model.Locale
	current := x.model.Settings.ResolvedCurrentDate
	values := map[string]string{}

	for field, raw := range entry.FieldMap() {
		var text string
		switch v := raw.(type) {
		case string:
			text = v
		case []string:
			switch field {
			case "highlights":
				text = highlightsBlock(v, x.prepare)
			case "authors":
				prepared := make([]string, len(v))
				for i, author := range v {
					prepared[i] = x.prepare(author)
				}
				text = strings.Join(prepared, ", ")
			default:
				text = strings.Join(v, ", ")
			}
			values[strings.ToUpper(field)] = text
			continue
		default:
			text = fmt.Sprint(raw)
		}

		switch field {
		case "date":
			text = FormatSingleDate(text, locale, current)
		case "start_date", "end_date":
			text = FormatSingleDate(text, locale, current)
		case "url":
			text = fmt.Sprintf("[%s](%s)", types.CleanURL(text), text)
		case "doi":
			text = fmt.Sprintf("[%s](https://doi.org/%s)", text, text)
		case "summary":
			text = x.summaryBlock(text)
		default:
			text = x.prepare(text)
		}
		values[strings.ToUpper(field)] = text
	}

	if c := complexFieldsOf(entry); c != nil {
		values["DATE"] = FormatDateRange(c, locale, current, withTimeSpan)
	}
	if pub, ok := entry.(*types.PublicationEntry); ok && pub.DOI != "" {
		values["URL"] = fmt.Sprintf("[%s](%s)", pub.DOI, pub.DOIURL())
	}
	return values
}

// summaryBlock wraps a summary in the per-format callout: a #summary call for
// Typst, a blockquote for Markdown. The themes define the summary function.
func (x *expander) summaryBlock(text string) string {
	text = x.prepare(text)
	if text == "" {
		return ""
	}
	if x.typst {
		return "#summary[" + text + "]"
	}
	return "> " + text
}

// prepare runs the user-text pipeline on one value: bold keywords first, then
// Typst escaping when targeting Typst. Markdown conversion runs on the whole
// expanded string afterwards.
func (x *expander) prepare(text string) string {
	text = MakeKeywordsBold(text, x.model.Settings.BoldKeywords)
	if x.typst {
		text = EscapeTypst(text)
	}
	return text
}

// highlightsBlock renders highlights as a bullet list. An inline " - "
// inside a highlight starts an indented sub-bullet.
func highlightsBlock(highlights []string, prepare func(string) string) string {
	lines := make([]string, 0, len(highlights))
	for _, h := range highlights {
		lines = append(lines, "- "+strings.ReplaceAll(prepare(h), " - ", "\n  - "))
	}
	return strings.Join(lines, "\n")
}

func complexFieldsOf(entry types.Entry) *types.ComplexFields {
	switch e := entry.(type) {
	case *types.EducationEntry:
		return &e.ComplexFields
	case *types.ExperienceEntry:
		return &e.ComplexFields
	case *types.NormalEntry:
		return &e.ComplexFields
	}
	return nil
}

// placeholderUniverse lists every token a template for this entry kind may
// reference, so elision never touches all-caps words in user text.
func placeholderUniverse(kind types.EntryKind, values map[string]string) map[string]bool {
	universe := map[string]bool{"DATE": true}
	for field := range types.KnownFields(kind) {
		universe[strings.ToUpper(field)] = true
	}
	for token := range values {
		universe[token] = true
	}
	return universe
}

// expand substitutes placeholders into a template, elides the ones that have
// no value, and tidies the leftovers. The elision pass runs on the template
// before substitution so all-caps user text is never mistaken for a token.
func (x *expander) expand(template string, kind types.EntryKind, values map[string]string) string {
	if template == "" {
		return ""
	}
	template = elideUnusedPlaceholders(template, placeholderUniverse(kind, values), values)

	tokens := make([]string, 0, len(values))
	for token := range values {
		tokens = append(tokens, token)
	}
	// Longest token first so DATE never clips START_DATE.
	sort.Slice(tokens, func(i, j int) bool { return len(tokens[i]) > len(tokens[j]) })

	out := template
	for _, token := range tokens {
		if values[token] != "" {
			out = strings.ReplaceAll(out, token, values[token])
		}
	}
	return tidyExpansion(out)
}

var placeholderTokenPattern = regexp.MustCompile(`[A-Z][A-Z_]{2,}`)

// elideUnusedPlaceholders removes valueless placeholder tokens together with
// the non-space text glued to them, so "URL (JOURNAL)" with no journal drops
// "(JOURNAL)" entirely.
func elideUnusedPlaceholders(text string, universe map[string]bool, values map[string]string) string {
	tokens := placeholderTokenPattern.FindAllString(text, -1)
	// Longest token first so eliding DATE does not clip START_DATE.
	sort.Slice(tokens, func(i, j int) bool { return len(tokens[i]) > len(tokens[j]) })
	for _, token := range tokens {
		if !universe[token] || values[token] != "" {
			continue
		}
		pattern := regexp.MustCompile(`\S*` + regexp.QuoteMeta(token) + `\S*`)
		text = pattern.ReplaceAllString(text, "")
	}
	return text
}

// characters that may legitimately end a line after elision.
const lineEndKeep = ".!?[]()*_%"

func tidyExpansion(text string) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		line = strings.TrimRightFunc(line, func(r rune) bool {
			if r == ' ' || r == '\t' {
				return true
			}
			if strings.ContainsRune(lineEndKeep, r) {
				return false
			}
			return strings.ContainsRune(",;:–-", r)
		})
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
