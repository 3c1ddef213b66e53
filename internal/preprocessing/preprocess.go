// Package preprocessing turns a validated model into render-ready text: it
// expands entry templates, formats dates per locale, builds the header
// connections, and converts user markdown for the target format.
package preprocessing

import (
	"strings"

	"github.com/jonathan/rendercv/internal/types"
	"github.com/jonathan/rendercv/internal/validation"
)

// Format selects the output flavor of the preprocessed text.
type Format string

const (
	FormatTypst    Format = "typst"
	FormatMarkdown Format = "markdown"
)

// RenderedEntry carries the expanded template strings of one entry.
type RenderedEntry struct {
	Entry                 types.Entry
	MainColumnFirstRow    string
	MainColumnSecondRow   string
	DateAndLocationColumn string
	DegreeColumn          string
}

// RenderedSection is a section with all entries expanded.
type RenderedSection struct {
	Title   string
	Kind    types.EntryKind
	Entries []RenderedEntry
}

// Result is everything the templating layer needs. The input model is not
// mutated; running twice over the same model gives identical results.
type Result struct {
	Model       *types.RootModel
	Format      Format
	Name        string
	Connections []Connection
	Sections    []RenderedSection
	LastUpdated string
	Footer      string
	PDFTitle    string
}

// Run preprocesses a validated model for one output format.
func Run(model *types.RootModel, format Format) (*Result, error) {
	x := &expander{model: model, typst: format == FormatTypst}
	result := &Result{
		Model:       model,
		Format:      format,
		Name:        model.CV.Name,
		Connections: BuildConnections(&model.CV, &model.Locale),
	}
	if x.typst {
		result.Name = EscapeTypst(model.CV.Name)
		for i := range result.Connections {
			result.Connections[i].Placeholder = EscapeTypst(result.Connections[i].Placeholder)
		}
	}

	for _, section := range model.CV.Sections {
		rendered := RenderedSection{Title: section.Title, Kind: section.Kind}
		templates := model.Design.Templates.ForKind(section.Kind)
		withTimeSpan := sectionShowsTimeSpans(section, model.Design.Entries.ShowTimeSpansIn)
		for _, entry := range section.Entries {
			values := x.placeholderValues(entry, withTimeSpan)
			if entry.Kind() == types.KindPublication && values["URL"] == "" &&
				templatesReference(templates, "URL") {
				return nil, &validation.InternalError{
					Message: "the publication entry template needs URL but the entry carries neither url nor doi",
				}
			}
			re := RenderedEntry{
				Entry:                 entry,
				MainColumnFirstRow:    x.finish(x.expand(templates.MainColumnFirstRow, section.Kind, values)),
				MainColumnSecondRow:   x.finish(x.expand(templates.MainColumnSecondRow, section.Kind, values)),
				DateAndLocationColumn: x.finish(x.expand(templates.DateAndLocationColumn, section.Kind, values)),
				DegreeColumn:          x.finish(x.expand(templates.DegreeColumn, section.Kind, values)),
			}
			rendered.Entries = append(rendered.Entries, re)
		}
		result.Sections = append(result.Sections, rendered)
	}

	result.LastUpdated = x.lastUpdatedText()
	result.Footer = x.footerText()
	result.PDFTitle = strings.ReplaceAll(model.Settings.PDFTitle, "NAME", model.CV.Name)
	return result, nil
}

// templatesReference reports whether any template string of the set carries
// the given placeholder token.
func templatesReference(t types.EntryTemplates, token string) bool {
	for _, tmpl := range []string{
		t.MainColumnFirstRow, t.MainColumnSecondRow, t.DateAndLocationColumn, t.DegreeColumn,
	} {
		for _, found := range placeholderTokenPattern.FindAllString(tmpl, -1) {
			if found == token {
				return true
			}
		}
	}
	return false
}

// finish converts the expanded markdown into Typst markup when targeting
// Typst. The markdown target keeps the text as is.
func (x *expander) finish(text string) string {
	if text == "" || !x.typst {
		return text
	}
	return MarkdownToTypst(text)
}

// sectionShowsTimeSpans matches a section against show_time_spans_in, which
// lists lower-snake section keys.
func sectionShowsTimeSpans(section types.Section, showIn []string) bool {
	key := section.Name
	if key == "" {
		key = types.SnakeCaseTitle(section.Title)
	}
	for _, name := range showIn {
		if strings.EqualFold(name, key) || strings.EqualFold(name, section.Title) {
			return true
		}
	}
	return false
}

func (x *expander) lastUpdatedText() string {
	if !x.model.Design.Page.ShowLastUpdatedDate {
		return ""
	}
	locale := &x.model.Locale
	date := expandDateTemplate(locale.DateTemplate, x.model.Settings.ResolvedCurrentDate, locale)
	text := strings.ReplaceAll(locale.LastUpdatedDateTemplate, "CURRENT_DATE", date)
	if x.typst {
		text = EscapeTypst(text)
	}
	return text
}

// footerText renders the page numbering line. For Typst the page counters
// become context expressions evaluated at layout time.
func (x *expander) footerText() string {
	if !x.model.Design.Page.ShowPageNumbering {
		return ""
	}
	text := x.model.Locale.PageNumberingTemplate
	name := x.model.CV.Name
	if x.typst {
		name = EscapeTypst(name)
		text = EscapeTypst(text)
		text = strings.ReplaceAll(text, "PAGE\\_NUMBER", "#context(counter(page).display())")
		text = strings.ReplaceAll(text, "TOTAL\\_PAGES", "#context(counter(page).final().first())")
	} else {
		text = strings.ReplaceAll(text, "PAGE_NUMBER", "1")
		text = strings.ReplaceAll(text, "TOTAL_PAGES", "1")
	}
	return strings.ReplaceAll(text, "NAME", name)
}
