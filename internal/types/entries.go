package types

import (
	"fmt"
	"time"
)

// EntryKind identifies one of the nine entry models.
type EntryKind string

const (
	KindText             EntryKind = "TextEntry"
	KindBullet           EntryKind = "BulletEntry"
	KindNumbered         EntryKind = "NumberedEntry"
	KindReversedNumbered EntryKind = "ReversedNumberedEntry"
	KindOneLine          EntryKind = "OneLineEntry"
	KindEducation        EntryKind = "EducationEntry"
	KindExperience       EntryKind = "ExperienceEntry"
	KindNormal           EntryKind = "NormalEntry"
	KindPublication      EntryKind = "PublicationEntry"
)

// FieldIssue is a validation failure raised by a model method. The field path
// is relative to the model that raised it.
type FieldIssue struct {
	Field   string
	Message string
	Input   any
}

// Entry is one item inside a section.
type Entry interface {
	Kind() EntryKind
	EntryTags() []string
	// FieldMap returns the entry's non-empty fields keyed by their snake_case
	// names, including unknown extra fields. Used for placeholder expansion.
	FieldMap() map[string]any
}

// ComplexFields are the date/location/summary/highlights fields shared by
// education, experience, and normal entries.
type ComplexFields struct {
	StartDate  string   `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate    string   `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	Date       string   `yaml:"date,omitempty" json:"date,omitempty"`
	Location   string   `yaml:"location,omitempty" json:"location,omitempty"`
	Summary    string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Highlights []string `yaml:"highlights,omitempty" json:"highlights,omitempty"`
}

// Normalize applies the date invariants: date alone wins over the pair, a
// lone start_date gets end_date "present", and once normalized a real pair
// must be ordered. The range check runs after normalization, always.
func (c *ComplexFields) Normalize(current time.Time) []FieldIssue {
	var issues []FieldIssue

	if c.Date != "" {
		c.StartDate = ""
		c.EndDate = ""
		return issues
	}

	if c.EndDate != "" && c.StartDate == "" {
		issues = append(issues, FieldIssue{
			Field:   "start_date",
			Message: "start_date is required when end_date is given",
			Input:   c.EndDate,
		})
		return issues
	}
	if c.StartDate == "" {
		return issues
	}

	if !IsExactDate(c.StartDate) {
		issues = append(issues, FieldIssue{
			Field:   "start_date",
			Message: "This is not a valid date! Please use either YYYY-MM-DD, YYYY-MM, or YYYY format.",
			Input:   c.StartDate,
		})
		return issues
	}
	if c.EndDate == "" {
		c.EndDate = Present
	}
	if c.EndDate != Present && !IsExactDate(c.EndDate) {
		issues = append(issues, FieldIssue{
			Field:   "end_date",
			Message: "This is not a valid end date! Please use either YYYY-MM-DD, YYYY-MM, or YYYY format, or \"present\".",
			Input:   c.EndDate,
		})
		return issues
	}

	start, err := GetDateObject(c.StartDate, current)
	if err != nil {
		issues = append(issues, FieldIssue{Field: "start_date", Message: err.Error(), Input: c.StartDate})
		return issues
	}
	end, err := GetDateObject(c.EndDate, current)
	if err != nil {
		issues = append(issues, FieldIssue{Field: "end_date", Message: err.Error(), Input: c.EndDate})
		return issues
	}
	if c.EndDate != Present && start.After(end) {
		issues = append(issues, FieldIssue{
			Field:   "start_date",
			Message: "start_date must be before end_date",
			Input:   c.StartDate,
		})
	}
	return issues
}

func (c *ComplexFields) fillFieldMap(m map[string]any) {
	if c.StartDate != "" {
		m["start_date"] = c.StartDate
	}
	if c.EndDate != "" {
		m["end_date"] = c.EndDate
	}
	if c.Date != "" {
		m["date"] = c.Date
	}
	if c.Location != "" {
		m["location"] = c.Location
	}
	if c.Summary != "" {
		m["summary"] = c.Summary
	}
	if len(c.Highlights) > 0 {
		m["highlights"] = c.Highlights
	}
}

// TextEntry is a free-form paragraph, optionally tagged.
type TextEntry struct {
	Content string         `yaml:"content" json:"content"`
	Tags    []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Extra   map[string]any `yaml:"-" json:"-"`
}

func (e *TextEntry) Kind() EntryKind     { return KindText }
func (e *TextEntry) EntryTags() []string { return e.Tags }
func (e *TextEntry) FieldMap() map[string]any {
	m := map[string]any{"content": e.Content}
	mergeExtra(m, e.Extra)
	return m
}

// BulletEntry renders as a single bullet point.
type BulletEntry struct {
	Bullet string         `yaml:"bullet" json:"bullet"`
	Tags   []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Extra  map[string]any `yaml:"-" json:"-"`
}

func (e *BulletEntry) Kind() EntryKind     { return KindBullet }
func (e *BulletEntry) EntryTags() []string { return e.Tags }
func (e *BulletEntry) FieldMap() map[string]any {
	m := map[string]any{"bullet": e.Bullet}
	mergeExtra(m, e.Extra)
	return m
}

// NumberedEntry renders inside an incrementing numbered list.
type NumberedEntry struct {
	Number string         `yaml:"number" json:"number"`
	Tags   []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Extra  map[string]any `yaml:"-" json:"-"`
}

func (e *NumberedEntry) Kind() EntryKind     { return KindNumbered }
func (e *NumberedEntry) EntryTags() []string { return e.Tags }
func (e *NumberedEntry) FieldMap() map[string]any {
	m := map[string]any{"number": e.Number}
	mergeExtra(m, e.Extra)
	return m
}

// ReversedNumberedEntry renders inside a decrementing numbered list.
type ReversedNumberedEntry struct {
	ReversedNumber string         `yaml:"reversed_number" json:"reversed_number"`
	Tags           []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Extra          map[string]any `yaml:"-" json:"-"`
}

func (e *ReversedNumberedEntry) Kind() EntryKind     { return KindReversedNumbered }
func (e *ReversedNumberedEntry) EntryTags() []string { return e.Tags }
func (e *ReversedNumberedEntry) FieldMap() map[string]any {
	m := map[string]any{"reversed_number": e.ReversedNumber}
	mergeExtra(m, e.Extra)
	return m
}

// OneLineEntry is a "Label: details" line.
type OneLineEntry struct {
	Label   string         `yaml:"label" json:"label"`
	Details string         `yaml:"details" json:"details"`
	Tags    []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Extra   map[string]any `yaml:"-" json:"-"`
}

func (e *OneLineEntry) Kind() EntryKind     { return KindOneLine }
func (e *OneLineEntry) EntryTags() []string { return e.Tags }
func (e *OneLineEntry) FieldMap() map[string]any {
	m := map[string]any{"label": e.Label, "details": e.Details}
	mergeExtra(m, e.Extra)
	return m
}

// EducationEntry describes a degree at an institution.
type EducationEntry struct {
	Institution   string `yaml:"institution" json:"institution"`
	Area          string `yaml:"area" json:"area"`
	Degree        string `yaml:"degree,omitempty" json:"degree,omitempty"`
	Grade         string `yaml:"grade,omitempty" json:"grade,omitempty"`
	ComplexFields `yaml:",inline"`
	Tags          []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Extra         map[string]any `yaml:"-" json:"-"`
}

func (e *EducationEntry) Kind() EntryKind     { return KindEducation }
func (e *EducationEntry) EntryTags() []string { return e.Tags }
func (e *EducationEntry) FieldMap() map[string]any {
	m := map[string]any{"institution": e.Institution, "area": e.Area}
	if e.Degree != "" {
		m["degree"] = e.Degree
	}
	if e.Grade != "" {
		m["grade"] = e.Grade
	}
	e.fillFieldMap(m)
	mergeExtra(m, e.Extra)
	return m
}

// ExperienceEntry describes a position at a company.
type ExperienceEntry struct {
	Company       string `yaml:"company" json:"company"`
	Position      string `yaml:"position" json:"position"`
	ComplexFields `yaml:",inline"`
	Tags          []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Extra         map[string]any `yaml:"-" json:"-"`
}

func (e *ExperienceEntry) Kind() EntryKind     { return KindExperience }
func (e *ExperienceEntry) EntryTags() []string { return e.Tags }
func (e *ExperienceEntry) FieldMap() map[string]any {
	m := map[string]any{"company": e.Company, "position": e.Position}
	e.fillFieldMap(m)
	mergeExtra(m, e.Extra)
	return m
}

// NormalEntry is a named item with the usual complex fields, used for
// projects, awards, and similar sections.
type NormalEntry struct {
	Name          string `yaml:"name" json:"name"`
	ComplexFields `yaml:",inline"`
	Tags          []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Extra         map[string]any `yaml:"-" json:"-"`
}

func (e *NormalEntry) Kind() EntryKind     { return KindNormal }
func (e *NormalEntry) EntryTags() []string { return e.Tags }
func (e *NormalEntry) FieldMap() map[string]any {
	m := map[string]any{"name": e.Name}
	e.fillFieldMap(m)
	mergeExtra(m, e.Extra)
	return m
}

// PublicationEntry describes a paper. Authors may use **name** emphasis.
type PublicationEntry struct {
	Title   string         `yaml:"title" json:"title"`
	Authors []string       `yaml:"authors" json:"authors"`
	DOI     string         `yaml:"doi,omitempty" json:"doi,omitempty"`
	URL     string         `yaml:"url,omitempty" json:"url,omitempty"`
	Journal string         `yaml:"journal,omitempty" json:"journal,omitempty"`
	Date    string         `yaml:"date,omitempty" json:"date,omitempty"`
	Tags    []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Extra   map[string]any `yaml:"-" json:"-"`
}

func (e *PublicationEntry) Kind() EntryKind     { return KindPublication }
func (e *PublicationEntry) EntryTags() []string { return e.Tags }

// DOIURL returns the resolver link for the entry's DOI.
func (e *PublicationEntry) DOIURL() string {
	if e.DOI == "" {
		return ""
	}
	return "https://doi.org/" + e.DOI
}

// Normalize applies the DOI invariant: a DOI clears any explicit URL and the
// derived resolver link must parse as an absolute URL.
func (e *PublicationEntry) Normalize() []FieldIssue {
	var issues []FieldIssue
	if e.DOI != "" {
		e.URL = ""
		if err := ValidateURL(e.DOIURL()); err != nil {
			issues = append(issues, FieldIssue{
				Field:   "doi",
				Message: fmt.Sprintf("%q is not a valid DOI", e.DOI),
				Input:   e.DOI,
			})
		}
	}
	if e.URL != "" {
		if err := ValidateURL(e.URL); err != nil {
			issues = append(issues, FieldIssue{Field: "url", Message: err.Error(), Input: e.URL})
		}
	}
	return issues
}

func (e *PublicationEntry) FieldMap() map[string]any {
	m := map[string]any{"title": e.Title, "authors": e.Authors}
	if e.DOI != "" {
		m["doi"] = e.DOI
	}
	if e.URL != "" {
		m["url"] = e.URL
	}
	if e.Journal != "" {
		m["journal"] = e.Journal
	}
	if e.Date != "" {
		m["date"] = e.Date
	}
	mergeExtra(m, e.Extra)
	return m
}

func mergeExtra(m map[string]any, extra map[string]any) {
	for k, v := range extra {
		if _, taken := m[k]; !taken {
			m[k] = v
		}
	}
}
