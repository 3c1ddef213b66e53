package validation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/rendercv/internal/composing"
	"github.com/jonathan/rendercv/internal/types"
)

// Context carries the validation-time environment.
type Context struct {
	InputFilePath string
	WorkDir       string
	Now           time.Time
}

type builder struct {
	composed *composing.Composed
	ctx      Context
	records  []ValidationRecord
}

// record appends a translated validation record for a dotted path. When
// missingField is set the coordinates point at the parent object.
func (b *builder) record(path, message string, input any, missingField bool) {
	rec := ValidationRecord{
		SchemaLocation: cleanPath(strings.Split(path, ".")),
		Message:        curateMessage(path, message),
		Input:          shortenInput(input),
	}
	lookupPath := path
	if missingField {
		if i := strings.LastIndexByte(path, '.'); i >= 0 {
			lookupPath = path[:i]
		} else {
			lookupPath = ""
		}
	}
	doc := b.composed.SourceFor(path)
	for lookupPath != "" {
		if span, ok := doc.Span(lookupPath); ok {
			rec.YamlLocation = &span
			rec.YamlSource = doc.Source
			break
		}
		if i := strings.LastIndexByte(lookupPath, '.'); i >= 0 {
			lookupPath = lookupPath[:i]
		} else {
			lookupPath = ""
		}
	}
	if rec.YamlLocation == nil {
		if span, ok := doc.Span(""); ok {
			rec.YamlLocation = &span
			rec.YamlSource = doc.Source
		}
	}
	b.records = append(b.records, rec)
}

func (b *builder) addIssues(prefix string, issues []types.FieldIssue) {
	for _, issue := range issues {
		b.record(prefix+"."+issue.Field, issue.Message, issue.Input, false)
	}
}

// decodeStrict runs a value through YAML to decode it into a typed struct.
func decodeStrict(value any, out any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func (b *builder) decode() *types.RootModel {
	data := b.composed.Main.Data
	model := &types.RootModel{InputFilePath: b.ctx.InputFilePath}

	model.Settings = b.decodeSettings(data["settings"])
	model.Locale = b.decodeLocale(data["locale"])
	model.Design = b.decodeDesign(data["design"])
	model.CV = b.decodeCV(data["cv"])
	model.Versions = b.decodeVersions(data["versions"])
	return model
}

func (b *builder) decodeSettings(value any) types.Settings {
	settings := types.DefaultSettings(b.ctx.Now)
	if value == nil {
		return settings
	}
	m, ok := value.(map[string]any)
	if !ok {
		b.record("settings", "settings must be a mapping", value, false)
		return settings
	}
	decoded := types.Settings{}
	if err := decodeStrict(m, &decoded); err != nil {
		b.record("settings", err.Error(), value, false)
		return settings
	}
	issues := decoded.Normalize(b.ctx.Now)
	b.addIssues("settings", issues)
	return decoded
}

func (b *builder) decodeLocale(value any) types.Locale {
	locale := types.DefaultLocale()
	if value == nil {
		return locale
	}
	m, ok := value.(map[string]any)
	if !ok {
		b.record("locale", "locale must be a mapping", value, false)
		return locale
	}
	language := "english"
	if l, ok := m["language"].(string); ok && l != "" {
		language = l
	}
	base, err := types.LocaleForLanguage(language)
	if err != nil {
		b.record("locale.language", err.Error(), language, false)
		base = types.DefaultLocale()
	}
	merged, err := types.MergeLocaleOverrides(base, m)
	if err != nil {
		b.record("locale", err.Error(), nil, false)
		return base
	}
	if n := len(merged.AbbreviationsForMonths); n != 12 {
		b.record("locale.abbreviations_for_months",
			fmt.Sprintf("abbreviations_for_months must have 12 elements, got %d", n), nil, false)
	}
	if n := len(merged.FullNamesOfMonths); n != 12 {
		b.record("locale.full_names_of_months",
			fmt.Sprintf("full_names_of_months must have 12 elements, got %d", n), nil, false)
	}
	return merged
}

func (b *builder) decodeDesign(value any) types.Design {
	if value == nil {
		return types.DefaultDesign()
	}
	m, ok := value.(map[string]any)
	if !ok {
		b.record("design", "design must be a mapping", value, false)
		return types.DefaultDesign()
	}
	theme := "classic"
	if t, ok := m["theme"].(string); ok && t != "" {
		theme = t
	}
	base, err := types.DesignForTheme(theme, b.ctx.WorkDir)
	if err != nil {
		b.record("design.theme", err.Error(), theme, false)
		base = types.DefaultDesign()
	}
	merged, err := types.MergeDesignOverrides(base, m)
	if err != nil {
		b.record("design", err.Error(), nil, false)
		return base
	}
	merged.Theme = theme
	b.validateDesign(&merged)
	return merged
}

// designStringChecks pairs dotted design paths with their validators.
func (b *builder) validateDesign(d *types.Design) {
	dims := map[string]string{
		"page.top_margin":                        d.Page.TopMargin,
		"page.bottom_margin":                     d.Page.BottomMargin,
		"page.left_margin":                       d.Page.LeftMargin,
		"page.right_margin":                      d.Page.RightMargin,
		"typography.font_size":                   d.Typography.FontSize,
		"typography.leading":                     d.Typography.Leading,
		"header.name_font_size":                  d.Header.NameFontSize,
		"header.photo_width":                     d.Header.PhotoWidth,
		"header.horizontal_space_between_connections": d.Header.HorizontalSpaceBetweenConnections,
		"section_titles.line_thickness":               d.SectionTitles.LineThickness,
		"entries.date_and_location_width":             d.Entries.DateAndLocationWidth,
	}
	for path, v := range dims {
		if v == "" {
			continue
		}
		if err := types.ValidateDimension(v); err != nil {
			b.record("design."+path, err.Error(), v, false)
		}
	}
	colors := map[string]string{
		"colors.text":           d.Colors.Text,
		"colors.name":           d.Colors.Name,
		"colors.connections":    d.Colors.Connections,
		"colors.section_titles": d.Colors.SectionTitles,
		"colors.links":          d.Colors.Links,
		"colors.footer":         d.Colors.Footer,
	}
	for path, v := range colors {
		if v == "" {
			continue
		}
		if err := types.ValidateColor(v); err != nil {
			b.record("design."+path, err.Error(), v, false)
		}
	}
	if s := d.Page.Size; s != "" && s != "us-letter" && s != "a4" {
		b.record("design.page.size", fmt.Sprintf("%q is not a valid page size, use us-letter or a4", s), s, false)
	}
	if a := d.Typography.Alignment; a != "" && a != "justified" && a != "left" {
		b.record("design.typography.alignment", fmt.Sprintf("%q is not a valid alignment, use justified or left", a), a, false)
	}
}

func (b *builder) decodeCV(value any) types.CV {
	cv := types.CV{}
	if value == nil {
		b.record("cv", "This field is required.", nil, true)
		return cv
	}
	m, ok := value.(map[string]any)
	if !ok {
		b.record("cv", "cv must be a mapping", value, false)
		return cv
	}

	header := struct {
		Name           string                `yaml:"name"`
		Location       string                `yaml:"location"`
		Email          string                `yaml:"email"`
		Photo          string                `yaml:"photo"`
		Phone          string                `yaml:"phone"`
		Website        string                `yaml:"website"`
		SocialNetworks []types.SocialNetwork `yaml:"social_networks"`
	}{}
	headerOnly := map[string]any{}
	for k, v := range m {
		if k != "sections" {
			headerOnly[k] = v
		}
	}
	if err := decodeStrict(headerOnly, &header); err != nil {
		b.record("cv", err.Error(), nil, false)
	}
	cv.Name = header.Name
	cv.Location = header.Location
	cv.Email = header.Email
	cv.Photo = header.Photo
	cv.Phone = header.Phone
	cv.Website = header.Website
	cv.SocialNetworks = header.SocialNetworks

	for i := range cv.SocialNetworks {
		b.addIssues(fmt.Sprintf("cv.social_networks.%d", i), cv.SocialNetworks[i].Validate())
	}
	inputDir := ""
	if b.ctx.InputFilePath != "" {
		inputDir = dirOf(b.ctx.InputFilePath)
	}
	b.addIssues("cv", cv.ValidatePhoto(inputDir))

	// Key order of the non-null top-level CV keys, in source order.
	for _, key := range b.composed.SourceFor("cv").KeyOrder("cv") {
		if v, ok := m[key]; ok && v != nil && key != "sections" {
			cv.KeyOrder = append(cv.KeyOrder, key)
		}
	}

	cv.Sections = b.decodeSections(m["sections"])
	return cv
}

func (b *builder) decodeSections(value any) []types.Section {
	if value == nil {
		return nil
	}
	m, ok := value.(map[string]any)
	if !ok {
		b.record("cv.sections", "sections must be a mapping of titles to entry lists", value, false)
		return nil
	}

	titles := b.composed.SourceFor("cv.sections").KeyOrder("cv.sections")
	if len(titles) == 0 {
		for title := range m {
			titles = append(titles, title)
		}
		sort.Strings(titles)
	}

	var sections []types.Section
	for _, title := range titles {
		raw, ok := m[title]
		if !ok {
			continue
		}
		path := "cv.sections." + title
		list, ok := raw.([]any)
		if !ok {
			b.record(path, "a section must be a list of entries", raw, false)
			continue
		}
		section := types.Section{Name: title, Title: types.TitleCase(title)}

		for _, item := range list {
			if kind, found := detectKind(item, entryKeys(item)); found {
				section.Kind = kind
				break
			}
		}
		if section.Kind == "" && len(list) > 0 {
			b.record(path, "could not determine the entry type of this section", nil, false)
			continue
		}

		mixed := false
		for i, item := range list {
			entryPath := fmt.Sprintf("%s.%d", path, i)
			keys := entryKeys(item)
			if kind, found := detectKind(item, keys); found && kind != section.Kind {
				mixed = true
				b.record(entryPath,
					fmt.Sprintf("this section holds %s entries, but this entry is a %s", section.Kind, kind),
					nil, false)
				continue
			}
			entry := b.decodeEntry(section.Kind, item, entryPath)
			if entry != nil {
				section.Entries = append(section.Entries, entry)
			}
		}
		if mixed {
			b.record(path, "sections must be uniform, all entries must be of the same type", nil, false)
			continue
		}
		sections = append(sections, section)
	}
	return sections
}

func entryKeys(item any) []string {
	m, ok := item.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func detectKind(item any, keys []string) (types.EntryKind, bool) {
	if _, ok := item.(string); ok {
		return types.KindText, true
	}
	if len(keys) == 0 {
		return "", false
	}
	return types.DetectEntryKind(keys)
}

//nolint:gocyclo // one arm per entry model
func (b *builder) decodeEntry(kind types.EntryKind, item any, path string) types.Entry {
	if s, ok := item.(string); ok {
		if kind != types.KindText {
			b.record(path, fmt.Sprintf("a plain string is a TextEntry, but this section holds %s entries", kind), s, false)
			return nil
		}
		return &types.TextEntry{Content: s}
	}
	m, ok := item.(map[string]any)
	if !ok {
		b.record(path, "an entry must be a string or a mapping", item, false)
		return nil
	}

	fields := newFieldReader(m)
	var entry types.Entry
	switch kind {
	case types.KindText:
		e := &types.TextEntry{Content: fields.str("content")}
		e.Tags = fields.strs("tags")
		e.Extra = fields.rest()
		if e.Content == "" {
			b.record(path+".content", "This field is required.", nil, true)
		}
		entry = e
	case types.KindBullet:
		e := &types.BulletEntry{Bullet: fields.str("bullet")}
		e.Tags = fields.strs("tags")
		e.Extra = fields.rest()
		entry = e
	case types.KindNumbered:
		e := &types.NumberedEntry{Number: fields.str("number")}
		e.Tags = fields.strs("tags")
		e.Extra = fields.rest()
		entry = e
	case types.KindReversedNumbered:
		e := &types.ReversedNumberedEntry{ReversedNumber: fields.str("reversed_number")}
		e.Tags = fields.strs("tags")
		e.Extra = fields.rest()
		entry = e
	case types.KindOneLine:
		e := &types.OneLineEntry{Label: fields.str("label"), Details: fields.str("details")}
		e.Tags = fields.strs("tags")
		e.Extra = fields.rest()
		if e.Label == "" {
			b.record(path+".label", "This field is required.", nil, true)
		}
		if e.Details == "" {
			b.record(path+".details", "This field is required.", nil, true)
		}
		entry = e
	case types.KindEducation:
		e := &types.EducationEntry{
			Institution: fields.str("institution"),
			Area:        fields.str("area"),
			Degree:      fields.str("degree"),
			Grade:       fields.str("grade"),
		}
		b.fillComplex(&e.ComplexFields, fields, path)
		e.Tags = fields.strs("tags")
		e.Extra = fields.rest()
		if e.Institution == "" {
			b.record(path+".institution", "This field is required.", nil, true)
		}
		if e.Area == "" {
			b.record(path+".area", "This field is required.", nil, true)
		}
		entry = e
	case types.KindExperience:
		e := &types.ExperienceEntry{
			Company:  fields.str("company"),
			Position: fields.str("position"),
		}
		b.fillComplex(&e.ComplexFields, fields, path)
		e.Tags = fields.strs("tags")
		e.Extra = fields.rest()
		if e.Company == "" {
			b.record(path+".company", "This field is required.", nil, true)
		}
		if e.Position == "" {
			b.record(path+".position", "This field is required.", nil, true)
		}
		entry = e
	case types.KindNormal:
		e := &types.NormalEntry{Name: fields.str("name")}
		b.fillComplex(&e.ComplexFields, fields, path)
		e.Tags = fields.strs("tags")
		e.Extra = fields.rest()
		if e.Name == "" {
			b.record(path+".name", "This field is required.", nil, true)
		}
		entry = e
	case types.KindPublication:
		e := &types.PublicationEntry{
			Title:   fields.str("title"),
			Authors: fields.strs("authors"),
			DOI:     fields.str("doi"),
			URL:     fields.str("url"),
			Journal: fields.str("journal"),
			Date:    fields.str("date"),
		}
		e.Tags = fields.strs("tags")
		e.Extra = fields.rest()
		if e.Title == "" {
			b.record(path+".title", "This field is required.", nil, true)
		}
		if len(e.Authors) == 0 {
			b.record(path+".authors", "This field is required.", nil, true)
		}
		b.addIssues(path, e.Normalize())
		entry = e
	}
	return entry
}

func (b *builder) fillComplex(c *types.ComplexFields, fields *fieldReader, path string) {
	c.StartDate = fields.str("start_date")
	c.EndDate = fields.str("end_date")
	c.Date = fields.str("date")
	c.Location = fields.str("location")
	c.Summary = fields.str("summary")
	c.Highlights = fields.strs("highlights")
	b.addIssues(path, c.Normalize(b.ctx.Now))
}

func (b *builder) decodeVersions(value any) []types.Version {
	if value == nil {
		return nil
	}
	list, ok := value.([]any)
	if !ok {
		b.record("versions", "versions must be a list", value, false)
		return nil
	}
	var versions []types.Version
	for i, item := range list {
		path := fmt.Sprintf("versions.%d", i)
		var v types.Version
		if err := decodeStrict(item, &v); err != nil {
			b.record(path, err.Error(), item, false)
			continue
		}
		if v.Name == "" {
			b.record(path+".name", "This field is required.", nil, true)
			continue
		}
		b.addIssues(path, v.Validate())
		versions = append(versions, v)
	}
	return versions
}

// fieldReader pulls known fields out of an entry mapping, tracking what is
// left over for the permissive Extra map.
type fieldReader struct {
	m        map[string]any
	consumed map[string]bool
}

func newFieldReader(m map[string]any) *fieldReader {
	return &fieldReader{m: m, consumed: map[string]bool{}}
}

func (f *fieldReader) str(key string) string {
	v, ok := f.m[key]
	if !ok {
		return ""
	}
	f.consumed[key] = true
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return fmt.Sprintf("%v", v)
}

func (f *fieldReader) strs(key string) []string {
	v, ok := f.m[key]
	if !ok {
		return nil
	}
	f.consumed[key] = true
	list, ok := v.([]any)
	if !ok {
		if s, ok := v.(string); ok {
			return []string{s}
		}
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, fmt.Sprintf("%v", item))
	}
	return out
}

func (f *fieldReader) rest() map[string]any {
	extra := map[string]any{}
	for k, v := range f.m {
		if !f.consumed[k] {
			extra[k] = v
		}
	}
	if len(extra) == 0 {
		return nil
	}
	return extra
}

func dirOf(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return ""
}
