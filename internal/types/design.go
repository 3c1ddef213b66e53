package types

// Design is the theme option tree. Classic is the canonical shape; other
// themes are override tables merged onto these defaults (see themes.go).
type Design struct {
	Theme         string              `yaml:"theme" json:"theme"`
	Page          PageOptions         `yaml:"page" json:"page"`
	Colors        ColorOptions        `yaml:"colors" json:"colors"`
	Typography    TypographyOptions   `yaml:"typography" json:"typography"`
	Links         LinkOptions         `yaml:"links" json:"links"`
	Header        HeaderOptions       `yaml:"header" json:"header"`
	SectionTitles SectionTitleOptions `yaml:"section_titles" json:"section_titles"`
	Sections      SectionOptions      `yaml:"sections" json:"sections"`
	Entries       EntrySpacingOptions `yaml:"entries" json:"entries"`
	Templates     TemplateOptions     `yaml:"templates" json:"templates"`
}

// PageOptions control the page geometry and running furniture.
type PageOptions struct {
	Size                string `yaml:"size" json:"size"`
	TopMargin           string `yaml:"top_margin" json:"top_margin"`
	BottomMargin        string `yaml:"bottom_margin" json:"bottom_margin"`
	LeftMargin          string `yaml:"left_margin" json:"left_margin"`
	RightMargin         string `yaml:"right_margin" json:"right_margin"`
	ShowPageNumbering   bool   `yaml:"show_page_numbering" json:"show_page_numbering"`
	ShowLastUpdatedDate bool   `yaml:"show_last_updated_date" json:"show_last_updated_date"`
}

type ColorOptions struct {
	Text          string `yaml:"text" json:"text"`
	Name          string `yaml:"name" json:"name"`
	Connections   string `yaml:"connections" json:"connections"`
	SectionTitles string `yaml:"section_titles" json:"section_titles"`
	Links         string `yaml:"links" json:"links"`
	Footer        string `yaml:"footer" json:"footer"`
}

type TypographyOptions struct {
	FontFamily                     string `yaml:"font_family" json:"font_family"`
	FontSize                       string `yaml:"font_size" json:"font_size"`
	Leading                        string `yaml:"leading" json:"leading"`
	Alignment                      string `yaml:"alignment" json:"alignment"`
	DateAndLocationColumnAlignment string `yaml:"date_and_location_column_alignment" json:"date_and_location_column_alignment"`
}

type LinkOptions struct {
	Underline           bool `yaml:"underline" json:"underline"`
	UseExternalLinkIcon bool `yaml:"use_external_link_icon" json:"use_external_link_icon"`
}

// HeaderOptions control the name/connections block at the top of the CV.
type HeaderOptions struct {
	NameFontSize                                   string `yaml:"name_font_size" json:"name_font_size"`
	NameBold                                       bool   `yaml:"name_bold" json:"name_bold"`
	SmallCapsForName                               bool   `yaml:"small_caps_for_name" json:"small_caps_for_name"`
	Alignment                                      string `yaml:"alignment" json:"alignment"`
	PhotoWidth                                     string `yaml:"photo_width" json:"photo_width"`
	UseIconsForConnections                         bool   `yaml:"use_icons_for_connections" json:"use_icons_for_connections"`
	MakeConnectionsLinks                           bool   `yaml:"make_connections_links" json:"make_connections_links"`
	SeparatorBetweenConnections                    string `yaml:"separator_between_connections" json:"separator_between_connections"`
	HorizontalSpaceBetweenConnections              string `yaml:"horizontal_space_between_connections" json:"horizontal_space_between_connections"`
	VerticalSpaceBetweenNameAndConnections         string `yaml:"vertical_space_between_name_and_connections" json:"vertical_space_between_name_and_connections"`
	VerticalSpaceBetweenConnectionsAndFirstSection string `yaml:"vertical_space_between_connections_and_first_section" json:"vertical_space_between_connections_and_first_section"`
}

type SectionTitleOptions struct {
	Type               string `yaml:"type" json:"type"`
	FontSize           string `yaml:"font_size" json:"font_size"`
	Bold               bool   `yaml:"bold" json:"bold"`
	SmallCaps          bool   `yaml:"small_caps" json:"small_caps"`
	LineThickness      string `yaml:"line_thickness" json:"line_thickness"`
	VerticalSpaceAbove string `yaml:"vertical_space_above" json:"vertical_space_above"`
	VerticalSpaceBelow string `yaml:"vertical_space_below" json:"vertical_space_below"`
}

type SectionOptions struct {
	AllowPageBreak              bool   `yaml:"allow_page_break" json:"allow_page_break"`
	VerticalSpaceBetweenEntries string `yaml:"vertical_space_between_entries" json:"vertical_space_between_entries"`
}

// EntrySpacingOptions control entry layout shared by all entry types.
type EntrySpacingOptions struct {
	DateAndLocationWidth          string   `yaml:"date_and_location_width" json:"date_and_location_width"`
	LeftAndRightMargin            string   `yaml:"left_and_right_margin" json:"left_and_right_margin"`
	HorizontalSpaceBetweenColumns string   `yaml:"horizontal_space_between_columns" json:"horizontal_space_between_columns"`
	AllowPageBreak                bool     `yaml:"allow_page_break" json:"allow_page_break"`
	ShortSecondRow                bool     `yaml:"short_second_row" json:"short_second_row"`
	ShowTimeSpansIn               []string `yaml:"show_time_spans_in" json:"show_time_spans_in"`
}

// EntryTemplates are the placeholder-bearing template strings for one entry
// type. Placeholders are UPPER_CASE field names; unknown placeholders are
// elided at render time.
type EntryTemplates struct {
	MainColumnFirstRow    string `yaml:"main_column_first_row" json:"main_column_first_row"`
	MainColumnSecondRow   string `yaml:"main_column_second_row" json:"main_column_second_row"`
	DateAndLocationColumn string `yaml:"date_and_location_column" json:"date_and_location_column"`
	DegreeColumn          string `yaml:"degree_column,omitempty" json:"degree_column,omitempty"`
}

// TemplateOptions hold the per-entry-type templates.
type TemplateOptions struct {
	TextEntry             EntryTemplates `yaml:"text_entry" json:"text_entry"`
	BulletEntry           EntryTemplates `yaml:"bullet_entry" json:"bullet_entry"`
	NumberedEntry         EntryTemplates `yaml:"numbered_entry" json:"numbered_entry"`
	ReversedNumberedEntry EntryTemplates `yaml:"reversed_numbered_entry" json:"reversed_numbered_entry"`
	OneLineEntry          EntryTemplates `yaml:"one_line_entry" json:"one_line_entry"`
	EducationEntry        EntryTemplates `yaml:"education_entry" json:"education_entry"`
	ExperienceEntry       EntryTemplates `yaml:"experience_entry" json:"experience_entry"`
	NormalEntry           EntryTemplates `yaml:"normal_entry" json:"normal_entry"`
	PublicationEntry      EntryTemplates `yaml:"publication_entry" json:"publication_entry"`
}

// ForKind returns the template set for an entry kind.
func (t *TemplateOptions) ForKind(kind EntryKind) EntryTemplates {
	switch kind {
	case KindText:
		return t.TextEntry
	case KindBullet:
		return t.BulletEntry
	case KindNumbered:
		return t.NumberedEntry
	case KindReversedNumbered:
		return t.ReversedNumberedEntry
	case KindOneLine:
		return t.OneLineEntry
	case KindEducation:
		return t.EducationEntry
	case KindExperience:
		return t.ExperienceEntry
	case KindNormal:
		return t.NormalEntry
	case KindPublication:
		return t.PublicationEntry
	}
	return EntryTemplates{}
}

// DefaultDesign returns the classic theme with its documented defaults.
func DefaultDesign() Design {
	return Design{
		Theme: "classic",
		Page: PageOptions{
			Size:                "us-letter",
			TopMargin:           "2cm",
			BottomMargin:        "2cm",
			LeftMargin:          "2cm",
			RightMargin:         "2cm",
			ShowPageNumbering:   true,
			ShowLastUpdatedDate: true,
		},
		Colors: ColorOptions{
			Text:          "rgb(0,0,0)",
			Name:          "rgb(0,79,144)",
			Connections:   "rgb(0,79,144)",
			SectionTitles: "rgb(0,79,144)",
			Links:         "rgb(0,79,144)",
			Footer:        "rgb(128,128,128)",
		},
		Typography: TypographyOptions{
			FontFamily:                     "Source Sans 3",
			FontSize:                       "10pt",
			Leading:                        "0.6em",
			Alignment:                      "justified",
			DateAndLocationColumnAlignment: "right",
		},
		Links: LinkOptions{
			Underline:           false,
			UseExternalLinkIcon: true,
		},
		Header: HeaderOptions{
			NameFontSize:                      "30pt",
			NameBold:                          true,
			SmallCapsForName:                  false,
			Alignment:                         "center",
			PhotoWidth:                        "3.5cm",
			UseIconsForConnections:            true,
			MakeConnectionsLinks:              true,
			SeparatorBetweenConnections:       "",
			HorizontalSpaceBetweenConnections: "0.5cm",
			VerticalSpaceBetweenNameAndConnections:         "0.7cm",
			VerticalSpaceBetweenConnectionsAndFirstSection: "0.7cm",
		},
		SectionTitles: SectionTitleOptions{
			Type:               "with-partial-line",
			FontSize:           "1.4em",
			Bold:               true,
			SmallCaps:          false,
			LineThickness:      "0.5pt",
			VerticalSpaceAbove: "0.5cm",
			VerticalSpaceBelow: "0.3cm",
		},
		Sections: SectionOptions{
			AllowPageBreak:              true,
			VerticalSpaceBetweenEntries: "1.2em",
		},
		Entries: EntrySpacingOptions{
			DateAndLocationWidth:          "4.15cm",
			LeftAndRightMargin:            "0.2cm",
			HorizontalSpaceBetweenColumns: "0.1cm",
			AllowPageBreak:                true,
			ShortSecondRow:                false,
			ShowTimeSpansIn:               []string{},
		},
		Templates: TemplateOptions{
			TextEntry:   EntryTemplates{MainColumnFirstRow: "CONTENT"},
			BulletEntry: EntryTemplates{MainColumnFirstRow: "BULLET"},
			NumberedEntry: EntryTemplates{
				MainColumnFirstRow: "NUMBER",
			},
			ReversedNumberedEntry: EntryTemplates{
				MainColumnFirstRow: "REVERSED_NUMBER",
			},
			OneLineEntry: EntryTemplates{
				MainColumnFirstRow: "**LABEL:** DETAILS",
			},
			EducationEntry: EntryTemplates{
				MainColumnFirstRow:    "**INSTITUTION**, AREA",
				MainColumnSecondRow:   "SUMMARY\nHIGHLIGHTS",
				DateAndLocationColumn: "LOCATION\nDATE",
				DegreeColumn:          "**DEGREE**",
			},
			ExperienceEntry: EntryTemplates{
				MainColumnFirstRow:    "**COMPANY**, POSITION",
				MainColumnSecondRow:   "SUMMARY\nHIGHLIGHTS",
				DateAndLocationColumn: "LOCATION\nDATE",
			},
			NormalEntry: EntryTemplates{
				MainColumnFirstRow:    "**NAME**",
				MainColumnSecondRow:   "SUMMARY\nHIGHLIGHTS",
				DateAndLocationColumn: "LOCATION\nDATE",
			},
			PublicationEntry: EntryTemplates{
				MainColumnFirstRow:    "**TITLE**",
				MainColumnSecondRow:   "AUTHORS\nURL (JOURNAL)",
				DateAndLocationColumn: "DATE",
			},
		},
	}
}
