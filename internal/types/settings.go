package types

import (
	"strings"
	"time"
)

// DefaultOutputFolder is the prefix rewritten by the output_folder setting.
const DefaultOutputFolder = "rendercv_output"

// RenderCommandSettings carry the per-format output paths and skip flags.
// Paths support the NAME/date placeholders resolved by the path resolver.
type RenderCommandSettings struct {
	OutputFolderName     string `yaml:"output_folder_name,omitempty" json:"output_folder_name,omitempty"`
	TypstPath            string `yaml:"typst_path,omitempty" json:"typst_path,omitempty"`
	PDFPath              string `yaml:"pdf_path,omitempty" json:"pdf_path,omitempty"`
	PNGPath              string `yaml:"png_path,omitempty" json:"png_path,omitempty"`
	MarkdownPath         string `yaml:"markdown_path,omitempty" json:"markdown_path,omitempty"`
	HTMLPath             string `yaml:"html_path,omitempty" json:"html_path,omitempty"`
	DontGenerateTypst    bool   `yaml:"dont_generate_typst,omitempty" json:"dont_generate_typst,omitempty"`
	DontGeneratePDF      bool   `yaml:"dont_generate_pdf,omitempty" json:"dont_generate_pdf,omitempty"`
	DontGeneratePNG      bool   `yaml:"dont_generate_png,omitempty" json:"dont_generate_png,omitempty"`
	DontGenerateMarkdown bool   `yaml:"dont_generate_markdown,omitempty" json:"dont_generate_markdown,omitempty"`
	DontGenerateHTML     bool   `yaml:"dont_generate_html,omitempty" json:"dont_generate_html,omitempty"`
}

// Settings is the behavioral half of the model.
type Settings struct {
	CurrentDate   string                `yaml:"current_date,omitempty" json:"current_date,omitempty"`
	RenderCommand RenderCommandSettings `yaml:"render_command" json:"render_command"`
	BoldKeywords  []string              `yaml:"bold_keywords,omitempty" json:"bold_keywords,omitempty"`
	PDFTitle      string                `yaml:"pdf_title,omitempty" json:"pdf_title,omitempty"`

	// ResolvedCurrentDate is "today" resolved eagerly at validation time.
	ResolvedCurrentDate time.Time `yaml:"-" json:"-"`
}

// DefaultSettings returns the settings used when the document omits them.
func DefaultSettings(now time.Time) Settings {
	s := Settings{
		CurrentDate: "today",
		RenderCommand: RenderCommandSettings{
			TypstPath:    DefaultOutputFolder + "/NAME_IN_SNAKE_CASE_CV.typ",
			PDFPath:      DefaultOutputFolder + "/NAME_IN_SNAKE_CASE_CV.pdf",
			PNGPath:      DefaultOutputFolder + "/NAME_IN_SNAKE_CASE_CV.png",
			MarkdownPath: DefaultOutputFolder + "/NAME_IN_SNAKE_CASE_CV.md",
			HTMLPath:     DefaultOutputFolder + "/NAME_IN_SNAKE_CASE_CV.html",
		},
	}
	s.ResolvedCurrentDate = now
	return s
}

// Normalize resolves "today", de-duplicates bold keywords, applies default
// output paths for any left empty, and rewrites paths still under the default
// output folder when output_folder_name is set.
func (s *Settings) Normalize(now time.Time) []FieldIssue {
	var issues []FieldIssue

	switch {
	case s.CurrentDate == "" || s.CurrentDate == "today":
		s.ResolvedCurrentDate = now
	case IsExactDate(s.CurrentDate):
		t, _, err := ParseExactDate(s.CurrentDate)
		if err != nil {
			issues = append(issues, FieldIssue{Field: "current_date", Message: err.Error(), Input: s.CurrentDate})
		} else {
			s.ResolvedCurrentDate = t
		}
	default:
		issues = append(issues, FieldIssue{
			Field:   "current_date",
			Message: "This is not a valid date! Please use either YYYY-MM-DD, YYYY-MM, or YYYY format, or \"today\".",
			Input:   s.CurrentDate,
		})
	}

	seen := map[string]bool{}
	deduped := s.BoldKeywords[:0]
	for _, kw := range s.BoldKeywords {
		if !seen[kw] {
			seen[kw] = true
			deduped = append(deduped, kw)
		}
	}
	s.BoldKeywords = deduped

	defaults := DefaultSettings(now).RenderCommand
	rc := &s.RenderCommand
	for _, p := range []struct {
		field *string
		def   string
	}{
		{&rc.TypstPath, defaults.TypstPath},
		{&rc.PDFPath, defaults.PDFPath},
		{&rc.PNGPath, defaults.PNGPath},
		{&rc.MarkdownPath, defaults.MarkdownPath},
		{&rc.HTMLPath, defaults.HTMLPath},
	} {
		if *p.field == "" {
			*p.field = p.def
		}
		if rc.OutputFolderName != "" && strings.HasPrefix(*p.field, DefaultOutputFolder+"/") {
			*p.field = rc.OutputFolderName + strings.TrimPrefix(*p.field, DefaultOutputFolder)
		}
	}

	return issues
}
