package rendering

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/rendercv/internal/types"
)

// name case variants available in output path settings, longest token first
// so NAME never clips the others.
var nameVariants = []string{
	"NAME_IN_LOWER_SNAKE_CASE",
	"NAME_IN_UPPER_SNAKE_CASE",
	"NAME_IN_LOWER_KEBAB_CASE",
	"NAME_IN_UPPER_KEBAB_CASE",
	"NAME_IN_SNAKE_CASE",
	"NAME_IN_KEBAB_CASE",
	"NAME",
}

var datePathTokens = []string{
	"FULL_MONTH_NAME",
	"MONTH_ABBREVIATION",
	"MONTH_IN_TWO_DIGITS",
	"MONTH",
	"YEAR_IN_TWO_DIGITS",
	"YEAR",
	"DAY_IN_TWO_DIGITS",
	"DAY",
}

// ResolvePath expands the name and date placeholders of an output path
// setting and anchors relative results under the output folder.
func ResolvePath(pattern, name string, current time.Time, locale *types.Locale, outputFolder string) string {
	if pattern == "" {
		return ""
	}
	resolved := expandName(pattern, name)
	resolved = expandDateTokens(resolved, current, locale)
	if filepath.IsAbs(resolved) {
		return resolved
	}
	return filepath.Join(outputFolder, resolved)
}

func expandName(pattern, name string) string {
	snake := strings.ReplaceAll(name, " ", "_")
	kebab := strings.ReplaceAll(name, " ", "-")
	values := map[string]string{
		"NAME_IN_LOWER_SNAKE_CASE": strings.ToLower(snake),
		"NAME_IN_UPPER_SNAKE_CASE": strings.ToUpper(snake),
		"NAME_IN_LOWER_KEBAB_CASE": strings.ToLower(kebab),
		"NAME_IN_UPPER_KEBAB_CASE": strings.ToUpper(kebab),
		"NAME_IN_SNAKE_CASE":       snake,
		"NAME_IN_KEBAB_CASE":       kebab,
		"NAME":                     name,
	}
	for _, token := range nameVariants {
		pattern = strings.ReplaceAll(pattern, token, values[token])
	}
	return pattern
}

func expandDateTokens(pattern string, date time.Time, locale *types.Locale) string {
	month := int(date.Month())
	values := map[string]string{
		"FULL_MONTH_NAME":     monthToken(locale.FullNamesOfMonths, month),
		"MONTH_ABBREVIATION":  monthToken(locale.AbbreviationsForMonths, month),
		"MONTH_IN_TWO_DIGITS": fmt.Sprintf("%02d", month),
		"MONTH":               strconv.Itoa(month),
		"YEAR_IN_TWO_DIGITS":  fmt.Sprintf("%02d", date.Year()%100),
		"YEAR":                strconv.Itoa(date.Year()),
		"DAY_IN_TWO_DIGITS":   fmt.Sprintf("%02d", date.Day()),
		"DAY":                 strconv.Itoa(date.Day()),
	}
	for _, token := range datePathTokens {
		pattern = strings.ReplaceAll(pattern, token, values[token])
	}
	return pattern
}

func monthToken(names []string, month int) string {
	if month < 1 || month > len(names) {
		return ""
	}
	return names[month-1]
}

// OutputPaths are the fully resolved destinations of one render run.
type OutputPaths struct {
	Typst    string
	PDF      string
	PNG      string
	Markdown string
	HTML     string
}

// ResolveOutputPaths expands every output path of the render settings.
func ResolveOutputPaths(model *types.RootModel) OutputPaths {
	rc := model.Settings.RenderCommand
	name := model.CV.Name
	current := model.Settings.ResolvedCurrentDate
	locale := &model.Locale
	// Path settings already carry their folder prefix; Settings.Normalize
	// rewrote it when output_folder_name was set. Relative paths anchor at
	// the input file's directory.
	folder := model.InputDir()
	if folder == "." {
		folder = ""
	}

	return OutputPaths{
		Typst:    ResolvePath(rc.TypstPath, name, current, locale, folder),
		PDF:      ResolvePath(rc.PDFPath, name, current, locale, folder),
		PNG:      ResolvePath(rc.PNGPath, name, current, locale, folder),
		Markdown: ResolvePath(rc.MarkdownPath, name, current, locale, folder),
		HTML:     ResolvePath(rc.HTMLPath, name, current, locale, folder),
	}
}
