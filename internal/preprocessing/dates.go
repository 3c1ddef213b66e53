package preprocessing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/rendercv/internal/types"
)

// datePlaceholders are substituted into the locale date template, longest
// token first so YEAR does not eat YEAR_IN_TWO_DIGITS.
var datePlaceholders = []string{
	"FULL_MONTH_NAME",
	"MONTH_ABBREVIATION",
	"MONTH_IN_TWO_DIGITS",
	"MONTH",
	"YEAR_IN_TWO_DIGITS",
	"YEAR",
	"DAY_IN_TWO_DIGITS",
	"DAY",
}

// FormatSingleDate renders a date value with the locale's date template.
// Year-only dates render as the bare year, "present" renders as the locale's
// word for it, and free text passes through untouched.
func FormatSingleDate(value string, locale *types.Locale, current time.Time) string {
	if value == "" {
		return ""
	}
	if value == types.Present {
		return locale.PresentText
	}
	if year, err := strconv.Atoi(value); err == nil && len(value) == 4 {
		return strconv.Itoa(year)
	}
	date, precision, err := types.ParseExactDate(value)
	if err != nil {
		return value
	}
	if precision == types.PrecisionYear {
		return strconv.Itoa(date.Year())
	}
	return expandDateTemplate(locale.DateTemplate, date, locale)
}

func expandDateTemplate(template string, date time.Time, locale *types.Locale) string {
	month := int(date.Month())
	replacements := map[string]string{
		"FULL_MONTH_NAME":     monthName(locale.FullNamesOfMonths, month),
		"MONTH_ABBREVIATION":  monthName(locale.AbbreviationsForMonths, month),
		"MONTH_IN_TWO_DIGITS": fmt.Sprintf("%02d", month),
		"MONTH":               strconv.Itoa(month),
		"YEAR_IN_TWO_DIGITS":  fmt.Sprintf("%02d", date.Year()%100),
		"YEAR":                strconv.Itoa(date.Year()),
		"DAY_IN_TWO_DIGITS":   fmt.Sprintf("%02d", date.Day()),
		"DAY":                 strconv.Itoa(date.Day()),
	}
	out := template
	for _, token := range datePlaceholders {
		out = strings.ReplaceAll(out, token, replacements[token])
	}
	return out
}

func monthName(names []string, month int) string {
	if month < 1 || month > len(names) {
		return ""
	}
	return names[month-1]
}

// FormatDateRange renders the date column text of an entry with complex
// fields. A single date wins over a range; time spans are appended when the
// entry's section opted in.
func FormatDateRange(c *types.ComplexFields, locale *types.Locale, current time.Time, withTimeSpan bool) string {
	if c.Date != "" {
		return FormatSingleDate(c.Date, locale, current)
	}
	if c.StartDate == "" && c.EndDate == "" {
		return ""
	}
	start := FormatSingleDate(c.StartDate, locale, current)
	end := FormatSingleDate(c.EndDate, locale, current)
	rangeText := fmt.Sprintf("%s %s %s", start, locale.To, end)
	if !withTimeSpan {
		return rangeText
	}
	span := timeSpan(c, locale, current)
	if span == "" {
		return rangeText
	}
	return rangeText + "\n\n" + span
}

// timeSpan computes the human duration between start and end in calendar
// months.
func timeSpan(c *types.ComplexFields, locale *types.Locale, current time.Time) string {
	start, err := types.GetDateObject(c.StartDate, current)
	if err != nil {
		return ""
	}
	end, err := types.GetDateObject(c.EndDate, current)
	if err != nil {
		return ""
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	// The range is inclusive: a full trailing month counts, with one day of
	// slack so the 15th to the 14th still closes the month.
	if end.Day()+1 >= start.Day() {
		months++
	}
	if months < 1 {
		months = 1
	}
	if months < 12 {
		return pluralize(months, locale.Month, locale.Months)
	}
	years := months / 12
	remainder := months % 12
	out := pluralize(years, locale.Year, locale.Years)
	if remainder > 0 {
		out += " " + pluralize(remainder, locale.Month, locale.Months)
	}
	return out
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

