package types

import (
	"fmt"
	"sort"

	"dario.cat/mergo"
)

// Locale carries the language-specific translations and date templates.
type Locale struct {
	Language                string   `yaml:"language" json:"language"`
	PhoneNumberFormat       string   `yaml:"phone_number_format" json:"phone_number_format"`
	PageNumberingTemplate   string   `yaml:"page_numbering_template" json:"page_numbering_template"`
	LastUpdatedDateTemplate string   `yaml:"last_updated_date_template" json:"last_updated_date_template"`
	DateTemplate            string   `yaml:"date_template" json:"date_template"`
	Month                   string   `yaml:"month" json:"month"`
	Months                  string   `yaml:"months" json:"months"`
	Year                    string   `yaml:"year" json:"year"`
	Years                   string   `yaml:"years" json:"years"`
	PresentText             string   `yaml:"present" json:"present"`
	To                      string   `yaml:"to" json:"to"`
	AbbreviationsForMonths  []string `yaml:"abbreviations_for_months" json:"abbreviations_for_months" validate:"omitempty,len=12"`
	FullNamesOfMonths       []string `yaml:"full_names_of_months" json:"full_names_of_months" validate:"omitempty,len=12"`
}

// DefaultLocale returns the English base locale.
func DefaultLocale() Locale {
	return Locale{
		Language:                "english",
		PhoneNumberFormat:       "national",
		PageNumberingTemplate:   "NAME - Page PAGE_NUMBER of TOTAL_PAGES",
		LastUpdatedDateTemplate: "Last updated in CURRENT_DATE",
		DateTemplate:            "MONTH_ABBREVIATION YEAR",
		Month:                   "month",
		Months:                  "months",
		Year:                    "year",
		Years:                   "years",
		PresentText:             "present",
		To:                      "–",
		AbbreviationsForMonths: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "June",
			"July", "Aug", "Sept", "Oct", "Nov", "Dec",
		},
		FullNamesOfMonths: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
	}
}

// builtinLocaleOverrides are the per-language variant tables, merged onto the
// English base the same way theme overrides merge onto classic.
var builtinLocaleOverrides = map[string]map[string]any{
	"english": {},
	"spanish": {
		"last_updated_date_template": "Actualizado en CURRENT_DATE",
		"page_numbering_template":    "NAME - Página PAGE_NUMBER de TOTAL_PAGES",
		"month":                      "mes",
		"months":                     "meses",
		"year":                       "año",
		"years":                      "años",
		"present":                    "presente",
		"to":                         "–",
		"abbreviations_for_months": []any{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sep", "oct", "nov", "dic",
		},
		"full_names_of_months": []any{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
	},
	"german": {
		"last_updated_date_template": "Zuletzt aktualisiert im CURRENT_DATE",
		"page_numbering_template":    "NAME - Seite PAGE_NUMBER von TOTAL_PAGES",
		"month":                      "Monat",
		"months":                     "Monate",
		"year":                       "Jahr",
		"years":                      "Jahre",
		"present":                    "heute",
		"to":                         "bis",
		"abbreviations_for_months": []any{
			"Jan", "Feb", "März", "Apr", "Mai", "Juni",
			"Juli", "Aug", "Sept", "Okt", "Nov", "Dez",
		},
		"full_names_of_months": []any{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
	},
	"french": {
		"last_updated_date_template": "Mis à jour en CURRENT_DATE",
		"page_numbering_template":    "NAME - Page PAGE_NUMBER sur TOTAL_PAGES",
		"month":                      "mois",
		"months":                     "mois",
		"year":                       "an",
		"years":                      "ans",
		"present":                    "présent",
		"to":                         "à",
		"abbreviations_for_months": []any{
			"janv", "févr", "mars", "avr", "mai", "juin",
			"juil", "août", "sept", "oct", "nov", "déc",
		},
		"full_names_of_months": []any{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
	},
	"turkish": {
		"last_updated_date_template": "Son güncelleme: CURRENT_DATE",
		"page_numbering_template":    "NAME - Sayfa PAGE_NUMBER / TOTAL_PAGES",
		"month":                      "ay",
		"months":                     "ay",
		"year":                       "yıl",
		"years":                      "yıl",
		"present":                    "devam ediyor",
		"to":                         "-",
		"abbreviations_for_months": []any{
			"Oca", "Şub", "Mar", "Nis", "May", "Haz",
			"Tem", "Ağu", "Eyl", "Eki", "Kas", "Ara",
		},
		"full_names_of_months": []any{
			"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
			"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
		},
	},
}

// BuiltinLocaleNames lists the built-in languages, english first.
func BuiltinLocaleNames() []string {
	names := make([]string, 0, len(builtinLocaleOverrides))
	for name := range builtinLocaleOverrides {
		if name != "english" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{"english"}, names...)
}

// LocaleForLanguage returns the English base with the language's override
// table applied.
func LocaleForLanguage(language string) (Locale, error) {
	overrides, ok := builtinLocaleOverrides[language]
	if !ok {
		return Locale{}, fmt.Errorf("language %q is not supported", language)
	}
	baseMap, err := structToMap(DefaultLocale())
	if err != nil {
		return Locale{}, err
	}
	if err := mergo.Merge(&baseMap, overrides, mergo.WithOverride); err != nil {
		return Locale{}, fmt.Errorf("merging locale overrides: %w", err)
	}
	var merged Locale
	if err := mapToStruct(baseMap, &merged); err != nil {
		return Locale{}, err
	}
	merged.Language = language
	return merged, nil
}

// MergeLocaleOverrides deep-merges a user-provided override table onto a
// Locale, mirroring MergeDesignOverrides.
func MergeLocaleOverrides(base Locale, overrides map[string]any) (Locale, error) {
	baseMap, err := structToMap(base)
	if err != nil {
		return Locale{}, err
	}
	if err := mergo.Merge(&baseMap, overrides, mergo.WithOverride); err != nil {
		return Locale{}, fmt.Errorf("merging locale overrides: %w", err)
	}
	var merged Locale
	if err := mapToStruct(baseMap, &merged); err != nil {
		return Locale{}, err
	}
	return merged, nil
}
