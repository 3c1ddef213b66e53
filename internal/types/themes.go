package types

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// builtinThemeOverrides are the data-first variant tables: each built-in
// theme is the classic option tree with these leaves replaced. The theme
// discriminator itself is set by the merge.
var builtinThemeOverrides = map[string]map[string]any{
	"classic": {},
	"sb2nov": {
		"colors": map[string]any{
			"name":           "rgb(0,0,0)",
			"connections":    "rgb(0,0,0)",
			"section_titles": "rgb(0,0,0)",
			"links":          "rgb(0,0,0)",
		},
		"links": map[string]any{
			"underline":              true,
			"use_external_link_icon": false,
		},
		"header": map[string]any{
			"name_font_size":            "28pt",
			"use_icons_for_connections": false,
		},
		"section_titles": map[string]any{
			"type": "with-full-line",
		},
		"templates": map[string]any{
			"education_entry": map[string]any{
				"main_column_first_row": "**INSTITUTION**\n*DEGREE in AREA*",
				"degree_column":         "",
			},
			"experience_entry": map[string]any{
				"main_column_first_row": "**POSITION**\n*COMPANY*",
			},
		},
	},
	"engineeringresumes": {
		"page": map[string]any{
			"top_margin":             "1cm",
			"bottom_margin":          "1cm",
			"left_margin":            "1cm",
			"right_margin":           "1cm",
			"show_page_numbering":    false,
			"show_last_updated_date": false,
		},
		"colors": map[string]any{
			"name":           "rgb(0,0,0)",
			"connections":    "rgb(0,0,0)",
			"section_titles": "rgb(0,0,0)",
			"links":          "rgb(0,0,0)",
		},
		"typography": map[string]any{
			"font_family": "XCharter",
		},
		"links": map[string]any{
			"underline":              true,
			"use_external_link_icon": false,
		},
		"header": map[string]any{
			"name_font_size":                       "25pt",
			"name_bold":                            false,
			"use_icons_for_connections":            false,
			"separator_between_connections":        "|",
			"horizontal_space_between_connections": "0.2cm",
		},
		"section_titles": map[string]any{
			"type":       "with-full-line",
			"small_caps": false,
		},
	},
	"moderncv": {
		"colors": map[string]any{
			"name":           "rgb(0,0,0)",
			"section_titles": "rgb(0,62,114)",
			"connections":    "rgb(0,0,0)",
			"links":          "rgb(0,62,114)",
		},
		"typography": map[string]any{
			"font_family": "Latin Modern Sans",
			"alignment":   "left",
		},
		"header": map[string]any{
			"alignment":           "left",
			"small_caps_for_name": true,
			"name_bold":           false,
		},
		"section_titles": map[string]any{
			"type": "moderncv",
			"bold": false,
		},
	},
}

// BuiltinThemeNames lists the built-in themes, classic first.
func BuiltinThemeNames() []string {
	names := make([]string, 0, len(builtinThemeOverrides))
	for name := range builtinThemeOverrides {
		if name != "classic" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{"classic"}, names...)
}

// IsBuiltinTheme reports whether name has a built-in override table.
func IsBuiltinTheme(name string) bool {
	_, ok := builtinThemeOverrides[name]
	return ok
}

// DesignForTheme returns the classic defaults with the theme's override table
// applied. For a custom theme (a directory named after the theme in workDir,
// optionally carrying theme.yaml with an override table) the directory's
// overrides are applied; a custom theme with no directory is an error.
func DesignForTheme(theme, workDir string) (Design, error) {
	overrides, ok := builtinThemeOverrides[theme]
	if !ok {
		dir := filepath.Join(workDir, theme)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return Design{}, fmt.Errorf("theme %q is not built-in and no %q directory exists in the working directory", theme, theme)
		}
		overrides = map[string]any{}
		if data, err := os.ReadFile(filepath.Join(dir, "theme.yaml")); err == nil {
			if err := yaml.Unmarshal(data, &overrides); err != nil {
				return Design{}, fmt.Errorf("theme %q has an invalid theme.yaml: %w", theme, err)
			}
		}
	}
	design, err := MergeDesignOverrides(DefaultDesign(), overrides)
	if err != nil {
		return Design{}, err
	}
	design.Theme = theme
	return design, nil
}

// MergeDesignOverrides deep-merges an override table onto a Design by going
// through the option tree's map form.
func MergeDesignOverrides(base Design, overrides map[string]any) (Design, error) {
	baseMap, err := structToMap(base)
	if err != nil {
		return Design{}, err
	}
	if err := mergo.Merge(&baseMap, overrides, mergo.WithOverride); err != nil {
		return Design{}, fmt.Errorf("merging theme overrides: %w", err)
	}
	var merged Design
	if err := mapToStruct(baseMap, &merged); err != nil {
		return Design{}, err
	}
	return merged, nil
}

func structToMap(v any) (map[string]any, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func mapToStruct(m map[string]any, out any) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}
