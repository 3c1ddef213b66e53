package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinThemeNames_ClassicFirst(t *testing.T) {
	names := BuiltinThemeNames()
	require.NotEmpty(t, names)
	assert.Equal(t, "classic", names[0])
	assert.Contains(t, names, "sb2nov")
	assert.Contains(t, names, "engineeringresumes")
	assert.Contains(t, names, "moderncv")
}

func TestDesignForTheme_Classic(t *testing.T) {
	design, err := DesignForTheme("classic", "")
	require.NoError(t, err)
	assert.Equal(t, "classic", design.Theme)
	assert.Equal(t, "rgb(0,79,144)", design.Colors.SectionTitles)
}

func TestDesignForTheme_OverridesApply(t *testing.T) {
	design, err := DesignForTheme("engineeringresumes", "")
	require.NoError(t, err)
	assert.Equal(t, "engineeringresumes", design.Theme)
	assert.Equal(t, "1cm", design.Page.TopMargin)
	assert.Equal(t, "rgb(0,0,0)", design.Colors.SectionTitles)
	assert.False(t, design.Page.ShowPageNumbering)
	// untouched leaves keep the classic defaults
	assert.Equal(t, "us-letter", design.Page.Size)
	assert.Equal(t, "**COMPANY**, POSITION", design.Templates.ExperienceEntry.MainColumnFirstRow)
}

func TestDesignForTheme_UnknownWithoutDirectory(t *testing.T) {
	_, err := DesignForTheme("nonexistent", t.TempDir())
	assert.Error(t, err)
}

func TestDesignForTheme_CustomDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "mytheme"), 0o755))
	overrides := "colors:\n  section_titles: rgb(255,0,0)\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mytheme", "theme.yaml"), []byte(overrides), 0o644))

	design, err := DesignForTheme("mytheme", dir)
	require.NoError(t, err)
	assert.Equal(t, "mytheme", design.Theme)
	assert.Equal(t, "rgb(255,0,0)", design.Colors.SectionTitles)
	assert.Equal(t, "2cm", design.Page.TopMargin)
}

func TestMergeDesignOverrides_UserOnTopOfTheme(t *testing.T) {
	base, err := DesignForTheme("sb2nov", "")
	require.NoError(t, err)
	merged, err := MergeDesignOverrides(base, map[string]any{
		"page": map[string]any{"top_margin": "3cm"},
	})
	require.NoError(t, err)
	assert.Equal(t, "3cm", merged.Page.TopMargin)
	assert.Equal(t, "rgb(0,0,0)", merged.Colors.SectionTitles)
}

func TestLocaleForLanguage(t *testing.T) {
	locale, err := LocaleForLanguage("german")
	require.NoError(t, err)
	assert.Equal(t, "german", locale.Language)
	assert.Equal(t, "heute", locale.PresentText)
	assert.Len(t, locale.AbbreviationsForMonths, 12)
	// untouched leaves keep the English defaults
	assert.Equal(t, "MONTH_ABBREVIATION YEAR", locale.DateTemplate)
}

func TestLocaleForLanguage_Unknown(t *testing.T) {
	_, err := LocaleForLanguage("klingon")
	assert.Error(t, err)
}
