package rendering

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/rendercv/internal/types"
)

var pathNow = time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

func pathLocale() *types.Locale {
	l := types.DefaultLocale()
	return &l
}

func TestResolvePath_NameVariants(t *testing.T) {
	cases := map[string]string{
		"NAME_IN_SNAKE_CASE_CV.pdf":       "John_Doe_CV.pdf",
		"NAME_IN_LOWER_SNAKE_CASE_CV.pdf": "john_doe_CV.pdf",
		"NAME_IN_UPPER_SNAKE_CASE_CV.pdf": "JOHN_DOE_CV.pdf",
		"NAME_IN_KEBAB_CASE_CV.pdf":       "John-Doe_CV.pdf",
		"NAME_IN_LOWER_KEBAB_CASE_CV.pdf": "john-doe_CV.pdf",
		"NAME_IN_UPPER_KEBAB_CASE_CV.pdf": "JOHN-DOE_CV.pdf",
		"NAME.pdf":                        "John Doe.pdf",
	}
	for pattern, want := range cases {
		got := ResolvePath(pattern, "John Doe", pathNow, pathLocale(), "out")
		assert.Equal(t, filepath.Join("out", want), got, pattern)
	}
}

func TestResolvePath_DateTokens(t *testing.T) {
	got := ResolvePath("cv_YEAR_MONTH_IN_TWO_DIGITS.pdf", "John Doe", pathNow, pathLocale(), "out")
	assert.Equal(t, filepath.Join("out", "cv_2024_05.pdf"), got)
}

func TestResolvePath_AbsoluteStaysPut(t *testing.T) {
	got := ResolvePath("/tmp/NAME_IN_SNAKE_CASE.pdf", "John Doe", pathNow, pathLocale(), "out")
	assert.Equal(t, "/tmp/John_Doe.pdf", got)
}

func TestResolvePath_Empty(t *testing.T) {
	assert.Equal(t, "", ResolvePath("", "John Doe", pathNow, pathLocale(), "out"))
}

func TestResolveOutputPaths(t *testing.T) {
	settings := types.DefaultSettings(pathNow)
	settings.ResolvedCurrentDate = pathNow
	model := &types.RootModel{
		CV:       types.CV{Name: "John Doe"},
		Locale:   types.DefaultLocale(),
		Settings: settings,
	}
	paths := ResolveOutputPaths(model)
	assert.Equal(t, filepath.Join("rendercv_output", "John_Doe_CV.typ"), paths.Typst)
	assert.Equal(t, filepath.Join("rendercv_output", "John_Doe_CV.pdf"), paths.PDF)
	assert.Equal(t, filepath.Join("rendercv_output", "John_Doe_CV.md"), paths.Markdown)
}

func TestPngPattern(t *testing.T) {
	assert.Equal(t, "out/cv_{p}.png", pngPattern("out/cv.png"))
}

func TestMarkdownToHTML(t *testing.T) {
	title, body, err := MarkdownToHTML("# John Doe\n\nSome **bold** text.")
	assert.NoError(t, err)
	assert.Equal(t, "John Doe", title)
	assert.Contains(t, body, "<strong>bold</strong>")
}
