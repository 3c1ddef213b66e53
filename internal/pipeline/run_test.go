package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/rendercv/internal/filtering"
	"github.com/jonathan/rendercv/internal/validation"
)

const sampleInput = `
cv:
  name: John Doe
  email: john@example.com
  sections:
    experience:
      - company: Acme
        position: Engineer
        start_date: 2020-01
        end_date: 2022-06
        tags: [industry]
      - company: University
        position: Research Assistant
        start_date: 2018-09
        end_date: 2019-12
        tags: [academic]
versions:
  - name: industry
    include: [industry]
`

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "cv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testOptions(t *testing.T, dir string) Options {
	return Options{
		InputPath: writeInput(t, dir, sampleInput),
		WorkDir:   dir,
		Now:       time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildModel(t *testing.T) {
	opts := testOptions(t, t.TempDir())
	model, err := BuildModel(opts)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", model.CV.Name)
	require.Len(t, model.CV.Sections, 1)
	assert.Len(t, model.CV.Sections[0].Entries, 2)
}

func TestBuildModel_VersionFilter(t *testing.T) {
	opts := testOptions(t, t.TempDir())
	opts.Version = "industry"
	model, err := BuildModel(opts)
	require.NoError(t, err)
	require.Len(t, model.CV.Sections, 1)
	assert.Len(t, model.CV.Sections[0].Entries, 1)
}

func TestBuildModel_UnknownVersion(t *testing.T) {
	opts := testOptions(t, t.TempDir())
	opts.Version = "missing"
	_, err := BuildModel(opts)
	var filterErr *filtering.FilterError
	require.ErrorAs(t, err, &filterErr)
}

func TestBuildModel_ValidationFailure(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		InputPath: writeInput(t, dir, "cv:\n  name: John\n  email: nope\n"),
		WorkDir:   dir,
		Now:       time.Now(),
	}
	_, err := BuildModel(opts)
	var userErr *validation.UserError
	require.ErrorAs(t, err, &userErr)
}

func TestBuildModel_Overrides(t *testing.T) {
	opts := testOptions(t, t.TempDir())
	opts.Overrides = map[string]string{"cv.name": "Jane Roe"}
	model, err := BuildModel(opts)
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", model.CV.Name)
}

func TestBuildModel_DesignOverlay(t *testing.T) {
	dir := t.TempDir()
	overlayPath := filepath.Join(dir, "design.yaml")
	require.NoError(t, os.WriteFile(overlayPath, []byte("design:\n  theme: engineeringresumes\n"), 0o644))

	opts := testOptions(t, dir)
	opts.Overlays = map[string]string{"design": overlayPath}
	model, err := BuildModel(opts)
	require.NoError(t, err)
	assert.Equal(t, "engineeringresumes", model.Design.Theme)
}

func TestRun_MarkdownOnly(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(t, dir)
	opts.RenderFlags = map[string]any{
		"output_folder_name":  filepath.Join(dir, "out"),
		"dont_generate_typst": true,
		"dont_generate_pdf":   true,
		"dont_generate_png":   true,
	}

	outputs, err := Run(context.Background(), opts)
	require.NoError(t, err)

	markdown, err := os.ReadFile(outputs.Paths.Markdown)
	require.NoError(t, err)
	assert.Contains(t, string(markdown), "# John Doe")

	html, err := os.ReadFile(outputs.Paths.HTML)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<strong>Acme</strong>")
}
