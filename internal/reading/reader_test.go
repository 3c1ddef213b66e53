package reading

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadString_SpansAndData(t *testing.T) {
	doc, err := ReadString(`
cv:
  name: John Doe
  sections:
    experience:
      - company: Acme
        position: Engineer
`, "cv.yaml")
	require.NoError(t, err)

	assert.Equal(t, "John Doe", doc.Data["cv"].(map[string]any)["name"])

	span, ok := doc.Span("cv.name")
	require.True(t, ok)
	assert.Equal(t, 3, span.StartLine)

	span, ok = doc.Span("cv.sections.experience.0.company")
	require.True(t, ok)
	assert.Equal(t, 6, span.StartLine)
}

func TestReadString_KeyOrder(t *testing.T) {
	doc, err := ReadString(`
cv:
  name: John
  location: Istanbul
  email: j@example.com
  phone: "+905551234567"
`, "cv.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "location", "email", "phone"}, doc.KeyOrder("cv"))
}

func TestReadString_TimestampsStayStrings(t *testing.T) {
	doc, err := ReadString(`
entry:
  start_date: 2020-01-15
  end_date: 2022-06
`, "cv.yaml")
	require.NoError(t, err)
	entry := doc.Data["entry"].(map[string]any)
	assert.Equal(t, "2020-01-15", entry["start_date"])
	assert.Equal(t, "2022-06", entry["end_date"])
}

func TestReadString_LeadingStarsSurvive(t *testing.T) {
	doc, err := ReadString(`
authors:
  - John Doe
  - "***Jane Roe***"
summary: ***important***
`, "cv.yaml")
	require.NoError(t, err)
	assert.Equal(t, "***important***", doc.Data["summary"])
	authors := doc.Data["authors"].([]any)
	assert.Equal(t, "***Jane Roe***", authors[1])
}

func TestReadString_UnquotedLeadingStar(t *testing.T) {
	doc, err := ReadString("summary: *emphasis* here\n", "cv.yaml")
	require.NoError(t, err)
	assert.Equal(t, "*emphasis* here", doc.Data["summary"])
}

func TestReadString_Empty(t *testing.T) {
	_, err := ReadString("", "cv.yaml")
	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Contains(t, readErr.Message, "empty")
}

func TestReadString_TopLevelNotMapping(t *testing.T) {
	_, err := ReadString("- a\n- b\n", "cv.yaml")
	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Contains(t, readErr.Message, "mapping")
}

func TestReadString_ParseErrorCarriesLine(t *testing.T) {
	_, err := ReadString("cv:\n  name: [unclosed\n", "cv.yaml")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "cv.yaml", parseErr.Source)
	assert.Greater(t, parseErr.Line, 0)
}

func TestReadFile_UnsupportedExtension(t *testing.T) {
	_, err := ReadFile("cv.txt")
	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Contains(t, readErr.Message, "extension")
}

func TestReadFile_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cv": {"name": "John"}}`), 0o644))

	doc, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "John", doc.Data["cv"].(map[string]any)["name"])
}
