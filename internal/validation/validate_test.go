package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/rendercv/internal/composing"
	"github.com/jonathan/rendercv/internal/reading"
)

func buildFromYAML(t *testing.T, src string) (*composing.Composed, error) {
	t.Helper()
	doc, err := reading.ReadString(src, "input.yaml")
	require.NoError(t, err)
	return composing.Compose(doc, nil, nil, nil)
}

func testContext() Context {
	return Context{
		InputFilePath: "input.yaml",
		Now:           time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuild_MinimalInput(t *testing.T) {
	composed, err := buildFromYAML(t, `
cv:
  name: John Doe
  sections:
    experience:
      - company: Acme
        position: Engineer
        start_date: 2020-01
        end_date: 2022-06
`)
	require.NoError(t, err)

	model, err := Build(composed, testContext())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", model.CV.Name)
	require.Len(t, model.CV.Sections, 1)
	assert.Equal(t, "Experience", model.CV.Sections[0].Title)
	require.Len(t, model.CV.Sections[0].Entries, 1)
}

func TestBuild_MissingCV(t *testing.T) {
	composed, err := buildFromYAML(t, `
design:
  theme: classic
`)
	require.NoError(t, err)

	_, err = Build(composed, testContext())
	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	found := false
	for _, rec := range userErr.Records {
		if len(rec.SchemaLocation) == 1 && rec.SchemaLocation[0] == "cv" {
			found = true
			assert.Equal(t, "This field is required.", rec.Message)
		}
	}
	assert.True(t, found)
}

func TestBuild_InvalidEmail(t *testing.T) {
	composed, err := buildFromYAML(t, `
cv:
  name: John Doe
  email: not-an-email
`)
	require.NoError(t, err)

	_, err = Build(composed, testContext())
	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	require.NotEmpty(t, userErr.Records)
	rec := findRecord(userErr.Records, "cv.email")
	require.NotNil(t, rec)
	assert.Equal(t, "This is not a valid email address!", rec.Message)
	assert.Equal(t, "not-an-email", rec.Input)
	require.NotNil(t, rec.YamlLocation)
	assert.Equal(t, 4, rec.YamlLocation.StartLine)
}

func TestBuild_LoneEndDate(t *testing.T) {
	composed, err := buildFromYAML(t, `
cv:
  name: John Doe
  sections:
    experience:
      - company: Acme
        position: Engineer
        end_date: 2022-06
`)
	require.NoError(t, err)

	_, err = Build(composed, testContext())
	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	rec := findRecord(userErr.Records, "cv.sections.experience.0.end_date")
	require.NotNil(t, rec)
}

func TestBuild_MixedSection(t *testing.T) {
	composed, err := buildFromYAML(t, `
cv:
  name: John Doe
  sections:
    work:
      - company: Acme
        position: Engineer
      - institution: MIT
        area: CS
`)
	require.NoError(t, err)

	_, err = Build(composed, testContext())
	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	rec := findRecord(userErr.Records, "cv.sections.work")
	require.NotNil(t, rec)
	assert.Contains(t, rec.Message, "uniform")
}

func TestBuild_UnknownTheme(t *testing.T) {
	composed, err := buildFromYAML(t, `
cv:
  name: John Doe
design:
  theme: nonexistent
`)
	require.NoError(t, err)

	_, err = Build(composed, testContext())
	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	rec := findRecord(userErr.Records, "design.theme")
	require.NotNil(t, rec)
	assert.Equal(t, "nonexistent", rec.Input)
}

func TestBuild_ExtraEntryFieldsArePermitted(t *testing.T) {
	composed, err := buildFromYAML(t, `
cv:
  name: John Doe
  sections:
    experience:
      - company: Acme
        position: Engineer
        custom_field: kept
`)
	require.NoError(t, err)

	model, err := Build(composed, testContext())
	require.NoError(t, err)
	entry := model.CV.Sections[0].Entries[0]
	assert.Equal(t, "kept", entry.FieldMap()["custom_field"])
}

func TestNamespaceToPath(t *testing.T) {
	assert.Equal(t, "cv.email", namespaceToPath("RootModel.cv.email"))
	assert.Equal(t, "cv.social_networks.1.username",
		namespaceToPath("RootModel.cv.social_networks[1].username"))
}

func TestCurateMessage_EndDate(t *testing.T) {
	msg := curateMessage("cv.sections.experience.0.end_date",
		"This is not a valid date! Please use either YYYY-MM-DD, YYYY-MM, or YYYY format.")
	assert.Contains(t, msg, "end date")
	assert.Contains(t, msg, "present")
}

func TestShortenInput(t *testing.T) {
	assert.Equal(t, "abc", shortenInput("abc"))
	assert.Equal(t, 3, shortenInput(3))
	assert.Equal(t, "...", shortenInput(map[string]any{"a": 1}))
	assert.Equal(t, "...", shortenInput([]any{1, 2}))
	assert.Nil(t, shortenInput(nil))
}

func findRecord(records []ValidationRecord, path string) *ValidationRecord {
	for i, rec := range records {
		joined := ""
		for j, el := range rec.SchemaLocation {
			if j > 0 {
				joined += "."
			}
			joined += el
		}
		if joined == path {
			return &records[i]
		}
	}
	return nil
}
