package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/rendercv/internal/types"
)

func buildModel(t *testing.T, src string) *types.RootModel {
	t.Helper()
	composed, err := buildFromYAML(t, src)
	require.NoError(t, err)
	model, err := Build(composed, testContext())
	require.NoError(t, err)
	return model
}

func TestModelRoundTrip(t *testing.T) {
	first := buildModel(t, `
cv:
  name: John Doe
  location: Berlin
  email: john@example.com
  social_networks:
    - network: GitHub
      username: johndoe
  sections:
    summary:
      - A short paragraph about John.
    experience:
      - company: Acme
        position: Engineer
        start_date: 2020-01
        end_date: 2022-06
        location: Berlin
        highlights:
          - Built the billing system.
        tags: [industry]
    publications:
      - title: A Paper
        authors: ["**John Doe**", Jane Roe]
        doi: 10.1000/demo
        date: 2021-05
settings:
  current_date: 2024-05-01
versions:
  - name: industry
    include: [industry]
`)

	data, err := yaml.Marshal(first)
	require.NoError(t, err)

	second := buildModel(t, string(data))

	assert.Equal(t, first.CV, second.CV)
	assert.Equal(t, first.Design, second.Design)
	assert.Equal(t, first.Locale, second.Locale)
	assert.Equal(t, first.Settings, second.Settings)
	assert.Equal(t, first.Versions, second.Versions)
}

func TestModelRoundTrip_KeepsKeyAndSectionOrder(t *testing.T) {
	first := buildModel(t, `
cv:
  email: john@example.com
  name: John Doe
  sections:
    my_projects:
      - name: Widget
        date: "2023"
    education:
      - institution: MIT
        area: CS
`)

	data, err := yaml.Marshal(first)
	require.NoError(t, err)
	second := buildModel(t, string(data))

	assert.Equal(t, []string{"email", "name"}, second.CV.KeyOrder)
	require.Len(t, second.CV.Sections, 2)
	assert.Equal(t, "my_projects", second.CV.Sections[0].Name)
	assert.Equal(t, "My Projects", second.CV.Sections[0].Title)
	assert.Equal(t, "education", second.CV.Sections[1].Name)
}
