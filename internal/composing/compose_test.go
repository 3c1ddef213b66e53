package composing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/rendercv/internal/reading"
)

func parse(t *testing.T, src, source string) *reading.Document {
	t.Helper()
	doc, err := reading.ReadString(src, source)
	require.NoError(t, err)
	return doc
}

func TestCompose_EnsuresRenderCommand(t *testing.T) {
	main := parse(t, "cv:\n  name: John\n", "cv.yaml")
	composed, err := Compose(main, nil, nil, nil)
	require.NoError(t, err)

	settings := composed.Main.Data["settings"].(map[string]any)
	_, ok := settings["render_command"].(map[string]any)
	assert.True(t, ok)
}

func TestCompose_OverlayReplacesTopKey(t *testing.T) {
	main := parse(t, "cv:\n  name: John\ndesign:\n  theme: classic\n", "cv.yaml")
	overlay := parse(t, "design:\n  theme: sb2nov\n", "design.yaml")

	composed, err := Compose(main, Overlays{"design": overlay}, nil, nil)
	require.NoError(t, err)

	design := composed.Main.Data["design"].(map[string]any)
	assert.Equal(t, "sb2nov", design["theme"])
	assert.Same(t, overlay, composed.SourceFor("design.theme"))
	assert.Same(t, main, composed.SourceFor("cv.name"))
}

func TestCompose_OverlayMissingKey(t *testing.T) {
	main := parse(t, "cv:\n  name: John\n", "cv.yaml")
	overlay := parse(t, "theme: sb2nov\n", "design.yaml")

	_, err := Compose(main, Overlays{"design": overlay}, nil, nil)
	var overrideErr *OverrideError
	require.ErrorAs(t, err, &overrideErr)
}

func TestCompose_RenderFlags(t *testing.T) {
	main := parse(t, "cv:\n  name: John\n", "cv.yaml")
	composed, err := Compose(main, nil, map[string]any{"dont_generate_pdf": true}, nil)
	require.NoError(t, err)

	settings := composed.Main.Data["settings"].(map[string]any)
	rc := settings["render_command"].(map[string]any)
	assert.Equal(t, true, rc["dont_generate_pdf"])
}

func TestCompose_Overrides(t *testing.T) {
	main := parse(t, `
cv:
  name: John
  sections:
    experience:
      - company: Acme
`, "cv.yaml")

	composed, err := Compose(main, nil, nil, map[string]string{
		"cv.name":                              "Jane",
		"cv.sections.experience.0.company":     "Initech",
		"design.theme":                         "sb2nov",
		"settings.render_command.pdf_path":     "out.pdf",
		"settings.render_command.dont_generate_png": "true",
	})
	require.NoError(t, err)

	cv := composed.Main.Data["cv"].(map[string]any)
	assert.Equal(t, "Jane", cv["name"])
	entry := cv["sections"].(map[string]any)["experience"].([]any)[0].(map[string]any)
	assert.Equal(t, "Initech", entry["company"])
	design := composed.Main.Data["design"].(map[string]any)
	assert.Equal(t, "sb2nov", design["theme"])
	rc := composed.Main.Data["settings"].(map[string]any)["render_command"].(map[string]any)
	assert.Equal(t, "out.pdf", rc["pdf_path"])
	assert.Equal(t, true, rc["dont_generate_png"])
}

func TestCompose_OverrideBadListIndex(t *testing.T) {
	main := parse(t, "cv:\n  sections:\n    work:\n      - company: Acme\n", "cv.yaml")

	_, err := Compose(main, nil, nil, map[string]string{"cv.sections.work.first.company": "X"})
	var overrideErr *OverrideError
	require.ErrorAs(t, err, &overrideErr)
	assert.Contains(t, overrideErr.Message, "cv.sections.work")

	_, err = Compose(parse(t, "cv:\n  sections:\n    work:\n      - company: Acme\n", "cv.yaml"),
		nil, nil, map[string]string{"cv.sections.work.5.company": "X"})
	require.ErrorAs(t, err, &overrideErr)
	assert.Contains(t, overrideErr.Message, "out of range")
}

func TestCompose_OverrideIntoScalar(t *testing.T) {
	main := parse(t, "cv:\n  name: John\n", "cv.yaml")
	_, err := Compose(main, nil, nil, map[string]string{"cv.name.first": "J"})
	var overrideErr *OverrideError
	require.ErrorAs(t, err, &overrideErr)
}

func TestParseScalar(t *testing.T) {
	assert.Equal(t, true, parseScalar("true"))
	assert.Equal(t, 5, parseScalar("5"))
	assert.Equal(t, "rgb(255,0,0)", parseScalar("rgb(255,0,0)"))
	assert.Equal(t, "a: b", parseScalar("a: b"))
}
