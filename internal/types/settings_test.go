package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsNow = time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

func TestSettingsNormalize_Today(t *testing.T) {
	s := Settings{CurrentDate: "today"}
	issues := s.Normalize(settingsNow)
	assert.Empty(t, issues)
	assert.Equal(t, settingsNow, s.ResolvedCurrentDate)
}

func TestSettingsNormalize_ExplicitDate(t *testing.T) {
	s := Settings{CurrentDate: "2023-01-05"}
	issues := s.Normalize(settingsNow)
	assert.Empty(t, issues)
	assert.Equal(t, 2023, s.ResolvedCurrentDate.Year())
}

func TestSettingsNormalize_InvalidDate(t *testing.T) {
	s := Settings{CurrentDate: "someday"}
	issues := s.Normalize(settingsNow)
	require.Len(t, issues, 1)
	assert.Equal(t, "current_date", issues[0].Field)
}

func TestSettingsNormalize_DedupsKeywords(t *testing.T) {
	s := Settings{BoldKeywords: []string{"Go", "Python", "Go"}}
	s.Normalize(settingsNow)
	assert.Equal(t, []string{"Go", "Python"}, s.BoldKeywords)
}

func TestSettingsNormalize_FillsDefaultPaths(t *testing.T) {
	s := Settings{}
	s.Normalize(settingsNow)
	assert.Equal(t, "rendercv_output/NAME_IN_SNAKE_CASE_CV.pdf", s.RenderCommand.PDFPath)
}

func TestSettingsNormalize_OutputFolderRewrite(t *testing.T) {
	s := Settings{RenderCommand: RenderCommandSettings{OutputFolderName: "build"}}
	s.Normalize(settingsNow)
	assert.Equal(t, "build/NAME_IN_SNAKE_CASE_CV.pdf", s.RenderCommand.PDFPath)
}

func TestSettingsNormalize_ExplicitPathKept(t *testing.T) {
	s := Settings{RenderCommand: RenderCommandSettings{
		OutputFolderName: "build",
		PDFPath:          "cv.pdf",
	}}
	s.Normalize(settingsNow)
	assert.Equal(t, "cv.pdf", s.RenderCommand.PDFPath)
}
