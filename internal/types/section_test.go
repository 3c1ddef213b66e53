package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"experience":           "Experience",
		"work_experience":      "Work Experience",
		"summary_of_the_role":  "Summary of the Role",
		"awards and honors":    "Awards and Honors",
		"Already Capitalized":  "Already Capitalized",
		"publications_by_year": "Publications by Year",
	}
	for input, want := range cases {
		assert.Equal(t, want, TitleCase(input), input)
	}
}

func TestDetectEntryKind(t *testing.T) {
	kind, ok := DetectEntryKind([]string{"company", "position", "start_date"})
	assert.True(t, ok)
	assert.Equal(t, KindExperience, kind)

	kind, ok = DetectEntryKind([]string{"institution", "area"})
	assert.True(t, ok)
	assert.Equal(t, KindEducation, kind)

	kind, ok = DetectEntryKind([]string{"title", "authors"})
	assert.True(t, ok)
	assert.Equal(t, KindPublication, kind)

	kind, ok = DetectEntryKind([]string{"label", "details"})
	assert.True(t, ok)
	assert.Equal(t, KindOneLine, kind)

	_, ok = DetectEntryKind([]string{"start_date", "end_date"})
	assert.False(t, ok)
}

func TestCharacteristicFields_AreUnique(t *testing.T) {
	for _, kind := range []EntryKind{
		KindBullet, KindNumbered, KindReversedNumbered,
		KindEducation, KindExperience, KindPublication, KindNormal,
	} {
		assert.NotEmpty(t, CharacteristicFields(kind), string(kind))
	}
	// shared complex fields never identify a kind
	for _, kind := range []EntryKind{KindEducation, KindExperience, KindNormal} {
		set := CharacteristicFields(kind)
		assert.False(t, set["start_date"], string(kind))
		assert.False(t, set["highlights"], string(kind))
	}
}
