// Package filtering produces version-specific copies of a CV by dropping
// entries whose tags do not match the selected version.
package filtering

import (
	"fmt"
	"strings"

	"github.com/jonathan/rendercv/internal/types"
)

// FilterError reports a version selection problem.
type FilterError struct {
	Message string
}

func (e *FilterError) Error() string {
	return e.Message
}

// ApplyVersion returns a copy of the model holding only the entries that the
// named version keeps. Sections left without entries are dropped. The copy is
// independent of the input so later stages can mutate it freely.
func ApplyVersion(model *types.RootModel, versionName string) (*types.RootModel, error) {
	if len(model.Versions) == 0 {
		return nil, &FilterError{Message: "No versions are defined in the input file."}
	}
	version, ok := model.VersionByName(versionName)
	if !ok {
		names := make([]string, 0, len(model.Versions))
		for _, v := range model.Versions {
			names = append(names, v.Name)
		}
		return nil, &FilterError{
			Message: fmt.Sprintf("There is no version named %q. Available versions: %s.",
				versionName, strings.Join(names, ", ")),
		}
	}

	filtered := *model
	filtered.CV.Sections = nil
	filtered.CV.KeyOrder = append([]string(nil), model.CV.KeyOrder...)
	filtered.CV.SocialNetworks = append([]types.SocialNetwork(nil), model.CV.SocialNetworks...)

	for _, section := range model.CV.Sections {
		kept := types.Section{Name: section.Name, Title: section.Title, Kind: section.Kind}
		for _, entry := range section.Entries {
			if version.Matches(entry.EntryTags()) {
				kept.Entries = append(kept.Entries, cloneEntry(entry))
			}
		}
		if len(kept.Entries) > 0 {
			filtered.CV.Sections = append(filtered.CV.Sections, kept)
		}
	}
	return &filtered, nil
}

func cloneEntry(entry types.Entry) types.Entry {
	switch e := entry.(type) {
	case *types.TextEntry:
		c := *e
		c.Tags = append([]string(nil), e.Tags...)
		c.Extra = cloneExtra(e.Extra)
		return &c
	case *types.BulletEntry:
		c := *e
		c.Tags = append([]string(nil), e.Tags...)
		c.Extra = cloneExtra(e.Extra)
		return &c
	case *types.NumberedEntry:
		c := *e
		c.Tags = append([]string(nil), e.Tags...)
		c.Extra = cloneExtra(e.Extra)
		return &c
	case *types.ReversedNumberedEntry:
		c := *e
		c.Tags = append([]string(nil), e.Tags...)
		c.Extra = cloneExtra(e.Extra)
		return &c
	case *types.OneLineEntry:
		c := *e
		c.Tags = append([]string(nil), e.Tags...)
		c.Extra = cloneExtra(e.Extra)
		return &c
	case *types.EducationEntry:
		c := *e
		c.Highlights = append([]string(nil), e.Highlights...)
		c.Tags = append([]string(nil), e.Tags...)
		c.Extra = cloneExtra(e.Extra)
		return &c
	case *types.ExperienceEntry:
		c := *e
		c.Highlights = append([]string(nil), e.Highlights...)
		c.Tags = append([]string(nil), e.Tags...)
		c.Extra = cloneExtra(e.Extra)
		return &c
	case *types.NormalEntry:
		c := *e
		c.Highlights = append([]string(nil), e.Highlights...)
		c.Tags = append([]string(nil), e.Tags...)
		c.Extra = cloneExtra(e.Extra)
		return &c
	case *types.PublicationEntry:
		c := *e
		c.Authors = append([]string(nil), e.Authors...)
		c.Tags = append([]string(nil), e.Tags...)
		c.Extra = cloneExtra(e.Extra)
		return &c
	}
	return entry
}

func cloneExtra(extra map[string]any) map[string]any {
	if extra == nil {
		return nil
	}
	out := make(map[string]any, len(extra))
	for k, v := range extra {
		out[k] = v
	}
	return out
}
