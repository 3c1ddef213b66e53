package types

// Version is a named tag filter over the CV's entries.
type Version struct {
	Name    string   `yaml:"name" json:"name" validate:"required"`
	Include []string `yaml:"include,omitempty" json:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// Validate enforces that at least one of include/exclude is set.
func (v *Version) Validate() []FieldIssue {
	if len(v.Include) == 0 && len(v.Exclude) == 0 {
		return []FieldIssue{{
			Field:   "name",
			Message: "a version must set at least one of include or exclude",
			Input:   v.Name,
		}}
	}
	return nil
}

// Matches applies the permissive predicate: untagged entries always pass;
// tagged entries must hit include (when set) and miss exclude (when set).
func (v *Version) Matches(tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	if len(v.Include) > 0 && !intersects(tags, v.Include) {
		return false
	}
	if len(v.Exclude) > 0 && intersects(tags, v.Exclude) {
		return false
	}
	return true
}

func intersects(a, b []string) bool {
	set := make(map[string]bool, len(b))
	for _, s := range b {
		set[s] = true
	}
	for _, s := range a {
		if set[s] {
			return true
		}
	}
	return false
}
