package types

// entryFieldNames lists every declared field of each entry model, tags
// included. Characteristic fields are derived from these sets at init.
var entryFieldNames = map[EntryKind][]string{
	KindText:             {"content", "tags"},
	KindBullet:           {"bullet", "tags"},
	KindNumbered:         {"number", "tags"},
	KindReversedNumbered: {"reversed_number", "tags"},
	KindOneLine:          {"label", "details", "tags"},
	KindEducation: {"institution", "area", "degree", "grade",
		"start_date", "end_date", "date", "location", "summary", "highlights", "tags"},
	KindExperience: {"company", "position",
		"start_date", "end_date", "date", "location", "summary", "highlights", "tags"},
	KindNormal: {"name",
		"start_date", "end_date", "date", "location", "summary", "highlights", "tags"},
	KindPublication: {"title", "authors", "doi", "url", "journal", "date", "tags"},
}

// characteristicFields maps each entry kind to the field names that occur in
// that model and no other. Populated at init.
var characteristicFields map[EntryKind]map[string]bool

func init() {
	counts := map[string]int{}
	for _, fields := range entryFieldNames {
		for _, f := range fields {
			counts[f]++
		}
	}
	characteristicFields = make(map[EntryKind]map[string]bool, len(entryFieldNames))
	for kind, fields := range entryFieldNames {
		set := map[string]bool{}
		for _, f := range fields {
			if counts[f] == 1 {
				set[f] = true
			}
		}
		characteristicFields[kind] = set
	}
}

// CharacteristicFields returns the uniquely-owned field names of a kind.
func CharacteristicFields(kind EntryKind) map[string]bool {
	return characteristicFields[kind]
}

// KnownFields returns the declared field names of a kind as a set.
func KnownFields(kind EntryKind) map[string]bool {
	set := map[string]bool{}
	for _, f := range entryFieldNames[kind] {
		set[f] = true
	}
	return set
}

// DetectEntryKind inspects the keys of a mapping entry and returns the entry
// model whose characteristic fields intersect them. The second return is
// false when no model claims any of the keys. Characteristic fields are
// unique by construction, so iteration order cannot change the outcome.
func DetectEntryKind(keys []string) (EntryKind, bool) {
	for _, kind := range []EntryKind{
		KindBullet, KindNumbered, KindReversedNumbered, KindOneLine,
		KindEducation, KindExperience, KindPublication, KindNormal, KindText,
	} {
		set := characteristicFields[kind]
		for _, k := range keys {
			if set[k] {
				return kind, true
			}
		}
	}
	return "", false
}
