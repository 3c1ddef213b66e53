package types

import "path/filepath"

// RootModel composes the whole input document.
type RootModel struct {
	CV       CV        `yaml:"cv" json:"cv"`
	Design   Design    `yaml:"design" json:"design"`
	Locale   Locale    `yaml:"locale" json:"locale"`
	Settings Settings  `yaml:"settings" json:"settings"`
	Versions []Version `yaml:"versions,omitempty" json:"versions,omitempty"`

	// InputFilePath is the source the model was read from, used for
	// relative-path resolution (photo, fonts, output paths).
	InputFilePath string `yaml:"-" json:"-"`
}

// InputDir returns the directory of the input file, or "." when the model
// was built from a string.
func (m *RootModel) InputDir() string {
	if m.InputFilePath == "" {
		return "."
	}
	return filepath.Dir(m.InputFilePath)
}

// VersionByName looks up a declared version.
func (m *RootModel) VersionByName(name string) (*Version, bool) {
	for i := range m.Versions {
		if m.Versions[i].Name == name {
			return &m.Versions[i], true
		}
	}
	return nil, false
}
