package types

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"
	ftypes "github.com/h2non/filetype/types"
)

// CV is the content half of the model: header fields plus ordered sections.
type CV struct {
	Name           string          `yaml:"name,omitempty" json:"name,omitempty"`
	Location       string          `yaml:"location,omitempty" json:"location,omitempty"`
	Email          string          `yaml:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Photo          string          `yaml:"photo,omitempty" json:"photo,omitempty"`
	Phone          string          `yaml:"phone,omitempty" json:"phone,omitempty"`
	Website        string          `yaml:"website,omitempty" json:"website,omitempty" validate:"omitempty,url"`
	SocialNetworks []SocialNetwork `yaml:"social_networks,omitempty" json:"social_networks,omitempty" validate:"dive"`
	Sections       []Section       `yaml:"-" json:"-"`

	// KeyOrder remembers the order of the CV's non-null top-level keys as
	// they appeared in the source, for rendering header connections.
	KeyOrder []string `yaml:"-" json:"-"`
}

// allowedPhotoTypes are the image formats accepted for the photo field,
// verified by magic bytes regardless of extension.
var allowedPhotoTypes = map[ftypes.Type]bool{
	matchers.TypePng:  true,
	matchers.TypeJpeg: true,
	matchers.TypeGif:  true,
	matchers.TypeBmp:  true,
	matchers.TypeWebp: true,
	matchers.TypeTiff: true,
}

// ValidatePhoto resolves the photo path against the input file's directory
// and verifies the file exists and carries an image signature.
func (c *CV) ValidatePhoto(inputDir string) []FieldIssue {
	if c.Photo == "" {
		return nil
	}
	path := c.Photo
	if !filepath.IsAbs(path) && inputDir != "" {
		path = filepath.Join(inputDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return []FieldIssue{{
			Field:   "photo",
			Message: fmt.Sprintf("photo file not found: %s", c.Photo),
			Input:   c.Photo,
		}}
	}
	kind, err := filetype.Match(data)
	if err != nil || !allowedPhotoTypes[kind] {
		return []FieldIssue{{
			Field:   "photo",
			Message: "photo must be a PNG, JPEG, GIF, BMP, WebP, or TIFF image",
			Input:   c.Photo,
		}}
	}
	c.Photo = path
	return nil
}

// SectionByTitle returns the section with the given display title.
func (c *CV) SectionByTitle(title string) (*Section, bool) {
	for i := range c.Sections {
		if c.Sections[i].Title == title {
			return &c.Sections[i], true
		}
	}
	return nil, false
}
