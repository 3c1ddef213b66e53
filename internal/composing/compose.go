// Package composing merges the main input dictionary with overlay documents
// and dotted-path overrides before validation.
package composing

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/rendercv/internal/reading"
)

// OverlayKeys are the top-level keys an overlay document may replace.
var OverlayKeys = []string{"design", "locale", "settings"}

// Overlays holds the optional sibling documents, keyed by their single
// top-level key.
type Overlays map[string]*reading.Document

// Composed is the merged dictionary plus the retained overlay documents, so
// validation errors under an overlaid key can cite the overlay file.
type Composed struct {
	Main     *reading.Document
	Overlays Overlays
}

// SourceFor returns the document that carries the coordinates for a dotted
// path: the overlay that owns the path's top-level key, or the main document.
func (c *Composed) SourceFor(path string) *reading.Document {
	top := path
	if i := strings.IndexByte(path, '.'); i >= 0 {
		top = path[:i]
	}
	if doc, ok := c.Overlays[top]; ok {
		return doc
	}
	return c.Main
}

// Compose applies overlays, render-command flags, and dotted-path overrides
// to the main document, in that order.
func Compose(main *reading.Document, overlays Overlays, renderFlags map[string]any, overrides map[string]string) (*Composed, error) {
	ensureRenderCommand(main)

	kept := Overlays{}
	for key, doc := range overlays {
		if doc == nil {
			continue
		}
		section, ok := doc.Data[key]
		if !ok {
			return nil, &OverrideError{
				Path:    key,
				Message: fmt.Sprintf("the %s overlay must have a single top-level %q key", key, key),
			}
		}
		main.Data[key] = section
		main.RecordKey("", key)
		kept[key] = doc
	}

	for key, value := range renderFlags {
		if value == nil {
			continue
		}
		settings := main.Data["settings"].(map[string]any)
		rc := settings["render_command"].(map[string]any)
		rc[key] = value
	}

	for path, raw := range overrides {
		if err := applyOverride(main.Data, path, parseScalar(raw)); err != nil {
			return nil, err
		}
	}

	return &Composed{Main: main, Overlays: kept}, nil
}

func ensureRenderCommand(doc *reading.Document) {
	settings, ok := doc.Data["settings"].(map[string]any)
	if !ok {
		settings = map[string]any{}
		doc.Data["settings"] = settings
	}
	if _, ok := settings["render_command"].(map[string]any); !ok {
		settings["render_command"] = map[string]any{}
	}
}

// parseScalar interprets an override value the way YAML would, so "true",
// "5", and "rgb(255,0,0)" get natural types.
func parseScalar(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	switch v.(type) {
	case map[string]any, []any:
		// Overrides address single leaves; collections stay raw strings.
		return raw
	}
	return v
}

// applyOverride walks the dictionary along a dotted path, creating mappings
// as needed, and sets the leaf.
func applyOverride(data map[string]any, path string, value any) error {
	steps := strings.Split(path, ".")
	var current any = data
	walked := []string{}

	for i, step := range steps {
		last := i == len(steps)-1
		parent := strings.Join(walked, ".")

		switch node := current.(type) {
		case map[string]any:
			if last {
				node[step] = value
				return nil
			}
			next, ok := node[step]
			if !ok || next == nil {
				next = map[string]any{}
				node[step] = next
			}
			current = next
		case []any:
			index, err := strconv.Atoi(step)
			if err != nil {
				return &OverrideError{
					Path:    path,
					Message: fmt.Sprintf("%q is a list, so %q must be an integer index", parent, step),
				}
			}
			if index < 0 || index >= len(node) {
				return &OverrideError{
					Path:    path,
					Message: fmt.Sprintf("index %d is out of range for the list at %q", index, parent),
				}
			}
			if last {
				node[index] = value
				return nil
			}
			current = node[index]
		default:
			return &OverrideError{
				Path:    path,
				Message: fmt.Sprintf("cannot descend into %q, it is not a mapping or a list", parent),
			}
		}
		walked = append(walked, step)
	}
	return nil
}
