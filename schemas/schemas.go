// Package schemas ships the JSON Schema of the input document, for editor
// integration and pre-validation.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

// JSON returns the raw schema document.
func JSON() []byte {
	return schemaJSON
}

// ValidationIssue is one schema violation.
type ValidationIssue struct {
	Field   string
	Message string
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// Validate checks a decoded input dictionary against the schema.
func Validate(document map[string]any) ([]ValidationIssue, error) {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	documentLoader := gojsonschema.NewGoLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("running schema validation: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	issues := make([]ValidationIssue, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, ValidationIssue{
			Field:   strings.ReplaceAll(desc.Field(), "(root)", ""),
			Message: desc.Description(),
		})
	}
	return issues, nil
}
