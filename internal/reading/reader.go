// Package reading parses YAML input into a coordinate-preserving dictionary
// so validation errors can point at exact source locations.
package reading

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AcceptedExtensions are the input file extensions the reader understands.
var AcceptedExtensions = []string{".yaml", ".yml", ".json", ".json5"}

// Span is a 1-indexed source range.
type Span struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Document is a parsed input: the plain data tree plus a span and key-order
// index keyed by dotted paths ("cv.sections.experience.0.company"; "" is the
// root).
type Document struct {
	Source   string
	Data     map[string]any
	spans    map[string]Span
	keyOrder map[string][]string
}

// ReadFile reads a YAML or JSON file into a Document.
func ReadFile(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	ok := false
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			ok = true
			break
		}
	}
	if !ok {
		return nil, &ReadError{Message: fmt.Sprintf("unsupported file extension %q, use one of %s", ext, strings.Join(AcceptedExtensions, ", "))}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Message: fmt.Sprintf("input file not found: %s", path), Cause: err}
	}
	return ReadString(string(data), path)
}

// ReadString parses YAML source. The source name tags every error and span
// produced from this document.
func ReadString(src, source string) (*Document, error) {
	src = quoteLeadingStars(src)

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(src), &root); err != nil {
		return nil, parseError(err, source)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, &ReadError{Message: "the input file is empty"}
	}
	top := root.Content[0]
	if top.Kind == yaml.ScalarNode && top.Tag == "!!null" {
		return nil, &ReadError{Message: "the input file is empty"}
	}
	if top.Kind != yaml.MappingNode {
		return nil, &ReadError{Message: "the top level of the input must be a mapping"}
	}

	doc := &Document{
		Source:   source,
		spans:    map[string]Span{},
		keyOrder: map[string][]string{},
	}
	value := doc.convert(top, "")
	m, _ := value.(map[string]any)
	doc.Data = m
	return doc, nil
}

// Span returns the recorded source range for a dotted path.
func (d *Document) Span(path string) (Span, bool) {
	s, ok := d.spans[path]
	return s, ok
}

// KeyOrder returns the input order of the keys of the mapping at path.
func (d *Document) KeyOrder(path string) []string {
	return d.keyOrder[path]
}

// RecordSpan stores a span for a path. Used by the composer when overrides
// introduce leaves that have no source location of their own.
func (d *Document) RecordSpan(path string, s Span) {
	d.spans[path] = s
}

// RecordKey appends a key to the key order of the mapping at path if it is
// not present yet.
func (d *Document) RecordKey(path, key string) {
	for _, k := range d.keyOrder[path] {
		if k == key {
			return
		}
	}
	d.keyOrder[path] = append(d.keyOrder[path], key)
}

func (d *Document) convert(node *yaml.Node, path string) any {
	d.spans[path] = nodeSpan(node)
	switch node.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(node.Content)/2)
		var order []string
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			order = append(order, key)
			m[key] = d.convert(node.Content[i+1], childPath(path, key))
		}
		d.keyOrder[path] = order
		return m
	case yaml.SequenceNode:
		s := make([]any, 0, len(node.Content))
		for i, child := range node.Content {
			s = append(s, d.convert(child, childPath(path, strconv.Itoa(i))))
		}
		return s
	case yaml.AliasNode:
		// Aliases are disabled; the pre-scan should prevent this, but a
		// stray anchored alias decodes as its plain text.
		return "*" + node.Value
	default:
		return scalarValue(node)
	}
}

func childPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// scalarValue converts a scalar node by tag. Timestamp-looking scalars stay
// strings so dates are never auto-parsed.
func scalarValue(node *yaml.Node) any {
	switch node.Tag {
	case "!!int":
		if n, err := strconv.Atoi(node.Value); err == nil {
			return n
		}
	case "!!float":
		if f, err := strconv.ParseFloat(node.Value, 64); err == nil {
			return f
		}
	case "!!bool":
		if b, err := strconv.ParseBool(node.Value); err == nil {
			return b
		}
	case "!!null":
		return nil
	}
	return node.Value
}

func nodeSpan(node *yaml.Node) Span {
	s := Span{
		StartLine:   node.Line,
		StartColumn: node.Column,
		EndLine:     node.Line,
		EndColumn:   node.Column,
	}
	switch node.Kind {
	case yaml.ScalarNode:
		lines := strings.Split(node.Value, "\n")
		if len(lines) > 1 {
			s.EndLine = node.Line + len(lines) - 1
			s.EndColumn = len(lines[len(lines)-1]) + 1
		} else {
			s.EndColumn = node.Column + len(node.Value)
		}
	case yaml.MappingNode, yaml.SequenceNode:
		if len(node.Content) > 0 {
			last := nodeSpan(node.Content[len(node.Content)-1])
			s.EndLine = last.EndLine
			s.EndColumn = last.EndColumn
		}
	}
	return s
}

// starValuePattern matches scalars that begin with * after a key, a sequence
// dash, or inside a flow collection. YAML would read these as aliases;
// publications use ***name*** bold markup instead, so the pre-scan quotes
// them.
var starValuePattern = regexp.MustCompile(`(:\s+|-\s+|\[\s*|,\s*)(\*[^,\]\n#]*)`)

func quoteLeadingStars(src string) string {
	return starValuePattern.ReplaceAllStringFunc(src, func(match string) string {
		sub := starValuePattern.FindStringSubmatch(match)
		value := strings.TrimRight(sub[2], " \t")
		trailing := sub[2][len(value):]
		if strings.Contains(value, `"`) {
			value = strings.ReplaceAll(value, `"`, `\"`)
		}
		return sub[1] + `"` + value + `"` + trailing
	})
}
