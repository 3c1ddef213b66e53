package rendering

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdownConverter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// WriteMarkdown writes the Markdown rendition, creating parent directories
// as needed.
func WriteMarkdown(source, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &RenderError{Message: "creating output folder", Cause: err}
	}
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		return &RenderError{Message: "writing Markdown file", Cause: err}
	}
	return nil
}

// MarkdownToHTML converts the Markdown rendition to an HTML body and pulls
// the document title from its first top-level heading.
func MarkdownToHTML(markdown string) (title, body string, err error) {
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(line, "# ") {
			title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			break
		}
	}
	var buf bytes.Buffer
	if err := markdownConverter.Convert([]byte(markdown), &buf); err != nil {
		return "", "", &RenderError{Message: "converting Markdown to HTML", Cause: err}
	}
	return title, buf.String(), nil
}

// WriteHTML writes the HTML rendition, creating parent directories as
// needed.
func WriteHTML(html, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &RenderError{Message: "creating output folder", Cause: err}
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return &RenderError{Message: "writing HTML file", Cause: err}
	}
	return nil
}
