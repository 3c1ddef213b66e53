// Package templating assembles the final Typst and Markdown sources from a
// preprocessed model and the theme's template files.
package templating

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/jonathan/rendercv/internal/preprocessing"
	"github.com/jonathan/rendercv/internal/types"
)

//go:embed themes
var builtinThemes embed.FS

// TemplateError reports a theme template that failed to parse or execute.
type TemplateError struct {
	Theme   string
	Name    string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("theme %s, template %s: %s", e.Theme, e.Name, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// Engine loads theme templates, preferring a same-named directory in the
// working directory over the built-in files so users can override any piece
// of a theme.
type Engine struct {
	workDir string
	funcs   template.FuncMap
}

func NewEngine(workDir string) *Engine {
	return &Engine{
		workDir: workDir,
		funcs: template.FuncMap{
			"typstColor": TypstColor,
			"join":       strings.Join,
			"lower":      strings.ToLower,
			"inline": func(s string) string {
				return strings.Join(strings.Split(s, "\n"), ", ")
			},
		},
	}
}

// RenderTypst produces the Typst source for the CV.
func (e *Engine) RenderTypst(result *preprocessing.Result) (string, error) {
	return e.render(result, "main.typ.tmpl")
}

// RenderMarkdown produces the Markdown rendition of the CV.
func (e *Engine) RenderMarkdown(result *preprocessing.Result) (string, error) {
	return e.render(result, "main.md.tmpl")
}

// RenderHTMLShell wraps rendered HTML body content in the theme's page
// shell.
func (e *Engine) RenderHTMLShell(theme, title, body string) (string, error) {
	src, err := e.load(theme, "main.html.tmpl")
	if err != nil {
		return "", err
	}
	tmpl, err := template.New("main.html.tmpl").Delims("<<", ">>").Funcs(e.funcs).Parse(src)
	if err != nil {
		return "", &TemplateError{Theme: theme, Name: "main.html.tmpl", Message: "parse failed", Cause: err}
	}
	var out strings.Builder
	data := struct {
		Title string
		Body  string
	}{Title: title, Body: body}
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &TemplateError{Theme: theme, Name: "main.html.tmpl", Message: "execution failed", Cause: err}
	}
	return out.String(), nil
}

func (e *Engine) render(result *preprocessing.Result, name string) (string, error) {
	theme := result.Model.Design.Theme
	src, err := e.load(theme, name)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(name).Delims("<<", ">>").Funcs(e.funcs).Parse(src)
	if err != nil {
		return "", &TemplateError{Theme: theme, Name: name, Message: "parse failed", Cause: err}
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, result); err != nil {
		return "", &TemplateError{Theme: theme, Name: name, Message: "execution failed", Cause: err}
	}
	return out.String(), nil
}

// load resolves a template by name: working-directory theme folder first,
// then the built-in theme, then the classic fallback for themes that only
// override a subset of the files.
func (e *Engine) load(theme, name string) (string, error) {
	if e.workDir != "" {
		override := filepath.Join(e.workDir, theme, name)
		if data, err := os.ReadFile(override); err == nil {
			return string(data), nil
		}
	}
	if types.IsBuiltinTheme(theme) {
		if data, err := builtinThemes.ReadFile("themes/" + theme + "/" + name); err == nil {
			return string(data), nil
		}
	}
	if data, err := builtinThemes.ReadFile("themes/classic/" + name); err == nil {
		return string(data), nil
	}
	return "", &TemplateError{Theme: theme, Name: name, Message: "template not found"}
}

var (
	rgbColorPattern = regexp.MustCompile(`^rgb\((\d+),\s*(\d+),\s*(\d+)\)$`)
	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
)

// TypstColor converts a config color into a Typst color expression.
func TypstColor(color string) string {
	if m := rgbColorPattern.FindStringSubmatch(color); m != nil {
		return fmt.Sprintf("rgb(%s, %s, %s)", m[1], m[2], m[3])
	}
	if hexColorPattern.MatchString(color) {
		return fmt.Sprintf("rgb(%q)", color)
	}
	return color
}
