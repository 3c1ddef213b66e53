package reading

import (
	"fmt"
	"regexp"
	"strconv"
)

// ReadError represents a failure to read the input at all: missing file,
// wrong extension, or an empty document.
type ReadError struct {
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("read error: %s", e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}

// ParseError represents a YAML syntax failure with a best-effort source
// location. It converts into a single validation record downstream so all
// user-facing errors flow through one renderer.
type ParseError struct {
	Message string
	Line    int
	Source  string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Source, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

var yamlLinePattern = regexp.MustCompile(`line (\d+):\s*(.*)`)

func parseError(err error, source string) *ParseError {
	pe := &ParseError{Message: err.Error(), Source: source, Cause: err}
	if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
		if n, convErr := strconv.Atoi(m[1]); convErr == nil {
			pe.Line = n
		}
		pe.Message = m[2]
	}
	return pe
}
