// Package validation decodes the composed input dictionary into the typed
// root model and translates every failure into a user-facing record with
// exact YAML coordinates.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/rendercv/internal/reading"
)

// ValidationRecord is one user-facing validation failure.
//
//nolint:revive // the record crosses the core boundary under this name
type ValidationRecord struct {
	SchemaLocation []string
	YamlLocation   *reading.Span
	YamlSource     string
	Message        string
	Input          any
}

// String formats a record as "path (file:line:col): message".
func (r ValidationRecord) String() string {
	location := strings.Join(r.SchemaLocation, ".")
	if r.YamlLocation != nil {
		source := r.YamlSource
		if source == "" {
			source = "input"
		}
		return fmt.Sprintf("%s (%s:%d:%d): %s", location, source,
			r.YamlLocation.StartLine, r.YamlLocation.StartColumn, r.Message)
	}
	return fmt.Sprintf("%s: %s", location, r.Message)
}

// UserError is an error the caller can fix by editing inputs or flags. It
// carries either a plain message or a list of validation records.
type UserError struct {
	Message string
	Records []ValidationRecord
}

func (e *UserError) Error() string {
	if len(e.Records) == 0 {
		return e.Message
	}
	var sb strings.Builder
	if e.Message != "" {
		sb.WriteString(e.Message)
	} else {
		fmt.Fprintf(&sb, "the input is not valid (%d errors)", len(e.Records))
	}
	for _, r := range e.Records {
		sb.WriteString("\n  ")
		sb.WriteString(r.String())
	}
	return sb.String()
}

// InternalError is an invariant violation; it surfaces as a bug report.
type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	msg := fmt.Sprintf("internal error: %s. This is a bug, please report it.", e.Message)
	if e.Cause != nil {
		return fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	return msg
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}
