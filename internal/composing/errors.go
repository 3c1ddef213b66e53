package composing

import "fmt"

// OverrideError represents a dotted-path override that cannot be applied.
type OverrideError struct {
	Path    string
	Message string
}

func (e *OverrideError) Error() string {
	return fmt.Sprintf("override error at %q: %s", e.Path, e.Message)
}
