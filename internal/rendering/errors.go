package rendering

import "fmt"

// RenderError reports a failure while producing an output file.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// CompilationError reports a Typst compiler failure, carrying the compiler's
// combined output for diagnosis.
type CompilationError struct {
	Message string
	Output  string
	Cause   error
}

func (e *CompilationError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s\n%s", e.Message, e.Output)
	}
	return e.Message
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}
