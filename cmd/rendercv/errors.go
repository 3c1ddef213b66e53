package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/rendercv/internal/pipeline"
	"github.com/jonathan/rendercv/internal/validation"
)

// printError writes errors in user-facing form: validation problems become a
// table of locations and messages, everything else prints as one line.
func printError(err error) {
	var userErr *validation.UserError
	if errors.As(err, &userErr) {
		fmt.Fprintln(os.Stderr, userErr.Message)
		for _, rec := range userErr.Records {
			fmt.Fprintf(os.Stderr, "  %s\n", rec.String())
		}
		return
	}
	var internalErr *validation.InternalError
	if errors.As(err, &internalErr) {
		fmt.Fprintf(os.Stderr, "error: %s\n", internalErr.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

func zapPaths(outputs *pipeline.Outputs) []zap.Field {
	fields := []zap.Field{}
	add := func(key, path string) {
		if path != "" {
			fields = append(fields, zap.String(key, path))
		}
	}
	add("typst", outputs.Paths.Typst)
	add("pdf", outputs.Paths.PDF)
	add("markdown", outputs.Paths.Markdown)
	add("html", outputs.Paths.HTML)
	if len(outputs.PNGPages) > 0 {
		fields = append(fields, zap.Strings("png", outputs.PNGPages))
	}
	return fields
}
