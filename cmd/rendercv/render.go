package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/rendercv/internal/observability"
	"github.com/jonathan/rendercv/internal/pipeline"
)

type renderFlags struct {
	design   string
	locale   string
	settings string
	sets     []string
	version  string

	outputFolderName string
	typstPath        string
	pdfPath          string
	pngPath          string
	markdownPath     string
	htmlPath         string

	dontGenerateTypst    bool
	dontGeneratePDF      bool
	dontGeneratePNG      bool
	dontGenerateMarkdown bool
	dontGenerateHTML     bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render <input.yaml>",
		Short: "Render a CV input file into every requested format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.design, "design", "", "design overlay file")
	cmd.Flags().StringVar(&flags.locale, "locale", "", "locale overlay file")
	cmd.Flags().StringVar(&flags.settings, "settings", "", "settings overlay file")
	cmd.Flags().StringArrayVar(&flags.sets, "set", nil, "override a value by dotted path, e.g. --set cv.name='Jane Roe'")
	cmd.Flags().StringVar(&flags.version, "version", "", "render the named version only")

	cmd.Flags().StringVar(&flags.outputFolderName, "output-folder-name", "", "output folder")
	cmd.Flags().StringVar(&flags.typstPath, "typst-path", "", "Typst output path")
	cmd.Flags().StringVar(&flags.pdfPath, "pdf-path", "", "PDF output path")
	cmd.Flags().StringVar(&flags.pngPath, "png-path", "", "PNG output path")
	cmd.Flags().StringVar(&flags.markdownPath, "markdown-path", "", "Markdown output path")
	cmd.Flags().StringVar(&flags.htmlPath, "html-path", "", "HTML output path")

	cmd.Flags().BoolVar(&flags.dontGenerateTypst, "dont-generate-typst", false, "skip the Typst file")
	cmd.Flags().BoolVar(&flags.dontGeneratePDF, "dont-generate-pdf", false, "skip the PDF")
	cmd.Flags().BoolVar(&flags.dontGeneratePNG, "dont-generate-png", false, "skip the PNGs")
	cmd.Flags().BoolVar(&flags.dontGenerateMarkdown, "dont-generate-markdown", false, "skip the Markdown file")
	cmd.Flags().BoolVar(&flags.dontGenerateHTML, "dont-generate-html", false, "skip the HTML file")

	return cmd
}

func runRender(cmd *cobra.Command, inputPath string, flags *renderFlags) error {
	logger, err := observability.NewLogger(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	overrides := map[string]string{}
	for _, set := range flags.sets {
		key, value, found := strings.Cut(set, "=")
		if !found {
			return fmt.Errorf("--set wants key=value, got %q", set)
		}
		overrides[key] = value
	}

	overlays := map[string]string{}
	if flags.design != "" {
		overlays["design"] = flags.design
	}
	if flags.locale != "" {
		overlays["locale"] = flags.locale
	}
	if flags.settings != "" {
		overlays["settings"] = flags.settings
	}

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		InputPath:   inputPath,
		Version:     flags.version,
		Overlays:    overlays,
		Overrides:   overrides,
		RenderFlags: collectRenderFlags(cmd, flags),
		WorkDir:     workDir,
		Now:         time.Now(),
		Logger:      logger,
	}
	outputs, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}
	logger.Info("render finished", zapPaths(outputs)...)
	return nil
}

// collectRenderFlags folds only the flags the user actually set into the
// settings dictionary, so file-based settings win otherwise.
func collectRenderFlags(cmd *cobra.Command, flags *renderFlags) map[string]any {
	out := map[string]any{}
	set := func(name string, value any) {
		if cmd.Flags().Changed(name) {
			out[strings.ReplaceAll(name, "-", "_")] = value
		}
	}
	set("output-folder-name", flags.outputFolderName)
	set("typst-path", flags.typstPath)
	set("pdf-path", flags.pdfPath)
	set("png-path", flags.pngPath)
	set("markdown-path", flags.markdownPath)
	set("html-path", flags.htmlPath)
	set("dont-generate-typst", flags.dontGenerateTypst)
	set("dont-generate-pdf", flags.dontGeneratePDF)
	set("dont-generate-png", flags.dontGeneratePNG)
	set("dont-generate-markdown", flags.dontGenerateMarkdown)
	set("dont-generate-html", flags.dontGenerateHTML)
	return out
}
