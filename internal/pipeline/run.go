// Package pipeline wires the full render flow: read, compose, validate,
// filter, preprocess, template, and write every requested output format.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/rendercv/internal/composing"
	"github.com/jonathan/rendercv/internal/filtering"
	"github.com/jonathan/rendercv/internal/preprocessing"
	"github.com/jonathan/rendercv/internal/reading"
	"github.com/jonathan/rendercv/internal/rendering"
	"github.com/jonathan/rendercv/internal/templating"
	"github.com/jonathan/rendercv/internal/types"
	"github.com/jonathan/rendercv/internal/validation"
)

// Options configure one pipeline run.
type Options struct {
	InputPath   string
	Version     string
	Overlays    map[string]string // overlay key -> file path
	Overrides   map[string]string // dotted path -> raw value
	RenderFlags map[string]any    // CLI flags folded into settings.render_command
	WorkDir     string
	Now         time.Time
	Logger      *zap.Logger
}

// Outputs lists what a run produced.
type Outputs struct {
	Paths    rendering.OutputPaths
	PNGPages []string
}

// BuildModel reads, composes, and validates the input into a typed model.
func BuildModel(opts Options) (*types.RootModel, error) {
	main, err := reading.ReadFile(opts.InputPath)
	if err != nil {
		return nil, err
	}
	overlays := composing.Overlays{}
	for key, path := range opts.Overlays {
		doc, err := reading.ReadFile(path)
		if err != nil {
			return nil, err
		}
		overlays[key] = doc
	}
	composed, err := composing.Compose(main, overlays, opts.RenderFlags, opts.Overrides)
	if err != nil {
		return nil, err
	}
	model, err := validation.Build(composed, validation.Context{
		InputFilePath: opts.InputPath,
		WorkDir:       opts.WorkDir,
		Now:           opts.Now,
	})
	if err != nil {
		return nil, err
	}
	if opts.Version != "" {
		model, err = filtering.ApplyVersion(model, opts.Version)
		if err != nil {
			return nil, err
		}
	}
	return model, nil
}

// Run executes the full render flow for one input file.
func Run(ctx context.Context, opts Options) (*Outputs, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	model, err := BuildModel(opts)
	if err != nil {
		return nil, err
	}
	log.Info("input validated",
		zap.String("input", opts.InputPath),
		zap.String("theme", model.Design.Theme))

	outputs := &Outputs{Paths: rendering.ResolveOutputPaths(model)}
	rc := model.Settings.RenderCommand
	engine := templating.NewEngine(opts.WorkDir)

	group, ctx := errgroup.WithContext(ctx)

	// The Typst and Markdown branches preprocess independently, so neither
	// sees the other's escaping.
	group.Go(func() error {
		return runTypstBranch(ctx, model, engine, outputs, log)
	})
	if !rc.DontGenerateMarkdown {
		group.Go(func() error {
			return runMarkdownBranch(model, engine, outputs, log)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func runTypstBranch(ctx context.Context, model *types.RootModel, engine *templating.Engine, outputs *Outputs, log *zap.Logger) error {
	rc := model.Settings.RenderCommand
	needPDF := !rc.DontGeneratePDF
	needPNG := !rc.DontGeneratePNG
	if rc.DontGenerateTypst && !needPDF && !needPNG {
		return nil
	}

	result, err := preprocessing.Run(model, preprocessing.FormatTypst)
	if err != nil {
		return err
	}
	source, err := engine.RenderTypst(result)
	if err != nil {
		return err
	}

	typstPath := outputs.Paths.Typst
	if rc.DontGenerateTypst {
		// PDF or PNG still needs a source file on disk; use a throwaway one.
		typstPath = filepath.Join(filepath.Dir(outputs.Paths.Typst), uuid.NewString()+".typ")
		defer os.Remove(typstPath)
	}
	if err := rendering.WriteTypst(source, typstPath); err != nil {
		return err
	}
	if !rc.DontGenerateTypst {
		log.Info("wrote Typst source", zap.String("path", typstPath))
	}

	if !needPDF && !needPNG {
		return nil
	}
	compiler, err := rendering.NewCompiler(log)
	if err != nil {
		return err
	}
	fontDirs := []string{filepath.Join(model.InputDir(), "fonts")}
	if needPDF {
		if err := compiler.CompilePDF(ctx, typstPath, outputs.Paths.PDF, fontDirs); err != nil {
			return err
		}
		log.Info("wrote PDF", zap.String("path", outputs.Paths.PDF))
	}
	if needPNG {
		pages, err := compiler.CompilePNG(ctx, typstPath, outputs.Paths.PNG, fontDirs)
		if err != nil {
			return err
		}
		outputs.PNGPages = pages
		log.Info("wrote PNG pages", zap.Int("pages", len(pages)))
	}
	return nil
}

func runMarkdownBranch(model *types.RootModel, engine *templating.Engine, outputs *Outputs, log *zap.Logger) error {
	rc := model.Settings.RenderCommand

	result, err := preprocessing.Run(model, preprocessing.FormatMarkdown)
	if err != nil {
		return err
	}
	markdown, err := engine.RenderMarkdown(result)
	if err != nil {
		return err
	}
	if err := rendering.WriteMarkdown(markdown, outputs.Paths.Markdown); err != nil {
		return err
	}
	log.Info("wrote Markdown", zap.String("path", outputs.Paths.Markdown))

	if rc.DontGenerateHTML {
		return nil
	}
	title, body, err := rendering.MarkdownToHTML(markdown)
	if err != nil {
		return err
	}
	if title == "" {
		title = model.CV.Name
	}
	html, err := engine.RenderHTMLShell(model.Design.Theme, title, body)
	if err != nil {
		return err
	}
	if err := rendering.WriteHTML(html, outputs.Paths.HTML); err != nil {
		return err
	}
	log.Info("wrote HTML", zap.String("path", outputs.Paths.HTML))
	return nil
}
