package rendering

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const compileTimeout = 2 * time.Minute

// Compiler drives the external typst binary.
type Compiler struct {
	binary string
	log    *zap.Logger
}

// NewCompiler locates the typst binary on PATH.
func NewCompiler(log *zap.Logger) (*Compiler, error) {
	binary, err := exec.LookPath("typst")
	if err != nil {
		return nil, &RenderError{
			Message: "typst was not found on PATH, install it to render PDFs",
			Cause:   err,
		}
	}
	return &Compiler{binary: binary, log: log}, nil
}

// WriteTypst writes the Typst source, creating parent directories as needed.
func WriteTypst(source, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &RenderError{Message: "creating output folder", Cause: err}
	}
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		return &RenderError{Message: "writing Typst file", Cause: err}
	}
	return nil
}

// CompilePDF compiles a Typst file into a PDF.
func (c *Compiler) CompilePDF(ctx context.Context, typstPath, pdfPath string, fontDirs []string) error {
	if err := os.MkdirAll(filepath.Dir(pdfPath), 0o755); err != nil {
		return &RenderError{Message: "creating output folder", Cause: err}
	}
	source, cleanup, err := compileSource(typstPath)
	if err != nil {
		return err
	}
	defer cleanup()

	args := []string{"compile", source, pdfPath}
	args = append(args, fontArgs(fontDirs)...)
	return c.run(ctx, typstPath, args)
}

// CompilePNG compiles a Typst file into one PNG per page and returns the
// generated files. The pattern's {p} placeholder becomes the page number.
func (c *Compiler) CompilePNG(ctx context.Context, typstPath, pngPath string, fontDirs []string) ([]string, error) {
	if err := os.MkdirAll(filepath.Dir(pngPath), 0o755); err != nil {
		return nil, &RenderError{Message: "creating output folder", Cause: err}
	}
	source, cleanup, err := compileSource(typstPath)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	pattern := pngPattern(pngPath)
	args := []string{"compile", "--format", "png", source, pattern}
	args = append(args, fontArgs(fontDirs)...)
	if err := c.run(ctx, typstPath, args); err != nil {
		return nil, err
	}
	pages, err := filepath.Glob(strings.ReplaceAll(pattern, "{p}", "*"))
	if err != nil {
		return nil, &RenderError{Message: "collecting PNG pages", Cause: err}
	}
	return pages, nil
}

// runCommand executes the compiler process. Tests substitute it to exercise
// the drivers without a typst installation.
var runCommand = func(ctx context.Context, dir, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

func (c *Compiler) run(ctx context.Context, typstPath string, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, compileTimeout)
	defer cancel()

	output, err := runCommand(ctx, filepath.Dir(typstPath), c.binary, args)
	if err != nil {
		c.log.Error("typst compilation failed",
			zap.String("file", typstPath),
			zap.String("output", string(output)))
		return &CompilationError{
			Message: "typst failed to compile " + filepath.Base(typstPath),
			Output:  string(output),
			Cause:   err,
		}
	}
	c.log.Debug("typst compilation succeeded", zap.String("file", typstPath))
	return nil
}

// compileSource hands typst a plainly named copy when the file name contains
// characters the CLI mishandles.
func compileSource(typstPath string) (string, func(), error) {
	if !strings.ContainsAny(filepath.Base(typstPath), "#$%{}") {
		return typstPath, func() {}, nil
	}
	data, err := os.ReadFile(typstPath)
	if err != nil {
		return "", nil, &RenderError{Message: "reading Typst file", Cause: err}
	}
	safe := filepath.Join(filepath.Dir(typstPath), uuid.NewString()+".typ")
	if err := os.WriteFile(safe, data, 0o644); err != nil {
		return "", nil, &RenderError{Message: "staging Typst file", Cause: err}
	}
	return safe, func() { os.Remove(safe) }, nil
}

// fontArgs builds the --font-path flags, skipping directories that do not
// exist.
func fontArgs(fontDirs []string) []string {
	var args []string
	for _, dir := range fontDirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			args = append(args, "--font-path", dir)
		}
	}
	return args
}

// pngPattern converts the PNG path setting into typst's page pattern:
// cv.png becomes cv_{p}.png.
func pngPattern(pngPath string) string {
	ext := filepath.Ext(pngPath)
	return strings.TrimSuffix(pngPath, ext) + "_{p}" + ext
}
