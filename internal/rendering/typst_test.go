package rendering

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func stubRunner(t *testing.T, fn func(dir, binary string, args []string) ([]byte, error)) {
	t.Helper()
	previous := runCommand
	runCommand = func(_ context.Context, dir, binary string, args []string) ([]byte, error) {
		return fn(dir, binary, args)
	}
	t.Cleanup(func() { runCommand = previous })
}

func TestCompilePDF_InvokesTypst(t *testing.T) {
	dir := t.TempDir()
	typstPath := filepath.Join(dir, "cv.typ")
	require.NoError(t, WriteTypst("#set page(paper: \"a4\")", typstPath))

	var gotArgs []string
	stubRunner(t, func(runDir, binary string, args []string) ([]byte, error) {
		assert.Equal(t, dir, runDir)
		gotArgs = args
		return nil, nil
	})

	c := &Compiler{binary: "typst", log: zap.NewNop()}
	err := c.CompilePDF(context.Background(), typstPath, filepath.Join(dir, "cv.pdf"), nil)
	require.NoError(t, err)
	require.Len(t, gotArgs, 3)
	assert.Equal(t, "compile", gotArgs[0])
	assert.Equal(t, typstPath, gotArgs[1])
}

func TestCompilePDF_FailureCarriesOutput(t *testing.T) {
	dir := t.TempDir()
	typstPath := filepath.Join(dir, "cv.typ")
	require.NoError(t, WriteTypst("#broken(", typstPath))

	stubRunner(t, func(_, _ string, _ []string) ([]byte, error) {
		return []byte("error: unclosed delimiter"), errors.New("exit status 1")
	})

	c := &Compiler{binary: "typst", log: zap.NewNop()}
	err := c.CompilePDF(context.Background(), typstPath, filepath.Join(dir, "cv.pdf"), nil)
	require.Error(t, err)

	var compileErr *CompilationError
	require.ErrorAs(t, err, &compileErr)
	assert.Contains(t, compileErr.Output, "unclosed delimiter")
	assert.Contains(t, compileErr.Error(), "cv.typ")
}

func TestCompilePNG_CollectsPages(t *testing.T) {
	dir := t.TempDir()
	typstPath := filepath.Join(dir, "cv.typ")
	require.NoError(t, WriteTypst("hello", typstPath))
	pngPath := filepath.Join(dir, "cv.png")

	stubRunner(t, func(_, _ string, args []string) ([]byte, error) {
		assert.Contains(t, args, "--format")
		assert.Contains(t, args, "png")
		for _, page := range []string{"cv_1.png", "cv_2.png"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, page), []byte("png"), 0o644))
		}
		return nil, nil
	})

	c := &Compiler{binary: "typst", log: zap.NewNop()}
	pages, err := c.CompilePNG(context.Background(), typstPath, pngPath, nil)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Contains(t, pages[0], "cv_1.png")
}

func TestCompileSource_StagesAwkwardNames(t *testing.T) {
	dir := t.TempDir()
	typstPath := filepath.Join(dir, "cv#1.typ")
	require.NoError(t, os.WriteFile(typstPath, []byte("hello"), 0o644))

	source, cleanup, err := compileSource(typstPath)
	require.NoError(t, err)
	assert.NotEqual(t, typstPath, source)
	assert.NotContains(t, filepath.Base(source), "#")

	data, err := os.ReadFile(source)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	cleanup()
	_, err = os.Stat(source)
	assert.True(t, os.IsNotExist(err))
}

func TestCompileSource_PlainNamesPassThrough(t *testing.T) {
	source, cleanup, err := compileSource("/tmp/cv.typ")
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, "/tmp/cv.typ", source)
}

func TestFontArgs_SkipsMissingDirs(t *testing.T) {
	dir := t.TempDir()
	args := fontArgs([]string{dir, filepath.Join(dir, "missing")})
	assert.Equal(t, []string{"--font-path", dir}, args)
}
