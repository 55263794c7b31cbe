package compiling

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeXeLaTeXSuccess mimics a successful run: it produces the PDF plus
// the usual auxiliary files next to the source. $2 is the source file,
// after -interaction=nonstopmode.
const fakeXeLaTeXSuccess = `stem="${2%.tex}"
: > "$stem.pdf"
: > "$stem.aux"
: > "$stem.log"
echo "Output written on $stem.pdf"
`

func writeTexFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "doc.tex")
	require.NoError(t, os.WriteFile(path, []byte(`\documentclass{article}\begin{document}x\end{document}`), 0o644))
	return path
}

func TestCompileFileMissingSource(t *testing.T) {
	c := New(EngineXeLaTeX)
	_, err := c.CompileFile(context.Background(), filepath.Join(t.TempDir(), "absent.tex"), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tex file not found")
}

func TestCompileFileNoEngineAvailable(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	texPath := writeTexFile(t, t.TempDir())

	c := New(EngineAuto)
	_, err := c.CompileFile(context.Background(), texPath, Options{})

	var uerr *EngineUnavailableError
	require.ErrorAs(t, err, &uerr)
}

func TestCompileFileSuccess(t *testing.T) {
	tools := t.TempDir()
	installFakeTool(t, tools, "xelatex", fakeXeLaTeXSuccess)
	t.Setenv("PATH", tools)

	dir := t.TempDir()
	texPath := writeTexFile(t, dir)

	c := New(EngineXeLaTeX)
	pdfPath, err := c.CompileFile(context.Background(), texPath, Options{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "doc.pdf"), pdfPath)
	assert.FileExists(t, pdfPath)

	// Auxiliary files are swept up after a successful run.
	assert.NoFileExists(t, filepath.Join(dir, "doc.aux"))
	assert.NoFileExists(t, filepath.Join(dir, "doc.log"))
}

func TestCompileFileKeepsArtifactsOnRequest(t *testing.T) {
	tools := t.TempDir()
	installFakeTool(t, tools, "xelatex", fakeXeLaTeXSuccess)
	t.Setenv("PATH", tools)

	dir := t.TempDir()
	texPath := writeTexFile(t, dir)

	c := New(EngineXeLaTeX)
	_, err := c.CompileFile(context.Background(), texPath, Options{KeepArtifacts: true})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "doc.aux"))
	assert.FileExists(t, filepath.Join(dir, "doc.log"))
}

func TestCompileFileMovesOutput(t *testing.T) {
	tools := t.TempDir()
	installFakeTool(t, tools, "xelatex", fakeXeLaTeXSuccess)
	t.Setenv("PATH", tools)

	dir := t.TempDir()
	texPath := writeTexFile(t, dir)
	outPath := filepath.Join(t.TempDir(), "final", "resume.pdf")

	c := New(EngineXeLaTeX)
	pdfPath, err := c.CompileFile(context.Background(), texPath, Options{Output: outPath})
	require.NoError(t, err)

	assert.Equal(t, outPath, pdfPath)
	assert.FileExists(t, outPath)
	assert.NoFileExists(t, filepath.Join(dir, "doc.pdf"))
}

func TestCompileFileFailureCarriesLog(t *testing.T) {
	tools := t.TempDir()
	installFakeTool(t, tools, "xelatex", `stem="${2%.tex}"
echo "This is XeTeX"
printf '! Undefined control sequence.\nl.3 \\bogus\n' > "$stem.log"
echo "no pages of output" >&2
exit 1
`)
	t.Setenv("PATH", tools)

	texPath := writeTexFile(t, t.TempDir())

	c := New(EngineXeLaTeX)
	_, err := c.CompileFile(context.Background(), texPath, Options{})
	require.Error(t, err)

	var cerr *CompilationError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Message, "PDF was not generated")
	assert.Contains(t, cerr.LogOutput, "This is XeTeX")
	assert.Contains(t, cerr.LogOutput, "no pages of output")
	// The "!" error lines from the log file are appended for readability.
	assert.Contains(t, cerr.LogOutput, "! Undefined control sequence.")
	assert.Error(t, cerr.Cause)
}

func TestCompileFileSuccessDespiteNonZeroExit(t *testing.T) {
	// LaTeX exits non-zero for recoverable problems; a PDF on disk is
	// what counts as success.
	tools := t.TempDir()
	installFakeTool(t, tools, "xelatex", `: > "${2%.tex}.pdf"
exit 1
`)
	t.Setenv("PATH", tools)

	texPath := writeTexFile(t, t.TempDir())

	c := New(EngineXeLaTeX)
	pdfPath, err := c.CompileFile(context.Background(), texPath, Options{})
	require.NoError(t, err)
	assert.FileExists(t, pdfPath)
}

func TestCompileFileHonorsContextDeadline(t *testing.T) {
	tools := t.TempDir()
	installFakeTool(t, tools, "xelatex", "sleep 30\n")
	t.Setenv("PATH", tools)

	texPath := writeTexFile(t, t.TempDir())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	c := New(EngineXeLaTeX)
	_, err := c.CompileFile(ctx, texPath, Options{})

	var cerr *CompilationError
	require.ErrorAs(t, err, &cerr)
}

func TestBuildCommandDocker(t *testing.T) {
	dir := t.TempDir()

	cmd, err := buildCommand(context.Background(), EngineDocker, dir, "doc.tex")
	require.NoError(t, err)
	assert.Contains(t, cmd.Args, "run")
	assert.Contains(t, cmd.Args, texliveImage)
	assert.Contains(t, cmd.Args, dir+":/doc")
	assert.Contains(t, cmd.Args, "-interaction=nonstopmode")

	cmd, err = buildCommand(context.Background(), EngineDockerSudo, dir, "doc.tex")
	require.NoError(t, err)
	assert.Equal(t, "sudo", filepath.Base(cmd.Args[0]))
	assert.Contains(t, cmd.Args, "docker")

	_, err = buildCommand(context.Background(), Engine("latexmk"), dir, "doc.tex")
	assert.Error(t, err)
}
