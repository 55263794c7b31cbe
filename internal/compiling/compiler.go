package compiling

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds a single compiler invocation when the caller
	// has not set a deadline on the context.
	DefaultTimeout = 60 * time.Second

	// texliveImage is the container image used by the docker engines.
	texliveImage = "texlive/texlive:latest"
)

// artifactExts are the auxiliary files LaTeX leaves behind; removed
// after a successful run unless retention is requested.
var artifactExts = []string{".aux", ".log", ".out", ".toc", ".fls", ".fdb_latexmk", ".synctex.gz"}

// Options configures a single compile call.
type Options struct {
	// WorkDir is the directory the engine runs in; the source file's
	// directory when empty. Class files and other assets must already
	// be present there.
	WorkDir string
	// Output is the final PDF path. When empty the PDF stays next to
	// the source.
	Output string
	// KeepArtifacts retains auxiliary files after a successful run.
	KeepArtifacts bool
}

// Compiler invokes an external typesetting engine. One invocation per
// call, no retries: compile failures are deterministic, so retrying
// unchanged input cannot help.
type Compiler struct {
	Engine  Engine
	Timeout time.Duration
}

// New returns a Compiler with the given engine preference and the
// default timeout.
func New(engine Engine) *Compiler {
	return &Compiler{Engine: engine, Timeout: DefaultTimeout}
}

// CompileFile compiles texPath to a PDF and returns the PDF path. The
// engine preference is resolved per call; the process's captured output
// travels with any failure. Success is the PDF existing afterwards:
// LaTeX exits non-zero on recoverable issues like overfull boxes.
func (c *Compiler) CompileFile(ctx context.Context, texPath string, opts Options) (string, error) {
	if _, err := os.Stat(texPath); err != nil {
		return "", fmt.Errorf("tex file not found: %s", texPath)
	}

	engine, err := Resolve(c.Engine)
	if err != nil {
		return "", err
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		timeout := c.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = filepath.Dir(texPath)
	}
	baseName := filepath.Base(texPath)

	cmd, err := buildCommand(ctx, engine, workDir, baseName)
	if err != nil {
		return "", err
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Dir = workDir

	runErr := cmd.Run()
	logOutput := stdout.String() + stderr.String()

	stem := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	pdfPath := filepath.Join(workDir, stem+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		if extracted := extractLogErrors(filepath.Join(workDir, stem+".log")); extracted != "" {
			logOutput += "\n" + extracted
		}
		return "", &CompilationError{
			Message:   fmt.Sprintf("%s compilation failed: PDF was not generated", engine),
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	if opts.Output != "" {
		outPath, err := filepath.Abs(opts.Output)
		if err != nil {
			return "", fmt.Errorf("failed to resolve output path: %w", err)
		}
		if outPath != pdfPath {
			if dir := filepath.Dir(outPath); dir != "" && dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return "", fmt.Errorf("failed to create output directory: %w", err)
				}
			}
			if err := moveFile(pdfPath, outPath); err != nil {
				return "", fmt.Errorf("failed to move PDF to %s: %w", outPath, err)
			}
			pdfPath = outPath
		}
	}

	if !opts.KeepArtifacts {
		cleanupArtifacts(workDir, stem)
	}

	return pdfPath, nil
}

// buildCommand assembles the engine invocation. All engines run xelatex
// in non-stop mode so a syntax error cannot stall on an interactive
// prompt.
func buildCommand(ctx context.Context, engine Engine, workDir, baseName string) (*exec.Cmd, error) {
	switch engine {
	case EngineXeLaTeX:
		return exec.CommandContext(ctx, "xelatex", "-interaction=nonstopmode", baseName), nil
	case EngineDocker, EngineDockerSudo:
		absDir, err := filepath.Abs(workDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		args := []string{
			"run", "--rm",
			"--user", fmt.Sprintf("%d:%d", os.Getuid(), os.Getgid()),
			"-w", "/doc",
			"-v", absDir + ":/doc",
			texliveImage,
			"xelatex", "-interaction=nonstopmode", baseName,
		}
		if engine == EngineDockerSudo {
			return exec.CommandContext(ctx, "sudo", append([]string{"docker"}, args...)...), nil
		}
		return exec.CommandContext(ctx, "docker", args...), nil
	default:
		return nil, fmt.Errorf("unknown compilation engine %q", engine)
	}
}

// extractLogErrors pulls the "!" error lines out of a LaTeX log file,
// which are far more readable than the full transcript.
func extractLogErrors(logPath string) string {
	content, err := os.ReadFile(logPath)
	if err != nil {
		return ""
	}
	var errLines []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "!") {
			errLines = append(errLines, line)
			if len(errLines) == 5 {
				break
			}
		}
	}
	return strings.Join(errLines, "\n")
}

func cleanupArtifacts(workDir, stem string) {
	for _, ext := range artifactExts {
		_ = os.Remove(filepath.Join(workDir, stem+ext))
	}
}

// moveFile renames, falling back to copy+remove across filesystems
// (temp dirs often live on a different mount than the destination).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return err
	}
	return os.Remove(src)
}
