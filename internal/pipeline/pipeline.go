// Package pipeline combines rendering and compilation into a single
// record-to-PDF call.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/awesomecv/internal/compiling"
	"github.com/jonathan/awesomecv/internal/record"
	"github.com/jonathan/awesomecv/internal/rendering"
)

// Options configures a single record-to-PDF run.
type Options struct {
	// Family is the template family; rendering.DefaultFamily when empty.
	Family string
	// DocType is the document type; "resume" when empty.
	DocType string
	// Engine is the compilation engine preference; auto when empty.
	Engine compiling.Engine
	// Output is the destination PDF path; "output.pdf" when empty.
	Output string
	// KeepTex writes the intermediate .tex (and auxiliary artifacts)
	// next to the PDF instead of a throwaway working directory.
	KeepTex bool
	// Timeout overrides the compiler's default per-invocation bound.
	Timeout time.Duration
}

// RenderPDF renders the record and compiles it, returning the final PDF
// path. The whole call is synchronous; it either produces the PDF at
// the destination or returns a typed error with nothing left there. On
// failure the working directory is kept for troubleshooting.
func RenderPDF(ctx context.Context, reg *rendering.Registry, rec record.Record, opts Options) (string, error) {
	if opts.Family == "" {
		opts.Family = rendering.DefaultFamily
	}
	if opts.DocType == "" {
		opts.DocType = "resume"
	}
	if opts.Engine == "" {
		opts.Engine = compiling.EngineAuto
	}
	if opts.Output == "" {
		opts.Output = "output.pdf"
	}

	if err := record.ValidateContact(rec); err != nil {
		return "", err
	}

	renderer, err := rendering.NewRenderer(reg, opts.Family)
	if err != nil {
		return "", err
	}

	outPath, err := filepath.Abs(opts.Output)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}

	// Each run gets its own working directory, so concurrent callers
	// never share a mutable resource.
	var workDir, texPath string
	var scratch bool
	if opts.KeepTex {
		workDir = filepath.Dir(outPath)
		if err := os.MkdirAll(workDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
		texPath = strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".tex"
	} else {
		workDir = filepath.Join(os.TempDir(), "acv-"+uuid.NewString())
		if err := os.MkdirAll(workDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create working directory: %w", err)
		}
		scratch = true
		texPath = filepath.Join(workDir, "document.tex")
	}

	if err := renderer.RenderToFile(opts.DocType, rec, texPath); err != nil {
		return "", err
	}

	if err := copyAsset(renderer, workDir); err != nil {
		return "", err
	}

	compiler := compiling.New(opts.Engine)
	if opts.Timeout > 0 {
		compiler.Timeout = opts.Timeout
	}
	pdfPath, err := compiler.CompileFile(ctx, texPath, compiling.Options{
		WorkDir:       workDir,
		Output:        outPath,
		KeepArtifacts: opts.KeepTex,
	})
	if err != nil {
		return "", err
	}

	if scratch {
		_ = os.RemoveAll(workDir)
	}
	return pdfPath, nil
}

// copyAsset writes the family's class file into the working directory
// so the rendered source compiles standalone.
func copyAsset(renderer *rendering.Renderer, workDir string) error {
	name, content, err := renderer.Asset()
	if err != nil {
		return fmt.Errorf("failed to read template asset: %w", err)
	}
	if name == "" {
		return nil
	}
	if err := os.WriteFile(filepath.Join(workDir, name), content, 0644); err != nil {
		return fmt.Errorf("failed to write template asset %s: %w", name, err)
	}
	return nil
}
