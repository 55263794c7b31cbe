package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/awesomecv/internal/compiling"
	"github.com/jonathan/awesomecv/internal/config"
	"github.com/jonathan/awesomecv/internal/observability"
	"github.com/jonathan/awesomecv/internal/pipeline"
	"github.com/jonathan/awesomecv/internal/record"
	"github.com/jonathan/awesomecv/internal/rendering"
	"github.com/jonathan/awesomecv/internal/watch"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <data-file>",
	Short: "Render a data record to a PDF (or LaTeX) document",
	Long:  "Renders a YAML, JSON, or TOML data record into a typeset document. By default the record is substituted into the template family and compiled to PDF; --tex-only stops after producing the LaTeX source.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var (
	renderDocType    string
	renderFamily     string
	renderEngine     string
	renderOutput     string
	renderSaveTex    bool
	renderTexOnly    bool
	renderValidate   bool
	renderVerbose    bool
	renderWatch      bool
	renderTimeout    int
	renderConfigFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderDocType, "doctype", "d", "", "Document type to generate: resume, cv, or coverletter (default: resume)")
	renderCmd.Flags().StringVar(&renderFamily, "family", "", "Template family to use (default: "+rendering.DefaultFamily+")")
	renderCmd.Flags().StringVarP(&renderEngine, "engine", "e", "", "Compilation engine: auto, xelatex, docker, or docker-sudo (default: auto)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file path (default: input name with .pdf or .tex extension)")
	renderCmd.Flags().BoolVar(&renderSaveTex, "save-tex", false, "Save the intermediate LaTeX source alongside the PDF")
	renderCmd.Flags().BoolVar(&renderTexOnly, "tex-only", false, "Generate only the LaTeX source without compiling")
	renderCmd.Flags().BoolVar(&renderValidate, "validate", false, "Validate the record against the document type's schema before rendering")
	renderCmd.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print detailed run information")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "Re-render whenever the data file changes")
	renderCmd.Flags().IntVar(&renderTimeout, "timeout", 0, "Compiler timeout in seconds (default: 60)")
	renderCmd.Flags().StringVar(&renderConfigFile, "config", "", "Path to a JSON config file supplying flag defaults")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, args []string) error {
	dataPath := args[0]

	cfg := config.Config{
		Family:        renderFamily,
		DocType:       renderDocType,
		Engine:        renderEngine,
		Output:        renderOutput,
		SaveTex:       renderSaveTex,
		TexOnly:       renderTexOnly,
		TimeoutSecs:   renderTimeout,
		Verbose:       renderVerbose,
		ValidateInput: renderValidate,
	}
	if renderConfigFile != "" {
		fileCfg, err := config.LoadConfig(renderConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	applyRenderDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	engine, err := compiling.ParseEngine(cfg.Engine)
	if err != nil {
		return err
	}

	registry, err := rendering.NewRegistry()
	if err != nil {
		return err
	}

	output := cfg.Output
	if output == "" {
		stem := strings.TrimSuffix(dataPath, filepath.Ext(dataPath))
		if cfg.TexOnly {
			output = stem + ".tex"
		} else {
			output = stem + ".pdf"
		}
	}

	run := func() error {
		return renderOnce(registry, dataPath, output, engine, cfg)
	}

	if renderWatch {
		fmt.Printf("Watching %s (Ctrl-C to stop)\n", dataPath)
		return watch.File(context.Background(), dataPath, func() error {
			if err := run(); err != nil {
				// Keep watching: the next save may fix the record.
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			return nil
		})
	}
	return run()
}

func renderOnce(registry *rendering.Registry, dataPath, output string, engine compiling.Engine, cfg config.Config) error {
	rec, err := record.Load(dataPath)
	if err != nil {
		return err
	}

	if cfg.ValidateInput {
		if err := record.ValidateSchema(cfg.DocType, rec); err != nil {
			return err
		}
	}

	printer := observability.NewPrinter(os.Stdout)

	if cfg.TexOnly {
		renderer, err := rendering.NewRenderer(registry, cfg.Family)
		if err != nil {
			return err
		}
		if err := record.ValidateContact(rec); err != nil {
			return err
		}
		source, err := renderer.Render(cfg.DocType, rec)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			printer.PrintRenderSummary(cfg.Family, cfg.DocType, rec.Sections(), len(source))
		}
		if dir := filepath.Dir(output); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(output, []byte(source), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("LaTeX created: %s\n", output)
		return nil
	}

	start := time.Now()
	pdfPath, err := pipeline.RenderPDF(context.Background(), registry, rec, pipeline.Options{
		Family:  cfg.Family,
		DocType: cfg.DocType,
		Engine:  engine,
		Output:  output,
		KeepTex: cfg.SaveTex,
		Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintRenderSummary(cfg.Family, cfg.DocType, rec.Sections(), 0)
		if resolved, rerr := compiling.Resolve(engine); rerr == nil {
			printer.PrintCompileSummary(resolved.String(), pdfPath, time.Since(start))
		}
	}

	fmt.Printf("PDF created: %s\n", pdfPath)
	if cfg.SaveTex {
		fmt.Printf("LaTeX saved: %s\n", strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath))+".tex")
	}
	return nil
}

func applyRenderDefaults(cfg *config.Config) {
	if cfg.Family == "" {
		cfg.Family = rendering.DefaultFamily
	}
	if cfg.DocType == "" {
		cfg.DocType = "resume"
	}
	if cfg.Engine == "" {
		cfg.Engine = compiling.EngineAuto.String()
	}
	if cfg.TimeoutSecs == 0 {
		cfg.TimeoutSecs = 60
	}
}
