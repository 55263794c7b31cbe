package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/awesomecv/internal/compiling"
	"github.com/jonathan/awesomecv/internal/observability"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile <tex-file>",
	Short: "Compile an existing LaTeX file to PDF",
	Long:  "Compiles a .tex file directly, without rendering. Any class files the source needs must already sit next to it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

var (
	compileEngine        string
	compileOutput        string
	compileKeepArtifacts bool
	compileTimeout       int
	compileVerbose       bool
)

func init() {
	compileCmd.Flags().StringVarP(&compileEngine, "engine", "e", "auto", "Compilation engine: auto, xelatex, docker, or docker-sudo")
	compileCmd.Flags().StringVarP(&compileOutput, "output", "o", "", "Output PDF path (default: input name with .pdf extension)")
	compileCmd.Flags().BoolVar(&compileKeepArtifacts, "keep-artifacts", false, "Keep auxiliary files (.aux, .log, ...) after a successful run")
	compileCmd.Flags().IntVar(&compileTimeout, "timeout", 0, "Compiler timeout in seconds (default: 60)")
	compileCmd.Flags().BoolVarP(&compileVerbose, "verbose", "v", false, "Print detailed run information")

	rootCmd.AddCommand(compileCmd)
}

func runCompile(_ *cobra.Command, args []string) error {
	texPath := args[0]
	if !strings.EqualFold(filepath.Ext(texPath), ".tex") {
		return fmt.Errorf("compile expects a .tex file, got %s", texPath)
	}

	engine, err := compiling.ParseEngine(compileEngine)
	if err != nil {
		return err
	}

	output := compileOutput
	if output == "" {
		output = strings.TrimSuffix(texPath, filepath.Ext(texPath)) + ".pdf"
	}

	compiler := compiling.New(engine)
	if compileTimeout > 0 {
		compiler.Timeout = time.Duration(compileTimeout) * time.Second
	}

	start := time.Now()
	pdfPath, err := compiler.CompileFile(context.Background(), texPath, compiling.Options{
		Output:        output,
		KeepArtifacts: compileKeepArtifacts,
	})
	if err != nil {
		return err
	}

	if compileVerbose {
		printer := observability.NewPrinter(os.Stdout)
		if resolved, rerr := compiling.Resolve(engine); rerr == nil {
			printer.PrintCompileSummary(resolved.String(), pdfPath, time.Since(start))
		}
	}

	fmt.Printf("PDF created: %s\n", pdfPath)
	return nil
}
