// Package main implements the acv CLI for generating CV, résumé, and
// cover letter documents from structured data.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "acv",
	Short:   "Generate CV/Resume PDFs from structured data",
	Long:    "acv substitutes YAML, JSON, or TOML data records into Awesome-CV LaTeX templates and compiles the result to PDF with a local or containerized TeX toolchain.",
	Version: version,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
