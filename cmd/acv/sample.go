package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/awesomecv/internal/samples"
	"github.com/spf13/cobra"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <doctype>",
	Short: "Write a sample data record for a document type",
	Long:  "Writes the bundled sample record for resume, cv, or coverletter as YAML, as a starting point for your own data. Prints to stdout unless --output is given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSample,
}

var sampleOutput string

func init() {
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "", "File to write the sample record to (default: stdout)")

	rootCmd.AddCommand(sampleCmd)
}

func runSample(_ *cobra.Command, args []string) error {
	raw, err := samples.Raw(args[0])
	if err != nil {
		return err
	}

	if sampleOutput == "" {
		fmt.Print(string(raw))
		return nil
	}

	if dir := filepath.Dir(sampleOutput); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(sampleOutput, raw, 0644); err != nil {
		return fmt.Errorf("failed to write sample file: %w", err)
	}
	fmt.Printf("Sample %s record written to %s\n", strings.ToLower(args[0]), sampleOutput)
	return nil
}
