package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/awesomecv/internal/rendering"
	"github.com/spf13/cobra"
)

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List template families and their document types",
	Long:  "Lists every registered template family with its document types. Building the registry parses every template, so this also serves as a syntax check when adding templates.",
	Args:  cobra.NoArgs,
	RunE:  runFamilies,
}

func init() {
	rootCmd.AddCommand(familiesCmd)
}

func runFamilies(_ *cobra.Command, _ []string) error {
	registry, err := rendering.NewRegistry()
	if err != nil {
		return err
	}

	for _, name := range registry.Families() {
		family, err := registry.Family(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", name, strings.Join(family.DocumentTypes, ", "))
	}
	return nil
}
