// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRenderSummary outputs a human-readable summary of a render run.
func (p *Printer) PrintRenderSummary(family, docType string, sections map[string]bool, sourceBytes int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Family:    %s\n", family))
	sb.WriteString(fmt.Sprintf("Type:      %s\n", docType))
	sb.WriteString(fmt.Sprintf("Source:    %d bytes\n", sourceBytes))

	if len(sections) > 0 {
		var on, off []string
		for name, flag := range sections {
			if flag {
				on = append(on, name)
			} else {
				off = append(off, name)
			}
		}
		sort.Strings(on)
		sort.Strings(off)
		if len(on) > 0 {
			sb.WriteString(fmt.Sprintf("Sections:  %s\n", strings.Join(on, ", ")))
		}
		if len(off) > 0 {
			sb.WriteString(fmt.Sprintf("Disabled:  %s\n", strings.Join(off, ", ")))
		}
	}

	p.printBox("RENDER", strings.TrimRight(sb.String(), "\n"))
}

// PrintCompileSummary outputs a human-readable summary of a compile run.
func (p *Printer) PrintCompileSummary(engine, pdfPath string, elapsed time.Duration) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Engine:    %s\n", engine))
	sb.WriteString(fmt.Sprintf("Output:    %s\n", pdfPath))
	sb.WriteString(fmt.Sprintf("Elapsed:   %s", elapsed.Round(time.Millisecond)))
	p.printBox("COMPILE", sb.String())
}
