package observability

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrintRenderSummary(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintRenderSummary("awesome_cv", "resume", map[string]bool{
		"summary":    true,
		"experience": true,
		"skills":     false,
	}, 4096)

	out := buf.String()
	assert.Contains(t, out, "RENDER")
	assert.Contains(t, out, "Family:    awesome_cv")
	assert.Contains(t, out, "Type:      resume")
	assert.Contains(t, out, "Source:    4096 bytes")
	assert.Contains(t, out, "Sections:  experience, summary")
	assert.Contains(t, out, "Disabled:  skills")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintRenderSummaryWithoutSections(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintRenderSummary("awesome_cv", "coverletter", nil, 100)

	out := buf.String()
	assert.NotContains(t, out, "Sections:")
	assert.NotContains(t, out, "Disabled:")
}

func TestPrintCompileSummary(t *testing.T) {
	var buf strings.Builder
	p := NewPrinter(&buf)

	p.PrintCompileSummary("xelatex", "out/resume.pdf", 1234*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "COMPILE")
	assert.Contains(t, out, "Engine:    xelatex")
	assert.Contains(t, out, "Output:    out/resume.pdf")
	assert.Contains(t, out, "Elapsed:   1.234s")
}
