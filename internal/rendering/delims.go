// Package rendering renders LaTeX document sources from a registry of
// template families.
package rendering

import "strings"

// Template sources use three delimiter pairs chosen to stay clear of the
// brace syntax LaTeX itself relies on:
//
//	variables: ((( expr )))
//	blocks:    ((* if/range/end *))
//	comments:  ((# note #))
//
// A leading or trailing dash inside block and comment tags trims
// adjacent whitespace, e.g. ((*- end *)).
//
// text/template understands a single action delimiter pair, so block and
// comment tags are rewritten into variable-style actions before parsing.
const (
	leftDelim  = "((("
	rightDelim = ")))"
)

// Longer patterns first so the dashed forms win over the plain ones.
var delimNormalizer = strings.NewReplacer(
	"((#-", "(((- /*",
	"-#))", "*/ -)))",
	"((#", "(((/*",
	"#))", "*/)))",
	"((*", "(((",
	"*))", ")))",
)

// normalizeDelims rewrites block and comment tags into the variable
// delimiter syntax. Variable tags pass through untouched.
func normalizeDelims(src string) string {
	return delimNormalizer.Replace(src)
}
