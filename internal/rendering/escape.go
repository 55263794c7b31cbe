package rendering

import "strings"

// EscapeLaTeX escapes the LaTeX special characters \ { } $ & % # ^ _ ~
// in text. It is exposed to templates as the escape func and is applied
// only where a template asks for it; fields that intentionally carry
// LaTeX control sequences (such as position) are substituted verbatim.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text) * 2)

	for _, r := range text {
		switch r {
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '{':
			b.WriteString(`\{`)
		case '}':
			b.WriteString(`\}`)
		case '$':
			b.WriteString(`\$`)
		case '&':
			b.WriteString(`\&`)
		case '%':
			b.WriteString(`\%`)
		case '#':
			b.WriteString(`\#`)
		case '^':
			b.WriteString(`\^{}`)
		case '_':
			b.WriteString(`\_`)
		case '~':
			b.WriteString(`\textasciitilde{}`)
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
