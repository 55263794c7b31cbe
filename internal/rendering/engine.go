package rendering

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

// TemplateExt is the suffix identifying template sources inside a
// family's filesystem. Files without it (the .cls asset) are not parsed.
const TemplateExt = ".tex.tmpl"

// Environment wraps a text/template set configured for LaTeX output:
// the LaTeX-safe delimiters, no automatic escaping, and the template
// funcs the families rely on. An Environment is immutable once built
// and safe for concurrent use.
type Environment struct {
	root *template.Template
}

// NewEnvironment parses every template source in fsys into a single
// template set. Templates are addressed by their path within fsys,
// e.g. "resume.tex.tmpl" or "sections/summary.tex.tmpl".
func NewEnvironment(fsys fs.FS) (*Environment, error) {
	root := template.New("").
		Delims(leftDelim, rightDelim).
		Option("missingkey=zero").
		Funcs(funcMap())

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, TemplateExt) {
			return nil
		}
		src, err := fs.ReadFile(fsys, path)
		if err != nil {
			return &TemplateError{
				Message: fmt.Sprintf("failed to read template %s", path),
				Cause:   err,
			}
		}
		if _, err := root.New(path).Parse(normalizeDelims(string(src))); err != nil {
			return &TemplateError{
				Message: fmt.Sprintf("failed to parse template %s", path),
				Cause:   err,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Environment{root: root}, nil
}

// Has reports whether a template with the given name was parsed.
func (e *Environment) Has(name string) bool {
	return e.root.Lookup(name) != nil
}

// Execute renders the named template with data.
func (e *Environment) Execute(name string, data any) (string, error) {
	tmpl := e.root.Lookup(name)
	if tmpl == nil {
		return "", &TemplateError{Message: fmt.Sprintf("template %s not found", name)}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", err
	}
	return out.String(), nil
}

// funcMap returns the funcs available inside templates.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"escape": func(v any) string {
			return EscapeLaTeX(stringify(v))
		},
		// required fails the render when the value is absent or empty,
		// naming the offending field.
		"required": func(name string, v any) (any, error) {
			if isEmpty(v) {
				return nil, fmt.Errorf("required field %q is missing", name)
			}
			return v, nil
		},
		// default substitutes a literal fallback for absent values, for
		// style fields like footer text. Pipeline form: ((( .x | default "y" ))).
		"default": func(fallback, v any) any {
			if isEmpty(v) {
				return fallback
			}
			return v
		},
		"join": func(sep string, v any) (string, error) {
			items, ok := v.([]any)
			if !ok {
				return "", fmt.Errorf("join: expected a list, got %T", v)
			}
			parts := make([]string, len(items))
			for i, item := range items {
				parts[i] = stringify(item)
			}
			return strings.Join(parts, sep), nil
		},
	}
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	default:
		return false
	}
}
