package rendering

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed templates
var builtinFS embed.FS

// DefaultFamily is the template family used when the caller does not
// name one.
const DefaultFamily = "awesome_cv"

// Family is a named collection of one top-level template per document
// type, a shared set of section sub-templates, and a class-file asset
// copied through unmodified next to the rendered source.
type Family struct {
	Name          string
	DocumentTypes []string
	Asset         string

	fsys fs.FS
	env  *Environment
}

// NewFamily parses the template sources in fsys and verifies that every
// declared document type has a top-level template. Malformed template
// syntax surfaces here, at the first parse attempt.
func NewFamily(name string, fsys fs.FS, docTypes []string, asset string) (*Family, error) {
	env, err := NewEnvironment(fsys)
	if err != nil {
		return nil, err
	}
	for _, dt := range docTypes {
		if !env.Has(dt + TemplateExt) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("family %q declares document type %q but has no %s%s", name, dt, dt, TemplateExt),
			}
		}
	}
	return &Family{
		Name:          name,
		DocumentTypes: docTypes,
		Asset:         asset,
		fsys:          fsys,
		env:           env,
	}, nil
}

// HasDocumentType reports whether the family provides the document type.
func (f *Family) HasDocumentType(docType string) bool {
	for _, dt := range f.DocumentTypes {
		if dt == docType {
			return true
		}
	}
	return false
}

// AssetBytes returns the family's class-file asset verbatim.
func (f *Family) AssetBytes() ([]byte, error) {
	if f.Asset == "" {
		return nil, nil
	}
	return fs.ReadFile(f.fsys, f.Asset)
}

// Registry maps family names to template families. It is constructed
// once at startup and passed by reference to render calls; after
// construction it is read-only and safe for concurrent use.
type Registry struct {
	families map[string]*Family
	order    []string
}

// NewRegistry builds a registry holding the built-in families.
func NewRegistry() (*Registry, error) {
	r := &Registry{families: make(map[string]*Family)}

	sub, err := fs.Sub(builtinFS, "templates/awesome_cv")
	if err != nil {
		return nil, err
	}
	awesome, err := NewFamily(DefaultFamily, sub, []string{"resume", "cv", "coverletter"}, "awesome-cv.cls")
	if err != nil {
		return nil, err
	}
	if err := r.Register(awesome); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds a family. Registration happens during startup, before
// the registry is shared; duplicate names are rejected.
func (r *Registry) Register(f *Family) error {
	if _, exists := r.families[f.Name]; exists {
		return fmt.Errorf("template family %q is already registered", f.Name)
	}
	r.families[f.Name] = f
	r.order = append(r.order, f.Name)
	return nil
}

// Family looks up a family by name.
func (r *Registry) Family(name string) (*Family, error) {
	f, ok := r.families[name]
	if !ok {
		return nil, &UnknownFamilyError{Family: name, Available: r.Families()}
	}
	return f, nil
}

// Families lists registered family names in registration order.
func (r *Registry) Families() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
