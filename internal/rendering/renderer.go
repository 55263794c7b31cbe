package rendering

import (
	"fmt"
	"os"
	"path/filepath"
)

// Renderer renders document sources for one template family.
type Renderer struct {
	family *Family
}

// NewRenderer resolves the family against the registry. An unknown
// family fails here, before any substitution.
func NewRenderer(reg *Registry, family string) (*Renderer, error) {
	f, err := reg.Family(family)
	if err != nil {
		return nil, err
	}
	return &Renderer{family: f}, nil
}

// FamilyName returns the name of the renderer's template family.
func (r *Renderer) FamilyName() string {
	return r.family.Name
}

// DocumentTypes lists the document types the family provides.
func (r *Renderer) DocumentTypes() []string {
	out := make([]string, len(r.family.DocumentTypes))
	copy(out, r.family.DocumentTypes)
	return out
}

// Asset returns the family's pass-through class file.
func (r *Renderer) Asset() (name string, content []byte, err error) {
	content, err = r.family.AssetBytes()
	return r.family.Asset, content, err
}

// Render substitutes the record into the document type's template and
// returns the LaTeX source. Rendering the same inputs twice yields
// byte-identical output.
func (r *Renderer) Render(docType string, data map[string]any) (string, error) {
	if !r.family.HasDocumentType(docType) {
		return "", &UnknownDocumentTypeError{
			Family:    r.family.Name,
			DocType:   docType,
			Available: r.family.DocumentTypes,
		}
	}

	out, err := r.family.env.Execute(docType+TemplateExt, withSections(data))
	if err != nil {
		return "", &RenderError{Family: r.family.Name, DocType: docType, Cause: err}
	}
	return out, nil
}

// RenderToFile renders and writes the source to path, creating parent
// directories as needed.
func (r *Renderer) RenderToFile(docType string, data map[string]any, path string) error {
	out, err := r.Render(docType, data)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write rendered source: %w", err)
	}
	return nil
}

// withSections returns data with a sections map guaranteed to exist, so
// templates can test flags without guarding the map itself. A record
// with no sections map renders with every flag off. The caller's map is
// not mutated.
func withSections(data map[string]any) map[string]any {
	if _, ok := data["sections"]; ok {
		return data
	}
	copied := make(map[string]any, len(data)+1)
	for k, v := range data {
		copied[k] = v
	}
	copied["sections"] = map[string]any{}
	return copied
}
