package rendering

import (
	"fmt"
	"strings"
)

// UnknownFamilyError is returned when a template family is not present
// in the registry.
type UnknownFamilyError struct {
	Family    string
	Available []string
}

func (e *UnknownFamilyError) Error() string {
	return fmt.Sprintf("template family %q not found. Available families: %s",
		e.Family, strings.Join(e.Available, ", "))
}

// UnknownDocumentTypeError is returned when a family does not provide a
// template for the requested document type.
type UnknownDocumentTypeError struct {
	Family    string
	DocType   string
	Available []string
}

func (e *UnknownDocumentTypeError) Error() string {
	return fmt.Sprintf("document type %q not found in template family %q. Available: %s",
		e.DocType, e.Family, strings.Join(e.Available, ", "))
}

// TemplateError represents an error parsing a template source
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a substitution failure while executing a
// template, typically a required value that is missing from the record.
type RenderError struct {
	Family  string
	DocType string
	Cause   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error: failed to render %s with template family %q: %v",
		e.DocType, e.Family, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
