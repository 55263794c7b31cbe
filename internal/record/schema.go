package record

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// SchemaError reports a record that failed JSON Schema validation, with
// one entry per offending field.
type SchemaError struct {
	DocType string
	Errors  []FieldError
}

// FieldError is a single validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "record does not match the %s schema:\n", e.DocType)
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// ValidateSchema checks the record against the embedded schema for the
// document type. Schemas are deliberately loose: they pin the types of
// recognized keys and the three required contact fields, and let
// everything else through.
func ValidateSchema(docType string, r Record) error {
	schemaBytes, err := schemaFS.ReadFile("schemas/" + docType + ".schema.json")
	if err != nil {
		return fmt.Errorf("no schema for document type %q", docType)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewGoLoader(map[string]any(r)),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	serr := &SchemaError{DocType: docType}
	for _, re := range result.Errors() {
		serr.Errors = append(serr.Errors, FieldError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return serr
}
