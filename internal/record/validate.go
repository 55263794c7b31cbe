package record

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// contact holds the only fields required by every document type.
type contact struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
}

var validate = validator.New()

// fieldKeys maps the contact struct fields back to record keys for
// error messages.
var fieldKeys = map[string]string{
	"FirstName": "first_name",
	"LastName":  "last_name",
	"Email":     "email",
}

// ValidateContact checks the unconditionally required fields before any
// substitution is attempted, so a missing name fails with the field
// spelled out rather than a template execution error.
func ValidateContact(r Record) error {
	c := contact{
		FirstName: r.String("first_name"),
		LastName:  r.String("last_name"),
		Email:     r.String("email"),
	}

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("contact validation failed: %w", err)
	}

	var problems []string
	for _, fe := range verrs {
		key := fieldKeys[fe.StructField()]
		if fe.Tag() == "email" {
			problems = append(problems, fmt.Sprintf("%s is not a valid email address", key))
			continue
		}
		problems = append(problems, fmt.Sprintf("%s is required", key))
	}
	return fmt.Errorf("invalid record: %s", strings.Join(problems, "; "))
}
