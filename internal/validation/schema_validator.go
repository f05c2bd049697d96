// Package validation checks documents against JSON schemas registered under
// an id, such as the upgrade tuning schema embedded in the catalog package.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// SchemaValidator validates JSON values against registered schemas
type SchemaValidator interface {
	AddSchema(id string, schema []byte) error
	ValidateBytes(data []byte, schemaID string) error
	ValidateValue(value interface{}, schemaID string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// AddSchema compiles schema and registers it under id. Registering the same
// id twice keeps the first compiled schema.
func (v *validator) AddSchema(id string, schema []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[id]; ok {
		return nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return fmt.Errorf(ErrMsgParseSchemaFmt, id, err)
	}
	if err := v.compiler.AddResource(id, doc); err != nil {
		return fmt.Errorf(ErrMsgAddSchemaFmt, id, err)
	}
	compiled, err := v.compiler.Compile(id)
	if err != nil {
		return fmt.Errorf(ErrMsgCompileSchemaFmt, id, err)
	}

	v.schemas[id] = compiled
	return nil
}

// ValidateBytes parses JSON data and validates it
func (v *validator) ValidateBytes(data []byte, schemaID string) error {
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf(ErrMsgParseDataFmt, err)
	}
	return v.ValidateValue(value, schemaID)
}

// ValidateValue validates an already decoded JSON value
func (v *validator) ValidateValue(value interface{}, schemaID string) error {
	v.mu.Lock()
	schema, ok := v.schemas[schemaID]
	v.mu.Unlock()
	if !ok {
		return fmt.Errorf(ErrMsgUnknownSchemaFmt, schemaID)
	}

	if err := schema.Validate(value); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens the error tree into one line per failure
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("validation error: %w", err)
	}

	var lines []string
	collectErrors(validationErr, &lines)
	return fmt.Errorf("%s:\n%s", ErrMsgSchemaValidationFailed, strings.Join(lines, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	// Only leaves carry a specific failure; parents just say "doesn't validate".
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")
	if len(err.InstanceLocation) == 0 {
		location = "(root)"
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keywords == "" {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
}
