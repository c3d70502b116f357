// Package schemas provides JSON Schema validation for LLM-produced
// structured output. Schemas are embedded at compile time so validation
// works regardless of working directory.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.json
var schemaFiles embed.FS

// ValidationError reports schema violations with field paths.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s validation failed:\n", ve.Schema))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateQuestionSet checks a generated question set document.
func ValidateQuestionSet(data []byte) error {
	return validate("question_set.json", data)
}

// ValidateAnswerEvaluation checks a generated answer evaluation document.
func ValidateAnswerEvaluation(data []byte) error {
	return validate("answer_evaluation.json", data)
}

// validate runs data against the named embedded schema.
func validate(name string, data []byte) error {
	schemaBytes, err := schemaFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", name, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to validate against %s: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Schema: strings.TrimSuffix(name, ".json")}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
