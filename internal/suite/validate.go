package suite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultStoryType is applied when the caller does not specify one.
const DefaultStoryType = "feature"

var validate = validator.New()

// ValidateStory validates a user story and optional acceptance criteria and
// returns the StoryInput for a generation request. Criteria stay nil when
// omitted so downstream prompt construction can distinguish "none supplied"
// from "empty list supplied".
func ValidateStory(story string, criteria []string) (*StoryInput, error) {
	in := &StoryInput{
		Story:              story,
		AcceptanceCriteria: criteria,
		StoryType:          DefaultStoryType,
	}

	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return nil, fmt.Errorf("%w: %s", ErrValidation, formatFieldError(fieldErrs[0]))
		}
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return in, nil
}

// formatFieldError renders a single validator field error in plain language.
func formatFieldError(fe validator.FieldError) string {
	field := toSnakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

// toSnakeCase converts a CamelCase field name to snake_case.
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
