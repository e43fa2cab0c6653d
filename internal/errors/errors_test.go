package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	t.Parallel()

	tests := map[ErrorCategory]string{
		Argument:          "Argument Error",
		Validation:        "Validation Error",
		Configuration:     "Configuration Error",
		Generation:        "Generation Error",
		ErrorCategory(99): "Error",
	}

	for category, want := range tests {
		assert.Equal(t, want, category.String())
	}
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	err := NewValidationError(
		"user story must be at least 10 characters",
		"Describe the feature in a full sentence",
	)

	out := FormatErrorPlain(err)
	assert.Contains(t, out, "Error [Validation Error]: user story must be at least 10 characters")
	assert.Contains(t, out, "To fix this:")
	assert.Contains(t, out, "  • Describe the feature in a full sentence")
}

func TestFormatErrorPlain_WithUsage(t *testing.T) {
	t.Parallel()

	err := NewArgumentErrorWithUsage(
		"a user story is required",
		"testgen generate --story \"<user story>\"",
	)

	out := FormatErrorPlain(err)
	assert.Contains(t, out, "Usage: testgen generate --story")
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, Generation))

	wrapped := Wrap(stderrors.New("boom"), Generation, "Try again later")
	require.NotNil(t, wrapped)
	assert.Equal(t, Generation, wrapped.Category)
	assert.Equal(t, "boom", wrapped.Message)
	assert.Equal(t, []string{"Try again later"}, wrapped.Remediation)
}

func TestWrapWithMessage(t *testing.T) {
	t.Parallel()

	wrapped := WrapWithMessage(stderrors.New("connection refused"), Configuration, "failed to load config")
	require.NotNil(t, wrapped)
	assert.Equal(t, "failed to load config: connection refused", wrapped.Message)
}

func TestAsCLIError(t *testing.T) {
	t.Parallel()

	cliErr := NewConfigError("missing key")
	assert.Equal(t, cliErr, AsCLIError(cliErr))
	assert.Nil(t, AsCLIError(stderrors.New("plain")))
}

func TestMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Argument, MissingStory().Category)
	assert.NotEmpty(t, MissingStory().Usage)

	assert.Equal(t, Configuration, MissingAPIKey().Category)
	assert.Contains(t, MissingAPIKey().Message, "OPENAI_API_KEY")

	assert.Equal(t, Validation, StoryTooShort(10).Category)
	assert.Contains(t, StoryTooShort(10).Message, "10 characters")

	assert.Equal(t, Argument, InvalidOutputFormat("xml").Category)
	assert.Contains(t, InvalidOutputFormat("xml").Message, "xml")
}
