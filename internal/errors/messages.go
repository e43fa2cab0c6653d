package errors

import "fmt"

// Common error messages for the testgen CLI.
// These templates ensure consistent, actionable error messages.

// MissingStory creates an error for a missing --story flag.
func MissingStory() *CLIError {
	return NewArgumentErrorWithUsage(
		"a user story is required",
		"testgen generate --story \"<user story>\"",
		"Provide a user story in quotes",
		"Example: testgen generate -s \"As a user, I want to reset my password\"",
	)
}

// MissingAPIKey creates an error for a missing completion service credential.
func MissingAPIKey() *CLIError {
	return NewConfigError(
		"OPENAI_API_KEY not found in environment or configuration",
		"Set the OPENAI_API_KEY environment variable",
		"Or add api_key to .testgen/config.yml",
		"Run 'testgen setup' to check your configuration",
	)
}

// StoryTooShort creates an error for a story below the minimum length.
func StoryTooShort(minLen int) *CLIError {
	return NewValidationError(
		fmt.Sprintf("user story must be at least %d characters", minLen),
		"Describe the feature in a full sentence",
		"Example: \"As a user, I want to log in with my email\"",
	)
}

// InvalidOutputFormat creates an error for an unrecognized format selector.
func InvalidOutputFormat(provided string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid output format: %s", provided),
		"testgen generate --output console|json|markdown",
		"Choose one of: console, json, markdown",
	)
}

// InvalidBatchFile creates an error for a batch file that is not a JSON array.
func InvalidBatchFile(path string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("batch file %s must contain a JSON array of user stories", path),
		"Each entry is either a story string or {\"story\": ..., \"criteria\": [...]}",
		"Example: [\"As a user, I want to log in\", {\"story\": \"...\", \"criteria\": [\"...\"]}]",
	)
}
