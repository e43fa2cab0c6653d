package cli

// Exit codes for the testgen CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitValidationFailed indicates the story input failed validation
	ExitValidationFailed = 1

	// ExitGenerationFailed indicates the completion call or reply parsing failed
	ExitGenerationFailed = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitConfigurationFailed indicates missing or invalid configuration
	ExitConfigurationFailed = 4
)
