// Package cli implements the testgen command tree.
package cli

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/testgen-ai/testgen/internal/errors"
	"github.com/testgen-ai/testgen/internal/llm"
	"github.com/testgen-ai/testgen/internal/suite"
)

var rootCmd = &cobra.Command{
	Use:   "testgen",
	Short: "Generate test scenarios from user stories with AI",
	Long: `testgen sends a user story and optional acceptance criteria to a hosted
completion model, asks for a structured set of test scenarios, and renders
the result as console text, JSON, or Markdown.`,
	Example: `  # Generate test cases for a story
  testgen generate -s "As a user, I want to reset my password" -c "Reset link expires after 1 hour"

  # Run a canned demo story
  testgen demo --example login

  # Process a file of stories
  testgen batch stories.json --output json --save suites.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to project config file (default .testgen/config.yml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
}

// Execute runs the root command and returns the process exit code.
// Errors are printed to stderr with category and remediation guidance.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	cliErr := errors.AsCLIError(err)
	if cliErr == nil {
		cliErr = errors.Wrap(err, categorize(err))
	}
	errors.PrintError(cliErr)

	return exitCode(cliErr.Category)
}

// categorize maps plain errors onto CLI error categories using the package
// sentinels.
func categorize(err error) errors.ErrorCategory {
	switch {
	case stderrors.Is(err, suite.ErrValidation):
		return errors.Validation
	case stderrors.Is(err, llm.ErrMissingAPIKey):
		return errors.Configuration
	case stderrors.Is(err, suite.ErrParse), stderrors.Is(err, suite.ErrConstruct), stderrors.Is(err, llm.ErrRequestFailed):
		return errors.Generation
	default:
		return errors.Generation
	}
}

// exitCode maps error categories onto process exit codes.
func exitCode(category errors.ErrorCategory) int {
	switch category {
	case errors.Validation:
		return ExitValidationFailed
	case errors.Generation:
		return ExitGenerationFailed
	case errors.Argument:
		return ExitInvalidArguments
	case errors.Configuration:
		return ExitConfigurationFailed
	default:
		return ExitGenerationFailed
	}
}
