package cli

import (
	"fmt"
	"os"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/testgen-ai/testgen/internal/config"
	"github.com/testgen-ai/testgen/internal/errors"
	"github.com/testgen-ai/testgen/internal/generator"
	"github.com/testgen-ai/testgen/internal/output"
	"github.com/testgen-ai/testgen/internal/render"
	"github.com/testgen-ai/testgen/internal/suite"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate test cases from a user story",
	Long: `Generate test cases from a user story.

The generate command will:
- Validate the story (minimum 10 characters)
- Send the story and any acceptance criteria to the completion model
- Parse the reply into a structured test suite
- Render the suite in the selected output format

Examples:
  testgen generate -s "As a user, I want to log in with my email"
  testgen generate -s "As a user, I want to export reports" -c "Exports include all visible columns" -c "PDF and CSV are supported"
  testgen generate -s "As an admin, I want to deactivate accounts" --output markdown --save cases.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		story, _ := cmd.Flags().GetString("story")
		criteria, _ := cmd.Flags().GetStringArray("criteria")
		format, _ := cmd.Flags().GetString("output")
		savePath, _ := cmd.Flags().GetString("save")
		configPath, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")

		if story == "" {
			return errors.MissingStory()
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return errors.WrapWithMessage(err, errors.Configuration, "failed to load config")
		}
		format, err = resolveFormat(cmd, cfg, format)
		if err != nil {
			return err
		}

		gen, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		if verbose {
			output.PrintInfo(cmd.OutOrStdout(), fmt.Sprintf("Generating test cases with %s...", cfg.Model))
		}

		var spin *spinner.Spinner
		if !verbose {
			spin = output.StartSpinner("Generating test cases...")
		}
		result, err := gen.Generate(cmd.Context(), story, criteria)
		output.StopSpinner(spin)
		if err != nil {
			return err
		}

		if verbose {
			output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Generated %d test scenarios", result.TotalScenarios))
		}

		return emit(cmd, result, format, savePath)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("story", "s", "", "User story to generate test cases for")
	generateCmd.Flags().StringArrayP("criteria", "c", nil, "Acceptance criteria (can be specified multiple times)")
	generateCmd.Flags().StringP("output", "o", "", "Output format: console | json | markdown")
	generateCmd.Flags().String("save", "", "Save output to file instead of printing")
}

// newGenerator builds a generator, translating a missing API key into an
// actionable configuration error.
func newGenerator(cfg *config.Configuration) (*generator.Generator, error) {
	gen, err := generator.New(cfg)
	if err != nil {
		return nil, errors.MissingAPIKey()
	}
	return gen, nil
}

// resolveFormat picks the output format from the flag or the configured
// default, rejecting unknown selectors at the flag boundary.
func resolveFormat(cmd *cobra.Command, cfg *config.Configuration, flagValue string) (string, error) {
	if flagValue == "" {
		return cfg.OutputFormat, nil
	}
	if !render.IsValidFormat(flagValue) {
		return "", errors.InvalidOutputFormat(flagValue)
	}
	return flagValue, nil
}

// emit renders the suite and either prints it or writes it to savePath.
func emit(cmd *cobra.Command, s *suite.Suite, format, savePath string) error {
	formatted, err := render.Format(s, format)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Generation, "failed to format output")
	}

	if savePath != "" {
		if err := os.WriteFile(savePath, []byte(formatted+"\n"), 0o644); err != nil {
			return errors.WrapWithMessage(err, errors.Generation, "failed to save output")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Output saved to: %s\n", savePath)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatted)
	return nil
}
