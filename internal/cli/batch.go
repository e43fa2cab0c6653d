package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/testgen-ai/testgen/internal/batch"
	"github.com/testgen-ai/testgen/internal/config"
	"github.com/testgen-ai/testgen/internal/errors"
	"github.com/testgen-ai/testgen/internal/output"
	"github.com/testgen-ai/testgen/internal/render"
	"github.com/testgen-ai/testgen/internal/suite"
)

var batchCmd = &cobra.Command{
	Use:   "batch <input-file>",
	Short: "Generate test cases for multiple user stories from a file",
	Long: `Process multiple user stories from a JSON input file.

The input file contains a JSON array whose elements are either bare story
strings or objects with story and criteria fields:

  [
    "As a user, I want to log in with my email",
    {"story": "As an admin, I want to export audit logs", "criteria": ["CSV format", "Date range filter"]}
  ]

With --output json the result is one combined JSON array of suites;
other formats produce concatenated formatted text.

Examples:
  testgen batch stories.json
  testgen batch stories.json --output json --save suites.json
  testgen batch stories.json --concurrency 4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		savePath, _ := cmd.Flags().GetString("save")
		concurrency, _ := cmd.Flags().GetInt("concurrency")
		configPath, _ := cmd.Flags().GetString("config")

		entries, err := batch.ReadFile(args[0])
		if err != nil {
			return errors.InvalidBatchFile(args[0])
		}
		if len(entries) == 0 {
			return errors.NewArgumentError("batch file contains no stories")
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

		fmt.Fprintf(cmd.OutOrStdout(), "Processing %d stories...\n", len(entries))

		results, err := batch.Run(cmd.Context(), gen, entries, concurrency)
		if err != nil {
			return errors.WrapWithMessage(err, errors.Generation, "batch processing aborted")
		}

		var suites []*suite.Suite
		for i, res := range results {
			if res.Err != nil {
				output.PrintFailure(cmd.ErrOrStderr(), fmt.Sprintf("story %d: %v", i+1, res.Err))
				continue
			}
			suites = append(suites, res.Suite)
		}

		if len(suites) == 0 {
			return errors.NewGenerationError("all stories in the batch failed")
		}

		formatted, err := combine(suites, format)
		if err != nil {
			return errors.WrapWithMessage(err, errors.Generation, "failed to format batch output")
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
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("output", "o", "", "Output format: console | json | markdown")
	batchCmd.Flags().String("save", "", "Save output to file instead of printing")
	batchCmd.Flags().IntP("concurrency", "n", 1, "Number of stories to process in parallel")
}

// combine renders a list of suites: a single JSON array for the json format,
// concatenated formatted blocks otherwise.
func combine(suites []*suite.Suite, format string) (string, error) {
	if format == render.FormatJSON {
		data, err := json.MarshalIndent(suites, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	blocks := make([]string, 0, len(suites))
	for _, s := range suites {
		formatted, err := render.Format(s, format)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, formatted)
	}
	return strings.Join(blocks, "\n\n"), nil
}
