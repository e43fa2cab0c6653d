package cli

import (
	"fmt"
	"strings"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/testgen-ai/testgen/internal/config"
	"github.com/testgen-ai/testgen/internal/errors"
	"github.com/testgen-ai/testgen/internal/examples"
	"github.com/testgen-ai/testgen/internal/output"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a demo with a predefined user story",
	Long: `Run a demo with one of the predefined user stories.

Available examples: login, ecommerce, api, mobile

Examples:
  testgen demo
  testgen demo --example ecommerce --output markdown`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("example")
		format, _ := cmd.Flags().GetString("output")
		configPath, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")

		ex, ok := examples.Get(name)
		if !ok {
			return errors.NewArgumentErrorWithUsage(
				fmt.Sprintf("unknown example: %s", name),
				"testgen demo --example "+strings.Join(examples.Names(), "|"),
			)
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

		fmt.Fprintf(cmd.OutOrStdout(), "Running demo with the %q user story...\n", name)
		fmt.Fprintf(cmd.OutOrStdout(), "Story: %s\n\n", ex.Story)

		var spin *spinner.Spinner
		if !verbose {
			spin = output.StartSpinner("Generating test cases...")
		}
		result, err := gen.Generate(cmd.Context(), ex.Story, ex.Criteria)
		output.StopSpinner(spin)
		if err != nil {
			return err
		}

		return emit(cmd, result, format, "")
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringP("example", "e", "login", "Example user story: "+strings.Join(examples.Names(), " | "))
	demoCmd.Flags().StringP("output", "o", "", "Output format: console | json | markdown")
}
