package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/testgen-ai/testgen/internal/config"
	"github.com/testgen-ai/testgen/internal/errors"
	"github.com/testgen-ai/testgen/internal/output"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Check configuration and environment",
	Long: `Check that testgen is configured and ready to use.

Reports the config files in effect, the selected model, and whether an API
key is available. Does not call the completion service.

With --init, writes a commented starter config to .testgen/config.yml first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		initConfig, _ := cmd.Flags().GetBool("init")
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Testgen Setup")
		fmt.Fprintln(out, "========================================")

		if initConfig {
			if err := writeConfigTemplate(out); err != nil {
				return errors.WrapWithMessage(err, errors.Configuration, "failed to write config template")
			}
		}

		if userPath, err := config.UserConfigPath(); err == nil {
			reportFile(out, "User config", userPath)
		}
		projectPath := config.ProjectConfigPath()
		if configPath != "" {
			projectPath = configPath
		}
		reportFile(out, "Project config", projectPath)

		cfg, err := config.Load(configPath)
		if err != nil {
			output.PrintFailure(out, fmt.Sprintf("Configuration invalid: %v", err))
			return errors.WrapWithMessage(err, errors.Configuration, "setup found invalid configuration")
		}

		output.PrintSuccess(out, fmt.Sprintf("Model: %s (temperature %.1f, max %d tokens)", cfg.Model, cfg.Temperature, cfg.MaxTokens))
		output.PrintSuccess(out, fmt.Sprintf("Endpoint: %s", cfg.BaseURL))

		if cfg.APIKey == "" {
			output.PrintFailure(out, "API key not configured")
			return errors.MissingAPIKey()
		}
		output.PrintSuccess(out, "API key configured")

		fmt.Fprintln(out, "\nSetup complete. Try: testgen demo --example login")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().Bool("init", false, "Write a commented starter config to .testgen/config.yml")
}

// writeConfigTemplate creates the project config directory and writes the
// commented starter template. An existing config file is left untouched.
func writeConfigTemplate(out io.Writer) error {
	path := config.ProjectConfigPath()
	if _, err := os.Stat(path); err == nil {
		output.PrintInfo(out, fmt.Sprintf("Config already exists at %s, leaving it untouched", path))
		return nil
	}
	if err := os.MkdirAll(config.ProjectConfigDir(), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return err
	}
	output.PrintSuccess(out, fmt.Sprintf("Created %s", path))
	return nil
}

// reportFile prints a found/not-found status line for a config file.
func reportFile(out io.Writer, label, path string) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		output.PrintSuccess(out, fmt.Sprintf("%s: %s", label, path))
	} else {
		output.PrintInfo(out, fmt.Sprintf("%s: %s (not found, defaults apply)", label, path))
	}
}
