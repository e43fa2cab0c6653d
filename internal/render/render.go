// Package render turns a generated suite into one of the supported textual
// output formats: console, json, or markdown.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/testgen-ai/testgen/internal/suite"
)

// Supported format selectors.
const (
	FormatConsole  = "console"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Formats lists the valid selectors for flag help and validation.
var Formats = []string{FormatConsole, FormatJSON, FormatMarkdown}

// IsValidFormat reports whether the selector names a supported format.
func IsValidFormat(format string) bool {
	switch format {
	case FormatConsole, FormatJSON, FormatMarkdown:
		return true
	}
	return false
}

// Format renders the suite in the requested format. An unrecognized selector
// falls back to console output rather than failing; callers that want strict
// selector handling should check IsValidFormat first.
func Format(s *suite.Suite, format string) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(s)
	case FormatMarkdown:
		return formatMarkdown(s), nil
	default:
		return formatConsole(s), nil
	}
}

// formatJSON is a direct structural serialization of the suite. Parsing the
// result back through suite.Parse reproduces an equivalent suite.
func formatJSON(s *suite.Suite) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal suite: %w", err)
	}
	return string(data), nil
}

func formatConsole(s *suite.Suite) string {
	rule := strings.Repeat("=", 80)
	divider := strings.Repeat("-", 40)

	var out []string
	out = append(out, rule)
	out = append(out, "TEST CASE GENERATOR RESULTS")
	out = append(out, rule)
	out = append(out, fmt.Sprintf("\nUser Story: %s", s.UserStory))
	out = append(out, fmt.Sprintf("Total Test Scenarios: %d", s.TotalScenarios))
	out = append(out, fmt.Sprintf("Coverage Areas: %s", strings.Join(s.CoverageAreas, ", ")))
	out = append(out, "\n"+rule)

	for i, sc := range s.TestScenarios {
		out = append(out, fmt.Sprintf("\nTEST SCENARIO %d: %s", i+1, sc.ScenarioID))
		out = append(out, divider)
		out = append(out, fmt.Sprintf("Title: %s", sc.Title))
		out = append(out, fmt.Sprintf("Type: %s", sc.TestType))
		out = append(out, fmt.Sprintf("Priority: %s", sc.Priority))
		out = append(out, fmt.Sprintf("\nDescription: %s", sc.Description))

		out = append(out, "\nPreconditions:")
		for _, pre := range sc.Preconditions {
			out = append(out, fmt.Sprintf("  • %s", pre))
		}

		out = append(out, "\nTest Steps:")
		for n, step := range sc.TestSteps {
			out = append(out, fmt.Sprintf("  %d. %s", n+1, step))
		}

		out = append(out, fmt.Sprintf("\nExpected Result: %s", sc.ExpectedResult))
		out = append(out, divider)
	}

	return strings.Join(out, "\n")
}

func formatMarkdown(s *suite.Suite) string {
	var out []string
	out = append(out, "# Test Case Generator Results")
	out = append(out, fmt.Sprintf("\n**User Story:** %s", s.UserStory))
	out = append(out, fmt.Sprintf("**Total Test Scenarios:** %d", s.TotalScenarios))
	out = append(out, fmt.Sprintf("**Coverage Areas:** %s", strings.Join(s.CoverageAreas, ", ")))

	for i, sc := range s.TestScenarios {
		out = append(out, fmt.Sprintf("\n## Test Scenario %d: %s", i+1, sc.ScenarioID))
		out = append(out, fmt.Sprintf("**Title:** %s", sc.Title))
		out = append(out, fmt.Sprintf("**Type:** %s", sc.TestType))
		out = append(out, fmt.Sprintf("**Priority:** %s", sc.Priority))
		out = append(out, fmt.Sprintf("\n**Description:** %s", sc.Description))

		out = append(out, "\n**Preconditions:**")
		for _, pre := range sc.Preconditions {
			out = append(out, fmt.Sprintf("- %s", pre))
		}

		out = append(out, "\n**Test Steps:**")
		for n, step := range sc.TestSteps {
			out = append(out, fmt.Sprintf("%d. %s", n+1, step))
		}

		out = append(out, fmt.Sprintf("\n**Expected Result:** %s", sc.ExpectedResult))
	}

	return strings.Join(out, "\n")
}
