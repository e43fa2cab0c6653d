// Package render tests the console, json, and markdown output formats.
// Related: internal/render/render.go
// Tags: render, formats, output

package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testgen-ai/testgen/internal/suite"
)

const loginStory = "As a registered user, I want to log into my account using my email and password so that I can access my personalized dashboard."

// loginSuite builds the login demo suite with six scenarios TC001-TC006.
func loginSuite(t *testing.T) *suite.Suite {
	t.Helper()

	scenarios := make([]suite.Scenario, 0, 6)
	types := []string{"positive", "negative", "negative", "edge case", "security", "positive"}
	for i := 1; i <= 6; i++ {
		scenarios = append(scenarios, suite.Scenario{
			ScenarioID:     fmt.Sprintf("TC%03d", i),
			Title:          fmt.Sprintf("Login scenario %d", i),
			Description:    "Verify login behavior",
			Preconditions:  []string{"User account exists", "Application is running"},
			TestSteps:      []string{"Open the login page", "Enter credentials", "Submit the form"},
			ExpectedResult: "The expected outcome is observed",
			TestType:       types[i-1],
			Priority:       "high",
		})
	}

	s, err := suite.New(loginStory, scenarios, []string{"Authentication", "User Interface", "Security"})
	require.NoError(t, err)
	return s
}

func TestFormat_ConsoleLoginSuite(t *testing.T) {
	t.Parallel()

	s := loginSuite(t)
	assert.Equal(t, 6, s.TotalScenarios)

	out, err := Format(s, FormatConsole)
	require.NoError(t, err)

	assert.Contains(t, out, "TEST CASE GENERATOR RESULTS")
	assert.Contains(t, out, "Total Test Scenarios: 6")
	assert.Contains(t, out, "Coverage Areas: Authentication, User Interface, Security")

	// TC001 through TC006 appear in order.
	last := -1
	for i := 1; i <= 6; i++ {
		id := fmt.Sprintf("TC%03d", i)
		pos := strings.Index(out, id)
		require.GreaterOrEqual(t, pos, 0, "console output should contain %s", id)
		assert.Greater(t, pos, last, "%s should appear after the previous scenario", id)
		last = pos
	}
}

func TestFormat_ConsoleFieldOrder(t *testing.T) {
	t.Parallel()

	out, err := Format(loginSuite(t), FormatConsole)
	require.NoError(t, err)

	// Fixed field order within a scenario block.
	block := out[strings.Index(out, "TEST SCENARIO 1"):strings.Index(out, "TEST SCENARIO 2")]
	fields := []string{"Title:", "Type:", "Priority:", "Description:", "Preconditions:", "Test Steps:", "Expected Result:"}
	last := -1
	for _, f := range fields {
		pos := strings.Index(block, f)
		require.GreaterOrEqual(t, pos, 0, "scenario block should contain %q", f)
		assert.Greater(t, pos, last)
		last = pos
	}

	assert.Contains(t, block, "  • User account exists")
	assert.Contains(t, block, "  1. Open the login page")
	assert.Contains(t, block, "  3. Submit the form")
}

func TestFormat_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	original := loginSuite(t)

	out, err := Format(original, FormatJSON)
	require.NoError(t, err)

	parsed, err := suite.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestFormat_Markdown(t *testing.T) {
	t.Parallel()

	out, err := Format(loginSuite(t), FormatMarkdown)
	require.NoError(t, err)

	assert.Contains(t, out, "# Test Case Generator Results")
	assert.Contains(t, out, "**User Story:** "+loginStory)
	assert.Contains(t, out, "## Test Scenario 1: TC001")
	assert.Contains(t, out, "## Test Scenario 6: TC006")
	assert.Contains(t, out, "- User account exists")
	assert.Contains(t, out, "1. Open the login page")
	assert.Contains(t, out, "**Expected Result:**")
}

func TestFormat_UnrecognizedSelectorFallsBackToConsole(t *testing.T) {
	t.Parallel()

	s := loginSuite(t)

	console, err := Format(s, FormatConsole)
	require.NoError(t, err)

	fallback, err := Format(s, "yaml")
	require.NoError(t, err)
	assert.Equal(t, console, fallback)
}

func TestIsValidFormat(t *testing.T) {
	t.Parallel()

	for _, f := range Formats {
		assert.True(t, IsValidFormat(f))
	}
	assert.False(t, IsValidFormat("yaml"))
	assert.False(t, IsValidFormat(""))
}
