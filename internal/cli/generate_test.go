package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testgen-ai/testgen/internal/render"
	"github.com/testgen-ai/testgen/internal/suite"
)

func testSuite(t *testing.T) *suite.Suite {
	t.Helper()

	s, err := suite.New("As a user, I want to log in", []suite.Scenario{{
		ScenarioID:     "TC001",
		Title:          "Valid login",
		Description:    "Login with valid credentials",
		Preconditions:  []string{"Account exists"},
		TestSteps:      []string{"Enter credentials", "Submit"},
		ExpectedResult: "Dashboard shown",
		TestType:       "positive",
		Priority:       "high",
	}}, []string{"Authentication"})
	require.NoError(t, err)
	return s
}

func newOutputCmd(buf *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd
}

func TestEmit_PrintsToStdout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmd := newOutputCmd(&buf)

	require.NoError(t, emit(cmd, testSuite(t), render.FormatConsole, ""))
	assert.Contains(t, buf.String(), "TEST CASE GENERATOR RESULTS")
	assert.Contains(t, buf.String(), "TC001")
}

func TestEmit_SavesToFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmd := newOutputCmd(&buf)
	path := filepath.Join(t.TempDir(), "out.md")

	require.NoError(t, emit(cmd, testSuite(t), render.FormatMarkdown, path))

	assert.Contains(t, buf.String(), "Output saved to: "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Test Case Generator Results")
	assert.NotContains(t, buf.String(), "# Test Case Generator Results", "saved output should not also print")
}

func TestGenerate_RequiresStoryFlag(t *testing.T) {
	rootCmd.SetArgs([]string{"generate"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, "a user story is required", err.Error())
}

func TestCombine_JSONArray(t *testing.T) {
	t.Parallel()

	s := testSuite(t)
	out, err := combine([]*suite.Suite{s, s}, render.FormatJSON)
	require.NoError(t, err)
	assert.True(t, len(out) > 2 && out[0] == '[', "json batch output should be a JSON array")
	assert.Contains(t, out, `"scenario_id": "TC001"`)
}

func TestCombine_ConcatenatedText(t *testing.T) {
	t.Parallel()

	s := testSuite(t)
	out, err := combine([]*suite.Suite{s, s}, render.FormatConsole)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count([]byte(out), []byte("TEST CASE GENERATOR RESULTS")))
}
