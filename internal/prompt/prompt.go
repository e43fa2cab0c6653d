// Package prompt builds the deterministic instruction blocks sent to the
// completion endpoint. No I/O, no randomness: the same StoryInput always
// produces the same prompt text.
package prompt

import (
	"fmt"
	"strings"

	"github.com/testgen-ai/testgen/internal/suite"
)

// systemPrompt is the fixed instruction describing the desired testing coverage.
const systemPrompt = `You are an expert QA engineer and test case generator. Your task is to analyze user stories and generate comprehensive test scenarios.

For each user story, you should:
1. Identify all testable aspects and edge cases
2. Create positive, negative, and boundary test scenarios
3. Include proper test steps, preconditions, and expected results
4. Prioritize tests based on risk and importance
5. Ensure good test coverage

Generate test scenarios that cover:
- Happy path scenarios (positive testing)
- Error scenarios (negative testing)
- Boundary conditions and edge cases
- Integration points
- User experience aspects
- Performance considerations (when relevant)
- Security aspects (when relevant)

Each test scenario should be:
- Clear and unambiguous
- Executable by any QA tester
- Include specific steps and expected outcomes
- Properly categorized by type and priority`

// schemaInstructions describes the exact JSON reply shape so the model output
// can be decoded directly into a suite.Suite.
const schemaInstructions = `The output must be a JSON object with this structure:
{
  "user_story": "string - the original user story",
  "test_scenarios": [
    {
      "scenario_id": "string - unique identifier (e.g., TC001)",
      "title": "string - brief title describing the test scenario",
      "description": "string - detailed description of what to test",
      "preconditions": ["string - prerequisites for the test"],
      "test_steps": ["string - step-by-step instructions"],
      "expected_result": "string - expected outcome of the test",
      "test_type": "string - type of test (positive, negative, edge case)",
      "priority": "string - test priority (high, medium, low)"
    }
  ],
  "coverage_areas": ["string - areas of functionality covered"],
  "total_scenarios": "integer - total number of test scenarios"
}

Return ONLY the JSON object, optionally wrapped in a ` + "```json" + ` code fence.`

// System returns the fixed system instruction.
func System() string {
	return systemPrompt
}

// User builds the request-specific instruction embedding the story and, when
// present, a bulleted rendering of the acceptance criteria.
func User(in *suite.StoryInput) string {
	var sb strings.Builder

	sb.WriteString("Please generate comprehensive test scenarios for the following user story:\n\n")
	fmt.Fprintf(&sb, "**User Story:** %s\n", in.Story)

	if len(in.AcceptanceCriteria) > 0 {
		sb.WriteString("\n**Acceptance Criteria:**\n")
		for _, c := range in.AcceptanceCriteria {
			fmt.Fprintf(&sb, "- %s\n", c)
		}
	}

	sb.WriteString("\nPlease provide a complete test suite in the following JSON format:\n")
	sb.WriteString(schemaInstructions)
	sb.WriteString("\n\nGenerate 5-8 diverse test scenarios covering different testing aspects (positive, negative, edge cases, etc.).\n")
	sb.WriteString("Make sure each scenario has a unique ID, clear steps, and specific expected results.")

	return sb.String()
}
