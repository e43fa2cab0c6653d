// Package suite defines the test suite data model: validated story input,
// generated scenarios, and the parsing of model replies into typed records.
package suite

import (
	"errors"
	"fmt"
)

// Sentinel errors for distinguishing failure stages at the boundary.
var (
	// ErrValidation indicates the story input failed validation.
	ErrValidation = errors.New("story validation failed")
	// ErrParse indicates the model reply was not syntactically valid JSON.
	ErrParse = errors.New("reply is not valid JSON")
	// ErrConstruct indicates the reply parsed but did not describe a usable suite.
	ErrConstruct = errors.New("reply is missing required suite fields")
)

// Scenario is a single generated test case. JSON field names are the wire
// format shared with the model prompt and the json output format.
type Scenario struct {
	ScenarioID     string   `json:"scenario_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Preconditions  []string `json:"preconditions"`
	TestSteps      []string `json:"test_steps"`
	ExpectedResult string   `json:"expected_result"`
	TestType       string   `json:"test_type"`
	Priority       string   `json:"priority"`
}

// Suite is the complete set of scenarios generated for one user story.
type Suite struct {
	UserStory      string     `json:"user_story"`
	TestScenarios  []Scenario `json:"test_scenarios"`
	CoverageAreas  []string   `json:"coverage_areas"`
	TotalScenarios int        `json:"total_scenarios"`
}

// StoryInput is the validated input for one generation request. It lives for
// the duration of a single request and is never persisted.
type StoryInput struct {
	Story              string   `json:"story" validate:"required,min=10"`
	AcceptanceCriteria []string `json:"acceptance_criteria,omitempty"`
	StoryType          string   `json:"story_type"`
}

// New constructs a Suite and restores its invariants. The model-reported
// scenario count is untrustworthy, so TotalScenarios is always overwritten
// with the actual list length. Scenarios missing an identifier, title, test
// steps, or expected result are rejected.
func New(userStory string, scenarios []Scenario, coverageAreas []string) (*Suite, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("%w: no test scenarios", ErrConstruct)
	}
	for i, sc := range scenarios {
		switch {
		case sc.ScenarioID == "":
			return nil, fmt.Errorf("%w: scenario %d has no scenario_id", ErrConstruct, i+1)
		case sc.Title == "":
			return nil, fmt.Errorf("%w: scenario %s has no title", ErrConstruct, sc.ScenarioID)
		case len(sc.TestSteps) == 0:
			return nil, fmt.Errorf("%w: scenario %s has no test steps", ErrConstruct, sc.ScenarioID)
		case sc.ExpectedResult == "":
			return nil, fmt.Errorf("%w: scenario %s has no expected result", ErrConstruct, sc.ScenarioID)
		}
	}

	return &Suite{
		UserStory:      userStory,
		TestScenarios:  scenarios,
		CoverageAreas:  coverageAreas,
		TotalScenarios: len(scenarios),
	}, nil
}
