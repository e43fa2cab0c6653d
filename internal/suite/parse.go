package suite

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Fenced code block patterns for locating JSON in a free-form model reply.
// The ```json form is preferred; a bare fence is accepted as a fallback
// because models frequently omit the language tag.
var (
	jsonFenceRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	bareFenceRe = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// ExtractJSON locates the JSON payload in raw reply text. It searches for a
// ```json fenced block first, then any fenced block, and finally falls back
// to the whole trimmed reply. Pure text transformation, no parsing.
func ExtractJSON(text string) string {
	if m := jsonFenceRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := bareFenceRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return strings.TrimSpace(text)
}

// Parse extracts and decodes a model reply into a Suite. Syntactically
// invalid JSON reports ErrParse; valid JSON that does not describe a usable
// suite, including wrong-typed fields, reports ErrConstruct. There is no
// partial-success mode.
func Parse(reply string) (*Suite, error) {
	payload := ExtractJSON(reply)

	var decoded Suite
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: %v", ErrConstruct, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	// New overwrites the decoded TotalScenarios with the actual count.
	return New(decoded.UserStory, decoded.TestScenarios, decoded.CoverageAreas)
}
