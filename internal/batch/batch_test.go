package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testgen-ai/testgen/internal/generator"
	"github.com/testgen-ai/testgen/internal/suite"
)

// echoClient replies with a one-scenario suite echoing the story it was
// asked about, failing for stories that contain "FAIL".
type echoClient struct {
	mu    sync.Mutex
	calls int
}

func (c *echoClient) Complete(_ context.Context, _, user string) (string, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	reply := map[string]any{
		"user_story": user,
		"test_scenarios": []map[string]any{{
			"scenario_id":     "TC001",
			"title":           "echo",
			"description":     "echo",
			"preconditions":   []string{},
			"test_steps":      []string{"step"},
			"expected_result": "ok",
			"test_type":       "positive",
			"priority":        "low",
		}},
		"coverage_areas":  []string{"echo"},
		"total_scenarios": 1,
	}
	data, err := json.Marshal(reply)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func TestEntry_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    Entry
		wantErr bool
	}{
		"bare string": {
			input: `"As a user, I want to log in"`,
			want:  Entry{Story: "As a user, I want to log in"},
		},
		"object with criteria": {
			input: `{"story": "As a user, I want to log in", "criteria": ["a", "b"]}`,
			want:  Entry{Story: "As a user, I want to log in", Criteria: []string{"a", "b"}},
		},
		"object without criteria": {
			input: `{"story": "As a user, I want to log in"}`,
			want:  Entry{Story: "As a user, I want to log in"},
		},
		"invalid entry": {
			input:   `42`,
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var e Entry
			err := json.Unmarshal([]byte(tc.input), &e)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, e)
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stories.json")
	content := `[
		"As a user, I want to log in with my email",
		{"story": "As an admin, I want to export audit logs", "criteria": ["CSV format"]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "As a user, I want to log in with my email", entries[0].Story)
	assert.Nil(t, entries[0].Criteria)
	assert.Equal(t, []string{"CSV format"}, entries[1].Criteria)
}

func TestReadFile_NotAnArray(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stories.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"story": "x"}`), 0o644))

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON array")
}

func TestRun_PreservesOrderAndIsolatesFailures(t *testing.T) {
	t.Parallel()

	client := &echoClient{}
	gen := generator.NewWithClient(client)

	entries := []Entry{
		{Story: "As a user, I want the first story processed"},
		{Story: "bad"}, // fails validation, does not abort the batch
		{Story: "As a user, I want the third story processed"},
	}

	results, err := Run(context.Background(), gen, entries, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	assert.Contains(t, results[0].Suite.UserStory, "first story")

	require.Error(t, results[1].Err)
	assert.ErrorIs(t, results[1].Err, suite.ErrValidation)
	assert.Nil(t, results[1].Suite)

	require.NoError(t, results[2].Err)
	assert.Contains(t, results[2].Suite.UserStory, "third story")

	// Only the two valid stories reached the service.
	assert.Equal(t, 2, client.calls)
}

func TestRun_BoundedConcurrencyProcessesAll(t *testing.T) {
	t.Parallel()

	client := &echoClient{}
	gen := generator.NewWithClient(client)

	var entries []Entry
	for i := 0; i < 10; i++ {
		entries = append(entries, Entry{Story: fmt.Sprintf("As a user, I want story number %d handled", i)})
	}

	results, err := Run(context.Background(), gen, entries, 4)
	require.NoError(t, err)
	require.Len(t, results, 10)
	for i, res := range results {
		require.NoError(t, res.Err)
		assert.Contains(t, res.Suite.UserStory, fmt.Sprintf("story number %d", i))
	}
}

func TestRun_ClampsConcurrency(t *testing.T) {
	t.Parallel()

	gen := generator.NewWithClient(&echoClient{})
	results, err := Run(context.Background(), gen, []Entry{{Story: "As a user, I want one story handled"}}, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
}
