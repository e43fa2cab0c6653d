// Package batch processes multiple user stories from a JSON input file,
// running independent generation requests with bounded parallelism.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/testgen-ai/testgen/internal/generator"
	"github.com/testgen-ai/testgen/internal/suite"
)

// Entry is one story in a batch file. The file is a JSON array whose elements
// are either bare story strings or {"story": ..., "criteria": [...]} objects.
type Entry struct {
	Story    string   `json:"story"`
	Criteria []string `json:"criteria,omitempty"`
}

// UnmarshalJSON accepts both the string and object entry forms.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var story string
	if err := json.Unmarshal(data, &story); err == nil {
		e.Story = story
		e.Criteria = nil
		return nil
	}

	type entryObject Entry
	var obj entryObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("entry must be a string or an object with a story field: %w", err)
	}
	*e = Entry(obj)
	return nil
}

// ReadFile reads and decodes a batch input file.
func ReadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("batch file must contain a JSON array: %w", err)
	}
	return entries, nil
}

// Result pairs a batch entry with its outcome. Exactly one of Suite and Err
// is set.
type Result struct {
	Entry Entry
	Suite *suite.Suite
	Err   error
}

// Run generates suites for all entries with at most concurrency requests in
// flight. Results keep the input order. Individual entry failures are
// recorded in the result rather than aborting the rest of the batch; the
// returned error reflects context cancellation only.
func Run(ctx context.Context, gen *generator.Generator, entries []Entry, concurrency int) ([]Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := gen.Generate(ctx, entry.Story, entry.Criteria)
			results[i] = Result{Entry: entry, Suite: s, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
