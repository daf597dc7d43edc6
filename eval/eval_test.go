package eval

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ortall0201/fashionbench/internal/oteltest"
	"github.com/ortall0201/fashionbench/scoring"
)

func exactScorer() Scorer[string, string] {
	return NewScorer("exact_match", func(_ context.Context, c Case[string, string], result string) (float64, error) {
		return scoring.ExactMatch(result, c.Expected), nil
	})
}

func TestRunHardcodedEval(t *testing.T) {
	exporter := oteltest.Setup(t)
	ctx := context.Background()

	task := func(_ context.Context, input string) (string, error) {
		out := strings.ToUpper(input)
		if input == "boho" {
			out = "WRONG" // one deliberate miss
		}
		return out, nil
	}

	cases := []Case[string, string]{
		{ID: "ex_001", Input: "chic", Expected: "CHIC"},
		{ID: "ex_002", Input: "boho", Expected: "BOHO"},
		{ID: "ex_003", Input: "grunge", Expected: "GRUNGE"},
	}

	report, err := Run(ctx, Opts[string, string]{
		Name:    "Uppercase",
		Model:   "simulated",
		Cases:   NewCases(cases),
		Task:    task,
		Scorers: []Scorer[string, string]{exactScorer()},
	})
	require.NoError(t, err)

	assert.Equal(t, "Uppercase", report.Name)
	assert.Equal(t, "simulated", report.Model)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, scoring.Summary{Total: 3, Passed: 2, Accuracy: 2.0 / 3, AvgScore: 2.0 / 3}, report.Summary)

	require.Len(t, report.Records, 3)
	assert.Equal(t, "ex_001", report.Records[0].ID)
	assert.Equal(t, 1.0, report.Records[0].Score)
	assert.Equal(t, 0.0, report.Records[1].Score)
	assert.Equal(t, map[string]float64{"exact_match": 0.0}, report.Records[1].Scores)

	spans := exporter.Flush()
	assert.Len(t, oteltest.Named(spans, "case"), 3)
	assert.Len(t, oteltest.Named(spans, "task"), 3)
	assert.Len(t, oteltest.Named(spans, "score"), 3)

	caseSpan := oteltest.Named(spans, "case")[0]
	assert.Equal(t, "Uppercase", caseSpan.StringAttr("fashionbench.eval"))

	var scores map[string]float64
	oteltest.Named(spans, "score")[0].JSONAttr("fashionbench.scores", &scores)
	assert.Contains(t, scores, "exact_match")
}

func TestRunWeightedScorers(t *testing.T) {
	oteltest.Setup(t)

	task := func(_ context.Context, input string) (string, error) { return input, nil }

	one := NewScorer("a", func(_ context.Context, _ Case[string, string], _ string) (float64, error) {
		return 1.0, nil
	})
	zero := NewScorer("b", func(_ context.Context, _ Case[string, string], _ string) (float64, error) {
		return 0.0, nil
	})

	report, err := Run(context.Background(), Opts[string, string]{
		Name:         "Weighted",
		Cases:        NewCases([]Case[string, string]{{ID: "x", Input: "in", Expected: "in"}}),
		Task:         task,
		Scorers:      []Scorer[string, string]{one, zero},
		ScoreWeights: map[string]float64{"a": 3, "b": 1},
	})
	require.NoError(t, err)
	require.Len(t, report.Records, 1)
	assert.InDelta(t, 0.75, report.Records[0].Score, 1e-9)
}

func TestRunParallel(t *testing.T) {
	oteltest.Setup(t)

	var cases []Case[string, string]
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		cases = append(cases, Case[string, string]{ID: id, Input: id, Expected: id})
	}

	report, err := Run(context.Background(), Opts[string, string]{
		Name:        "Parallel",
		Cases:       NewCases(cases),
		Task:        func(_ context.Context, input string) (string, error) { return input, nil },
		Scorers:     []Scorer[string, string]{exactScorer()},
		Parallelism: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 8, report.Summary.Total)
	assert.Equal(t, 8, report.Summary.Passed)

	// Records come back in dataset order regardless of worker scheduling.
	ids := make([]string, len(report.Records))
	for i, r := range report.Records {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, ids)
}

func TestRunValidation(t *testing.T) {
	ctx := context.Background()
	task := func(_ context.Context, input string) (string, error) { return input, nil }
	cases := NewCases([]Case[string, string]{{ID: "x"}})
	scorers := []Scorer[string, string]{exactScorer()}

	_, err := Run(ctx, Opts[string, string]{Cases: cases, Task: task, Scorers: scorers})
	assert.ErrorContains(t, err, "Name is required")

	_, err = Run(ctx, Opts[string, string]{Name: "n", Task: task, Scorers: scorers})
	assert.ErrorContains(t, err, "Cases is required")

	_, err = Run(ctx, Opts[string, string]{Name: "n", Cases: cases, Scorers: scorers})
	assert.ErrorContains(t, err, "Task is required")

	_, err = Run(ctx, Opts[string, string]{Name: "n", Cases: cases, Task: task})
	assert.ErrorContains(t, err, "Scorer is required")
}

func TestRunTaskError(t *testing.T) {
	oteltest.Setup(t)

	boom := errors.New("model unavailable")
	task := func(_ context.Context, input string) (string, error) {
		if input == "bad" {
			return "", boom
		}
		return input, nil
	}

	report, err := Run(context.Background(), Opts[string, string]{
		Name: "Errors",
		Cases: NewCases([]Case[string, string]{
			{ID: "1", Input: "ok", Expected: "ok"},
			{ID: "2", Input: "bad", Expected: "bad"},
		}),
		Task:    task,
		Scorers: []Scorer[string, string]{exactScorer()},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	// The failing case is dropped from the summary; the rest still runs.
	assert.Equal(t, 1, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.Passed)
}

type failingCases struct{ done bool }

func (f *failingCases) Next() (Case[string, string], error) {
	if f.done {
		var zero Case[string, string]
		return zero, io.EOF
	}
	f.done = true
	var zero Case[string, string]
	return zero, errors.New("corrupt row")
}

func TestRunCaseIteratorError(t *testing.T) {
	oteltest.Setup(t)

	report, err := Run(context.Background(), Opts[string, string]{
		Name:    "IterErr",
		Cases:   &failingCases{},
		Task:    func(_ context.Context, input string) (string, error) { return input, nil },
		Scorers: []Scorer[string, string]{exactScorer()},
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "corrupt row")
	assert.Equal(t, 0, report.Summary.Total)
}

func TestNewCasesExhaustion(t *testing.T) {
	it := NewCases([]Case[string, string]{{ID: "only"}})

	c, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "only", c.ID)

	_, err = it.Next()
	assert.Equal(t, io.EOF, err)
	_, err = it.Next()
	assert.Equal(t, io.EOF, err)
}
