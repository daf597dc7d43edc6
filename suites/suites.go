// Package suites defines the six fashionbench evaluation suites. Each suite
// bundles a JSONL dataset, a simulated model (a keyword heuristic standing in
// for a real LLM call), and the scorers that grade its outputs, and runs them
// through the generic eval harness.
package suites

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ortall0201/fashionbench/eval"
)

// RunOptions carries the per-run settings shared by every suite.
type RunOptions struct {
	// DataDir is the directory holding the suite datasets.
	DataDir string
	// Model is a display label; the simulated tasks ignore it.
	Model string
	// Threshold overrides the suite's default pass threshold when > 0.
	Threshold float64
	// Parallelism is forwarded to the eval harness.
	Parallelism int
}

// Suite is one runnable evaluation.
type Suite struct {
	// Key is the CLI identifier, e.g. "trend_detection".
	Key string
	// Name is the display name, e.g. "Trend Detection".
	Name string
	// Description is a one-line summary for listings.
	Description string
	// DatasetFile is the JSONL file name inside DataDir.
	DatasetFile string

	// Run loads the dataset and executes the evaluation.
	Run func(ctx context.Context, opts RunOptions) (*eval.Report, error)
}

// All returns the suites in their canonical run order.
func All() []Suite {
	return []Suite{
		trendDetectionSuite(),
		productExtractionSuite(),
		styleClassificationSuite(),
		fashionWritingSuite(),
		hashtagUnderstandingSuite(),
		affiliateDetectionSuite(),
	}
}

// Lookup returns the suite with the given key.
func Lookup(key string) (Suite, error) {
	for _, s := range All() {
		if s.Key == key {
			return s, nil
		}
	}
	return Suite{}, fmt.Errorf("unknown evaluation %q", key)
}

// datasetPath resolves a suite's dataset file inside the data directory.
func datasetPath(opts RunOptions, file string) string {
	return filepath.Join(opts.DataDir, file)
}

// runEval forwards a prepared suite to the harness, applying the threshold
// override.
func runEval[I, R any](ctx context.Context, opts RunOptions, name string, cases []eval.Case[I, R], task eval.Task[I, R], scorers []eval.Scorer[I, R], weights map[string]float64, threshold float64) (*eval.Report, error) {
	if opts.Threshold > 0 {
		threshold = opts.Threshold
	}
	return eval.Run(ctx, eval.Opts[I, R]{
		Name:          name,
		Model:         opts.Model,
		Cases:         eval.NewCases(cases),
		Task:          task,
		Scorers:       scorers,
		ScoreWeights:  weights,
		PassThreshold: threshold,
		Parallelism:   opts.Parallelism,
	})
}
