// Package eval provides the generic evaluation harness used by the
// fashionbench suites. An evaluation pairs an iterator of test cases with a
// task (the system under test, here always a simulated model) and a set of
// named scorers, runs every case, and aggregates the per-case scores into a
// summary report.
//
// Each case run emits OpenTelemetry spans ("case", "task", "score") carrying
// the JSON-encoded input, expected value, output and scores, so a span
// exporter can be plugged in for debugging without changing the harness.
package eval

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/ortall0201/fashionbench/scoring"
)

var (
	errEval   = errors.New("eval error")
	errScorer = errors.New("scorer error")
	errTask   = errors.New("task run error")
	errCases  = errors.New("case iterator error")
)

// Case is a single test example: an input for the task and the reference
// answer the scorers compare against.
type Case[I, R any] struct {
	// ID identifies the example within its dataset.
	ID string

	// Input is passed to the task function.
	Input I

	// Expected is the reference answer used by scorers.
	Expected R

	// Tags are optional labels attached to the case span.
	Tags []string

	// Metadata carries optional extra fields from the dataset row.
	Metadata map[string]any
}

// Cases iterates over test cases. Implementations must return io.EOF when
// iteration is complete, which allows lazy loading without holding every
// case in memory.
type Cases[I, R any] interface {
	Next() (Case[I, R], error)
}

// Task produces an output for a case input. It represents the unit under
// evaluation: in this repository always a keyword heuristic standing in for
// a model call.
type Task[I, R any] func(ctx context.Context, input I) (R, error)

// Opts configures a single evaluation run.
type Opts[I, R any] struct {
	// Name identifies the evaluation (e.g. "Trend Detection"). Required.
	Name string

	// Model is a display label carried through to the report.
	Model string

	// Cases supplies the test examples. Required.
	Cases Cases[I, R]

	// Task is the function under evaluation. Required.
	Task Task[I, R]

	// Scorers are applied to every case result. At least one is required.
	Scorers []Scorer[I, R]

	// ScoreWeights combines the named scorer outputs into the case's final
	// score via scoring.WeightedScore. Nil means equal weights.
	ScoreWeights map[string]float64

	// PassThreshold is the final score at or above which a case passes.
	// Zero means scoring.DefaultPassThreshold.
	PassThreshold float64

	// Parallelism is the number of goroutines evaluating cases. Values
	// below 1 mean sequential execution.
	Parallelism int
}

// Record is the scored outcome of one case.
type Record struct {
	ID       string             `json:"id"`
	Input    any                `json:"input"`
	Expected any                `json:"expected"`
	Output   any                `json:"output"`
	Scores   map[string]float64 `json:"scores"`
	Score    float64            `json:"score"`
}

// Report is the aggregated outcome of an evaluation run.
type Report struct {
	RunID     string          `json:"run_id"`
	Name      string          `json:"name"`
	Model     string          `json:"model"`
	Threshold float64         `json:"threshold"`
	Summary   scoring.Summary `json:"summary"`
	Elapsed   time.Duration   `json:"elapsed"`
	Records   []Record        `json:"records"`
}

// Run executes the evaluation and returns its report. Scorer and task
// failures are collected rather than aborting the run; the joined error is
// returned alongside the report covering the cases that did complete.
func Run[I, R any](ctx context.Context, opts Opts[I, R]) (*Report, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("%w: Name is required", errEval)
	}
	if opts.Cases == nil {
		return nil, fmt.Errorf("%w: Cases is required", errEval)
	}
	if opts.Task == nil {
		return nil, fmt.Errorf("%w: Task is required", errEval)
	}
	if len(opts.Scorers) == 0 {
		return nil, fmt.Errorf("%w: at least one Scorer is required", errEval)
	}

	threshold := opts.PassThreshold
	if threshold == 0 {
		threshold = scoring.DefaultPassThreshold
	}

	goroutines := opts.Parallelism
	if goroutines < 1 {
		goroutines = 1
	}

	e := &eval[I, R]{
		opts:   opts,
		tracer: otel.GetTracerProvider().Tracer("fashionbench.eval"),
	}

	start := time.Now()

	// Scale the buffer with parallelism so the producer rarely blocks.
	nextCases := make(chan nextCase[I, R], minInt(goroutines*2, 100))
	var errs lockedErrors
	var records lockedRecords

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for nc := range nextCases {
				rec, err := e.runNextCase(ctx, nc)
				if err != nil {
					errs.append(err)
					continue
				}
				records.append(rec)
			}
		}()
	}

	for {
		c, err := e.opts.Cases.Next()
		if err == io.EOF {
			break
		}
		nextCases <- nextCase[I, R]{c: c, iterErr: err}
	}
	close(nextCases)
	wg.Wait()

	recs := records.get()
	// Workers finish out of order; restore dataset order for reporting.
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })

	scores := make([]float64, len(recs))
	for i, r := range recs {
		scores[i] = r.Score
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Name:      opts.Name,
		Model:     opts.Model,
		Threshold: threshold,
		Summary:   scoring.Accuracy(scores, threshold),
		Elapsed:   time.Since(start),
		Records:   recs,
	}

	return report, errors.Join(errs.get()...)
}

// eval is the per-run execution state.
type eval[I, R any] struct {
	opts   Opts[I, R]
	tracer oteltrace.Tracer
}

// nextCase wraps a case for channel transport together with any iterator
// error that produced it.
type nextCase[I, R any] struct {
	c       Case[I, R]
	iterErr error
}

func (e *eval[I, R]) runNextCase(ctx context.Context, nc nextCase[I, R]) (Record, error) {
	ctx, span := e.tracer.Start(ctx, "case")
	defer span.End()

	if nc.iterErr != nil {
		werr := fmt.Errorf("%w: %w", errCases, nc.iterErr)
		recordSpanError(span, werr)
		return Record{}, werr
	}

	return e.runCase(ctx, span, nc.c)
}

func (e *eval[I, R]) runCase(ctx context.Context, span oteltrace.Span, c Case[I, R]) (Record, error) {
	span.SetAttributes(
		attribute.String("fashionbench.eval", e.opts.Name),
		attribute.String("fashionbench.case_id", c.ID),
	)
	if c.Tags != nil {
		span.SetAttributes(attribute.StringSlice("fashionbench.tags", c.Tags))
	}

	result, err := e.runTask(ctx, c)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Record{}, err
	}

	scores, err := e.runScorers(ctx, c, result)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Record{}, err
	}

	final := scoring.WeightedScore(scores, e.opts.ScoreWeights)

	meta := map[string]any{
		"fashionbench.input":    c.Input,
		"fashionbench.expected": c.Expected,
		"fashionbench.output":   result,
		"fashionbench.score":    final,
	}
	if err := setJSONAttrs(span, meta); err != nil {
		return Record{}, err
	}

	return Record{
		ID:       c.ID,
		Input:    c.Input,
		Expected: c.Expected,
		Output:   result,
		Scores:   scores,
		Score:    final,
	}, nil
}

func (e *eval[I, R]) runTask(ctx context.Context, c Case[I, R]) (R, error) {
	ctx, span := e.tracer.Start(ctx, "task")
	defer span.End()

	result, err := e.opts.Task(ctx, c.Input)
	if err != nil {
		taskErr := fmt.Errorf("%w: %w", errTask, err)
		recordSpanError(span, taskErr)
		var zero R
		return zero, taskErr
	}

	if err := setJSONAttr(span, "fashionbench.output", result); err != nil {
		return result, err
	}
	return result, nil
}

func (e *eval[I, R]) runScorers(ctx context.Context, c Case[I, R], result R) (map[string]float64, error) {
	ctx, span := e.tracer.Start(ctx, "score")
	defer span.End()

	scores := make(map[string]float64, len(e.opts.Scorers))

	var errs []error
	for _, scorer := range e.opts.Scorers {
		val, err := scorer.Run(ctx, c, result)
		if err != nil {
			werr := fmt.Errorf("%w: scorer %q failed: %w", errScorer, scorer.Name(), err)
			recordSpanError(span, werr)
			errs = append(errs, werr)
			continue
		}
		scores[scorer.Name()] = val
	}

	if err := setJSONAttr(span, "fashionbench.scores", scores); err != nil {
		return nil, err
	}

	return scores, errors.Join(errs...)
}

func setJSONAttrs(span oteltrace.Span, attrs map[string]any) error {
	for key, value := range attrs {
		if err := setJSONAttr(span, key, value); err != nil {
			return err
		}
	}
	return nil
}

func setJSONAttr(span oteltrace.Span, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.String(key, string(b)))
	return nil
}

func recordSpanError(span oteltrace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// lockedErrors is a goroutine-safe error list.
type lockedErrors struct {
	mu   sync.Mutex
	errs []error
}

func (e *lockedErrors) append(err error) {
	e.mu.Lock()
	e.errs = append(e.errs, err)
	e.mu.Unlock()
}

func (e *lockedErrors) get() []error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errs
}

// lockedRecords is a goroutine-safe record list.
type lockedRecords struct {
	mu   sync.Mutex
	recs []Record
}

func (r *lockedRecords) append(rec Record) {
	r.mu.Lock()
	r.recs = append(r.recs, rec)
	r.mu.Unlock()
}

func (r *lockedRecords) get() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recs
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
