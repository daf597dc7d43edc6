package eval

import "context"

// Scorer grades a task result against its case. Scores must fall in [0, 1].
type Scorer[I, R any] interface {
	// Name returns the score's name in the per-case score map.
	Name() string
	// Run computes the score for one case result.
	Run(ctx context.Context, c Case[I, R], result R) (float64, error)
}

// ScoreFunc is the function form of a scorer.
type ScoreFunc[I, R any] func(ctx context.Context, c Case[I, R], result R) (float64, error)

// NewScorer wraps a score function with a name.
func NewScorer[I, R any](name string, fn ScoreFunc[I, R]) Scorer[I, R] {
	return &scorerImpl[I, R]{name: name, fn: fn}
}

type scorerImpl[I, R any] struct {
	name string
	fn   ScoreFunc[I, R]
}

func (s *scorerImpl[I, R]) Name() string { return s.name }

func (s *scorerImpl[I, R]) Run(ctx context.Context, c Case[I, R], result R) (float64, error) {
	return s.fn(ctx, c, result)
}
