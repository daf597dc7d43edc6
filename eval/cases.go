package eval

import "io"

// NewCases adapts an in-memory slice of cases into a Cases iterator.
func NewCases[I, R any](cases []Case[I, R]) Cases[I, R] {
	return &sliceCases[I, R]{cases: cases}
}

type sliceCases[I, R any] struct {
	cases []Case[I, R]
	index int
}

func (s *sliceCases[I, R]) Next() (Case[I, R], error) {
	if s.index >= len(s.cases) {
		var zero Case[I, R]
		return zero, io.EOF
	}
	c := s.cases[s.index]
	s.index++
	return c, nil
}
