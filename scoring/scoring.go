// Package scoring provides the metric functions used to grade model outputs
// against reference answers. All functions are pure and total: every input,
// including empty or malformed data, resolves to a float64 in [0, 1] rather
// than an error, so callers can aggregate results without error handling.
//
// A score of exactly 1.0 is only produced by a normalized exact match
// (case-insensitive, whitespace-trimmed); empty inputs always score 0.0.
package scoring

import (
	"regexp"
	"strings"

	"golang.org/x/exp/constraints"
)

// wordRe splits text into word-character runs. Hyphenated phrases like
// "high-end" tokenize as two words; see FashionSimilarity for how the
// synonym table compensates.
var wordRe = regexp.MustCompile(`\w+`)

// Tokenize returns the set of unique lowercased words in text.
func Tokenize(text string) map[string]struct{} {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// ExactMatch returns 1.0 if predicted and expected are equal after trimming
// whitespace and lowercasing, 0.0 otherwise. Empty inputs score 0.0.
func ExactMatch(predicted, expected string) float64 {
	if predicted == "" || expected == "" {
		return 0.0
	}

	if strings.ToLower(strings.TrimSpace(predicted)) == strings.ToLower(strings.TrimSpace(expected)) {
		return 1.0
	}
	return 0.0
}

// PartialMatch scores word overlap between predicted and expected as the mean
// of Jaccard similarity and recall against the expected token set. Jaccard
// penalizes predictions padded with unrelated words while recall rewards
// coverage of the expected content.
//
// The threshold parameter is accepted for interface compatibility but has no
// effect on the result; callers compare the returned score against their own
// pass threshold.
func PartialMatch(predicted, expected string, _ float64) float64 {
	if predicted == "" || expected == "" {
		return 0.0
	}

	predictedWords := Tokenize(predicted)
	expectedWords := Tokenize(expected)

	if len(expectedWords) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range predictedWords {
		if _, ok := expectedWords[w]; ok {
			intersection++
		}
	}
	union := len(predictedWords) + len(expectedWords) - intersection

	jaccard := 0.0
	if union > 0 {
		jaccard = float64(intersection) / float64(union)
	}
	recall := float64(intersection) / float64(len(expectedWords))

	return (jaccard + recall) / 2
}

// clamp bounds v to [lo, hi].
func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
