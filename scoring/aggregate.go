package scoring

import "strings"

// ListOverlap computes the F1 score between two lists of strings. Items are
// normalized (lowercased, trimmed) into sets before comparison, so duplicates
// and ordering are ignored. Returns 0.0 if either list is empty.
func ListOverlap(predicted, expected []string) float64 {
	if len(predicted) == 0 || len(expected) == 0 {
		return 0.0
	}

	predictedSet := normalizeSet(predicted)
	expectedSet := normalizeSet(expected)

	intersection := 0
	for item := range predictedSet {
		if _, ok := expectedSet[item]; ok {
			intersection++
		}
	}

	precision := float64(intersection) / float64(len(predictedSet))
	recall := float64(intersection) / float64(len(expectedSet))

	if precision+recall == 0 {
		return 0.0
	}
	return 2 * precision * recall / (precision + recall)
}

func normalizeSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[strings.TrimSpace(strings.ToLower(item))] = struct{}{}
	}
	return set
}

// Summary aggregates per-example scores into overall metrics.
type Summary struct {
	// Total is the number of scored examples.
	Total int `json:"total"`
	// Passed counts examples whose score met the pass threshold.
	Passed int `json:"passed"`
	// Accuracy is Passed/Total, or 0 when Total is 0.
	Accuracy float64 `json:"accuracy"`
	// AvgScore is the arithmetic mean of all scores, or 0 when Total is 0.
	AvgScore float64 `json:"avg_score"`
}

// DefaultPassThreshold is the score at or above which an example counts as
// passed.
const DefaultPassThreshold = 0.7

// Accuracy summarizes a slice of per-example scores against a pass
// threshold. An empty slice yields a zero-valued Summary.
func Accuracy(scores []float64, threshold float64) Summary {
	if len(scores) == 0 {
		return Summary{}
	}

	var passed int
	var sum float64
	for _, s := range scores {
		if s >= threshold {
			passed++
		}
		sum += s
	}

	total := len(scores)
	return Summary{
		Total:    total,
		Passed:   passed,
		Accuracy: float64(passed) / float64(total),
		AvgScore: sum / float64(total),
	}
}

// WeightedScore computes the weighted mean of named scores. A nil weights map
// assigns every score a weight of 1.0; a score whose name is missing from a
// non-nil weights map also defaults to 1.0, and that defaulted weight counts
// toward the total so the result stays in [0, 1]. Weight entries with no
// matching score still count toward the total, dragging the mean down.
// Returns 0.0 when scores is empty or the total weight is 0.
func WeightedScore(scores map[string]float64, weights map[string]float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}

	var totalWeight, weightedSum float64

	if weights == nil {
		for _, score := range scores {
			weightedSum += score
			totalWeight++
		}
	} else {
		for _, w := range weights {
			totalWeight += w
		}
		for name, score := range scores {
			w, ok := weights[name]
			if !ok {
				w = 1.0
				totalWeight += w
			}
			weightedSum += score * w
		}
	}

	if totalWeight == 0 {
		return 0.0
	}
	return weightedSum / totalWeight
}
