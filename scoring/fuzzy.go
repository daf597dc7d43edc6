package scoring

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// EditSimilarity scores how close two strings are in spelling using
// Jaro-Winkler similarity over the normalized (trimmed, lowercased) inputs.
// It follows the same contract as the other metrics: empty inputs score 0.0
// and the result is always in [0, 1].
//
// Unlike FashionSimilarity this metric has no notion of vocabulary, so it is
// best used as a diagnostic signal for near-duplicate phrasing rather than a
// pass/fail criterion.
func EditSimilarity(predicted, expected string) float64 {
	if predicted == "" || expected == "" {
		return 0.0
	}

	p := strings.ToLower(strings.TrimSpace(predicted))
	e := strings.ToLower(strings.TrimSpace(expected))

	sim, err := edlib.StringsSimilarity(p, e, edlib.JaroWinkler)
	if err != nil {
		return 0.0
	}
	return clamp(float64(sim), 0.0, 1.0)
}
