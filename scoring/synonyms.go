package scoring

import "strings"

// SynonymTable maps a concept to the alternate terms treated as
// interchangeable with it. Tables are passed by value into the similarity
// functions and are never mutated by this package.
type SynonymTable map[string][]string

// DefaultFashionSynonyms returns a fresh copy of the built-in fashion
// vocabulary. Callers may extend the returned table without affecting other
// callers.
func DefaultFashionSynonyms() SynonymTable {
	return SynonymTable{
		"luxury":      {"high-end", "premium", "upscale", "designer"},
		"casual":      {"relaxed", "laid-back", "comfortable", "easy"},
		"elegant":     {"sophisticated", "refined", "polished", "chic"},
		"trendy":      {"fashionable", "stylish", "on-trend", "contemporary"},
		"vintage":     {"retro", "classic", "throwback", "timeless"},
		"minimalist":  {"simple", "clean", "understated", "minimal"},
		"bohemian":    {"boho", "hippie", "free-spirited", "eclectic"},
		"streetwear":  {"urban", "street-style", "casual-cool"},
		"athleisure":  {"sporty", "athletic", "activewear"},
		"sustainable": {"eco-friendly", "ethical", "conscious", "green"},
	}
}

// FashionSimilarity scores predicted against expected with awareness of
// fashion terminology. The metric privileges recall: predicted words that
// have no counterpart in expected carry no penalty.
//
// Scoring tiers:
//   - exact normalized match: 1.0
//   - one string contains the other (case-insensitive): 0.9
//   - otherwise 0.7*base + 0.3*synonym, capped at 1.0, where base is the
//     fraction of expected tokens found verbatim in predicted and synonym is
//     the fraction matched through the table.
//
// A synonym hit requires the expected token to equal a table key or appear in
// a group's synonym list, and any phrase of that group to occur as a
// substring of the full predicted text. Substring containment can match
// inside longer words ("casual" inside "casualty"); that leniency is part of
// the metric's contract.
func FashionSimilarity(predicted, expected string, synonyms SynonymTable) float64 {
	if predicted == "" || expected == "" {
		return 0.0
	}

	predictedLower := strings.ToLower(predicted)
	expectedLower := strings.ToLower(expected)

	if strings.TrimSpace(predictedLower) == strings.TrimSpace(expectedLower) {
		return 1.0
	}

	if strings.Contains(predictedLower, expectedLower) || strings.Contains(expectedLower, predictedLower) {
		return 0.9
	}

	predictedWords := Tokenize(predictedLower)
	expectedWords := Tokenize(expectedLower)

	directOverlap := 0
	for w := range expectedWords {
		if _, ok := predictedWords[w]; ok {
			directOverlap++
		}
	}

	baseScore := 0.0
	if len(expectedWords) > 0 {
		baseScore = float64(directOverlap) / float64(len(expectedWords))
	}

	synonymMatches := 0
	for w := range expectedWords {
		if _, ok := predictedWords[w]; ok {
			continue // already counted in the direct overlap
		}
		if matchesSynonymGroup(w, predictedLower, synonyms) {
			synonymMatches++
		}
	}

	synonymScore := 0.0
	if len(expectedWords) > 0 {
		synonymScore = float64(synonymMatches) / float64(len(expectedWords))
	}

	return clamp(baseScore*0.7+synonymScore*0.3, 0.0, 1.0)
}

// matchesSynonymGroup reports whether word belongs to a synonym group whose
// vocabulary (key included) appears somewhere in the predicted text.
func matchesSynonymGroup(word, predictedLower string, synonyms SynonymTable) bool {
	for key, group := range synonyms {
		if word != key && !containsString(group, word) {
			continue
		}
		if strings.Contains(predictedLower, key) {
			return true
		}
		for _, syn := range group {
			if strings.Contains(predictedLower, syn) {
				return true
			}
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
