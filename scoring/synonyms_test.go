package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFashionSimilarity(t *testing.T) {
	syn := DefaultFashionSynonyms()

	tests := []struct {
		name      string
		predicted string
		expected  string
		want      float64
	}{
		{"exact match", "Quiet Luxury", "quiet luxury", 1.0},
		{"predicted contains expected", "Quiet luxury and stealth wealth aesthetic", "quiet luxury", 0.9},
		{"expected contains predicted", "boho", "boho chic festival look", 0.9},
		{"empty predicted", "", "chic", 0.0},
		{"empty expected", "chic", "", 0.0},
		// expected={high,end,style}; direct overlap={style} -> base 1/3.
		// "high" and "end" are not stored synonym tokens (the table keeps the
		// hyphenated phrase "high-end"), so no synonym credit.
		{"hyphenated synonym tokens miss", "luxury style", "high-end style", 0.7 / 3},
		// expected={casual}; "relaxed" is in the casual group -> synonym 1/1.
		{"synonym only", "relaxed fit", "casual", 0.3},
		// expected={vintage,dress}; direct={dress} base 1/2; "retro" matches
		// the vintage group -> synonym 1/2.
		{"mixed direct and synonym", "retro dress", "vintage dress", 0.7*0.5 + 0.3*0.5},
		{"no relation", "sporty joggers", "quiet elegance", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FashionSimilarity(tt.predicted, tt.expected, syn), 1e-9)
		})
	}
}

// Synonym and containment checks use substring matching against the whole
// predicted text, which produces known false positives on partial words.
func TestFashionSimilaritySubstringFalsePositives(t *testing.T) {
	syn := DefaultFashionSynonyms()

	// "casual" is a substring of "casualty", so the containment shortcut
	// fires even though the texts are unrelated.
	assert.InDelta(t, 0.9, FashionSimilarity("a casualty report", "casual", syn), 1e-9)

	// "green" (a sustainable-group synonym) matches inside "greenhouse".
	// expected={sustainable,style}: base 0, synonym 1/2 -> 0.15.
	assert.InDelta(t, 0.15, FashionSimilarity("greenhouse tour", "sustainable style", syn), 1e-9)
}

func TestDefaultFashionSynonymsIsACopy(t *testing.T) {
	a := DefaultFashionSynonyms()
	b := DefaultFashionSynonyms()
	require.Contains(t, a, "luxury")

	a["luxury"] = nil
	delete(a, "casual")

	assert.Equal(t, []string{"high-end", "premium", "upscale", "designer"}, b["luxury"])
	assert.Contains(t, b, "casual")
}

// Unrelated predicted tokens carry no penalty: full direct coverage of the
// expected tokens scores the whole 0.7 base share no matter how much extra
// text the prediction carries.
func TestFashionSimilarityRecallBias(t *testing.T) {
	syn := DefaultFashionSynonyms()

	short := FashionSimilarity("chic elegant", "elegant chic", syn)
	bloated := FashionSimilarity("chic elegant plus a pile of unrelated rambling words", "elegant chic", syn)

	assert.InDelta(t, 0.7, short, 1e-9)
	assert.Equal(t, short, bloated)
}
