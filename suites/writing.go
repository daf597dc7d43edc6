package suites

import (
	"context"
	"fmt"
	"strings"

	"github.com/ortall0201/fashionbench/dataset"
	"github.com/ortall0201/fashionbench/eval"
	"github.com/ortall0201/fashionbench/scoring"
)

// WritingInput is one caption rewriting example: the plain original caption,
// context about the outfit, and the requested writing style.
type WritingInput struct {
	Original string `json:"original"`
	Context  string `json:"context"`
	Style    string `json:"style"`
}

type writingRow struct {
	ID       string `json:"id"`
	Original string `json:"original"`
	Context  string `json:"context"`
	Style    string `json:"style"`
	Expected string `json:"expected"`
}

// writingPassThreshold is lower than the suite default: caption quality is
// graded on a checklist rather than answer agreement.
const writingPassThreshold = 0.6

// descriptiveWords is the elevated vocabulary the quality check rewards.
var descriptiveWords = []string{
	"elevated", "chic", "sophisticated", "effortless", "timeless", "bold", "dreamy", "cozy",
}

// RewriteCaption stands in for a model call: it picks a canned rewrite from
// keywords in the outfit context.
func RewriteCaption(in WritingInput) string {
	ctxLower := strings.ToLower(in.Context)

	switch {
	case strings.Contains(ctxLower, "blazer") && strings.Contains(ctxLower, "jeans"):
		return "Elevated casual perfection: tailored blazer meets classic denim. Sophisticated yet comfortable."
	case strings.Contains(ctxLower, "floral") && strings.Contains(ctxLower, "midi"):
		return "Spring blooms in this dreamy floral midi. Effortless elegance with garden party charm."
	case strings.Contains(ctxLower, "sneakers") && strings.Contains(ctxLower, "white"):
		return "Statement sneakers that steal the show. Clean, bold, endlessly wearable."
	case strings.Contains(ctxLower, "little black dress") || strings.Contains(ctxLower, "lbd"):
		return "That LBD energy: timeless, confident, unforgettable. When the dress speaks volumes."
	case strings.Contains(ctxLower, "sweater") && strings.Contains(ctxLower, "leggings"):
		return "Cozy season done right: wrapped in comfort without sacrificing style."
	case strings.Contains(ctxLower, "pencil skirt") && strings.Contains(ctxLower, "blouse"):
		return "Boardroom ready: polished power dressing meets feminine sophistication."
	case strings.Contains(ctxLower, "vintage") || strings.Contains(ctxLower, "thrifted"):
		return "Sustainable style wins: this vintage treasure proves pre-loved is best. Thrifted, not bought."
	case strings.Contains(ctxLower, "linen") && strings.Contains(ctxLower, "summer"):
		return "Sun-soaked sophistication: breezy linens for endless summer days. Vacation mode on."
	case strings.Contains(ctxLower, "coat") && strings.Contains(ctxLower, "bold"):
		return "That compliment magnet: when your coat steals the spotlight. Bold moves, big impact."
	case strings.Contains(ctxLower, "loungewear"):
		return "Elevated lounging: staying in never looked this chic. Cozy, coordinated, completely stylish."
	default:
		return fmt.Sprintf("Transformed from '%s' into elevated fashion content with %s vibes.", in.Original, in.Style)
	}
}

// ScoreWritingQuality grades a generated caption on a checklist: substantial
// length (0.2), elevated vocabulary (0.3), sentence or colon structure (0.2),
// and fashion-aware similarity to the reference caption (0.3).
func ScoreWritingQuality(generated, expected string, synonyms scoring.SynonymTable) float64 {
	score := 0.0

	if len(generated) > 50 {
		score += 0.2
	}

	genLower := strings.ToLower(generated)
	for _, word := range descriptiveWords {
		if strings.Contains(genLower, word) {
			score += 0.3
			break
		}
	}

	if strings.Contains(generated, ".") || strings.Contains(generated, ":") {
		score += 0.2
	}

	score += scoring.FashionSimilarity(generated, expected, synonyms) * 0.3

	return score
}

func fashionWritingSuite() Suite {
	s := Suite{
		Key:         "fashion_writing",
		Name:        "Fashion Writing",
		Description: "Generate engaging fashion content and captions",
		DatasetFile: "caption_rewriting.jsonl",
	}

	s.Run = func(ctx context.Context, opts RunOptions) (*eval.Report, error) {
		rows, err := dataset.Load[writingRow](datasetPath(opts, s.DatasetFile))
		if err != nil {
			return nil, err
		}

		cases := make([]eval.Case[WritingInput, string], len(rows))
		for i, r := range rows {
			cases[i] = eval.Case[WritingInput, string]{
				ID:       r.ID,
				Input:    WritingInput{Original: r.Original, Context: r.Context, Style: r.Style},
				Expected: r.Expected,
			}
		}

		task := func(_ context.Context, in WritingInput) (string, error) {
			return RewriteCaption(in), nil
		}

		synonyms := scoring.DefaultFashionSynonyms()
		scorers := []eval.Scorer[WritingInput, string]{
			eval.NewScorer("quality", func(_ context.Context, c eval.Case[WritingInput, string], result string) (float64, error) {
				return ScoreWritingQuality(result, c.Expected, synonyms), nil
			}),
			// Diagnostic only: surfaces near-duplicate phrasing in reports
			// without influencing pass/fail.
			eval.NewScorer("phrasing", func(_ context.Context, c eval.Case[WritingInput, string], result string) (float64, error) {
				return scoring.EditSimilarity(result, c.Expected), nil
			}),
		}

		weights := map[string]float64{"quality": 1, "phrasing": 0}
		return runEval(ctx, opts, s.Name, cases, task, scorers, weights, writingPassThreshold)
	}

	return s
}
