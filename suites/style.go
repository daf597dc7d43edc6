package suites

import (
	"context"
	"strings"

	"github.com/ortall0201/fashionbench/dataset"
	"github.com/ortall0201/fashionbench/eval"
	"github.com/ortall0201/fashionbench/scoring"
)

type styleRow struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Expected    string `json:"expected"`
}

// styleRules maps keyword groups to a style category; the first group with a
// hit wins, so order matters.
var styleRules = []struct {
	keywords []string
	category string
}{
	{[]string{"blazer", "trousers", "professional", "tote", "corporate"}, "Corporate/Professional"},
	{[]string{"leather jacket", "distressed", "combat boots", "grunge", "band t-shirt"}, "Grunge/Rock"},
	{[]string{"floral", "maxi dress", "basket bag", "bohemian", "woven"}, "Bohemian/Boho"},
	{[]string{"hoodie", "joggers", "sneakers", "athleisure", "sporty"}, "Athleisure/Sporty"},
	{[]string{"cashmere", "quiet luxury", "minimalist", "tailored wool"}, "Quiet Luxury/Minimalist"},
	{[]string{"streetwear", "baggy jeans", "nike", "puffer", "urban"}, "Streetwear/Urban"},
	{[]string{"coquette", "pastel", "ribbon", "pearl", "feminine"}, "Coquette/Feminine"},
	{[]string{"hypebeast", "cargo pants", "bucket hat", "chains"}, "Hypebeast/Streetwear"},
	{[]string{"linen", "espadrilles", "coastal", "resort", "straw hat"}, "Coastal/Resort"},
	{[]string{"tweed", "classic", "timeless", "kitten heels"}, "Classic/Timeless"},
}

// ClassifyStyle stands in for a model call: it assigns a style category from
// keywords in the outfit description.
func ClassifyStyle(description string) string {
	descLower := strings.ToLower(description)

	for _, rule := range styleRules {
		for _, kw := range rule.keywords {
			if strings.Contains(descLower, kw) {
				return rule.category
			}
		}
	}
	return "Contemporary/Mixed"
}

func styleClassificationSuite() Suite {
	s := Suite{
		Key:         "style_classification",
		Name:        "Style Classification",
		Description: "Classify fashion styles and aesthetics",
		DatasetFile: "style_classification.jsonl",
	}

	s.Run = func(ctx context.Context, opts RunOptions) (*eval.Report, error) {
		rows, err := dataset.Load[styleRow](datasetPath(opts, s.DatasetFile))
		if err != nil {
			return nil, err
		}

		cases := make([]eval.Case[string, string], len(rows))
		for i, r := range rows {
			cases[i] = eval.Case[string, string]{
				ID:       r.ID,
				Input:    r.Description,
				Expected: r.Expected,
			}
		}

		task := func(_ context.Context, description string) (string, error) {
			return ClassifyStyle(description), nil
		}

		synonyms := scoring.DefaultFashionSynonyms()
		scorers := []eval.Scorer[string, string]{
			// Exact category match, falling back to fashion-aware
			// similarity for near-miss labels.
			eval.NewScorer("category", func(_ context.Context, c eval.Case[string, string], result string) (float64, error) {
				exact := scoring.ExactMatch(result, c.Expected)
				if exact == 1.0 {
					return exact, nil
				}
				similarity := scoring.FashionSimilarity(result, c.Expected, synonyms)
				if similarity > exact {
					return similarity, nil
				}
				return exact, nil
			}),
		}

		return runEval(ctx, opts, s.Name, cases, task, scorers, nil, scoring.DefaultPassThreshold)
	}

	return s
}
