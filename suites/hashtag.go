package suites

import (
	"context"
	"strings"

	"github.com/ortall0201/fashionbench/dataset"
	"github.com/ortall0201/fashionbench/eval"
	"github.com/ortall0201/fashionbench/scoring"
)

// HashtagInfo is the decoded meaning of a fashion community hashtag.
type HashtagInfo struct {
	Meaning  string `json:"meaning"`
	Category string `json:"category"`
	Purpose  string `json:"purpose"`
}

type hashtagRow struct {
	ID       string      `json:"id"`
	Hashtag  string      `json:"hashtag"`
	Expected HashtagInfo `json:"expected"`
}

// hashtagDB covers the hashtags the simulated decoder knows about.
var hashtagDB = map[string]HashtagInfo{
	"#ootd": {
		Meaning:  "Outfit Of The Day",
		Category: "outfit_sharing",
		Purpose:  "showcase daily outfit choice",
	},
	"#grwm": {
		Meaning:  "Get Ready With Me",
		Category: "process_content",
		Purpose:  "show getting-ready routine",
	},
	"#tryonhaul": {
		Meaning:  "Try-On Haul",
		Category: "shopping_content",
		Purpose:  "model recently purchased items",
	},
	"#iykyk": {
		Meaning:  "If You Know You Know",
		Category: "insider_reference",
		Purpose:  "signal insider knowledge",
	},
	"#dupealert": {
		Meaning:  "Duplicate Alert",
		Category: "budget_shopping",
		Purpose:  "share affordable alternative to expensive item",
	},
	"#ootw": {
		Meaning:  "Outfit Of The Week",
		Category: "outfit_sharing",
		Purpose:  "showcase weekly outfit compilation",
	},
	"#ltk": {
		Meaning:  "LikeToKnowIt",
		Category: "affiliate_marketing",
		Purpose:  "direct followers to shoppable links",
	},
	"#shein": {
		Meaning:  "Shein brand tag",
		Category: "brand_tag",
		Purpose:  "tag fast fashion brand content",
	},
	"#thriftflip": {
		Meaning:  "Thrift Flip",
		Category: "sustainable_fashion",
		Purpose:  "show upcycled secondhand clothing",
	},
	"#wiwtd": {
		Meaning:  "What I Wore Today",
		Category: "outfit_sharing",
		Purpose:  "share daily outfit",
	},
}

// DecodeHashtag looks up a hashtag in the simulated knowledge base. Unknown
// tags get a generic fallback rather than an error.
func DecodeHashtag(hashtag string) HashtagInfo {
	if info, ok := hashtagDB[strings.ToLower(strings.TrimSpace(hashtag))]; ok {
		return info
	}
	return HashtagInfo{
		Meaning:  "Unknown hashtag",
		Category: "general",
		Purpose:  "social media engagement",
	}
}

// ScoreHashtagInfo compares a decoded hashtag against the reference. Each
// field contributes a third of the score, with partial credit for substring
// matches and, for purpose, any shared word.
func ScoreHashtagInfo(predicted, expected HashtagInfo) float64 {
	total := 0.0

	predMeaning := strings.ToLower(strings.TrimSpace(predicted.Meaning))
	expMeaning := strings.ToLower(strings.TrimSpace(expected.Meaning))
	switch {
	case predMeaning == expMeaning:
		total += 1.0
	case predMeaning != "" && expMeaning != "" &&
		(strings.Contains(predMeaning, expMeaning) || strings.Contains(expMeaning, predMeaning)):
		total += 0.7
	}

	predCategory := strings.ToLower(strings.TrimSpace(predicted.Category))
	expCategory := strings.ToLower(strings.TrimSpace(expected.Category))
	switch {
	case predCategory == expCategory:
		total += 1.0
	case predCategory != "" && expCategory != "" &&
		(strings.Contains(predCategory, expCategory) || strings.Contains(expCategory, predCategory)):
		total += 0.5
	}

	predPurpose := strings.ToLower(strings.TrimSpace(predicted.Purpose))
	expPurpose := strings.ToLower(strings.TrimSpace(expected.Purpose))
	switch {
	case predPurpose == expPurpose:
		total += 1.0
	case predPurpose != "" && expPurpose != "" &&
		(strings.Contains(predPurpose, expPurpose) || strings.Contains(expPurpose, predPurpose)):
		total += 0.7
	case sharesWord(predPurpose, expPurpose):
		total += 0.4
	}

	return total / 3.0
}

func sharesWord(a, b string) bool {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(a) {
		words[w] = struct{}{}
	}
	for _, w := range strings.Fields(b) {
		if _, ok := words[w]; ok {
			return true
		}
	}
	return false
}

func hashtagUnderstandingSuite() Suite {
	s := Suite{
		Key:         "hashtag_understanding",
		Name:        "Hashtag Understanding",
		Description: "Decode fashion community hashtags and abbreviations",
		DatasetFile: "hashtag_understanding.jsonl",
	}

	s.Run = func(ctx context.Context, opts RunOptions) (*eval.Report, error) {
		rows, err := dataset.Load[hashtagRow](datasetPath(opts, s.DatasetFile))
		if err != nil {
			return nil, err
		}

		cases := make([]eval.Case[string, HashtagInfo], len(rows))
		for i, r := range rows {
			cases[i] = eval.Case[string, HashtagInfo]{
				ID:       r.ID,
				Input:    r.Hashtag,
				Expected: r.Expected,
			}
		}

		task := func(_ context.Context, hashtag string) (HashtagInfo, error) {
			return DecodeHashtag(hashtag), nil
		}

		scorers := []eval.Scorer[string, HashtagInfo]{
			eval.NewScorer("decoding", func(_ context.Context, c eval.Case[string, HashtagInfo], result HashtagInfo) (float64, error) {
				return ScoreHashtagInfo(result, c.Expected), nil
			}),
		}

		return runEval(ctx, opts, s.Name, cases, task, scorers, nil, scoring.DefaultPassThreshold)
	}

	return s
}
