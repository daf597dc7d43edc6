package suites

import (
	"context"
	"regexp"
	"strings"

	"github.com/ortall0201/fashionbench/dataset"
	"github.com/ortall0201/fashionbench/eval"
	"github.com/ortall0201/fashionbench/scoring"
)

type affiliateRow struct {
	ID       string         `json:"id"`
	Text     string         `json:"text"`
	Expected map[string]any `json:"expected"`
}

var discountRe = regexp.MustCompile(`(\d+)%`)

// sponsoredDisclosures are the disclosure markers the detector looks for.
var sponsoredDisclosures = []string{"#ad", "#gifted", "#sponsored", "paid partnership", "partnering"}

// DetectAffiliateContent scans a social media caption for monetization
// signals: affiliate platforms, discount codes, sponsorship disclosures, and
// call-to-action link mentions. The checks are cumulative, so a post can pick
// up a platform from one phrase and a code from another.
func DetectAffiliateContent(text string) map[string]any {
	result := map[string]any{"has_affiliate": false}
	textLower := strings.ToLower(text)

	if strings.Contains(textLower, "ltk") || strings.Contains(textLower, "liketoknow") {
		result["has_affiliate"] = true
		result["platform"] = "LTK"
		if strings.Contains(textLower, "shop.ltk") {
			result["platform"] = "ShopLTK"
		}
	}

	if strings.Contains(textLower, "amazon") &&
		(strings.Contains(textLower, "storefront") || strings.Contains(textLower, "finds")) {
		result["has_affiliate"] = true
		result["platform"] = "Amazon"
		result["type"] = "affiliate_storefront"
	}

	if m := codeRe.FindStringSubmatch(text); m != nil {
		result["has_affiliate"] = true
		if _, ok := result["type"]; !ok {
			result["type"] = "discount_code"
		}
		result["code"] = m[1]

		if d := discountRe.FindStringSubmatch(text); d != nil {
			result["discount"] = d[1] + "%"
		}
	}

	var found []string
	for _, kw := range sponsoredDisclosures {
		if strings.Contains(textLower, kw) {
			found = append(found, kw)
		}
	}
	if len(found) > 0 {
		result["has_affiliate"] = true
		result["type"] = "sponsored"
		result["disclosures"] = found
	}

	if strings.Contains(textLower, "partnering") || strings.Contains(textLower, "partnership") {
		if result["has_affiliate"] == true {
			result["type"] = "brand_partnership"
		}
	}

	if result["has_affiliate"] == false {
		if strings.Contains(textLower, "thrifted") ||
			strings.Contains(textLower, "no links") ||
			strings.Contains(textLower, "just sharing") {
			result["type"] = "organic"
		}
	}

	// A bare "link in bio" style call to action counts as monetized even
	// without a recognized platform.
	if strings.Contains(textLower, "link") ||
		strings.Contains(textLower, "swipe up") ||
		strings.Contains(textLower, "tap to shop") {
		result["has_affiliate"] = true
		if strings.Contains(textLower, "link") {
			indicators, _ := result["indicators"].([]string)
			result["indicators"] = append(indicators, "link in bio")
		}
	}

	return result
}

// ScoreAffiliate grades a detection against the reference. Only fields
// present in the reference are graded; has_affiliate carries double weight
// since getting monetization wrong invalidates the rest.
func ScoreAffiliate(predicted, expected map[string]any) float64 {
	if len(expected) == 0 {
		return 0.0
	}

	score := 0.0
	components := 0.0

	if want, ok := expected["has_affiliate"]; ok {
		components += 2
		if predicted["has_affiliate"] == want {
			score += 2.0
		}
	}

	if want, ok := stringField(expected, "platform"); ok {
		components++
		if got, _ := stringField(predicted, "platform"); strings.EqualFold(got, want) {
			score += 1.0
		}
	}

	if want, ok := stringField(expected, "type"); ok {
		components++
		got, _ := stringField(predicted, "type")
		switch {
		case strings.EqualFold(got, want):
			score += 1.0
		case strings.Contains(got, want):
			score += 0.5
		}
	}

	if want, ok := stringField(expected, "code"); ok {
		components++
		if got, _ := stringField(predicted, "code"); strings.EqualFold(got, want) {
			score += 1.0
		}
	}

	if want, ok := stringField(expected, "discount"); ok {
		components += 0.5
		if got, _ := stringField(predicted, "discount"); got == want {
			score += 0.5
		}
	}

	if want, ok := expected["disclosures"]; ok {
		components++
		wantSet := make(map[string]struct{})
		for _, d := range toStringSlice(want) {
			wantSet[strings.ToLower(d)] = struct{}{}
		}
		overlap := 0
		for _, d := range toStringSlice(predicted["disclosures"]) {
			if _, hit := wantSet[strings.ToLower(d)]; hit {
				overlap++
			}
		}
		if overlap > 0 && len(wantSet) > 0 {
			score += float64(overlap) / float64(len(wantSet))
		}
	}

	if components == 0 {
		return 0.0
	}
	return score / components
}

func stringField(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// toStringSlice accepts both []string from the detector and []any from
// decoded JSON.
func toStringSlice(v any) []string {
	switch vs := v.(type) {
	case []string:
		return vs
	case []any:
		out := make([]string, 0, len(vs))
		for _, item := range vs {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func affiliateDetectionSuite() Suite {
	s := Suite{
		Key:         "affiliate_detection",
		Name:        "Affiliate Detection",
		Description: "Detect affiliate marketing, sponsorships, and discount codes",
		DatasetFile: "affiliate_detection.jsonl",
	}

	s.Run = func(ctx context.Context, opts RunOptions) (*eval.Report, error) {
		rows, err := dataset.Load[affiliateRow](datasetPath(opts, s.DatasetFile))
		if err != nil {
			return nil, err
		}

		cases := make([]eval.Case[string, map[string]any], len(rows))
		for i, r := range rows {
			cases[i] = eval.Case[string, map[string]any]{
				ID:       r.ID,
				Input:    r.Text,
				Expected: r.Expected,
			}
		}

		task := func(_ context.Context, text string) (map[string]any, error) {
			return DetectAffiliateContent(text), nil
		}

		scorers := []eval.Scorer[string, map[string]any]{
			eval.NewScorer("detection", func(_ context.Context, c eval.Case[string, map[string]any], result map[string]any) (float64, error) {
				return ScoreAffiliate(result, c.Expected), nil
			}),
		}

		return runEval(ctx, opts, s.Name, cases, task, scorers, nil, scoring.DefaultPassThreshold)
	}

	return s
}
