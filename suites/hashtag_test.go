package suites

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHashtag(t *testing.T) {
	info := DecodeHashtag("#ootd")
	assert.Equal(t, "Outfit Of The Day", info.Meaning)
	assert.Equal(t, "outfit_sharing", info.Category)
	assert.Equal(t, "showcase daily outfit choice", info.Purpose)
}

func TestDecodeHashtagNormalizesInput(t *testing.T) {
	assert.Equal(t, DecodeHashtag("#ootd"), DecodeHashtag("  #OOTD "))
}

func TestDecodeHashtagUnknown(t *testing.T) {
	info := DecodeHashtag("#notarealtag")
	assert.Equal(t, "Unknown hashtag", info.Meaning)
	assert.Equal(t, "general", info.Category)
	assert.Equal(t, "social media engagement", info.Purpose)
}

func TestScoreHashtagInfo(t *testing.T) {
	tests := []struct {
		name      string
		predicted HashtagInfo
		expected  HashtagInfo
		want      float64
	}{
		{
			name:      "identical",
			predicted: HashtagInfo{Meaning: "Get Ready With Me", Category: "process_content", Purpose: "show getting-ready routine"},
			expected:  HashtagInfo{Meaning: "get ready with me", Category: "process_content", Purpose: "show getting-ready routine"},
			want:      1.0,
		},
		{
			name:      "partial credit tiers",
			predicted: HashtagInfo{Meaning: "Get Ready With Me", Category: "process_content", Purpose: "show getting-ready routine"},
			expected:  HashtagInfo{Meaning: "ready with me", Category: "process", Purpose: "share morning routine"},
			want:      (0.7 + 0.5 + 0.4) / 3.0,
		},
		{
			name:      "no overlap",
			predicted: HashtagInfo{Meaning: "Thrift Flip", Category: "sustainable_fashion", Purpose: "show upcycled secondhand clothing"},
			expected:  HashtagInfo{Meaning: "Outfit Of The Week", Category: "outfit_sharing", Purpose: "showcase weekly compilation"},
			want:      0.0,
		},
		{
			name:      "empty prediction",
			predicted: HashtagInfo{},
			expected:  HashtagInfo{Meaning: "Outfit Of The Day", Category: "outfit_sharing", Purpose: "showcase daily outfit choice"},
			want:      0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScoreHashtagInfo(tt.predicted, tt.expected), 1e-9)
		})
	}
}

func TestHashtagUnderstandingSuiteRun(t *testing.T) {
	dir := t.TempDir()
	rows := `{"id": "h1", "hashtag": "#dupealert", "expected": {"meaning": "Duplicate Alert", "category": "budget_shopping", "purpose": "share affordable alternative to expensive item"}}
{"id": "h2", "hashtag": "#madeuptag", "expected": {"meaning": "Made Up Tag", "category": "niche", "purpose": "confuse the classifier"}}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hashtag_understanding.jsonl"), []byte(rows), 0o644))

	suite, err := Lookup("hashtag_understanding")
	require.NoError(t, err)

	report, err := suite.Run(context.Background(), RunOptions{DataDir: dir})
	require.NoError(t, err)

	require.Len(t, report.Records, 2)
	assert.InDelta(t, 1.0, report.Records[0].Score, 1e-9)
	assert.Equal(t, 1, report.Summary.Passed)
}
