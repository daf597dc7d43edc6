package suites

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateTrendResponse(t *testing.T) {
	tests := []struct {
		name    string
		context string
		want    string
	}{
		{"barbiecore", "Barbiecore is everywhere this season", "Barbiecore and Y2K pink aesthetic revival"},
		{"pink alias", "Hot pink dominated the runways", "Barbiecore and Y2K pink aesthetic revival"},
		{"tailoring", "Structured blazers at every show", "Oversized tailoring, power dressing, structured silhouettes"},
		{"accessories", "Chunky loafer sightings all over", "Chunky loafers, mini bags, long coats"},
		{"dopamine", "Dopamine dressing takes over street style", "Dopamine dressing and maximalist color trend"},
		{"quiet luxury", "Quiet luxury pieces keep selling out", "Quiet luxury and stealth wealth aesthetic"},
		{"sustainable", "Sustainable fabrics in every collection", "90s minimalism, sustainability, and gender-neutral fashion"},
		{"balletcore", "Balletcore flats and wrap tops", "Balletcore, clean girl aesthetic, cozy cardio"},
		{"streetwear", "Streetwear collabs with heritage houses", "Luxury streetwear fusion, sneaker culture"},
		{"fallback", "Nothing notable this week", "Contemporary fashion trend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimulateTrendResponse(TrendInput{Context: tt.context, Question: "What is trending?"})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrendDetectionSuiteRun(t *testing.T) {
	dir := t.TempDir()
	rows := `{"id": "t1", "context": "Dopamine dressing takes over", "question": "What is trending?", "expected": "Dopamine dressing and maximalist color trend"}
{"id": "t2", "context": "Nothing notable this week", "question": "What is trending?", "expected": "Regencycore revival"}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trend_detection.jsonl"), []byte(rows), 0o644))

	suite, err := Lookup("trend_detection")
	require.NoError(t, err)

	report, err := suite.Run(context.Background(), RunOptions{DataDir: dir, Model: "simulated"})
	require.NoError(t, err)

	assert.Equal(t, "Trend Detection", report.Name)
	assert.Equal(t, "simulated", report.Model)
	assert.Equal(t, 2, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.Passed)
	assert.InDelta(t, 0.5, report.Summary.Accuracy, 1e-9)
	assert.InDelta(t, 0.5, report.Summary.AvgScore, 1e-9)

	require.Len(t, report.Records, 2)
	// The canned response equals the reference, so both metrics hit 1.0.
	assert.Equal(t, "t1", report.Records[0].ID)
	assert.InDelta(t, 1.0, report.Records[0].Score, 1e-9)
	// The fallback response shares no vocabulary with the reference.
	assert.Equal(t, "t2", report.Records[1].ID)
	assert.InDelta(t, 0.0, report.Records[1].Score, 1e-9)
}

func TestTrendDetectionSuiteMissingDataset(t *testing.T) {
	suite, err := Lookup("trend_detection")
	require.NoError(t, err)

	_, err = suite.Run(context.Background(), RunOptions{DataDir: t.TempDir()})
	assert.Error(t, err)
}
