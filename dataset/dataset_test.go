package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Expected string `json:"expected"`
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `{"id":"t1","text":"pink everywhere","expected":"barbiecore"}

{"id":"t2","text":"chunky loafers","expected":"loafers"}
`)

	rows, err := Load[row](path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, row{ID: "t1", Text: "pink everywhere", Expected: "barbiecore"}, rows[0])
	assert.Equal(t, "t2", rows[1].ID)
}

func TestLoadMalformedLine(t *testing.T) {
	path := writeFile(t, `{"id":"t1","expected":"x"}
{not json}
`)

	_, err := Load[row](path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "line 2")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load[row](filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.Error(t, err)
}
