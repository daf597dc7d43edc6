// Package dataset loads newline-delimited JSON evaluation datasets. Each
// line holds one example; suites define their own row types carrying the
// task-specific input fields plus the expected answer.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a JSONL file and decodes every non-blank line into T. A line
// that fails to decode aborts the load with an error naming the line; data
// integrity problems are surfaced to the caller rather than silently scored
// as zero.
func Load[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	var rows []T
	scanner := bufio.NewScanner(f)
	// Generous cap for long post texts.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var row T
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("dataset %s line %d: %w", path, line, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	return rows, nil
}
