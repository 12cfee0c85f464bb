// Package corpus reads document collections from JSONL files for batch
// analysis.
package corpus

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// Document is one input record of a batch run.
type Document struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// LoadJSONL loads documents from a JSONL file, one JSON object per line.
// Malformed lines are skipped with a warning so one bad record does not
// sink a whole corpus.
func LoadJSONL(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var docs []Document
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var d Document
		if err := json.Unmarshal([]byte(line), &d); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", i+1, path, err)
			continue
		}
		if d.Text == "" {
			log.Printf("Warning: skipping document without text at line %d in %s", i+1, path)
			continue
		}
		docs = append(docs, d)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no valid documents found in %s", path)
	}
	return docs, nil
}
