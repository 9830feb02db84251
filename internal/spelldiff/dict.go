package spelldiff

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Dict is a user dictionary of words that are never reported as misspelled.
type Dict struct {
	Words []string `json:"words"`

	index map[string]struct{}
}

// NewDict creates a Dict from the given words.
func NewDict(words ...string) *Dict {
	d := &Dict{Words: words}
	d.build()
	return d
}

// LoadDict reads a JSON file of the form {"words": ["kafka", ...]}.
func LoadDict(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spelldiff: read dict: %w", err)
	}
	var d Dict
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("spelldiff: decode dict %s: %w", path, err)
	}
	d.build()
	return &d, nil
}

// Contains reports whether token (already lowercased) is protected.
// A nil Dict contains nothing.
func (d *Dict) Contains(token string) bool {
	if d == nil {
		return false
	}
	if d.index == nil {
		for _, w := range d.Words {
			if strings.EqualFold(strings.TrimSpace(w), token) {
				return true
			}
		}
		return false
	}
	_, ok := d.index[token]
	return ok
}

func (d *Dict) build() {
	d.index = make(map[string]struct{}, len(d.Words))
	for _, w := range d.Words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			d.index[w] = struct{}{}
		}
	}
}
