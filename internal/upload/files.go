package upload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Alfex4936/nlpdash/internal/model"
)

// ReadFiles loads every path into memory, in order.
func ReadFiles(paths ...string) ([]model.File, error) {
	files := make([]model.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("upload: %w", err)
		}
		files = append(files, model.File{Name: filepath.Base(p), Data: data})
	}
	return files, nil
}
