package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/PatternCut/internal/model"
)

// patternFile is the on-disk form of the pattern store.
type patternFile struct {
	Version  string          `json:"version"`
	SavedAt  string          `json:"saved_at"`
	Patterns []model.Pattern `json:"patterns"`
}

const patternFileVersion = "1.0.0"

// DefaultPatternPath returns the default file path for the pattern store,
// located at ~/.patterncut/patterns.json.
func DefaultPatternPath() string {
	return filepath.Join(DefaultConfigDir(), "patterns.json")
}

// SavePatterns writes every pattern in the store to a JSON file. The file is
// written to a uniquely named temporary sibling first and renamed into place.
// Callers saving the same path concurrently must serialize their calls.
func SavePatterns(path string, store *model.PatternStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create pattern directory: %w", err)
	}
	data, err := json.MarshalIndent(patternFile{
		Version:  patternFileVersion,
		SavedAt:  time.Now().UTC().Format(time.RFC3339),
		Patterns: store.List(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal patterns: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp pattern file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write patterns: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write patterns: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to set pattern file mode: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace pattern file: %w", err)
	}
	return nil
}

// LoadPatterns reads a pattern store from a JSON file.
// If the file does not exist, returns an empty store.
func LoadPatterns(path string) (*model.PatternStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewPatternStore(), nil
		}
		return nil, err
	}
	var file patternFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse pattern file: %w", err)
	}
	return model.NewPatternStore(file.Patterns...), nil
}
