package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/PatternCut/internal/model"
)

const backupVersion = "1.0.0"

// ErrBackupVersion is returned when a backup file carries no version.
var ErrBackupVersion = errors.New("invalid backup file: missing version field")

// BackupData bundles the workshop settings with the saved patterns so both
// can move between machines as one file.
type BackupData struct {
	Version   string          `json:"version"`
	CreatedAt string          `json:"created_at"`
	Config    model.AppConfig `json:"config"`
	Patterns  []model.Pattern `json:"patterns"`
}

// ExportAllData snapshots config and the pattern store into a backup file.
// A nil store writes an empty pattern list.
func ExportAllData(path string, cfg model.AppConfig, store *model.PatternStore) error {
	patterns := []model.Pattern{}
	if store != nil {
		patterns = store.List()
	}
	data, err := json.MarshalIndent(BackupData{
		Version:   backupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    cfg,
		Patterns:  patterns,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write backup %s: %w", path, err)
	}
	return nil
}

// ImportAllData reads a backup file. Nothing is applied; restoring settings
// and patterns is up to the caller.
func ImportAllData(path string) (BackupData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BackupData{}, fmt.Errorf("read backup %s: %w", path, err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("decode backup %s: %w", path, err)
	}
	if backup.Version == "" {
		return BackupData{}, ErrBackupVersion
	}
	if backup.Patterns == nil {
		backup.Patterns = []model.Pattern{}
	}
	return backup, nil
}
