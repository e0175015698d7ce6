// Package export writes game summaries to disk as JSON.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/dominoscore/internal/scoreboard"
)

// Scoresheet is the document written by Write
type Scoresheet struct {
	Current  scoreboard.GameSummary   `json:"current"`
	Finished []scoreboard.GameSummary `json:"finished"`
}

// Write stores sheet at filename. Readers see either the previous file or
// the complete new one, never a partial write.
func Write(filename string, sheet Scoresheet) error {
	if sheet.Finished == nil {
		sheet.Finished = []scoreboard.GameSummary{}
	}

	data, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scoresheet: %w", err)
	}
	data = append(data, '\n')

	return writeAtomic(filename, data, 0o644)
}

// writeAtomic writes to a temp file in the same directory and renames it
// over filename; cross-filesystem renames are not atomic
func writeAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
