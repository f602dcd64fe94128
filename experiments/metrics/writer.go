package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// Writer stores a training run's records under a run-scoped directory.
type Writer struct {
	runID   string
	baseDir string
}

// NewWriter creates a directory named by a fresh run ID under baseDir.
func NewWriter(baseDir string) (*Writer, error) {
	runID := uuid.NewString()
	dir := filepath.Join(baseDir, runID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}
	return &Writer{runID: runID, baseDir: dir}, nil
}

// RunID returns the run's identifier.
func (w *Writer) RunID() string {
	return w.runID
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteGameRecords stores one row per game in game_records.csv.
func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "result", "moves", "states", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			record.Result.String(),
			strconv.Itoa(record.Moves),
			strconv.Itoa(record.States),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return writer.Error()
}
