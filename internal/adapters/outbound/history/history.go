package history

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/openkraft/skillkraft/internal/domain"
)

// File is the run log relative to a bundle directory: one JSON-encoded
// ScoreEntry per line, oldest first.
const File = ".skillkraft/history/runs.jsonl"

// Log is an append-only domain.ScoreHistory. Recording a run never rewrites
// earlier entries.
type Log struct{}

func New() *Log {
	return &Log{}
}

func (l *Log) Save(bundlePath string, entry domain.ScoreEntry) error {
	fp := filepath.Join(bundlePath, File)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding history entry: %w", err)
	}

	f, err := os.OpenFile(fp, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", File, err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", File, err)
	}
	return f.Close()
}

// Load returns the recorded entries, or nil when the bundle has none.
func (l *Log) Load(bundlePath string) ([]domain.ScoreEntry, error) {
	f, err := os.Open(filepath.Join(bundlePath, File))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", File, err)
	}
	defer f.Close()

	var entries []domain.ScoreEntry
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var e domain.ScoreEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("parsing %s line %d: %w", File, n, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", File, err)
	}
	return entries, nil
}
