package reportstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openkraft/skillkraft/internal/domain"
)

// Store is a file-based implementation of domain.ReportStore.
type Store struct{}

// New creates a new file-based report store.
func New() *Store {
	return &Store{}
}

// Load reads a report previously written by Save or by --format json.
func (s *Store) Load(path string) (*domain.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("report %s does not exist", path)
		}
		return nil, err
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	if report.Mode == "" {
		return nil, fmt.Errorf("parsing report %s: missing mode", path)
	}
	return &report, nil
}

// Save writes report to path, creating directories as needed.
func (s *Store) Save(path string, report *domain.Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}
