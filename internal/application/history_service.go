package application

import (
	"time"

	"github.com/openkraft/skillkraft/internal/domain"
)

// HistoryService records evaluation runs and lists them back.
type HistoryService struct {
	history domain.ScoreHistory
	now     func() time.Time
}

func NewHistoryService(history domain.ScoreHistory) *HistoryService {
	return &HistoryService{history: history, now: time.Now}
}

// Record appends an entry summarizing report to the bundle's history.
func (s *HistoryService) Record(report *domain.Report) (domain.ScoreEntry, error) {
	entry := domain.ScoreEntry{
		Timestamp:  s.now().UTC().Format(time.RFC3339),
		CommitHash: report.CommitHash,
		Mode:       report.Mode,
		Overall:    report.Overall,
		Band:       report.Band,
		Passed:     report.Passed,
		Errors:     report.Counts.Error,
		Warnings:   report.Counts.Warning,
	}
	if err := s.history.Save(report.Path, entry); err != nil {
		return domain.ScoreEntry{}, err
	}
	return entry, nil
}

// List returns recorded entries oldest first. A bundle never recorded has none.
func (s *HistoryService) List(bundlePath string) ([]domain.ScoreEntry, error) {
	entries, err := s.history.Load(bundlePath)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.ScoreEntry{}
	}
	return entries, nil
}
