package application

import (
	"fmt"

	"github.com/openkraft/skillkraft/internal/domain"
)

// CompareService diffs two previously saved reports.
type CompareService struct {
	store domain.ReportStore
}

func NewCompareService(store domain.ReportStore) *CompareService {
	return &CompareService{store: store}
}

// CompareFiles loads both report files and diffs them.
func (s *CompareService) CompareFiles(baselinePath, currentPath string) (*domain.ReportDiff, error) {
	baseline, err := s.store.Load(baselinePath)
	if err != nil {
		return nil, fmt.Errorf("loading baseline: %w", err)
	}
	current, err := s.store.Load(currentPath)
	if err != nil {
		return nil, fmt.Errorf("loading current: %w", err)
	}
	return DiffReports(baseline, current), nil
}

// DiffReports computes metric deltas and the issues introduced or resolved
// between baseline and current. Issues are matched on code, location and
// message; each side keeps its report order.
func DiffReports(baseline, current *domain.Report) *domain.ReportDiff {
	diff := &domain.ReportDiff{
		Bundle:         current.Bundle,
		BaselineMode:   baseline.Mode,
		CurrentMode:    current.Mode,
		BaselinePassed: baseline.Passed,
		CurrentPassed:  current.Passed,
		Overall:        delta("overall", baseline.Overall, current.Overall),
		Metrics:        make([]domain.MetricDelta, 0, len(domain.ValidMetrics)),
		Introduced:     []domain.Issue{},
		Resolved:       []domain.Issue{},
	}

	for _, name := range domain.ValidMetrics {
		diff.Metrics = append(diff.Metrics, delta(name, baseline.Metrics.Get(name), current.Metrics.Get(name)))
	}

	baseKeys := issueKeys(baseline.Issues)
	curKeys := issueKeys(current.Issues)
	for _, iss := range current.Issues {
		if !baseKeys[iss.Key()] {
			diff.Introduced = append(diff.Introduced, iss)
		}
	}
	for _, iss := range baseline.Issues {
		if !curKeys[iss.Key()] {
			diff.Resolved = append(diff.Resolved, iss)
		}
	}
	return diff
}

func delta(name string, baseline, current *int) domain.MetricDelta {
	d := domain.MetricDelta{Name: name, Baseline: baseline, Current: current}
	if baseline != nil && current != nil {
		v := *current - *baseline
		d.Delta = &v
	}
	return d
}

func issueKeys(issues []domain.Issue) map[string]bool {
	keys := make(map[string]bool, len(issues))
	for _, iss := range issues {
		keys[iss.Key()] = true
	}
	return keys
}
