package scoring

import (
	"fmt"

	"github.com/openkraft/skillkraft/internal/domain"
)

// ScoreSpecCompliance converts validator issues into a 0-100 score:
// 100 minus a fixed deduction per error and per warning, floored at 0.
// Info issues cost nothing.
func ScoreSpecCompliance(p *domain.ScoringProfile, issues []domain.Issue) domain.MetricResult {
	result := domain.MetricResult{Name: domain.MetricSpecCompliance}
	counts := domain.CountIssues(issues)
	t := p.Compliance

	result.Factors = []domain.Factor{
		{
			Label:  "baseline",
			Points: 100,
			Max:    100,
		},
		{
			Label:  "errors",
			Points: -counts.Error * t.ErrorDeduction,
			Detail: fmt.Sprintf("%d errors x %d", counts.Error, t.ErrorDeduction),
		},
		{
			Label:  "warnings",
			Points: -counts.Warning * t.WarningDeduction,
			Detail: fmt.Sprintf("%d warnings x %d", counts.Warning, t.WarningDeduction),
		},
	}
	result.SumFactors()
	return result
}
