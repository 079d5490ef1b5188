package scoring

import (
	"fmt"

	"github.com/openkraft/skillkraft/internal/domain"
)

// ScoreProgressiveDisclosure rewards a short main document that hands detail
// off to reference files and actually points readers at them.
func ScoreProgressiveDisclosure(p *domain.ScoringProfile, facts *domain.BundleFacts) domain.MetricResult {
	result := domain.MetricResult{Name: domain.MetricProgressiveDisclosure}
	t := p.Disclosure

	result.Factors = []domain.Factor{
		scoreBodyBudget(t, facts.BodyLineCount),
		scoreReferencesLinked(t, facts),
		scoreOffloadRatio(t, facts.BodyLineCount, facts.ReferenceLines()),
	}
	result.SumFactors()
	return result
}

// scoreBodyBudget: full credit up to the budget, linear decay to zero after.
func scoreBodyBudget(t domain.DisclosureTable, lines int) domain.Factor {
	credit := decayCredit(lines, t.BodyBudget, t.BodyZeroAt)
	return domain.Factor{
		Label:  "body_budget",
		Points: int(credit * float64(t.BudgetPoints)),
		Max:    t.BudgetPoints,
		Detail: fmt.Sprintf("%d body lines (budget %d)", lines, t.BodyBudget),
	}
}

// scoreReferencesLinked: share of reference files the body mentions.
func scoreReferencesLinked(t domain.DisclosureTable, facts *domain.BundleFacts) domain.Factor {
	f := domain.Factor{Label: "references_linked", Max: t.LinkedPoints}

	if len(facts.ReferenceFiles) == 0 {
		if facts.BodyLineCount <= t.SmallBodyLines {
			f.Points = t.LinkedPoints
			f.Detail = "no references needed for a short body"
		} else {
			f.Detail = "long body without reference files"
		}
		return f
	}

	linked := 0
	for _, rf := range facts.ReferenceFiles {
		if facts.Mentions(rf.Path) {
			linked++
		}
	}
	f.Points = linked * t.LinkedPoints / len(facts.ReferenceFiles)
	f.Detail = fmt.Sprintf("%d/%d reference files mentioned", linked, len(facts.ReferenceFiles))
	return f
}

// scoreOffloadRatio: share of total lines that live in references.
// Reaching half the content in references earns full credit.
func scoreOffloadRatio(t domain.DisclosureTable, bodyLines, refLines int) domain.Factor {
	f := domain.Factor{Label: "offload_ratio", Max: t.OffloadPoints}

	if bodyLines <= t.SmallBodyLines {
		f.Points = t.OffloadPoints
		f.Detail = "short body"
		return f
	}

	ratio := float64(refLines) / float64(refLines+bodyLines)
	f.Points = min(t.OffloadPoints, int(ratio*2*float64(t.OffloadPoints)))
	f.Detail = fmt.Sprintf("%.0f%% of lines in references", ratio*100)
	return f
}
