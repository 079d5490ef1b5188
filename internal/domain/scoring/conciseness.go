package scoring

import (
	"fmt"

	"github.com/openkraft/skillkraft/internal/domain"
)

// ScoreConciseness scores how compact the main document is.
// Line count and token count contribute up to 50 points each; offloading
// detail into references earns a bonus. The total is capped at 100.
func ScoreConciseness(p *domain.ScoringProfile, facts *domain.BundleFacts) domain.MetricResult {
	result := domain.MetricResult{Name: domain.MetricConciseness}
	t := p.Conciseness

	result.Factors = []domain.Factor{
		scoreLineCount(t, facts.BodyLineCount),
		scoreTokenCount(t, facts.BodyTokenCount),
		scoreReferenceOffload(t, facts.ReferenceLines()),
	}
	result.SumFactors()
	return result
}

// LinePoints returns the line-based component for a body line count.
func LinePoints(p *domain.ScoringProfile, lines int) int {
	return tierPoints(lines, p.Conciseness.LineTiers, p.Conciseness.LineTail)
}

// TokenPoints returns the token-based component for a body token count.
func TokenPoints(p *domain.ScoringProfile, tokens int) int {
	return tierPoints(tokens, p.Conciseness.TokenTiers, p.Conciseness.TokenTail)
}

func scoreLineCount(t domain.ConcisenessTable, lines int) domain.Factor {
	return domain.Factor{
		Label:  "line_count",
		Points: tierPoints(lines, t.LineTiers, t.LineTail),
		Max:    maxTier(t.LineTiers),
		Detail: fmt.Sprintf("%d body lines", lines),
	}
}

func scoreTokenCount(t domain.ConcisenessTable, tokens int) domain.Factor {
	return domain.Factor{
		Label:  "token_count",
		Points: tierPoints(tokens, t.TokenTiers, t.TokenTail),
		Max:    maxTier(t.TokenTiers),
		Detail: fmt.Sprintf("~%d body tokens", tokens),
	}
}

func scoreReferenceOffload(t domain.ConcisenessTable, refLines int) domain.Factor {
	f := domain.Factor{
		Label:  "reference_offload",
		Max:    t.BonusPoints,
		Detail: fmt.Sprintf("%d lines in references (bonus above %d)", refLines, t.BonusThreshold),
	}
	if refLines > t.BonusThreshold {
		f.Points = t.BonusPoints
	}
	return f
}

func maxTier(tiers []domain.Tier) int {
	if len(tiers) == 0 {
		return 0
	}
	return tiers[0].Points
}
