package scoring

import (
	"fmt"

	"github.com/openkraft/skillkraft/internal/domain"
)

// ScoreComplexity measures how much structure a reader has to navigate.
// Higher is more complex. It never gates pass/fail on its own; the composite
// uses its inverse.
func ScoreComplexity(p *domain.ScoringProfile, facts *domain.BundleFacts) domain.MetricResult {
	result := domain.MetricResult{Name: domain.MetricComplexity}
	t := p.Complexity

	result.Factors = []domain.Factor{
		scoreSectionDepth(t, facts.HeadingDepth),
		scoreBundledResources(t, len(facts.ReferenceFiles)+len(facts.AssetFiles)),
		scoreCrossReferences(t, crossReferenceCount(facts)),
	}
	result.SumFactors()
	return result
}

func scoreSectionDepth(t domain.ComplexityTable, depth int) domain.Factor {
	extra := max(0, depth-t.FreeDepth)
	return domain.Factor{
		Label:  "section_depth",
		Points: cappedPoints(extra, t.PointsPerDepth, t.MaxDepthPoints),
		Max:    t.MaxDepthPoints,
		Detail: fmt.Sprintf("%d heading levels", depth),
	}
}

func scoreBundledResources(t domain.ComplexityTable, files int) domain.Factor {
	return domain.Factor{
		Label:  "bundled_resources",
		Points: cappedPoints(files, t.PointsPerResource, t.MaxResourcePoints),
		Max:    t.MaxResourcePoints,
		Detail: fmt.Sprintf("%d reference and asset files", files),
	}
}

func scoreCrossReferences(t domain.ComplexityTable, refs int) domain.Factor {
	return domain.Factor{
		Label:  "cross_references",
		Points: cappedPoints(refs, t.PointsPerCrossRef, t.MaxCrossRefPoints),
		Max:    t.MaxCrossRefPoints,
		Detail: fmt.Sprintf("%d distinct cross-references", refs),
	}
}

// crossReferenceCount counts distinct targets across links and backtick paths.
func crossReferenceCount(facts *domain.BundleFacts) int {
	seen := make(map[string]bool)
	for _, l := range facts.Links {
		seen[l.Path] = true
	}
	for _, m := range facts.ReferencedPaths {
		seen[m.Path] = true
	}
	return len(seen)
}
