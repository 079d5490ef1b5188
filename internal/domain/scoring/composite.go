package scoring

import "github.com/openkraft/skillkraft/internal/domain"

// ComputeOverall combines the four metric results into one score using the
// profile weights. Complexity counts inverted (100 - score) since lower
// complexity is better. Metrics without a weight are ignored.
func ComputeOverall(p *domain.ScoringProfile, results []domain.MetricResult) int {
	var scores, weights []float64
	for _, r := range results {
		w, ok := p.Weights[r.Name]
		if !ok {
			continue
		}
		s := r.Score
		if r.Name == domain.MetricComplexity {
			s = 100 - s
		}
		scores = append(scores, float64(s))
		weights = append(weights, w)
	}
	return domain.WeightedAverage(scores, weights)
}
