package scoring

import "github.com/openkraft/skillkraft/internal/domain"

// tierPoints returns the points of the first tier whose Max covers value.
// Past the last tier the tail takes over: tail.Points just past the last
// tier, decaying linearly (integer division, so never rounding up) to 0 at
// tail.ZeroAt. The result never increases as value grows provided tiers are
// sorted by Max with non-increasing Points and tail.Points is at most the
// last tier's points.
func tierPoints(value int, tiers []domain.Tier, tail domain.Tail) int {
	for _, t := range tiers {
		if value <= t.Max {
			return t.Points
		}
	}

	last := 0
	if len(tiers) > 0 {
		last = tiers[len(tiers)-1].Max
	}
	return tailPoints(value, last, tail)
}

func tailPoints(value, start int, tail domain.Tail) int {
	if value >= tail.ZeroAt || tail.ZeroAt <= start {
		return 0
	}
	return tail.Points * (tail.ZeroAt - value) / (tail.ZeroAt - start)
}

// decayCredit returns a continuous credit in [0,1] using linear decay.
// At or below threshold: 1.0. Beyond threshold: linearly decays to 0.0
// at zeroAt.
func decayCredit(value, threshold, zeroAt int) float64 {
	if value <= threshold {
		return 1.0
	}
	if zeroAt <= threshold {
		return 0.0
	}
	credit := 1.0 - float64(value-threshold)/float64(zeroAt-threshold)
	return max(0.0, credit)
}

// cappedPoints multiplies count by per and bounds the result to [0, limit].
func cappedPoints(count, per, limit int) int {
	return domain.Clamp(count*per, 0, limit)
}
