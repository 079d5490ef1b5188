package domain

// MetricDelta is the change of one score between two reports.
// Delta is nil when either side did not compute the score.
type MetricDelta struct {
	Name     string `json:"name"`
	Baseline *int   `json:"baseline"`
	Current  *int   `json:"current"`
	Delta    *int   `json:"delta"`
}

// ReportDiff compares a baseline report against a current one.
type ReportDiff struct {
	Bundle         string        `json:"bundle"`
	BaselineMode   Mode          `json:"baselineMode"`
	CurrentMode    Mode          `json:"currentMode"`
	BaselinePassed bool          `json:"baselinePassed"`
	CurrentPassed  bool          `json:"currentPassed"`
	Overall        MetricDelta   `json:"overall"`
	Metrics        []MetricDelta `json:"metrics"`
	Introduced     []Issue       `json:"introduced"`
	Resolved       []Issue       `json:"resolved"`
}

// Regressed reports whether the current report is worse than the baseline:
// it stopped passing, introduced issues, or lost overall points.
func (d *ReportDiff) Regressed() bool {
	if d.BaselinePassed && !d.CurrentPassed {
		return true
	}
	if len(d.Introduced) > 0 {
		return true
	}
	return d.Overall.Delta != nil && *d.Overall.Delta < 0
}
