package domain

// SweepEntry is the outcome for one bundle discovered under a sweep root.
// Exactly one of Report and Error is set.
type SweepEntry struct {
	Path   string  `json:"path"`
	Report *Report `json:"report,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// SweepReport aggregates the evaluation of every bundle under a root.
type SweepReport struct {
	Root     string       `json:"root"`
	Mode     Mode         `json:"mode"`
	Bundles  []SweepEntry `json:"bundles"`
	Passed   int          `json:"passed"`
	Failed   int          `json:"failed"`
	Critical int          `json:"critical"`
}

// ExitCode is the worst exit code across all bundles.
func (s *SweepReport) ExitCode() int {
	switch {
	case s.Critical > 0:
		return ExitCritical
	case s.Failed > 0:
		return ExitFailed
	default:
		return ExitPassed
	}
}
