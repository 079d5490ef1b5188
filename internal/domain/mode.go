package domain

import "fmt"

// Mode selects how strictly a run is enforced. A run uses exactly one mode.
type Mode string

const (
	// ModeQuick runs structural rules only and skips metric scoring.
	ModeQuick Mode = "quick"
	// ModeFull runs every rule and metric; warnings are reported but do not block.
	ModeFull Mode = "full"
	// ModeRelease has the same surface as ModeFull but warnings also block.
	ModeRelease Mode = "release"
)

// ValidModes enumerates the recognized modes.
var ValidModes = []Mode{ModeQuick, ModeFull, ModeRelease}

// ParseMode converts a flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range ValidModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (valid: quick, full, release)", s)
}

// ScoresMetrics reports whether the mode computes the four metric scores.
func (m Mode) ScoresMetrics() bool {
	return m != ModeQuick
}

// RunsAllRules reports whether non-structural rules run in this mode.
func (m Mode) RunsAllRules() bool {
	return m != ModeQuick
}

// Blocks reports whether an issue of the given severity fails a run in this mode.
func (m Mode) Blocks(sev Severity) bool {
	switch sev {
	case SeverityError:
		return true
	case SeverityWarning:
		return m == ModeRelease
	case SeverityInfo:
		return false
	default:
		// Unknown severities are treated as blocking so they cannot slip through.
		return true
	}
}

// Passed applies the mode's gate to a complete issue list.
func (m Mode) Passed(issues []Issue) bool {
	for _, iss := range issues {
		if m.Blocks(iss.Severity) {
			return false
		}
	}
	return true
}

// Exit codes shared by the CLI and the e2e tests.
const (
	ExitPassed   = 0
	ExitFailed   = 1
	ExitCritical = 2
)

// ExitCodeFor maps a finished run to its process exit code.
func ExitCodeFor(report *Report, err error) int {
	if err != nil || report == nil {
		return ExitCritical
	}
	if report.Passed {
		return ExitPassed
	}
	return ExitFailed
}
