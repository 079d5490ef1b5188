package domain

import (
	"math"
	"path"
	"strings"
)

// Metric names as they appear in reports and config.
const (
	MetricConciseness           = "conciseness"
	MetricComplexity            = "complexity"
	MetricSpecCompliance        = "specCompliance"
	MetricProgressiveDisclosure = "progressiveDisclosure"
)

// ValidMetrics enumerates the four metric names in report order.
var ValidMetrics = []string{
	MetricConciseness,
	MetricComplexity,
	MetricSpecCompliance,
	MetricProgressiveDisclosure,
}

// Frontmatter holds the declared metadata of a bundle's main document.
type Frontmatter struct {
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Version     string         `json:"version,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Fields      []string       `json:"fields"`
}

// HasField reports whether key was declared at the top level.
func (f Frontmatter) HasField(key string) bool {
	for _, k := range f.Fields {
		if k == key {
			return true
		}
	}
	return false
}

// ReferenceFile is a file under the bundle's references/ directory.
type ReferenceFile struct {
	Path  string `json:"path"`
	Lines int    `json:"lines"`
}

// PathMention is a backtick-quoted path found in the main document.
type PathMention struct {
	Path string `json:"path"`
	Line int    `json:"line"`
}

// BundleFacts is the immutable snapshot of one bundle taken at the start of a run.
type BundleFacts struct {
	Path            string          `json:"path"`
	DirectoryName   string          `json:"directoryName"`
	Frontmatter     Frontmatter     `json:"frontmatter"`
	BodyLineCount   int             `json:"bodyLineCount"`
	BodyTokenCount  int             `json:"bodyTokenCount"`
	BodyStartLine   int             `json:"bodyStartLine"`
	HeadingDepth    int             `json:"headingDepth"`
	HeadingCount    int             `json:"headingCount"`
	Links           []PathMention   `json:"links"`
	ReferenceFiles  []ReferenceFile `json:"referenceFiles"`
	ReferencedPaths []PathMention   `json:"referencedPaths"`
	AssetFiles      []string        `json:"assetFiles"`
	Body            string          `json:"-"`
}

// ReferenceLines returns the total line count across all reference files.
func (b *BundleFacts) ReferenceLines() int {
	total := 0
	for _, rf := range b.ReferenceFiles {
		total += rf.Lines
	}
	return total
}

// HasFile reports whether rel names a known reference or asset file.
func (b *BundleFacts) HasFile(rel string) bool {
	for _, rf := range b.ReferenceFiles {
		if rf.Path == rel {
			return true
		}
	}
	for _, a := range b.AssetFiles {
		if a == rel {
			return true
		}
	}
	return false
}

// Mentions reports whether the body names rel, either by its bundle-relative
// path or by its file name, with or without backticks. A name only counts as
// a whole token: "data.md" does not mention "a.md".
func (b *BundleFacts) Mentions(rel string) bool {
	return containsToken(b.Body, rel) || containsToken(b.Body, path.Base(rel))
}

func containsToken(s, tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(s); {
		j := strings.Index(s[i:], tok)
		if j < 0 {
			return false
		}
		start, end := i+j, i+j+len(tok)
		if tokenStart(s, start) && tokenEnd(s, end) {
			return true
		}
		i = start + 1
	}
	return false
}

// tokenStart: a separator such as "/" may precede a file name, another name
// character or a dot may not.
func tokenStart(s string, i int) bool {
	if i == 0 {
		return true
	}
	c := s[i-1]
	return !isNameByte(c) && c != '.'
}

// tokenEnd allows trailing punctuation, including a sentence-ending dot, but
// not a longer name such as "a.md.bak".
func tokenEnd(s string, i int) bool {
	if i == len(s) {
		return true
	}
	if s[i] == '.' {
		return i+1 == len(s) || !isNameByte(s[i+1])
	}
	return !isNameByte(s[i])
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

// Factor is one labelled contribution to a metric score.
type Factor struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
	Max    int    `json:"max"`
	Detail string `json:"detail,omitempty"`
}

// MetricResult is the output of a single metric scorer.
type MetricResult struct {
	Name    string   `json:"name"`
	Score   int      `json:"score"`
	Factors []Factor `json:"factors"`
}

// SumFactors sets Score to the clamped sum of the factor points.
func (m *MetricResult) SumFactors() {
	total := 0
	for _, f := range m.Factors {
		total += f.Points
	}
	m.Score = Clamp(total, 0, 100)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// Severity classifies an Issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue represents a rule violation found during validation.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Location string   `json:"location"`
}

// Key identifies an issue across runs.
func (i Issue) Key() string {
	return i.Code + "|" + i.Location + "|" + i.Message
}

// IssueCounts tallies issues by severity.
type IssueCounts struct {
	Error   int `json:"error"`
	Warning int `json:"warning"`
	Info    int `json:"info"`
}

// CountIssues tallies issues by severity.
func CountIssues(issues []Issue) IssueCounts {
	var c IssueCounts
	for _, iss := range issues {
		switch iss.Severity {
		case SeverityError:
			c.Error++
		case SeverityWarning:
			c.Warning++
		case SeverityInfo:
			c.Info++
		}
	}
	return c
}

// MetricScores carries the four headline scores. Nil means not computed.
type MetricScores struct {
	Conciseness           *int `json:"conciseness"`
	Complexity            *int `json:"complexity"`
	SpecCompliance        *int `json:"specCompliance"`
	ProgressiveDisclosure *int `json:"progressiveDisclosure"`
}

// Get returns the score stored under a metric name.
func (m MetricScores) Get(name string) *int {
	switch name {
	case MetricConciseness:
		return m.Conciseness
	case MetricComplexity:
		return m.Complexity
	case MetricSpecCompliance:
		return m.SpecCompliance
	case MetricProgressiveDisclosure:
		return m.ProgressiveDisclosure
	default:
		return nil
	}
}

// Report is the result of evaluating one bundle in one mode.
type Report struct {
	Bundle     string         `json:"bundle"`
	Path       string         `json:"path"`
	Mode       Mode           `json:"mode"`
	Passed     bool           `json:"passed"`
	Overall    *int           `json:"overall"`
	Band       string         `json:"band,omitempty"`
	Metrics    MetricScores   `json:"metrics"`
	Details    []MetricResult `json:"details"`
	Issues     []Issue        `json:"issues"`
	Counts     IssueCounts    `json:"counts"`
	Facts      *BundleFacts   `json:"facts,omitempty"`
	CommitHash string         `json:"commitHash,omitempty"`
}

// BandFor maps an overall score to its interpretive band.
func BandFor(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 75:
		return "good"
	case score >= 60:
		return "fair"
	case score >= 40:
		return "needs-work"
	default:
		return "poor"
	}
}

// WeightedAverage returns round(sum(score*weight)/sum(weight)), or 0 with no weight.
func WeightedAverage(scores, weights []float64) int {
	var totalWeighted, totalWeight float64
	for i := range scores {
		totalWeighted += scores[i] * weights[i]
		totalWeight += weights[i]
	}
	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(totalWeighted / totalWeight))
}

// ScoreEntry is one recorded evaluation in a bundle's history.
type ScoreEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commitHash,omitempty"`
	Mode       Mode   `json:"mode"`
	Overall    *int   `json:"overall"`
	Band       string `json:"band,omitempty"`
	Passed     bool   `json:"passed"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
}
