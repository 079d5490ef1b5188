package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		score int
		band  string
	}{
		{100, "excellent"}, {90, "excellent"}, {89, "good"}, {75, "good"}, {74, "fair"},
		{60, "fair"}, {59, "needs-work"}, {40, "needs-work"}, {39, "poor"}, {0, "poor"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.band, domain.BandFor(tt.score), "score %d", tt.score)
	}
}

func TestWeightedAverage(t *testing.T) {
	assert.Equal(t, 70, domain.WeightedAverage([]float64{60, 80}, []float64{0.5, 0.5}))
	assert.Equal(t, 67, domain.WeightedAverage([]float64{100, 50}, []float64{1, 2}))
	assert.Equal(t, 0, domain.WeightedAverage(nil, nil))
}

func TestCountIssues(t *testing.T) {
	counts := domain.CountIssues([]domain.Issue{
		{Severity: domain.SeverityError},
		{Severity: domain.SeverityWarning},
		{Severity: domain.SeverityWarning},
		{Severity: domain.SeverityInfo},
	})
	assert.Equal(t, domain.IssueCounts{Error: 1, Warning: 2, Info: 1}, counts)
}

func TestIssue_KeyIgnoresSeverity(t *testing.T) {
	a := domain.Issue{Severity: domain.SeverityError, Code: "missing-reference", Message: "m", Location: "SKILL.md:3"}
	b := a
	b.Severity = domain.SeverityWarning
	assert.Equal(t, a.Key(), b.Key())

	b.Location = "SKILL.md:4"
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestBundleFacts_Lookups(t *testing.T) {
	facts := &domain.BundleFacts{
		ReferenceFiles: []domain.ReferenceFile{{Path: "references/api_guide.md", Lines: 120}, {Path: "references/faq.md", Lines: 30}},
		AssetFiles:     []string{"assets/logo.png"},
		Body:           "See api_guide.md for the full list.",
	}

	assert.Equal(t, 150, facts.ReferenceLines())
	assert.True(t, facts.HasFile("references/faq.md"))
	assert.True(t, facts.HasFile("assets/logo.png"))
	assert.False(t, facts.HasFile("references/missing.md"))
	assert.True(t, facts.Mentions("references/api_guide.md"), "base name mention counts")
	assert.False(t, facts.Mentions("references/faq.md"))
}

func TestBundleFacts_MentionsWholeNamesOnly(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{"see a.md", true},
		{"See `references/a.md`.", true},
		{"Read a.md.", true},
		{"[guide](./references/a.md)", true},
		{"(a.md)", true},
		{"see data.md", false},
		{"see a.md.bak", false},
		{"see a.mdx", false},
		{"see beta_a.md", false},
		{"see references/ba.md", false},
		{"", false},
	}
	for _, tt := range tests {
		facts := &domain.BundleFacts{Body: tt.body}
		assert.Equal(t, tt.want, facts.Mentions("references/a.md"), tt.body)
	}
}

func TestFrontmatter_HasField(t *testing.T) {
	fm := domain.Frontmatter{Fields: []string{"description", "name"}}
	assert.True(t, fm.HasField("name"))
	assert.False(t, fm.HasField("version"))
}

func TestMetricScores_Get(t *testing.T) {
	v := 42
	m := domain.MetricScores{SpecCompliance: &v}
	assert.Equal(t, &v, m.Get(domain.MetricSpecCompliance))
	assert.Nil(t, m.Get(domain.MetricConciseness))
	assert.Nil(t, m.Get("unknown"))
}

func TestReport_JSONKeepsEmptyCollections(t *testing.T) {
	r := domain.Report{
		Bundle:  "x",
		Mode:    domain.ModeQuick,
		Details: []domain.MetricResult{},
		Issues:  []domain.Issue{},
	}
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, []any{}, raw["issues"])
	assert.Equal(t, []any{}, raw["details"])
	assert.Nil(t, raw["overall"])
	assert.Contains(t, raw, "overall", "quick mode reports an explicit null overall")
	metrics := raw["metrics"].(map[string]any)
	for _, name := range domain.ValidMetrics {
		assert.Contains(t, metrics, name)
		assert.Nil(t, metrics[name])
	}
	counts := raw["counts"].(map[string]any)
	assert.Len(t, counts, 3)
}
