package domain_test

import (
	"testing"

	"github.com/openkraft/skillkraft/internal/domain"
	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func TestDefaultConfig_ChangesNothing(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Nil(t, cfg.Weights)
	assert.Nil(t, cfg.Deductions)
	assert.Empty(t, cfg.DisabledRules)
	assert.Nil(t, cfg.Limits)
	assert.Nil(t, cfg.Bonus)
}

func TestIsDisabledRule(t *testing.T) {
	cfg := domain.ProjectConfig{DisabledRules: []string{"name-mismatch", "orphaned-reference"}}
	assert.True(t, cfg.IsDisabledRule("name-mismatch"))
	assert.True(t, cfg.IsDisabledRule("orphaned-reference"))
	assert.False(t, cfg.IsDisabledRule("missing-name"))
	assert.False(t, domain.DefaultConfig().IsDisabledRule("missing-name"))
}

func TestValidate_EmptyConfigIsValid(t *testing.T) {
	assert.NoError(t, domain.DefaultConfig().Validate())
}

func TestValidate_FullWeightsMustSumToOne(t *testing.T) {
	cfg := domain.ProjectConfig{Weights: map[string]float64{
		domain.MetricConciseness:           0.40,
		domain.MetricComplexity:            0.40,
		domain.MetricSpecCompliance:        0.40,
		domain.MetricProgressiveDisclosure: 0.40,
	}}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.60")

	cfg.Weights = domain.DefaultWeights()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_PartialWeightsValid(t *testing.T) {
	cfg := domain.ProjectConfig{Weights: map[string]float64{domain.MetricSpecCompliance: 0.90}}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     domain.ProjectConfig
		wantErr string
	}{
		{"unknown metric", domain.ProjectConfig{Weights: map[string]float64{"tests": 0.5}}, `unknown metric "tests"`},
		{"negative weight", domain.ProjectConfig{Weights: map[string]float64{domain.MetricComplexity: -1}}, "must not be negative"},
		{"unknown rule", domain.ProjectConfig{DisabledRules: []string{"nope"}}, `unknown rule "nope"`},
		{"negative deduction", domain.ProjectConfig{Deductions: &domain.DeductionConfig{Error: intp(-5)}}, "deductions.error"},
		{"zero limit", domain.ProjectConfig{Limits: &domain.LimitsConfig{MaxDescriptionLength: intp(0)}}, "limits.max_description_length"},
		{"negative bonus", domain.ProjectConfig{Bonus: &domain.BonusConfig{Points: intp(-1)}}, "bonus.points"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_ZeroDeductionsAllowed(t *testing.T) {
	cfg := domain.ProjectConfig{
		Deductions: &domain.DeductionConfig{Error: intp(0), Warning: intp(0)},
		Bonus:      &domain.BonusConfig{ReferenceLinesThreshold: intp(0)},
	}
	assert.NoError(t, cfg.Validate())
}

func TestValidRuleCodes_AreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range domain.ValidRuleCodes {
		assert.False(t, seen[c], "duplicate rule code %q", c)
		seen[c] = true
	}
}
