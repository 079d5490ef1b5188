package domain

import "fmt"

// ValidRuleCodes enumerates the codes accepted in disabled_rules. It lists the
// codes of check.DefaultRules in evaluation order; check cannot be imported
// from here, so TestDefaultRules_CodesMatchConfigVocabulary keeps the two equal.
var ValidRuleCodes = []string{
	"missing-reference",
	"orphaned-reference",
	"reference-naming",
	"absolute-path",
	"missing-name",
	"missing-description",
	"deprecated-version-location",
	"name-too-long",
	"description-too-long",
	"invalid-name-format",
	"name-mismatch",
}

// ProjectConfig holds bundle-level configuration loaded from .skillkraft.yaml.
type ProjectConfig struct {
	Weights       map[string]float64 `yaml:"weights"        json:"weights,omitempty"`
	Deductions    *DeductionConfig   `yaml:"deductions"     json:"deductions,omitempty"`
	DisabledRules []string           `yaml:"disabled_rules" json:"disabled_rules,omitempty"`
	Limits        *LimitsConfig      `yaml:"limits"         json:"limits,omitempty"`
	Bonus         *BonusConfig       `yaml:"bonus"          json:"bonus,omitempty"`
}

// DeductionConfig overrides the spec compliance deductions.
// Pointer types distinguish "not specified" from zero values.
type DeductionConfig struct {
	Error   *int `yaml:"error"   json:"error,omitempty"`
	Warning *int `yaml:"warning" json:"warning,omitempty"`
}

// LimitsConfig overrides the front-matter character limits.
type LimitsConfig struct {
	MaxNameLength        *int `yaml:"max_name_length"        json:"max_name_length,omitempty"`
	MaxDescriptionLength *int `yaml:"max_description_length" json:"max_description_length,omitempty"`
}

// BonusConfig overrides the reference offloading bonus.
type BonusConfig struct {
	ReferenceLinesThreshold *int `yaml:"reference_lines_threshold" json:"reference_lines_threshold,omitempty"`
	Points                  *int `yaml:"points"                    json:"points,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// IsDisabledRule reports whether the rule code is switched off.
func (c ProjectConfig) IsDisabledRule(code string) bool {
	for _, r := range c.DisabledRules {
		if r == code {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	// 1. weight keys must be known metrics, values non-negative
	for k, w := range c.Weights {
		if !isValidMetric(k) {
			return fmt.Errorf("unknown metric %q in weights (valid: conciseness, complexity, specCompliance, progressiveDisclosure)", k)
		}
		if w < 0 {
			return fmt.Errorf("weights[%q] = %.2f (must not be negative)", k, w)
		}
	}

	// 2. if all metrics are specified, weights must sum to ~1.0
	if len(c.Weights) == len(ValidMetrics) {
		sum := 0.0
		for _, w := range c.Weights {
			sum += w
		}
		if sum < 0.95 || sum > 1.05 {
			return fmt.Errorf("weights sum to %.2f (must be between 0.95 and 1.05)", sum)
		}
	}

	// 3. disabled rules must exist
	for _, r := range c.DisabledRules {
		if !isValidRuleCode(r) {
			return fmt.Errorf("unknown rule %q in disabled_rules", r)
		}
	}

	// 4. numeric overrides
	if c.Deductions != nil {
		if err := nonNegative("deductions.error", c.Deductions.Error); err != nil {
			return err
		}
		if err := nonNegative("deductions.warning", c.Deductions.Warning); err != nil {
			return err
		}
	}
	if c.Limits != nil {
		if err := positive("limits.max_name_length", c.Limits.MaxNameLength); err != nil {
			return err
		}
		if err := positive("limits.max_description_length", c.Limits.MaxDescriptionLength); err != nil {
			return err
		}
	}
	if c.Bonus != nil {
		if err := nonNegative("bonus.reference_lines_threshold", c.Bonus.ReferenceLinesThreshold); err != nil {
			return err
		}
		if err := nonNegative("bonus.points", c.Bonus.Points); err != nil {
			return err
		}
	}

	return nil
}

func nonNegative(name string, v *int) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%s must be >= 0 (got %d)", name, *v)
	}
	return nil
}

func positive(name string, v *int) error {
	if v != nil && *v <= 0 {
		return fmt.Errorf("%s must be > 0 (got %d)", name, *v)
	}
	return nil
}

func isValidMetric(name string) bool {
	for _, m := range ValidMetrics {
		if m == name {
			return true
		}
	}
	return false
}

func isValidRuleCode(code string) bool {
	for _, c := range ValidRuleCodes {
		if c == code {
			return true
		}
	}
	return false
}
