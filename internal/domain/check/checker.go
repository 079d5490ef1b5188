package check

import (
	"fmt"

	"github.com/openkraft/skillkraft/internal/domain"
)

// Rule is one independently evaluable compliance check.
// Structural rules also run in quick mode.
type Rule struct {
	Code        string
	Description string
	Structural  bool
	Check       func(facts *domain.BundleFacts) []domain.Issue
}

// DefaultRules returns the ordered rule set, bound to the given limits.
func DefaultRules(limits domain.Limits) []Rule {
	return []Rule{
		{
			Code:        "missing-reference",
			Description: "backtick-quoted relative paths must exist among reference and asset files",
			Structural:  true,
			Check:       checkMissingReferences,
		},
		{
			Code:        "orphaned-reference",
			Description: "every reference file should be mentioned in the main document",
			Check:       checkOrphanedReferences,
		},
		{
			Code:        "reference-naming",
			Description: "reference file names must be lowercase with underscores",
			Structural:  true,
			Check:       checkReferenceNaming,
		},
		{
			Code:        "absolute-path",
			Description: "paths must be relative to the bundle",
			Structural:  true,
			Check:       checkAbsolutePaths,
		},
		{
			Code:        "missing-name",
			Description: "front-matter must declare a name",
			Structural:  true,
			Check:       checkMissingName,
		},
		{
			Code:        "missing-description",
			Description: "front-matter must declare a description",
			Structural:  true,
			Check:       checkMissingDescription,
		},
		{
			Code:        "deprecated-version-location",
			Description: "version belongs under metadata, not at the top level",
			Structural:  true,
			Check:       checkVersionLocation,
		},
		{
			Code:        "name-too-long",
			Description: fmt.Sprintf("name must be at most %d characters", limits.MaxNameLength),
			Structural:  true,
			Check:       nameLengthCheck(limits.MaxNameLength),
		},
		{
			Code:        "description-too-long",
			Description: fmt.Sprintf("description must be at most %d characters", limits.MaxDescriptionLength),
			Structural:  true,
			Check:       descriptionLengthCheck(limits.MaxDescriptionLength),
		},
		{
			Code:        "invalid-name-format",
			Description: "name must be lowercase alphanumeric words joined by hyphens",
			Structural:  true,
			Check:       checkNameFormat,
		},
		{
			Code:        "name-mismatch",
			Description: "name should match the bundle directory",
			Structural:  true,
			Check:       checkNameMatchesDirectory,
		},
	}
}

// Select returns the rules that run in the given mode, preserving order.
func Select(rules []Rule, mode domain.Mode) []Rule {
	if mode.RunsAllRules() {
		return rules
	}
	var selected []Rule
	for _, r := range rules {
		if r.Structural {
			selected = append(selected, r)
		}
	}
	return selected
}

// Without drops rules whose code is disabled, preserving order.
func Without(rules []Rule, disabled func(code string) bool) []Rule {
	var kept []Rule
	for _, r := range rules {
		if !disabled(r.Code) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Run evaluates every rule against the same facts and returns the complete
// issue list in rule order. A failing rule never stops the others.
func Run(rules []Rule, facts *domain.BundleFacts) []domain.Issue {
	issues := []domain.Issue{}
	for _, r := range rules {
		issues = append(issues, runRule(r, facts)...)
	}
	return issues
}

func runRule(r Rule, facts *domain.BundleFacts) (issues []domain.Issue) {
	defer func() {
		if rec := recover(); rec != nil {
			issues = []domain.Issue{{
				Severity: domain.SeverityError,
				Code:     "internal-rule-failure",
				Message:  fmt.Sprintf("rule %s failed: %v", r.Code, rec),
				Location: domain.MainDocument,
			}}
		}
	}()
	return r.Check(facts)
}

// docLocation formats a position in the main document.
func docLocation(line int) string {
	if line <= 0 {
		return domain.MainDocument
	}
	return fmt.Sprintf("%s:%d", domain.MainDocument, line)
}
