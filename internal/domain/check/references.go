package check

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/openkraft/skillkraft/internal/domain"
)

var snakeStemRe = regexp.MustCompile(`^[a-z0-9_]+$`)

func checkMissingReferences(facts *domain.BundleFacts) []domain.Issue {
	var issues []domain.Issue
	for _, m := range facts.ReferencedPaths {
		if domain.IsAbsoluteRef(m.Path) {
			continue // reported by absolute-path
		}
		rel := domain.NormalizeRef(m.Path)
		if facts.HasFile(rel) {
			continue
		}
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     "missing-reference",
			Message:  fmt.Sprintf("`%s` is referenced but not present in %s/ or %s/", m.Path, domain.ReferencesDir, domain.AssetsDir),
			Location: docLocation(m.Line),
		})
	}
	return issues
}

func checkOrphanedReferences(facts *domain.BundleFacts) []domain.Issue {
	var issues []domain.Issue
	for _, rf := range facts.ReferenceFiles {
		if facts.Mentions(rf.Path) {
			continue
		}
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityWarning,
			Code:     "orphaned-reference",
			Message:  fmt.Sprintf("%s is never mentioned in %s", rf.Path, domain.MainDocument),
			Location: rf.Path,
		})
	}
	return issues
}

func checkReferenceNaming(facts *domain.BundleFacts) []domain.Issue {
	var issues []domain.Issue
	for _, rf := range facts.ReferenceFiles {
		base := path.Base(rf.Path)
		ext := path.Ext(base)
		stem := strings.TrimSuffix(base, ext)
		if snakeStemRe.MatchString(stem) && ext == strings.ToLower(ext) {
			continue
		}
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityWarning,
			Code:     "reference-naming",
			Message:  fmt.Sprintf("%s should be lowercase with underscores (e.g. %s%s)", base, snakeCase(stem), strings.ToLower(ext)),
			Location: rf.Path,
		})
	}
	return issues
}

func checkAbsolutePaths(facts *domain.BundleFacts) []domain.Issue {
	var issues []domain.Issue
	report := func(m domain.PathMention) {
		issues = append(issues, domain.Issue{
			Severity: domain.SeverityError,
			Code:     "absolute-path",
			Message:  fmt.Sprintf("%s is absolute; reference bundle files by relative path", m.Path),
			Location: docLocation(m.Line),
		})
	}
	for _, m := range facts.ReferencedPaths {
		if domain.IsAbsoluteRef(m.Path) {
			report(m)
		}
	}
	for _, l := range facts.Links {
		if domain.IsAbsoluteRef(l.Path) {
			report(l)
		}
	}
	return issues
}

// snakeCase rewrites a file stem as lowercase words joined by underscores.
func snakeCase(stem string) string {
	var words []string
	for _, w := range camelcase.Split(stem) {
		w = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return unicode.ToLower(r)
			}
			return -1
		}, w)
		if w != "" {
			words = append(words, w)
		}
	}
	return strings.Join(words, "_")
}
