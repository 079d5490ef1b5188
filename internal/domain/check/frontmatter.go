package check

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/openkraft/skillkraft/internal/domain"
)

const frontmatterLocation = domain.MainDocument + ":frontmatter"

var nameFormatRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func checkMissingName(facts *domain.BundleFacts) []domain.Issue {
	if strings.TrimSpace(facts.Frontmatter.Name) != "" {
		return nil
	}
	return []domain.Issue{{
		Severity: domain.SeverityError,
		Code:     "missing-name",
		Message:  "front-matter is missing the required name field",
		Location: frontmatterLocation,
	}}
}

func checkMissingDescription(facts *domain.BundleFacts) []domain.Issue {
	if strings.TrimSpace(facts.Frontmatter.Description) != "" {
		return nil
	}
	return []domain.Issue{{
		Severity: domain.SeverityError,
		Code:     "missing-description",
		Message:  "front-matter is missing the required description field",
		Location: frontmatterLocation,
	}}
}

func checkVersionLocation(facts *domain.BundleFacts) []domain.Issue {
	if !facts.Frontmatter.HasField("version") {
		return nil
	}
	return []domain.Issue{{
		Severity: domain.SeverityWarning,
		Code:     "deprecated-version-location",
		Message:  "top-level version is deprecated; move it to metadata.version",
		Location: frontmatterLocation + ".version",
	}}
}

func nameLengthCheck(limit int) func(*domain.BundleFacts) []domain.Issue {
	return func(facts *domain.BundleFacts) []domain.Issue {
		n := utf8.RuneCountInString(facts.Frontmatter.Name)
		if n <= limit {
			return nil
		}
		return []domain.Issue{{
			Severity: domain.SeverityError,
			Code:     "name-too-long",
			Message:  fmt.Sprintf("name is %d characters (max %d)", n, limit),
			Location: frontmatterLocation + ".name",
		}}
	}
}

func descriptionLengthCheck(limit int) func(*domain.BundleFacts) []domain.Issue {
	return func(facts *domain.BundleFacts) []domain.Issue {
		n := utf8.RuneCountInString(facts.Frontmatter.Description)
		if n <= limit {
			return nil
		}
		return []domain.Issue{{
			Severity: domain.SeverityError,
			Code:     "description-too-long",
			Message:  fmt.Sprintf("description is %d characters (max %d)", n, limit),
			Location: frontmatterLocation + ".description",
		}}
	}
}

func checkNameFormat(facts *domain.BundleFacts) []domain.Issue {
	name := facts.Frontmatter.Name
	if name == "" || nameFormatRe.MatchString(name) {
		return nil
	}
	return []domain.Issue{{
		Severity: domain.SeverityError,
		Code:     "invalid-name-format",
		Message:  fmt.Sprintf("name %q must be lowercase letters and digits separated by hyphens", name),
		Location: frontmatterLocation + ".name",
	}}
}

func checkNameMatchesDirectory(facts *domain.BundleFacts) []domain.Issue {
	name := facts.Frontmatter.Name
	if name == "" || facts.DirectoryName == "" || name == facts.DirectoryName {
		return nil
	}
	return []domain.Issue{{
		Severity: domain.SeverityWarning,
		Code:     "name-mismatch",
		Message:  fmt.Sprintf("name %q does not match directory %q", name, facts.DirectoryName),
		Location: frontmatterLocation + ".name",
	}}
}
