package tui

import (
	"fmt"
	"strings"

	"github.com/openkraft/skillkraft/internal/domain"
)

// RenderDiff formats the comparison of two reports.
func RenderDiff(diff *domain.ReportDiff) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s\n", titleStyle.Render("Compare"), dimStyle.Render(diff.Bundle))
	fmt.Fprintf(&b, "  %s\n\n", dimStyle.Render(fmt.Sprintf("%s → %s mode", diff.BaselineMode, diff.CurrentMode)))

	renderDelta(&b, diff.Overall, false)
	for _, m := range diff.Metrics {
		renderDelta(&b, m, m.Name == domain.MetricComplexity)
	}

	b.WriteString("\n  " + separatorLine + "\n\n")

	renderIssueChange(&b, "Introduced", diff.Introduced)
	renderIssueChange(&b, "Resolved", diff.Resolved)

	b.WriteString("\n")
	switch {
	case diff.Regressed():
		b.WriteString("  " + failStyle.Bold(true).Render("REGRESSED") + "\n")
	default:
		b.WriteString("  " + passStyle.Bold(true).Render("NO REGRESSION") + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// renderDelta prints baseline → current. For inverted metrics a drop is good.
func renderDelta(b *strings.Builder, d domain.MetricDelta, inverted bool) {
	line := fmt.Sprintf("  %s %5s → %-5s",
		nameStyle.Render(padRight(d.Name, 24)),
		formatScore(d.Baseline),
		formatScore(d.Current),
	)
	if d.Delta != nil && *d.Delta != 0 {
		better := *d.Delta > 0
		if inverted {
			better = !better
		}
		text := fmt.Sprintf("%+d", *d.Delta)
		if better {
			line += "  " + passStyle.Render(text)
		} else {
			line += "  " + failStyle.Render(text)
		}
	}
	b.WriteString(line + "\n")
}

func renderIssueChange(b *strings.Builder, title string, issues []domain.Issue) {
	fmt.Fprintf(b, "  %s\n", nameStyle.Render(fmt.Sprintf("%s (%d)", title, len(issues))))
	for _, issue := range issues {
		renderIssue(b, issue)
	}
}
