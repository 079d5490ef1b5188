package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/openkraft/skillkraft/internal/domain"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	lime    = lipgloss.Color("#A3E635")
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	bandColors = map[string]lipgloss.Color{
		"excellent":  success,
		"good":       lime,
		"fair":       warning,
		"needs-work": lipgloss.Color("#FB923C"), // orange
		"poor":       danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	locStyle      = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

var severityGroups = []struct {
	severity domain.Severity
	title    string
}{
	{domain.SeverityError, "Errors"},
	{domain.SeverityWarning, "Warnings"},
	{domain.SeverityInfo, "Info"},
}

// RenderReport formats a report for the terminal: issues grouped by
// severity first, then the score summary and the verdict.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("skillkraft")
	subtitle := dimStyle.Render(fmt.Sprintf("%s · %s mode", report.Bundle, report.Mode))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	// ── Issues ──
	renderIssues(&b, report.Issues)

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Scores ──
	if report.Overall == nil {
		b.WriteString("  " + dimStyle.Render("Metric scoring skipped in quick mode.") + "\n")
	} else {
		renderScoreSummary(&b, report)
	}

	b.WriteString("\n")
	b.WriteString("  " + verdict(report) + "\n\n")
	return b.String()
}

func renderIssues(b *strings.Builder, issues []domain.Issue) {
	if len(issues) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
		return
	}

	counts := domain.CountIssues(issues)
	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Issues"))
	b.WriteString("  ")
	b.WriteString(countTags(counts))
	b.WriteString("\n")

	for _, g := range severityGroups {
		group := filterSeverity(issues, g.severity)
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(b, "\n  %s\n", nameStyle.Render(fmt.Sprintf("%s (%d)", g.title, len(group))))
		for _, issue := range group {
			renderIssue(b, issue)
		}
	}
}

func countTags(c domain.IssueCounts) string {
	var tags []string
	if c.Error > 0 {
		tags = append(tags, errorTagStyle.Render(fmt.Sprintf("%d errors", c.Error)))
	}
	if c.Warning > 0 {
		tags = append(tags, warnTagStyle.Render(fmt.Sprintf("%d warnings", c.Warning)))
	}
	if c.Info > 0 {
		tags = append(tags, infoTagStyle.Render(fmt.Sprintf("%d info", c.Info)))
	}
	return strings.Join(tags, "  ")
}

func renderIssue(b *strings.Builder, issue domain.Issue) {
	tag := severityTag(issue.Severity)
	code := dimStyle.Render("[" + issue.Code + "]")
	if issue.Location != "" {
		fmt.Fprintf(b, "    %s %s %s\n", tag, locStyle.Render(issue.Location), code)
		fmt.Fprintf(b, "          %s\n", issue.Message)
	} else {
		fmt.Fprintf(b, "    %s %s %s\n", tag, code, issue.Message)
	}
}

func renderScoreSummary(b *strings.Builder, report *domain.Report) {
	overall := *report.Overall
	color := bandColor(report.Band)
	scoreStyled := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%d / 100", overall))
	bandStyled := lipgloss.NewStyle().Bold(true).Foreground(color).Render(report.Band)
	fmt.Fprintf(b, "  %s  %s  %s\n\n", titleStyle.Render("Overall"), scoreStyled, bandStyled)

	for _, m := range report.Details {
		renderMetric(b, m)
	}
}

func renderMetric(b *strings.Builder, m domain.MetricResult) {
	quality := m.Score
	note := ""
	if m.Name == domain.MetricComplexity {
		// Complexity counts against quality: a full bar means simple.
		quality = 100 - m.Score
		note = dimStyle.Render(" (lower is better)")
	}

	scoreText := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(quality)).Render(fmt.Sprintf("%3d", m.Score))
	name := nameStyle.Render(padRight(m.Name, 24))
	fmt.Fprintf(b, "  %s %s  %s%s\n", name, coloredBar(quality, 20), scoreText, note)

	for _, f := range m.Factors {
		renderFactor(b, f)
	}
}

func renderFactor(b *strings.Builder, f domain.Factor) {
	name := padRight(f.Label, 22)

	var icon string
	switch {
	case f.Max <= 0:
		icon = dimStyle.Render("·")
	case f.Points*100 >= f.Max*80:
		icon = passStyle.Render("●")
	case f.Points*100 >= f.Max*40:
		icon = warnStyle.Render("●")
	default:
		icon = failStyle.Render("●")
	}

	points := fmt.Sprintf("%d", f.Points)
	if f.Max > 0 {
		points = fmt.Sprintf("%d/%d", f.Points, f.Max)
	}

	if f.Detail != "" {
		fmt.Fprintf(b, "    %s %s %s  %s\n", icon, name, dimStyle.Render(padRight(points, 7)), faintStyle.Render(f.Detail))
	} else {
		fmt.Fprintf(b, "    %s %s %s\n", icon, name, dimStyle.Render(points))
	}
}

func verdict(report *domain.Report) string {
	if report.Passed {
		return passStyle.Bold(true).Render("PASSED")
	}
	return failStyle.Bold(true).Render("FAILED")
}

func severityTag(severity domain.Severity) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func filterSeverity(issues []domain.Issue, sev domain.Severity) []domain.Issue {
	var out []domain.Issue
	for _, i := range issues {
		if i.Severity == sev {
			out = append(out, i)
		}
	}
	return out
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func scoreColorStyle(score int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(scoreColor(score))
}

func bandColor(band string) lipgloss.Color {
	if c, ok := bandColors[band]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func formatScore(v *int) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *v)
}

// RenderHistory formats recorded runs for terminal output.
func RenderHistory(entries []domain.ScoreEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No history recorded. Run evaluate with --record.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Evaluation History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	var prev *int
	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		scoreText := padRight(formatScore(e.Overall)+"/100", 7)
		if e.Overall != nil {
			scoreText = lipgloss.NewStyle().Foreground(scoreColor(*e.Overall)).Render(scoreText)
		} else {
			scoreText = dimStyle.Render(scoreText)
		}

		status := passStyle.Render("pass")
		if !e.Passed {
			status = failStyle.Render("fail")
		}

		line := fmt.Sprintf("  %s  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			padRight(string(e.Mode), 7),
			scoreText,
			status,
		)

		if prev != nil && e.Overall != nil {
			diff := *e.Overall - *prev
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}
		if e.Overall != nil {
			prev = e.Overall
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
