package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/openkraft/skillkraft/internal/domain"
)

// RenderSweep formats one row per bundle followed by totals.
func RenderSweep(sweep *domain.SweepReport) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s\n", titleStyle.Render("Sweep"), dimStyle.Render(fmt.Sprintf("%s · %s mode", sweep.Root, sweep.Mode)))
	b.WriteString("  " + separatorLine + "\n\n")

	if len(sweep.Bundles) == 0 {
		b.WriteString("  " + dimStyle.Render("No bundles found.") + "\n\n")
		return b.String()
	}

	for _, e := range sweep.Bundles {
		name := relativeTo(sweep.Root, e.Path)
		if e.Report == nil {
			fmt.Fprintf(&b, "  %s %s %s\n", errorTagStyle.Render("crit "), padRight(name, 32), failStyle.Render(e.Error))
			continue
		}

		status := passStyle.Render("pass ")
		if !e.Report.Passed {
			status = failStyle.Render("fail ")
		}
		score := dimStyle.Render(padRight(formatScore(e.Report.Overall), 4))
		if e.Report.Overall != nil {
			score = scoreColorStyle(*e.Report.Overall).Render(padRight(formatScore(e.Report.Overall), 4))
		}
		fmt.Fprintf(&b, "  %s %s %s %s\n", status, padRight(name, 32), score, countTags(e.Report.Counts))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s  %s\n\n",
		passStyle.Render(fmt.Sprintf("%d passed", sweep.Passed)),
		failStyle.Render(fmt.Sprintf("%d failed", sweep.Failed)),
		errorTagStyle.Render(fmt.Sprintf("%d critical", sweep.Critical)),
	)
	return b.String()
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
