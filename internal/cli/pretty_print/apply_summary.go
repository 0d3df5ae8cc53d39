package pretty_print

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spechtlabs/nba/pkg/client/k8s"
)

// FormatApplySummary renders one line per applied object inside a box.
func FormatApplySummary(results []k8s.ApplyResult, dryRun bool) string {
	options := DefaultOptions()

	width := 0
	for _, r := range results {
		width = max(width, len(r.Operation))
	}

	lines := make([]string, 0, len(results)+2)
	title := "Applied"
	if dryRun {
		title = "Applied (dry run)"
	}
	if !options.NoColor {
		title = boldStyle(options.Theme).Render(title)
	}
	lines = append(lines, title, "")

	for _, r := range results {
		op, ref := fmt.Sprintf("%-*s", width, r.Operation), r.Ref
		if !options.NoColor {
			op = okStyle(options.Theme).Render(op)
			ref = normalStyle(options.Theme).Render(ref)
		}
		lines = append(lines, op+"  "+ref)
	}

	content := strings.Join(lines, "\n")
	if options.NoColor {
		return content + "\n"
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(okColor(options.Theme)).
		Padding(0, 1).
		MarginLeft(4)

	return boxStyle.Render(content) + "\n"
}
