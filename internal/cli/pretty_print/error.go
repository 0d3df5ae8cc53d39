package pretty_print

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sierrasoftworks/humane-errors-go"
)

// renderHumaneError builds a formatted string for CLI display, not logging.
func renderHumaneError(options *PrintOptions) string { //nolint:golint-sl
	err := options.Error

	header := errStyle(options.Theme).Bold(true)
	section := secondaryStyle(options.Theme).Bold(true)
	code := secondaryStyle(options.Theme).Italic(true)
	if options.NoColor {
		header, section, code = lipgloss.NewStyle(), lipgloss.NewStyle(), lipgloss.NewStyle()
	}

	var he humane.Error
	if !errors.As(err, &he) {
		return header.Render("✗ "+err.Error()) + "\n" //nolint:wideevents
	}

	var causes []string
	advice := make([]string, 0)
	for cur := error(he); cur != nil; cur = errors.Unwrap(cur) {
		causes = append(causes, cur.Error()) //nolint:wideevents

		if adv, ok := cur.(interface{ Advice() []string }); ok {
			advice = append(adv.Advice(), advice...)
		}
	}

	var b strings.Builder
	b.WriteString(header.Render("✗ " + he.Error())) //nolint:wideevents
	b.WriteString("\n")

	if len(advice) > 0 {
		b.WriteString("\n" + section.Render("What you can do:") + "\n")
		for _, tip := range advice {
			b.WriteString("  • " + tip + "\n")
		}
	}

	if len(causes) > 1 {
		b.WriteString("\n" + section.Render("Root causes:") + "\n")
		for _, c := range causes[1:] {
			b.WriteString("  • " + code.Render(c) + "\n")
		}
	}

	return b.String()
}
