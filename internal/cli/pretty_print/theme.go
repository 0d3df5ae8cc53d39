package pretty_print

import (
	"os"

	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

type Theme string

const (
	AsciiStyle      Theme = "ascii"
	DarkStyle       Theme = "dark"
	DraculaStyle    Theme = "dracula"
	TokyoNightStyle Theme = "tokyo-night"
	LightStyle      Theme = "light"
	NoTTYStyle      Theme = "notty"
)

func AllThemes() []Theme {
	return []Theme{
		AsciiStyle,
		DarkStyle,
		DraculaStyle,
		TokyoNightStyle,
		LightStyle,
		NoTTYStyle,
	}
}

func AllThemeNames() []string {
	themes := AllThemes()
	names := make([]string, len(themes))
	for i, theme := range themes {
		names[i] = string(theme)
	}
	return names
}

var styleMap = map[Theme]ansi.StyleConfig{
	AsciiStyle:      styles.ASCIIStyleConfig,
	DarkStyle:       styles.DarkStyleConfig,
	DraculaStyle:    styles.DraculaStyleConfig,
	TokyoNightStyle: styles.TokyoNightStyleConfig,
	LightStyle:      styles.LightStyleConfig,
	NoTTYStyle:      styles.NoTTYStyleConfig,
}

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func styleColor(style ansi.StylePrimitive) lipgloss.Style {
	if style.Color == nil {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(*style.Color))
}

// Chroma is a pointer in the glamour configs; a theme without it renders unstyled.
func chromaStyle(theme Theme, pick func(*ansi.Chroma) ansi.StylePrimitive) lipgloss.Style {
	cfg, ok := styleMap[theme]
	if !ok || cfg.CodeBlock.Chroma == nil {
		return lipgloss.NewStyle()
	}
	return styleColor(pick(cfg.CodeBlock.Chroma))
}

func boldStyle(theme Theme) lipgloss.Style {
	return chromaStyle(theme, func(c *ansi.Chroma) ansi.StylePrimitive { return c.Text }).Bold(true)
}

func normalStyle(theme Theme) lipgloss.Style {
	return chromaStyle(theme, func(c *ansi.Chroma) ansi.StylePrimitive { return c.Text })
}

func secondaryStyle(theme Theme) lipgloss.Style {
	return chromaStyle(theme, func(c *ansi.Chroma) ansi.StylePrimitive { return c.KeywordType })
}

func errStyle(theme Theme) lipgloss.Style {
	return chromaStyle(theme, func(c *ansi.Chroma) ansi.StylePrimitive { return c.GenericDeleted })
}

func warnStyle(theme Theme) lipgloss.Style {
	return chromaStyle(theme, func(c *ansi.Chroma) ansi.StylePrimitive { return c.LiteralString })
}

func infoStyle(theme Theme) lipgloss.Style {
	return chromaStyle(theme, func(c *ansi.Chroma) ansi.StylePrimitive { return c.LiteralStringEscape })
}

func okStyle(theme Theme) lipgloss.Style {
	return chromaStyle(theme, func(c *ansi.Chroma) ansi.StylePrimitive { return c.NameAttribute })
}

func okColor(theme Theme) lipgloss.Color {
	cfg, ok := styleMap[theme]
	if !ok || cfg.CodeBlock.Chroma == nil || cfg.CodeBlock.Chroma.NameAttribute.Color == nil {
		return lipgloss.Color("10")
	}
	return lipgloss.Color(*cfg.CodeBlock.Chroma.NameAttribute.Color)
}
