package pretty_print

import (
	"os"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// PrintOptions controls how messages are formatted
type PrintOptions struct {
	// Theme is the theme to use for the print options
	Theme Theme

	// IndentSize controls the number of spaces used for indentation
	IndentSize int

	// NoColor disables colored output
	NoColor bool

	// LevelIcons maps print levels to their display icons
	LevelIcons map[PrintLevel]string

	// IconStyles maps print levels to their display styles
	IconStyles map[PrintLevel]themeStyleFunc

	ContextStyle themeStyleFunc
	MessageStyle themeStyleFunc

	// Error is rendered with its advice and causes instead of the message
	Error error

	// NoNewline disables the newline at the end of the message
	NoNewline bool
}

type themeStyleFunc func(theme Theme) lipgloss.Style

// DefaultOptions returns the options derived from the output.theme setting and
// the terminal attached to stdout.
func DefaultOptions() *PrintOptions {
	options := &PrintOptions{
		Theme:      TokyoNightStyle,
		IndentSize: 4,
		NoColor:    false,
		LevelIcons: map[PrintLevel]string{
			OkLvl:    "✓",
			InfoLvl:  "ℹ",
			WarnLvl:  "!",
			ErrLvl:   "✗",
			DebugLvl: "D",
			NoOp:     "",
		},
		IconStyles: map[PrintLevel]themeStyleFunc{
			NoOp:     secondaryStyle,
			OkLvl:    okStyle,
			InfoLvl:  infoStyle,
			WarnLvl:  warnStyle,
			ErrLvl:   errStyle,
			DebugLvl: secondaryStyle,
		},
		ContextStyle: secondaryStyle,
		MessageStyle: normalStyle,
	}

	if theme := viper.GetString("output.theme"); theme != "" && slices.Contains(AllThemeNames(), theme) {
		options.Theme = Theme(theme)
	}

	if !IsTerminal(os.Stdout) {
		options.Theme = NoTTYStyle
	}

	if _, hasNoColor := os.LookupEnv("NO_COLOR"); hasNoColor || !IsTerminal(os.Stdout) {
		options.NoColor = true
	}

	return options
}

// Option is a function that modifies PrintOptions
type Option func(*PrintOptions)

func WithIndentSize(size int) Option {
	return func(o *PrintOptions) {
		o.IndentSize = size
	}
}

func WithNoColor(noColor bool) Option {
	return func(o *PrintOptions) {
		o.NoColor = noColor
	}
}

// WithIcon sets a custom icon for a print level
func WithIcon(level PrintLevel, icon string) Option {
	return func(o *PrintOptions) {
		o.LevelIcons[level] = icon
	}
}

// WithError renders err with its advice and causes. Only honoured for ErrLvl.
func WithError(err error) Option {
	return func(o *PrintOptions) {
		o.Error = err
	}
}

func WithoutNewline() Option {
	return func(o *PrintOptions) {
		o.NoNewline = true
	}
}

func WithTheme(theme Theme) Option {
	return func(o *PrintOptions) {
		o.Theme = theme
	}
}
