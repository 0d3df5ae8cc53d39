package pretty_print

import (
	"fmt"
	"strings"
)

type PrintLevel int

const (
	NoOp PrintLevel = iota
	DebugLvl
	InfoLvl
	OkLvl
	WarnLvl
	ErrLvl
)

// FormatWithOptions formats a message with custom options and returns it as a string
func FormatWithOptions(lvl PrintLevel, msg string, context []string, opts ...Option) string {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if lvl == ErrLvl && options.Error != nil {
		return renderHumaneError(options)
	}

	icon, ok := options.LevelIcons[lvl]
	if !ok {
		icon = options.LevelIcons[InfoLvl]
	}

	style, ok := options.IconStyles[lvl]
	if !ok {
		style = options.IconStyles[InfoLvl]
	}

	status, message := icon, msg
	if !options.NoColor {
		status = style(options.Theme).Render(icon)
		message = options.MessageStyle(options.Theme).Render(msg)
	}

	var b strings.Builder
	b.WriteString(status)
	b.WriteString(" ")
	b.WriteString(message)

	indent := strings.Repeat(" ", options.IndentSize)
	for _, c := range context {
		if !options.NoColor {
			c = options.ContextStyle(options.Theme).Render(c)
		}
		_, _ = fmt.Fprintf(&b, "\n%s%s", indent, c)
	}

	if !options.NoNewline {
		b.WriteString("\n")
	}

	return b.String()
}

// Format formats a message with the default options
func Format(lvl PrintLevel, msg string, context ...string) string {
	return FormatWithOptions(lvl, msg, context)
}

func FormatOk(msg string, context ...string) string {
	return Format(OkLvl, msg, context...)
}

func FormatInfo(msg string, context ...string) string {
	return Format(InfoLvl, msg, context...)
}

func FormatWarn(msg string, context ...string) string {
	return Format(WarnLvl, msg, context...)
}

// FormatError formats an error together with its advice and root causes.
func FormatError(err error, context ...string) string {
	return FormatWithOptions(ErrLvl, "", context, WithError(err))
}
