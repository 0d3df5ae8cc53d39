package pretty_print

import (
	"fmt"
	"io"

	humane "github.com/sierrasoftworks/humane-errors-go"
)

// Fprint formats a message and writes it to w.
func Fprint(w io.Writer, lvl PrintLevel, msg string, context ...string) humane.Error {
	if _, err := fmt.Fprint(w, Format(lvl, msg, context...)); err != nil {
		return humane.Wrap(err, "failed to write formatted output", "check that stdout/stderr is writable")
	}
	return nil
}

// PrintOk writes a message at the "Ok" level with optional context.
func PrintOk(w io.Writer, msg string, context ...string) {
	_ = Fprint(w, OkLvl, msg, context...)
}

// PrintInfo writes an informational message with optional context.
func PrintInfo(w io.Writer, msg string, context ...string) {
	_ = Fprint(w, InfoLvl, msg, context...)
}

// PrintWarn writes a warning message with optional context.
func PrintWarn(w io.Writer, msg string, context ...string) {
	_ = Fprint(w, WarnLvl, msg, context...)
}

// PrintError writes err with its advice and root causes.
func PrintError(w io.Writer, err error, context ...string) {
	_, _ = fmt.Fprint(w, FormatError(err, context...))
}
