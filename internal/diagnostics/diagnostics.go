// Package diagnostics renders lex/parse/runtime errors and REPL
// feedback with color on a terminal. Color is a cosmetic layer only:
// color.NoColor (auto-detected from the output stream, or forced by
// DisableColor) strips ANSI escapes so the exact plain-text error
// forms still reach a pipe or file untouched.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	errColor  = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
	infoColor = color.New(color.FgCyan)
)

// DisableColor turns off ANSI output regardless of tty detection,
// honoring --no-color / NO_COLOR / a config file's `color: false`.
func DisableColor() { color.NoColor = true }

// Error prints a single error line to w in red, e.g. a lex, parse, or
// runtime error message.
func Error(w io.Writer, format string, a ...interface{}) {
	errColor.Fprintln(w, fmt.Sprintf(format, a...))
}

// Warn prints an advisory line to w in yellow.
func Warn(w io.Writer, format string, a ...interface{}) {
	warnColor.Fprintln(w, fmt.Sprintf(format, a...))
}

// Info prints an informational line to w in cyan.
func Info(w io.Writer, format string, a ...interface{}) {
	infoColor.Fprintln(w, fmt.Sprintf(format, a...))
}
