package conlog

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// Default is the process-wide logger used by the package-level functions.
// It is built once at startup with environment-detected colors and is never
// torn down.
var Default = New(Config{NoColor: !detectColor()})

// detectColor decides the default color flag for the process-wide logger:
// colors are on when stdout is a terminal and NO_COLOR is unset.
func detectColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SetDefault replaces the process-wide logger. Pass a logger from New to
// redirect the package-level functions, e.g. into a test buffer.
func SetDefault(l *Logger) {
	if l != nil {
		Default = l
	}
}

// Plain writes the message on a new line via the default logger.
func Plain(msg string) {
	Default.Plain(msg)
}

// PlainMode writes the message behind the mode's control sequence via the
// default logger.
func PlainMode(mode LineMode, msg string) {
	Default.PlainMode(mode, msg)
}

// Log writes a typed, prefixed line via the default logger.
func Log(t Type, msg string) {
	Default.Log(t, msg)
}

// LogJSON pretty-prints the value via the default logger.
func LogJSON(t Type, v any) error {
	return Default.LogJSON(t, v)
}

// LogJSONIndent pretty-prints the value with the given indent width via the
// default logger.
func LogJSONIndent(t Type, v any, indent int) error {
	return Default.LogJSONIndent(t, v, indent)
}

// --- Formatted convenience functions (fmt.Sprintf style) ---

// Infof logs an informational line formatted with fmt.Sprintf.
func Infof(format string, v ...any) {
	Default.Log(InfoType, fmt.Sprintf(format, v...))
}

// Warnf logs a warning line formatted with fmt.Sprintf.
func Warnf(format string, v ...any) {
	Default.Log(WarnType, fmt.Sprintf(format, v...))
}

// Errorf logs an error line formatted with fmt.Sprintf.
func Errorf(format string, v ...any) {
	Default.Log(ErrorType, fmt.Sprintf(format, v...))
}

// Debugf logs a debug line formatted with fmt.Sprintf.
func Debugf(format string, v ...any) {
	Default.Log(DebugType, fmt.Sprintf(format, v...))
}

// Successf logs a success line formatted with fmt.Sprintf.
func Successf(format string, v ...any) {
	Default.Log(SuccessType, fmt.Sprintf(format, v...))
}

// Miscf logs an uncategorized line formatted with fmt.Sprintf.
func Miscf(format string, v ...any) {
	Default.Log(MiscType, fmt.Sprintf(format, v...))
}
