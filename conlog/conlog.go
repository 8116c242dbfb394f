package conlog

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Type identifies the category of a log line.
type Type int

const (
	// InfoType marks informational lines (blue).
	InfoType Type = iota
	// WarnType marks warning lines (yellow).
	WarnType
	// ErrorType marks error lines (red).
	ErrorType
	// DebugType marks debug lines (cyan).
	DebugType
	// SuccessType marks success lines (green).
	SuccessType
	// MiscType marks uncategorized lines (white).
	MiscType
)

// AllTypes returns every log type in display order.
func AllTypes() []Type {
	return []Type{
		InfoType,
		WarnType,
		ErrorType,
		DebugType,
		SuccessType,
		MiscType,
	}
}

var typeNames = map[Type]string{
	InfoType:    "info",
	WarnType:    "warn",
	ErrorType:   "error",
	DebugType:   "debug",
	SuccessType: "success",
	MiscType:    "misc",
}

// ansi builds a color with output forced on, so each Logger's own flag is
// the only thing that decides whether escapes are emitted.
func ansi(attr color.Attribute) *color.Color {
	c := color.New(attr)
	c.EnableColor()
	return c
}

var typeColors = map[Type]*color.Color{
	InfoType:    ansi(color.FgBlue),
	WarnType:    ansi(color.FgYellow),
	ErrorType:   ansi(color.FgRed),
	DebugType:   ansi(color.FgCyan),
	SuccessType: ansi(color.FgGreen),
	MiscType:    ansi(color.FgWhite),
}

// labelWidth is the widest display name across all types. Prefixes pad to
// this width so every type's prefix lines up in the same column.
var labelWidth = widestLabel()

func widestLabel() int {
	w := 0
	for _, t := range AllTypes() {
		if n := len(typeNames[t]); n > w {
			w = n
		}
	}
	return w
}

func init() {
	// The name and color tables must cover the whole type set.
	for _, t := range AllTypes() {
		if _, ok := typeNames[t]; !ok {
			panic(fmt.Sprintf("conlog: missing display name for type %d", t))
		}
		if _, ok := typeColors[t]; !ok {
			panic(fmt.Sprintf("conlog: missing color for type %d", t))
		}
	}
}

// Name returns the lowercase display name of the type.
func (t Type) Name() string {
	return typeNames[t]
}

// LineMode selects the control sequence written before a line.
type LineMode int

const (
	// NewLine starts the text on a fresh line.
	NewLine LineMode = iota
	// SameLine appends to the current line with no separator.
	SameLine
	// OverlapLine returns the cursor to column 0, overwriting the current line.
	OverlapLine
	// DoubleNewLine leaves one blank line before the text.
	DoubleNewLine
	// Space separates the text from the current line with one space.
	Space
	// ClearAndOverlap erases the current line before overwriting it.
	ClearAndOverlap
)

var lineEscapes = map[LineMode]string{
	NewLine:         "\n",
	SameLine:        "",
	OverlapLine:     "\r",
	DoubleNewLine:   "\n\n",
	Space:           " ",
	ClearAndOverlap: "\x1b[2K\r",
}

// Escape returns the literal control sequence for the mode.
func (m LineMode) Escape() string {
	return lineEscapes[m]
}

// PrefixFunc replaces the built-in prefix formatting entirely. It receives
// the line's type plus the optional color and label overrides passed to
// PrefixFor; nil means "use the logger's setting" and "use the type's name"
// respectively.
type PrefixFunc func(t Type, colorOverride *bool, textOverride *string) string

// Config defines options for New.
type Config struct {
	// NoColor disables ANSI colors for this logger.
	// Default: false (colors on)
	NoColor bool
	// Sink receives every formatted line; nil writes to stdout through a
	// color-capable writer.
	Sink func(string)
	// OnLog, when set, is called with the raw unformatted message before
	// each Log/LogJSON write. Useful for mirroring logs elsewhere.
	OnLog func(Type, string)
	// Prefix, when set, bypasses the built-in prefix formatting.
	Prefix PrefixFunc
}

// Logger formats typed lines and hands them to its sink. A Logger does no
// locking of its own; callers sharing one instance across goroutines must
// serialize writes themselves.
type Logger struct {
	useColor bool
	sink     func(string)
	onLog    func(Type, string)
	prefix   PrefixFunc
}

// New creates a Logger from the given configuration.
func New(cfg Config) *Logger {
	sink := cfg.Sink
	if sink == nil {
		sink = stdoutSink
	}
	return &Logger{
		useColor: !cfg.NoColor,
		sink:     sink,
		onLog:    cfg.OnLog,
		prefix:   cfg.Prefix,
	}
}

// stdoutSink writes through color.Output so escape sequences survive on
// Windows consoles too.
func stdoutSink(s string) {
	fmt.Fprint(color.Output, s)
}

// Plain writes the message on a new line. The observer callback is not
// invoked.
func (l *Logger) Plain(msg string) {
	l.PlainMode(NewLine, msg)
}

// PlainMode writes the mode's control sequence followed by the message. The
// observer callback is not invoked.
func (l *Logger) PlainMode(mode LineMode, msg string) {
	l.sink(mode.Escape() + msg)
}

// Colorize wraps text in the type's color code and the reset code,
// regardless of the logger's color flag.
func (l *Logger) Colorize(t Type, text string) string {
	return typeColors[t].Sprint(text)
}

// PrefixFor builds the aligned "LABEL |" prefix for the type. A nil
// colorOverride falls back to the logger's color flag; a nil textOverride
// uses the type's display name, padded so all built-in prefixes share one
// width. When a custom PrefixFunc is configured it takes over completely.
func (l *Logger) PrefixFor(t Type, colorOverride *bool, textOverride *string) string {
	if l.prefix != nil {
		return l.prefix(t, colorOverride, textOverride)
	}

	text := t.Name()
	if textOverride != nil {
		text = *textOverride
	}
	label := strings.ToUpper(text)
	if pad := labelWidth - len(label); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	label += " |"

	useColor := l.useColor
	if colorOverride != nil {
		useColor = *colorOverride
	}
	if useColor {
		return l.Colorize(t, label)
	}
	return label
}

// Log writes the message on a new line behind the type's prefix. The
// observer, when configured, sees the raw message before anything is
// written.
func (l *Logger) Log(t Type, msg string) {
	if l.onLog != nil {
		l.onLog(t, msg)
	}
	l.Plain(l.PrefixFor(t, nil, nil) + " " + msg)
}
