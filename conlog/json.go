package conlog

import (
	"encoding/json"
	"strings"

	"github.com/fatih/color"
)

const defaultJSONIndent = 4

// JSON syntax colors: keys blue, string values green, everything scalar
// (numbers, booleans, null) yellow.
var (
	jsonKeyColor    = ansi(color.FgBlue)
	jsonStringColor = ansi(color.FgGreen)
	jsonScalarColor = ansi(color.FgYellow)
)

// LogJSON pretty-prints the value behind the type's prefix with the default
// indent of four spaces. See LogJSONIndent.
func (l *Logger) LogJSON(t Type, v any) error {
	return l.LogJSONIndent(t, v, defaultJSONIndent)
}

// LogJSONIndent serializes the value with the given indent width, colorizes
// the JSON syntax when colors are on, and writes it behind the type's
// prefix. Continuation lines carry an empty-label prefix so the document
// stays aligned under the prefix column. The observer, when configured,
// receives the compact serialization before anything is written.
// Serialization errors are returned to the caller; nothing is written and
// the observer is not notified.
func (l *Logger) LogJSONIndent(t Type, v any, indent int) error {
	compact, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if l.onLog != nil {
		l.onLog(t, string(compact))
	}

	pretty, err := json.MarshalIndent(v, "", strings.Repeat(" ", indent))
	if err != nil {
		return err
	}
	body := string(pretty)
	if l.useColor {
		body = colorizeJSON(body)
	}

	noColor := false
	empty := ""
	cont := l.PrefixFor(t, &noColor, &empty)
	body = strings.ReplaceAll(body, "\n", "\n"+cont+" ")

	l.Plain(l.PrefixFor(t, nil, nil) + " " + body)
	return nil
}

// colorizeJSON walks a serialized JSON document once, left to right, and
// wraps each token in its syntax color. String tokens are consumed whole
// (with escapes), and a key is told apart from a string value by the colon
// that follows it, so a literal that repeats elsewhere in the document is
// never recolored by accident.
func colorizeJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '"':
			j := stringTokenEnd(s, i)
			tok := s[i:j]
			if colonFollows(s, j) {
				b.WriteString(jsonKeyColor.Sprint(tok))
			} else {
				b.WriteString(jsonStringColor.Sprint(tok))
			}
			i = j
		case c == '-' || (c >= '0' && c <= '9'):
			j := i + 1
			for j < len(s) && isNumberByte(s[j]) {
				j++
			}
			b.WriteString(jsonScalarColor.Sprint(s[i:j]))
			i = j
		default:
			if lit, ok := literalAt(s, i); ok {
				b.WriteString(jsonScalarColor.Sprint(lit))
				i += len(lit)
			} else {
				b.WriteByte(c)
				i++
			}
		}
	}
	return b.String()
}

// stringTokenEnd returns the index just past the string token opening at i.
func stringTokenEnd(s string, i int) int {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
	}
	return len(s)
}

// colonFollows reports whether the next non-blank byte at or after j is a
// colon, which marks the preceding string as an object key.
func colonFollows(s string, j int) bool {
	for ; j < len(s); j++ {
		if s[j] == ' ' || s[j] == '\t' {
			continue
		}
		return s[j] == ':'
	}
	return false
}

func isNumberByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E':
		return true
	}
	return false
}

// literalAt matches the keyword literals at position i. Outside of string
// tokens these words can only be values in valid JSON.
func literalAt(s string, i int) (string, bool) {
	for _, lit := range [...]string{"true", "false", "null"} {
		if strings.HasPrefix(s[i:], lit) {
			return lit, true
		}
	}
	return "", false
}
