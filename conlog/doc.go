// Package conlog is a small console logger with typed, colorized, aligned
// prefixes and a colorizing JSON pretty-printer.
//
// # Console Output
//
// Every line carries an uppercase label padded to a shared width, so output
// from all types lines up in one column:
//
//	INFO    | server started
//	SUCCESS | build complete
//	ERROR   | disk full
//
// Colors are ANSI escapes chosen per type (info blue, warn yellow, error
// red, debug cyan, success green, misc white). Set Config.NoColor to turn
// them off; the package-level default logger turns them off on its own when
// stdout is not a terminal or NO_COLOR is set.
//
// # Features
//
//   - Closed set of line types with per-type colors and aligned prefixes
//   - Line modes for overwriting, appending, and clearing the current line
//   - Injectable sink function (write to a terminal, buffer, or anywhere)
//   - Observer callback receiving the raw message before each write
//   - Pluggable prefix formatting via Config.Prefix
//   - JSON pretty-printing with syntax coloring and aligned continuation lines
//   - Package-level convenience functions over a process-wide default logger
//
// # Usage
//
// Use the package-level functions for quick output:
//
//	conlog.Infof("listening on :%d", 8080)
//	conlog.Successf("done in %s", elapsed)
//	conlog.LogJSON(conlog.DebugType, payload)
//
// Or build an instance with its own sink and observer:
//
//	log := conlog.New(conlog.Config{
//		Sink:  func(s string) { fmt.Fprint(w, s) },
//		OnLog: func(t conlog.Type, msg string) { mirror = append(mirror, msg) },
//	})
//	log.Log(conlog.WarnType, "cache miss")
//
// Progress-style output uses line modes:
//
//	log.PlainMode(conlog.OverlapLine, "downloading 42%")
//	log.PlainMode(conlog.ClearAndOverlap, "downloading 100%")
//
// A Logger does no internal locking; callers sharing one instance across
// goroutines serialize writes themselves.
package conlog
