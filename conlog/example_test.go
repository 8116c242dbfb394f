package conlog_test

import (
	"fmt"

	"github.com/rmellis/go-conlog/conlog"
)

// This example shows the aligned prefix column across line types.
func ExampleLogger_Log() {
	log := conlog.New(conlog.Config{NoColor: true, Sink: func(s string) { fmt.Print(s) }})
	log.Log(conlog.InfoType, "server started")
	log.Log(conlog.SuccessType, "build complete")
	log.Log(conlog.ErrorType, "disk full")
	// Output:
	// INFO    | server started
	// SUCCESS | build complete
	// ERROR   | disk full
}

// This example mirrors the raw message through the observer callback.
func ExampleNew() {
	var mirror []string
	log := conlog.New(conlog.Config{
		NoColor: true,
		Sink:    func(s string) { fmt.Print(s) },
		OnLog:   func(_ conlog.Type, msg string) { mirror = append(mirror, msg) },
	})
	log.Log(conlog.WarnType, "cache miss")
	fmt.Printf("\nmirrored: %q", mirror)
	// Output:
	// WARN    | cache miss
	// mirrored: ["cache miss"]
}

// This example pretty-prints JSON under the prefix column.
func ExampleLogger_LogJSONIndent() {
	log := conlog.New(conlog.Config{NoColor: true, Sink: func(s string) { fmt.Print(s) }})
	_ = log.LogJSONIndent(conlog.InfoType, map[string]int{"port": 8080}, 2)
	// Output:
	// INFO    | {
	//         |   "port": 8080
	//         | }
}

// This example shows progress-style output overwriting the current line.
func ExampleLogger_PlainMode() {
	log := conlog.New(conlog.Config{Sink: func(s string) { fmt.Print(s) }})
	log.PlainMode(conlog.OverlapLine, "downloading 42%")
	log.PlainMode(conlog.ClearAndOverlap, "downloading 100%")
}

// This example replaces the built-in prefix formatting entirely.
func ExampleConfig_prefix() {
	log := conlog.New(conlog.Config{
		NoColor: true,
		Sink:    func(s string) { fmt.Print(s) },
		Prefix: func(t conlog.Type, _ *bool, _ *string) string {
			return "[" + t.Name() + "]"
		},
	})
	log.Log(conlog.DebugType, "short prefixes")
	// Output:
	// [debug] short prefixes
}
