package main

import (
	"fmt"
	"time"

	"github.com/rmellis/go-conlog/conlog"
)

// Example demonstrating go-conlog usage.
func main() {
	// Package-level functions write through the default logger, which
	// detects terminal support and NO_COLOR on its own.
	conlog.Infof("starting at %v", time.Now().Format(time.Kitchen))
	conlog.Debugf("cache warmed in %dms", 42)
	conlog.Warnf("config file missing, using defaults")
	conlog.Errorf("oops: %v", "something happened")
	conlog.Successf("all checks passed")
	conlog.Miscf("anything else goes here")

	// Line modes overwrite or extend the current line.
	conlog.Plain("")
	for pct := 0; pct <= 100; pct += 25 {
		conlog.PlainMode(conlog.OverlapLine, fmt.Sprintf("downloading... %d%%", pct))
		time.Sleep(100 * time.Millisecond)
	}
	conlog.PlainMode(conlog.ClearAndOverlap, "download complete")

	// An instance with an observer mirrors raw messages elsewhere.
	var mirror []string
	log := conlog.New(conlog.Config{
		OnLog: func(t conlog.Type, msg string) {
			mirror = append(mirror, t.Name()+": "+msg)
		},
	})
	log.Log(conlog.InfoType, "mirrored once, unformatted")

	// Pretty-printed, syntax-colored JSON stays aligned under the prefix.
	_ = log.LogJSON(conlog.DebugType, map[string]any{
		"service": "demo",
		"port":    8080,
		"tls":     false,
		"tags":    []string{"local", "dev"},
	})

	// A custom prefix function takes over formatting entirely.
	bracketed := conlog.New(conlog.Config{
		Prefix: func(t conlog.Type, _ *bool, _ *string) string {
			return "[" + t.Name() + "]"
		},
	})
	bracketed.Log(conlog.WarnType, "short prefixes, if you prefer them")

	conlog.PlainMode(conlog.DoubleNewLine, "mirrored messages:")
	for _, m := range mirror {
		conlog.Plain("  " + m)
	}
	conlog.Plain("")
}
