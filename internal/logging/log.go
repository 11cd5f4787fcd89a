//go:build !js || !wasm

// Package logging routes the runtime's diagnostic output (reconciler
// warnings, uncaught flush errors, setup/render error reports) through
// one place instead of scattering fmt.Println calls across packages.
package logging

import (
	"log"
	"os"
)

var std = log.New(os.Stderr, "[retcore] ", 0)

// Log prints args space-separated, matching log.Println semantics.
func Log(args ...any) {
	std.Println(args...)
}

// Logf prints a formatted message.
func Logf(format string, args ...any) {
	std.Printf(format, args...)
}
