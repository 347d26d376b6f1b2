// Package monitoring holds the process-wide diagnostic logger.
package monitoring

import (
	"log"
	"os"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf
// but may be replaced by SetLogger; tests or embedding code can redirect
// or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// Debugf logs only when DEPTHGATE_DEBUG is set in the environment. Use
// it for per-frame chatter that would swamp a batch run.
var Debugf = func(format string, v ...interface{}) {
	if debugEnabled {
		Logf(format, v...)
	}
}

var debugEnabled = os.Getenv("DEPTHGATE_DEBUG") != ""

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
