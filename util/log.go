package util

import "log"

var flagEnableTrace bool = false

func EnableTrace() {
	flagEnableTrace = true
}

func DisableTrace() {
	flagEnableTrace = false
}

func Tracing() bool {
	return flagEnableTrace
}

// Trace logs only while tracing is enabled. Every native acquire and release
// goes through here.
func Trace(format string, v ...interface{}) {
	if flagEnableTrace {
		log.Printf(format, v...)
	}
}
