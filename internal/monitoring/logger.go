// Package monitoring holds the diagnostic logger shared by the plyfile
// packages.
package monitoring

import "log"

// Logf receives non-fatal diagnostics such as ignored trailing data. It
// defaults to log.Printf; SetLogger replaces or mutes it.
var Logf func(format string, v ...any) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}
