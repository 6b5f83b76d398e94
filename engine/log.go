// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/cpmech/gosl/io"

// Verbose turns the engine's diagnostic output on. Off by default so
// propagation stays silent inside brute-force search branches; tests
// and interactive drivers flip it on to watch rounds converge.
var Verbose = false

// Logf prints a diagnostic line when Verbose is on.
func Logf(msg string, prm ...interface{}) {
	if Verbose {
		io.Pf(msg, prm...)
	}
}

// Warnf prints a highlighted warning line when Verbose is on.
func Warnf(msg string, prm ...interface{}) {
	if Verbose {
		io.PfRed(msg, prm...)
	}
}

// Tracef prints a low-importance trace line when Verbose is on. Used
// for per-round propagation progress.
func Tracef(msg string, prm ...interface{}) {
	if Verbose {
		io.Pfgrey(msg, prm...)
	}
}

// LogSink is an ExplainSink that prints each explanation line as it is
// produced, for interactive "explain this solve" sessions.
type LogSink struct{}

// Explain implements ExplainSink.
func (LogSink) Explain(format string, args ...interface{}) {
	io.Pforan(format+"\n", args...)
}
