// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/cpmech/gosl/io"

// ExplainSink receives one-line human explanations from StepLogic.
// When non-nil, StepLogic must append exactly one line per change and
// return immediately after the first change; when nil, a
// constraint may batch multiple eliminations into a single pass.
type ExplainSink interface {
	Explain(format string, args ...interface{})
}

// CollectingSink is the default ExplainSink implementation: it simply
// appends every formatted line, in order, for callers (tests, an
// external "explain this solve" driver) to inspect afterwards.
type CollectingSink struct {
	Lines []string
}

// Explain implements ExplainSink.
func (s *CollectingSink) Explain(format string, args ...interface{}) {
	s.Lines = append(s.Lines, io.Sf(format, args...))
}
