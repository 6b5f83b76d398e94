// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// LogicResult is the deduction-result lattice every constraint hook
// reports: None < Changed, with Invalid a terminal sink that outranks
// both.
type LogicResult int

const (
	ResultNone LogicResult = iota
	ResultChanged
	ResultInvalid
)

func (r LogicResult) String() string {
	switch r {
	case ResultNone:
		return "None"
	case ResultChanged:
		return "Changed"
	case ResultInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Combine merges two results per the lattice order: Invalid dominates,
// otherwise the larger of the two. Used to fold the results of several
// writes (e.g. the per-cell KeepMask calls of one StepLogic) into one
// verdict.
func (r LogicResult) Combine(other LogicResult) LogicResult {
	if r == ResultInvalid || other == ResultInvalid {
		return ResultInvalid
	}
	if r == ResultChanged || other == ResultChanged {
		return ResultChanged
	}
	return ResultNone
}

// PropagateStatus is the outcome of a full Propagate call.
type PropagateStatus int

const (
	StatusFixedPoint PropagateStatus = iota
	StatusSolved
	StatusInvalid
	StatusCancelled
)

func (s PropagateStatus) String() string {
	switch s {
	case StatusFixedPoint:
		return "FixedPoint"
	case StatusSolved:
		return "Solved"
	case StatusInvalid:
		return "Invalid"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
