// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Constraint is the uniform contract every side constraint implements.
// Unused operations default to "no-op / no change" by embedding
// NopConstraint (see below), so a concrete constraint only overrides
// the handful of operations it actually needs.
type Constraint interface {
	// InitCandidates restricts candidates purely from the initial
	// board (e.g. Skyscraper forcing its first cell). May be called
	// more than once and must be idempotent at a fixed point. Takes
	// the engine (not just the board) because forcing a cell is a
	// write that must cascade through the normal write API.
	InitCandidates(e *Engine) LogicResult

	// InitLinks seeds weak links exactly once, during setup.
	InitLinks(e *Engine) LogicResult

	// EnforceConstraint runs immediately after the engine sets
	// (i,j) := v. Returning false means the assignment directly
	// violates the constraint.
	EnforceConstraint(e *Engine, i, j, v int) bool

	// StepLogic is the constraint's bounded deduction step.
	StepLogic(e *Engine, sink ExplainSink, isBruteForcing bool) LogicResult

	// SeenCells returns the cells from which any value held by cell
	// must be eliminated once cell is decided.
	SeenCells(cell Cell) []Cell

	// SeenCellsByValueMask is the masked variant: contribute seen
	// cells only for the values in mask (e.g. Self-Taxicab only
	// contributes once the cell's value, and hence the distance, is
	// known).
	SeenCellsByValueMask(cell Cell, mask Mask) []Cell

	// Group optionally returns a cell list to register as an
	// all-distinct group, and whether one is contributed at all.
	Group() ([]Cell, bool)

	// SplitToPrimitives optionally decomposes this constraint into
	// smaller equivalent constraints the engine should use instead.
	// Returning nil means "do not split".
	SplitToPrimitives(e *Engine) []Constraint

	// NeedsEnforceConstraint is an advisory flag: when false the
	// engine may skip EnforceConstraint dispatch to this constraint.
	NeedsEnforceConstraint() bool
}

// NopConstraint implements every Constraint operation as a no-op.
// Concrete constraints embed it and override only the operations they
// actually need.
type NopConstraint struct{}

func (NopConstraint) InitCandidates(*Engine) LogicResult { return ResultNone }
func (NopConstraint) InitLinks(*Engine) LogicResult     { return ResultNone }
func (NopConstraint) EnforceConstraint(*Engine, int, int, int) bool {
	return true
}
func (NopConstraint) StepLogic(*Engine, ExplainSink, bool) LogicResult {
	return ResultNone
}
func (NopConstraint) SeenCells(Cell) []Cell                     { return nil }
func (NopConstraint) SeenCellsByValueMask(Cell, Mask) []Cell    { return nil }
func (NopConstraint) Group() ([]Cell, bool)                     { return nil, false }
func (NopConstraint) SplitToPrimitives(*Engine) []Constraint    { return nil }
func (NopConstraint) NeedsEnforceConstraint() bool              { return false }
