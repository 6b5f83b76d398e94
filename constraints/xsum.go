// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "github.com/cpmech/gosudoku/engine"

// XSum encodes an outside-the-grid clue: the value x held by the first
// cell of the line determines how many leading cells (itself included)
// must sum to the printed clue.
type XSum struct {
	Base
	sum   int
	cells []engine.Cell
}

// StepLogic tries every remaining candidate v for the first cell: v is
// only kept if the trailing v-1 cells can be assigned pairwise-distinct
// values (excluding v, already taken) summing to sum-v while staying
// consistent with the rest of the board. Cells within reach of the
// surviving candidates are narrowed to the union of values that showed
// up in some successful assignment.
func (x *XSum) StepLogic(e *engine.Engine, sink engine.ExplainSink, isBruteForcing bool) engine.LogicResult {
	n := len(x.cells)
	first := x.cells[0]
	firstMask := engine.CandidateBits(e.Board.AtCell(first))

	firstSurvivor := engine.Mask(0)
	trailingSurvivor := make([]engine.Mask, n)
	maxV := 0

	engine.ForEachValue(firstMask, func(v int) bool {
		if v > n {
			return true
		}
		target := x.sum - v
		trailing := x.cells[1:v]
		feasible := false
		var survivors []engine.Mask
		if len(trailing) == 0 {
			feasible = target == 0
		} else {
			feasible, survivors = sumAssignments(e, trailing, v, target)
		}
		if !feasible {
			return true
		}
		firstSurvivor |= engine.ValueMask(v)
		if v > maxV {
			maxV = v
		}
		for i, s := range survivors {
			trailingSurvivor[i+1] |= s
		}
		return true
	})

	if firstSurvivor == 0 {
		return engine.ResultInvalid
	}
	result := engine.ResultNone
	if firstSurvivor != firstMask {
		r := e.KeepMask(first.Row, first.Col, firstSurvivor)
		result = result.Combine(r)
		if result == engine.ResultInvalid {
			return engine.ResultInvalid
		}
		if r == engine.ResultChanged && sink != nil {
			sink.Explain("xsum %d: %s narrowed to %s", x.sum, cellName(first), firstSurvivor.String())
			return engine.ResultChanged
		}
	}

	for k := 1; k < maxV; k++ {
		if trailingSurvivor[k] == 0 {
			// No surviving first-cell value actually reached this far;
			// a zero union here only means "unconstrained by this
			// pass", not a contradiction, since an enumeration may have
			// bailed out conservatively on an oversized slot count.
			continue
		}
		cur := engine.CandidateBits(e.Board.AtCell(x.cells[k]))
		if trailingSurvivor[k]&cur == 0 {
			continue
		}
		r := e.KeepMask(x.cells[k].Row, x.cells[k].Col, trailingSurvivor[k])
		if r == engine.ResultChanged && sink != nil {
			sink.Explain("xsum %d: %s narrowed to %s", x.sum, cellName(x.cells[k]), trailingSurvivor[k].String())
			return engine.ResultChanged
		}
		result = result.Combine(r)
		if result == engine.ResultInvalid {
			return engine.ResultInvalid
		}
	}
	return result
}

// EnforceConstraint applies the tighter bound once the first cell is
// decided: the remaining v-1 cells must sum exactly to sum-v, so any
// candidate in those cells outside the achievable [target-maxOthers,
// target-minOthers] range is dead weight.
func (x *XSum) EnforceConstraint(e *engine.Engine, cellRow, cellCol, value int) bool {
	first := x.cells[0]
	if cellRow != first.Row || cellCol != first.Col {
		return true
	}
	v := value
	n := len(x.cells)
	if v > n {
		return false
	}
	trailing := x.cells[1:v]
	target := x.sum - v
	if len(trailing) == 0 {
		return target == 0
	}
	return boundSumCells(e, trailing, target) != engine.ResultInvalid
}

// boundSumCells tightens each of cells' candidate masks using the
// coarse min/max achievable sum for the rest of the group: a value v
// survives in cell i only if some assignment of the other cells could
// plausibly make up the remaining target-v.
func boundSumCells(e *engine.Engine, cells []engine.Cell, target int) engine.LogicResult {
	k := len(cells)
	maxValue := e.Board.MaxValue
	result := engine.ResultNone
	for _, c := range cells {
		mask := engine.CandidateBits(e.Board.AtCell(c))
		othersCount := k - 1
		minOthers := othersCount * (othersCount + 1) / 2
		maxOthers := 0
		for d := 0; d < othersCount; d++ {
			maxOthers += maxValue - d
		}
		lower := target - maxOthers
		upper := target - minOthers
		survivor := engine.Mask(0)
		engine.ForEachValue(mask, func(v int) bool {
			if v >= lower && v <= upper {
				survivor |= engine.ValueMask(v)
			}
			return true
		})
		if survivor == mask {
			continue
		}
		r := e.KeepMask(c.Row, c.Col, survivor)
		result = result.Combine(r)
		if result == engine.ResultInvalid {
			return engine.ResultInvalid
		}
	}
	return result
}

// NeedsEnforceConstraint implements engine.Constraint.
func (x *XSum) NeedsEnforceConstraint() bool { return true }

func init() {
	Register("xsum", "X-Sum", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		sum, line, err := ParseClueAndLine(options)
		if err != nil {
			return nil, err
		}
		return &XSum{sum: sum, cells: line}, nil
	})
}
